package mocks

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

type StoreInterface struct {
	mock.Mock
}

func NewStoreInterface(t *testing.T) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StoreInterface) IncrementOrderCount(foodID string, quantity int) error {
	args := m.Called(foodID, quantity)
	return args.Error(0)
}

func (m *StoreInterface) BumpPopularity(foodID string, quantity int) error {
	args := m.Called(foodID, quantity)
	return args.Error(0)
}
