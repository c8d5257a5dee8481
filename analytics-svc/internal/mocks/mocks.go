package mocks

import (
	"testing"

	"foodbites/analytics-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type AnalyticsInterface struct {
	mock.Mock
}

func NewAnalyticsInterface(t *testing.T) *AnalyticsInterface {
	m := &AnalyticsInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AnalyticsInterface) TopToday() ([]domain.FoodAnalytics, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FoodAnalytics), args.Error(1)
}

func (m *AnalyticsInterface) TopAllTime() ([]domain.FoodAnalytics, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FoodAnalytics), args.Error(1)
}
