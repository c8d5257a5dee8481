package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_CategoryMatch(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		foodName    string
		description string
		wantEmoji   string
		wantImage   string
	}{
		{
			name:      "category default image",
			category:  "burger",
			foodName:  "Plain Classic Burger",
			wantEmoji: "🍔",
			wantImage: "https://images.unsplash.com/photo-1550547660-d9450f859349?w=800&auto=format&fit=crop",
		},
		{
			name:      "category with variant in name",
			category:  "burger",
			foodName:  "Cheese Deluxe",
			wantEmoji: "🍔",
			wantImage: "https://images.unsplash.com/photo-1600891964599-f61ba0e24092?w=800&auto=format&fit=crop",
		},
		{
			name:        "category with variant in description",
			category:    "pizza",
			foodName:    "Margherita Supreme",
			description: "Loaded with cheese and basil",
			wantEmoji:   "🍕",
			wantImage:   "https://images.unsplash.com/photo-1601924582975-1a1a1a1a1a1a?w=800&auto=format&fit=crop",
		},
		{
			name:      "uppercase category normalized",
			category:  "SUSHI",
			foodName:  "Dragon Roll",
			wantEmoji: "🍣",
			wantImage: "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=800&auto=format&fit=crop",
		},
		{
			name:      "first declared variant wins",
			category:  "burger",
			foodName:  "Cheese Chicken Tower",
			wantEmoji: "🍔",
			wantImage: "https://images.unsplash.com/photo-1600891964599-f61ba0e24092?w=800&auto=format&fit=crop",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := Resolve(testCase.category, testCase.foodName, testCase.description)
			assert.Equal(t, testCase.wantEmoji, got.Emoji)
			assert.Equal(t, testCase.wantImage, got.Image)
		})
	}
}

func TestResolve_KeywordMatch(t *testing.T) {
	// No category match, but the name carries a registered keyword.
	got := Resolve("", "Midnight Pizza Special", "")
	assert.Equal(t, "🍕", got.Emoji)

	// Keyword plus variant substitution.
	got = Resolve("", "Veg Burger Supreme", "")
	assert.Equal(t, "🍔", got.Emoji)
	assert.Equal(t, "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=800&auto=format&fit=crop", got.Image)
}

func TestResolve_VariantAnywhere(t *testing.T) {
	// "cheese" appears in the description only; no category, keyword or
	// cuisine matches. The first registry entry with a cheese variant is
	// burger.
	got := Resolve("", "Mystery Melt", "oozing with cheese")
	assert.Equal(t, "🍔", got.Emoji)
	assert.Equal(t, "https://images.unsplash.com/photo-1600891964599-f61ba0e24092?w=800&auto=format&fit=crop", got.Image)

	// "taco" is not registered and no cuisine matches, but "veggie" contains
	// the "veg" variant keyword, whose first carrier is burger.
	got = Resolve("", "Spicy Veggie Taco", "")
	assert.Equal(t, "🍔", got.Emoji)
	assert.Equal(t, "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=800&auto=format&fit=crop", got.Image)
}

func TestResolve_Fallback(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		foodName    string
		description string
	}{
		{name: "nothing matches", foodName: "Something Unusual"},
		{name: "empty input"},
		// "chocolate" is a recognized variant keyword but no registry entry
		// carries it; later keywords in the text are not retried.
		{name: "orphan variant keyword", foodName: "Chocolate Fountain"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := Resolve(testCase.category, testCase.foodName, testCase.description)
			assert.Equal(t, defaultAsset, got)
		})
	}
}

func TestResolve_Pure(t *testing.T) {
	first := Resolve("burger", "Cheese Deluxe", "with fries")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Resolve("burger", "Cheese Deluxe", "with fries"))
	}
}

func TestResolve_SubstringFalsePositive(t *testing.T) {
	// Substring matching is accepted behavior: "sushi" inside an unrelated
	// word still matches the keyword rule.
	got := Resolve("", "unsushiest snack", "")
	assert.Equal(t, "🍣", got.Emoji)
}
