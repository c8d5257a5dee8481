package assets

// Asset is the emoji + image pair used to represent a food visually.
type Asset struct {
	Emoji string `json:"emoji"`
	Image string `json:"image"`
}

type variant struct {
	keyword string
	image   string
}

type entry struct {
	key      string
	emoji    string
	image    string
	variants []variant
}

// registry order matters: variant-anywhere matching scans entries in this
// order and takes the first hit.
var registry = []entry{
	{
		key:   "burger",
		emoji: "🍔",
		image: "https://images.unsplash.com/photo-1550547660-d9450f859349?w=800&auto=format&fit=crop",
		variants: []variant{
			{"cheese", "https://images.unsplash.com/photo-1600891964599-f61ba0e24092?w=800&auto=format&fit=crop"},
			{"veg", "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=800&auto=format&fit=crop"},
			{"chicken", "https://images.unsplash.com/photo-1550547660-d9450f859349?w=800&auto=format&fit=crop"},
			{"gourmet", "https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=800&auto=format&fit=crop"},
		},
	},
	{
		key:   "pizza",
		emoji: "🍕",
		image: "https://images.unsplash.com/photo-1613564834361-9436948817d1?q=80&w=1943&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		variants: []variant{
			{"cheese", "https://images.unsplash.com/photo-1601924582975-1a1a1a1a1a1a?w=800&auto=format&fit=crop"},
			{"veg", "https://images.unsplash.com/photo-1601924582976-2b2b2b2b2b2b?w=800&auto=format&fit=crop"},
			{"chicken", "https://images.unsplash.com/photo-1601924582977-3c3c3c3c3c3c?w=800&auto=format&fit=crop"},
			{"gourmet", "https://images.unsplash.com/photo-1601924582978-4d4d4d4d4d4d?w=800&auto=format&fit=crop"},
		},
	},
	{
		key:   "sushi",
		emoji: "🍣",
		image: "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=800&auto=format&fit=crop",
		variants: []variant{
			{"classic", "https://images.unsplash.com/photo-1546069902-ba9599a7e63d?w=800&auto=format&fit=crop"},
			{"spicy", "https://images.unsplash.com/photo-1546069903-ba9599a7e63e?w=800&auto=format&fit=crop"},
		},
	},
	{
		key:   "pasta",
		emoji: "🍝",
		image: "https://images.unsplash.com/photo-1525755662778-989d0524087e?w=800&auto=format&fit=crop",
	},
	{
		key:   "salad",
		emoji: "🥗",
		image: "https://images.unsplash.com/photo-1504754524776-8f4f37790ca0?w=800&auto=format&fit=crop",
	},
	{
		key:   "dessert",
		emoji: "🍰",
		image: "https://images.unsplash.com/photo-1505253210343-1a1a1a1a1a1a?w=800&auto=format&fit=crop",
	},
	{
		key:   "drink",
		emoji: "🍹",
		image: "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=800&auto=format&fit=crop",
	},
}

var defaultAsset = Asset{
	Emoji: "🍽️",
	Image: "https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=800&auto=format&fit=crop",
}

var keywords = []string{
	"burger", "pizza", "sushi", "pasta", "salad",
	"dessert", "drink", "vegan", "spicy", "breakfast",
	"taco", "burrito", "curry", "ramen", "steak",
	"sandwich", "noodle", "rice", "cake", "ice cream",
	"smoothie", "coffee", "tea", "seafood", "fish",
	"soup", "grill", "bake", "fried", "roast",
}

var cuisines = []string{
	"indian", "mexican", "italian", "japanese",
	"chinese", "thai", "french", "american",
}

var variants = []string{
	"cheese", "chicken", "veg", "chocolate", "vanilla",
	"spicy", "sweet", "sour", "grilled", "fried",
	"baked", "steamed", "special", "classic", "house",
	"paneer", "tofu", "mushroom", "vegan", "organic",
}

func lookup(key string) (entry, bool) {
	for _, e := range registry {
		if e.key == key {
			return e, true
		}
	}
	return entry{}, false
}
