package constant

// CategoryEmojis maps listing categories to their catalog glyphs.
var CategoryEmojis = map[string]string{
	"Электроника":    "📱",
	"Одежда":         "🧥",
	"Мебель":         "🛋️",
	"Спорт":          "🚴",
	"Детские товары": "🍼",
	"Авто":           "🚗",
}

// DefaultCategoryEmoji is used for categories outside the known set.
const DefaultCategoryEmoji = "📦"

// DefaultSellerID is the account every new listing is attributed to.
// There is no caller identity yet; see DESIGN.md.
const DefaultSellerID = 1
