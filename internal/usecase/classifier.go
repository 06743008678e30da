package usecase

import (
	"strings"
	"unicode"

	"github.com/nutrishop/backend/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Need categories assigned by ClassifyShoppingNeeds
const (
	CategoryFresh = "fresh"
	CategoryDry   = "dry"
)

// freshKeywords are accent-free stems of perishable products (French and English)
var freshKeywords = []string{
	// Dairy
	"lait", "milk", "yaourt", "yogourt", "yogurt", "fromage", "cheese", "beurre", "butter",
	"creme", "cream", "oeuf", "egg",
	// Meat & fish
	"viande", "meat", "poulet", "chicken", "boeuf", "beef", "porc", "pork", "jambon", "ham",
	"dinde", "turkey", "agneau", "lamb", "poisson", "fish", "saumon", "salmon", "thon frais",
	"crevette", "shrimp", "steak",
	// Produce
	"salade", "lettuce", "tomate", "tomato", "carotte", "carrot", "courgette", "zucchini",
	"poivron", "pepper", "oignon", "onion", "ail", "garlic", "pomme", "apple", "banane",
	"banana", "orange", "citron", "lemon", "fraise", "strawberry", "epinard", "spinach",
	"brocoli", "broccoli", "champignon", "mushroom", "concombre", "cucumber", "avocat",
	"avocado", "herbe", "persil", "basilic", "legume", "fruit",
	// Bakery
	"pain", "bread", "baguette",
}

// ClassifiedNeeds splits needs into perishable and shelf-stable groups
type ClassifiedNeeds struct {
	Fresh []domain.ShoppingNeed `json:"fresh"`
	Dry   []domain.ShoppingNeed `json:"dry"`
}

// ClassifyShoppingNeeds returns copies of the needs with Category set to
// "fresh" or "dry". The input slice is not modified.
func ClassifyShoppingNeeds(needs []domain.ShoppingNeed) ClassifiedNeeds {
	classified := ClassifiedNeeds{
		Fresh: []domain.ShoppingNeed{},
		Dry:   []domain.ShoppingNeed{},
	}

	for _, need := range needs {
		if isFresh(need.Name) {
			need.Category = CategoryFresh
			classified.Fresh = append(classified.Fresh, need)
		} else {
			need.Category = CategoryDry
			classified.Dry = append(classified.Dry, need)
		}
	}

	return classified
}

// isFresh reports whether any token of the name starts with a fresh keyword.
func isFresh(name string) bool {
	folded := foldAccents(strings.ToLower(name))
	tokens := strings.Fields(folded)

	for _, keyword := range freshKeywords {
		if strings.Contains(keyword, " ") {
			if strings.Contains(folded, keyword) {
				return true
			}
			continue
		}
		for _, token := range tokens {
			if strings.HasPrefix(token, keyword) {
				return true
			}
		}
	}
	return false
}

// foldAccents strips combining marks, so "pâtes" becomes "pates"
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
