package cuisine

import "strings"

// Fallback is returned when no keyword matches and no explicit label is
// supplied.
const Fallback = "International"

type entry struct {
	label    string
	keywords []string
}

// table is matched in declaration order; the first cuisine with a matching
// keyword wins.
var table = []entry{
	{"Indian", []string{"india", "indian", "curry", "spice", "tandoor", "masala", "biryani"}},
	{"Chinese", []string{"china", "chinese", "wok", "dragon", "panda", "bamboo", "dynasty"}},
	{"Italian", []string{"italy", "italian", "pasta", "pizza", "trattoria", "ristorante", "osteria"}},
	{"Mexican", []string{"mexico", "mexican", "taco", "burrito", "cantina", "jalisco"}},
	{"Japanese", []string{"japan", "japanese", "sushi", "ramen", "tokyo", "sakura"}},
	{"Thai", []string{"thai", "bangkok", "siam"}},
	{"Mediterranean", []string{"mediterranean", "greek", "lebanon", "lebanese", "falafel"}},
	{"Korean", []string{"korea", "korean", "seoul", "gangnam"}},
	{"American", []string{"american", "grill", "diner", "burger", "steakhouse"}},
}

// Classify infers a restaurant's cuisine from its name. A non-empty explicit
// label always wins, unchanged. No external calls; deterministic.
func Classify(restaurantName, explicit string) string {
	if explicit != "" {
		return explicit
	}

	nameLower := strings.ToLower(restaurantName)

	for _, e := range table {
		for _, keyword := range e.keywords {
			if strings.Contains(nameLower, keyword) {
				return e.label
			}
		}
	}

	return Fallback
}
