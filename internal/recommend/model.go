package recommend

// DishNote is one dish with the reasoning behind its verdict.
type DishNote struct {
	Dish   string `json:"dish"`
	Reason string `json:"reason"`
}

// Recommendation is the parsed matcher output: dishes to pick, dishes to
// skip, and combination adjustments for everything in between. Derived per
// request; never persisted.
type Recommendation struct {
	Safe   []DishNote `json:"safe"`
	Avoid  []DishNote `json:"avoid"`
	Combos []string   `json:"combos"`
}
