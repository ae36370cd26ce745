package data

// Effect is the single stat change a skill, passive or temporal effect
// carries. Routing mirrors affix routing: category plus closed subcategory.
type Effect struct {
	Category    AffixCategory
	SubCategory SubCategory
	Kind        ValueKind
	Change      float64
	// ChangeMax is set only for ValueRange effects.
	ChangeMax float64
}

// IsMultiplicative reports whether the effect applies in the multiplicative
// pass of the stat resolver.
func (e Effect) IsMultiplicative() bool {
	return e.Kind == ValueMultiplicative
}
