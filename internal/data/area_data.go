package data

// Area is an authored expedition zone (the "level list").
type Area struct {
	ID                   string
	Name                 string
	Level                int
	BaseExperience       int
	AreaMultiplier       float64 // feeds the base damage roll
	DifficultyMultiplier float64
	LootTags             []string
}

var areaDefs = []Area{
	{ID: "ashen_fields", Name: "Ashen Fields", Level: 1, BaseExperience: 20,
		AreaMultiplier: 1.0, DifficultyMultiplier: 1.0, LootTags: []string{"armor"}},
	{ID: "sunken_crypts", Name: "Sunken Crypts", Level: 6, BaseExperience: 45,
		AreaMultiplier: 1.1, DifficultyMultiplier: 1.0, LootTags: []string{"weapon"}},
	{ID: "howling_pass", Name: "Howling Pass", Level: 12, BaseExperience: 80,
		AreaMultiplier: 1.25, DifficultyMultiplier: 1.1, LootTags: []string{"armor", "melee"}},
	{ID: "mirror_marsh", Name: "Mirror Marsh", Level: 20, BaseExperience: 140,
		AreaMultiplier: 1.4, DifficultyMultiplier: 1.2, LootTags: []string{"caster", "accessory"}},
	{ID: "shattered_spire", Name: "Shattered Spire", Level: 30, BaseExperience: 240,
		AreaMultiplier: 1.6, DifficultyMultiplier: 1.35, LootTags: []string{"weapon", "accessory"}},
	{ID: "void_threshold", Name: "Void Threshold", Level: 40, BaseExperience: 400,
		AreaMultiplier: 1.9, DifficultyMultiplier: 1.5, LootTags: []string{"weapon", "armor", "accessory"}},
}

// AreaTable — глобальный registry зон. map[areaID]*Area.
var AreaTable map[string]*Area

// LoadAreas строит AreaTable из Go-литералов (areaDefs).
func LoadAreas() error {
	AreaTable = make(map[string]*Area, len(areaDefs))
	for i := range areaDefs {
		AreaTable[areaDefs[i].ID] = &areaDefs[i]
	}
	return nil
}

// GetArea returns an area by ID, or nil when absent.
func GetArea(id string) *Area {
	if AreaTable == nil {
		return nil
	}
	return AreaTable[id]
}

// AllAreas returns every authored area in ascending level order.
func AllAreas() []Area {
	out := make([]Area, len(areaDefs))
	copy(out, areaDefs)
	return out
}
