package models

// Category is one of the fixed catalog categories.
type Category string

// The closed category vocabulary.
const (
	CategoryPhysical           Category = "Physical"
	CategoryDiscipline         Category = "Discipline"
	CategoryMindSkill          Category = "Mind/Skill"
	CategoryPhysicalDiscipline Category = "Physical/Discipline"
)

// Categories returns the allowed categories in display order.
func Categories() []Category {
	return []Category{CategoryPhysical, CategoryDiscipline, CategoryMindSkill, CategoryPhysicalDiscipline}
}

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryPhysical, CategoryDiscipline, CategoryMindSkill, CategoryPhysicalDiscipline:
		return true
	}
	return false
}
