// Package entity contains the core business objects of the project.
package entity

// Category tags an event with one value from a closed set.
type Category string

const (
	CategoryConference Category = "conference"
	CategoryWorkshop   Category = "workshop"
	CategoryParty      Category = "party"
	CategoryWebinar    Category = "webinar"
	CategoryOther      Category = "other"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryConference, CategoryWorkshop, CategoryParty, CategoryWebinar, CategoryOther:
		return true
	default:
		return false
	}
}

// ParseCategory returns the matching Category, or CategoryOther when raw is
// empty or unknown.
func ParseCategory(raw string) Category {
	c := Category(raw)
	if !c.IsValid() {
		return CategoryOther
	}

	return c
}
