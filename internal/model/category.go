package model

import "encoding/json"

// Category is the closed set of product categories. Categories are
// serialized and stored by symbolic name, never by ordinal.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryMale
	CategoryFemale
	CategoryUnisex
	CategoryFood
	CategoryHousewares
	CategoryAutomotive
	CategoryTools
)

var categoryNames = map[Category]string{
	CategoryUnknown:    "UNKNOWN",
	CategoryMale:       "MALE",
	CategoryFemale:     "FEMALE",
	CategoryUnisex:     "UNISEX",
	CategoryFood:       "FOOD",
	CategoryHousewares: "HOUSEWARES",
	CategoryAutomotive: "AUTOMOTIVE",
	CategoryTools:      "TOOLS",
}

var categoriesByName = func() map[string]Category {
	m := make(map[string]Category, len(categoryNames))
	for c, name := range categoryNames {
		m[name] = c
	}
	return m
}()

// ParseCategory resolves a symbolic name to its Category.
func ParseCategory(name string) (Category, error) {
	c, ok := categoriesByName[name]
	if !ok {
		return CategoryUnknown, NewValidationError("unknown category '%s'", name)
	}
	return c, nil
}

// String returns the category's symbolic name.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalJSON encodes the category as its quoted symbolic name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a category from its quoted symbolic name.
func (c *Category) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return NewValidationError("category must be a string")
	}
	parsed, err := ParseCategory(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
