package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Product represents a single item in the catalogue.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Available   bool
	Category    Category
}

// productWire is the JSON shape of a product. Price travels as a string with
// exactly two decimal places so currency amounts never pick up float drift.
type productWire struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Available   bool   `json:"available"`
	Category    string `json:"category"`
}

// MarshalJSON encodes the product in its wire representation.
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productWire{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Available:   p.Available,
		Category:    p.Category.String(),
	})
}

// isNull reports whether a raw value is the JSON null token. json.Unmarshal
// leaves most target types untouched on null instead of failing, so null has
// to be rejected explicitly to keep per-field validation strict.
func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

// rawProduct holds the undecoded JSON value of each recognised key so every
// field can be validated independently and failures can name the attribute.
type rawProduct struct {
	Name        json.RawMessage `json:"name"`
	Description json.RawMessage `json:"description"`
	Price       json.RawMessage `json:"price"`
	Available   json.RawMessage `json:"available"`
	Category    json.RawMessage `json:"category"`
}

// Deserialize populates the product from a JSON document, validating each
// attribute. The id is never taken from the payload; it is assigned by
// storage on create and by the URL on update.
func (p *Product) Deserialize(data []byte) error {
	var raw rawProduct
	if err := json.Unmarshal(data, &raw); err != nil {
		return NewValidationError("request body is not a valid product document")
	}

	if raw.Name == nil {
		return NewValidationError("missing name")
	}
	if isNull(raw.Name) {
		return NewValidationError("name must be a string")
	}
	if err := json.Unmarshal(raw.Name, &p.Name); err != nil {
		return NewValidationError("name must be a string")
	}
	if p.Name == "" {
		return NewValidationError("name must not be empty")
	}

	p.Description = ""
	if raw.Description != nil {
		if isNull(raw.Description) {
			return NewValidationError("description must be a string")
		}
		if err := json.Unmarshal(raw.Description, &p.Description); err != nil {
			return NewValidationError("description must be a string")
		}
	}

	if raw.Price == nil {
		return NewValidationError("missing price")
	}
	if isNull(raw.Price) {
		return NewValidationError("price %s is not a valid decimal", string(raw.Price))
	}
	if err := json.Unmarshal(raw.Price, &p.Price); err != nil {
		return NewValidationError("price %s is not a valid decimal", string(raw.Price))
	}
	if p.Price.IsNegative() {
		return NewValidationError("price must not be negative")
	}

	if raw.Available == nil {
		return NewValidationError("missing available")
	}
	if isNull(raw.Available) {
		return NewValidationError("available must be a boolean")
	}
	if err := json.Unmarshal(raw.Available, &p.Available); err != nil {
		return NewValidationError("available must be a boolean")
	}

	if raw.Category == nil {
		return NewValidationError("missing category")
	}
	if isNull(raw.Category) {
		return NewValidationError("category must be a string")
	}
	var categoryName string
	if err := json.Unmarshal(raw.Category, &categoryName); err != nil {
		return NewValidationError("category must be a string")
	}
	category, err := ParseCategory(categoryName)
	if err != nil {
		return err
	}
	p.Category = category

	return nil
}
