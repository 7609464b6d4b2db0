package extract

import (
	"bytes"
	"encoding/json"

	"fitness-agent/internal/model"
)

const foodItemsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["items"],
  "properties": {
    "items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "quantity", "unit"],
        "properties": {
          "name": {"type": "string", "minLength": 1, "pattern": "\\S"},
          "quantity": {"type": "number", "exclusiveMinimum": 0},
          "unit": {"type": "string", "minLength": 1, "pattern": "\\S"}
        }
      }
    }
  }
}`

// NewFoodItemsExtractor builds the extractor for parsed food items. A bare
// JSON array is accepted as the items list.
func NewFoodItemsExtractor() *Extractor[[]model.FoodItem] {
	e := mustExtractor[[]model.FoodItem]("food_items", foodItemsSchema,
		`{"items": [{"name": "eggs", "quantity": 2, "unit": "pieces"}, {"name": "toast", "quantity": 1, "unit": "slices"}]}`,
		[]Field{
			{Name: "items", Type: "array", Required: true, Description: "food items; empty list when nothing could be parsed"},
			{Name: "items[].name", Type: "string", Required: true, Description: "food name"},
			{Name: "items[].quantity", Type: "number", Required: true, Description: "numeric amount, greater than 0"},
			{Name: "items[].unit", Type: "string", Required: true, Description: "measurement unit (grams, cups, pieces, etc.)"},
		})

	e.prepare = func(doc []byte) []byte {
		if len(doc) > 0 && doc[0] == '[' {
			return append(append([]byte(`{"items":`), doc...), '}')
		}
		return doc
	}
	e.decode = func(doc []byte) ([]model.FoodItem, error) {
		var wrapper struct {
			Items []model.FoodItem `json:"items"`
		}
		dec := json.NewDecoder(bytes.NewReader(doc))
		if err := dec.Decode(&wrapper); err != nil {
			return nil, err
		}
		if wrapper.Items == nil {
			wrapper.Items = []model.FoodItem{}
		}
		return wrapper.Items, nil
	}
	return e
}
