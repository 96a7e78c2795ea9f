package utils

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// ToJSON marshals a free-form value into a JSON column. Returns nil for nil
// input so the column stays NULL.
func ToJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// StringsToJSON marshals a string slice into a JSON column, defaulting to an
// empty array rather than NULL.
func StringsToJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return datatypes.JSON(b)
}
