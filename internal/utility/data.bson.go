package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap convierte un struct en un mapa vía un round-trip BSON, respetando
// los tags bson (omitempty incluido). Es la base de los updates parciales.
func ToMap(s interface{}) (map[string]interface{}, error) {
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return result, nil
}
