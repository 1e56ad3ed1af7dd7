package utility

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// P2Int64 chuyển đổi interface thành int64
func P2Int64(input interface{}) int64 {
	jsonNumber, ok := input.(json.Number)
	if !ok {
		return 0
	}
	result, err := jsonNumber.Int64()
	if err != nil {
		return 0
	}

	return result
}

// FormatBytes convierte bytes a una cadena legible (KB, MB, GB).
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// String2ObjectID convierte una cadena hex a ObjectID. Una cadena inválida
// retorna NilObjectID.
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}

// String2ObjectIDPtr convierte una cadena hex opcional a *ObjectID.
// Cadena vacía o inválida retorna nil.
func String2ObjectIDPtr(id string) *primitive.ObjectID {
	if id == "" {
		return nil
	}
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	return &objectId
}

// ObjectID2String convierte un ObjectID a su representación hex.
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}

// StringArray2ObjectIDArray convierte un arreglo de cadenas hex a ObjectIDs.
func StringArray2ObjectIDArray(ids []string) []primitive.ObjectID {
	var objectIDs []primitive.ObjectID
	for _, id := range ids {
		objectIDs = append(objectIDs, String2ObjectID(id))
	}
	return objectIDs
}
