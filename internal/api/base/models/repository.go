// Package basemodels contiene los tipos compartidos de la capa de acceso a datos
// (resultados de paginación y conteo).
package basemodels

// PaginateResult representa el resultado de una consulta paginada.
type PaginateResult[T any] struct {
	// Página actual (empieza en 1)
	Page int64 `json:"page" bson:"page"`
	// Cantidad de elementos por página
	Limit int64 `json:"limit" bson:"limit"`
	// Cantidad de elementos en la página actual
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// Elementos de la página
	Items []T `json:"items" bson:"items"`
	// Total de elementos que coinciden con el filtro
	Total int64 `json:"total" bson:"total"`
	// Total de páginas
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}

// CountResult representa el resultado de un conteo paginado.
type CountResult struct {
	TotalCount int64 `json:"totalCount" bson:"totalCount"`
	Limit      int64 `json:"limit" bson:"limit"`
	TotalPage  int64 `json:"totalPage" bson:"totalPage"`
}
