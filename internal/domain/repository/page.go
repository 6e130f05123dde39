package repository

// PageQuery paginación offset + un único campo de ordenamiento por petición.
// SortField usa el nombre de campo de la API (ej. "nameStd", "visitAt"); el
// adaptador de persistencia lo traduce a columna y rechaza campos desconocidos
// con domain.ErrInvalidSortField.
type PageQuery struct {
	Offset    int
	Limit     int
	SortField string
	Desc      bool
}
