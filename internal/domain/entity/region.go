package entity

// Region representa una zona comercial. Inmutable tras el seed inicial;
// no existe ruta de borrado.
type Region struct {
	ID    string
	Name  string
	State string
}
