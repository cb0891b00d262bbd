package entity

import "time"

// AnonymousDonorName donante por defecto para donaciones sin identificar.
const AnonymousDonorName = "Anônimo"

// User identidad de quien opera el inventario (la provee la capa de autenticación).
type User struct {
	ID   string
	Name string
}

// Donor donante de referencia; su CRUD vive fuera del libro de inventario.
type Donor struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
