package entity

import "time"

// Sede es una sucursal física; la unidad de alcance de datos de casi todo
// el sistema. El código es único.
type Sede struct {
	ID        string
	Nombre    string
	Codigo    string
	Ciudad    string
	Direccion string
	Activa    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
