package entity

import "time"

// Subject representa una materia. Dato de referencia para cronogramas;
// se asocia a grupos en relación muchos-a-muchos.
type Subject struct {
	ID        string
	Name      string
	Code      string // único
	Credits   int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
