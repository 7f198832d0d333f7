package entity

import "time"

// Group representa un grupo académico (cohorte).
type Group struct {
	ID          string
	Code        string // único
	Name        string
	Semester    int
	Year        int
	MaxStudents int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
