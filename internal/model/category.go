package model

import "time"

// MovementType classifies categories and transactions as income or expense.
type MovementType string

const (
	MovementIngreso MovementType = "ingreso"
	MovementEgreso  MovementType = "egreso"
)

// Category is the shared category set. Categories have no owner: any
// authenticated user may create or mutate them.
type Category struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	Nombre    string       `json:"nombre" gorm:"column:nombre;size:100;not null"`
	Tipo      MovementType `json:"tipo" gorm:"column:tipo;size:20;not null"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// TableName maps to the persisted schema.
func (Category) TableName() string { return "categorias" }
