package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a dated income or expense movement owned by one user.
type Transaction struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Fecha       Date            `json:"fecha" gorm:"column:fecha;type:date;not null;index"`
	Tipo        MovementType    `json:"tipo" gorm:"column:tipo;size:20;not null"`
	CategoriaID uint            `json:"categoria_id" gorm:"column:categoria_id;not null;index"`
	Detalle     string          `json:"detalle" gorm:"column:detalle;type:text"`
	Monto       decimal.Decimal `json:"monto" gorm:"column:monto;type:decimal(20,2);not null"`
	MedioDePago string          `json:"medio_de_pago" gorm:"column:medio_de_pago;size:100"`
	UsuarioID   uint            `json:"usuario_id" gorm:"column:usuario_id;not null;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Categoria *Category `json:"-" gorm:"foreignKey:CategoriaID"`
	Usuario   *User     `json:"-" gorm:"foreignKey:UsuarioID"`
}

// TableName maps to the persisted schema.
func (Transaction) TableName() string { return "transacciones" }
