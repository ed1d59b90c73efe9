package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditCard tracks the installments and balance of a credit card statement.
type CreditCard struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Cuotas      int             `json:"cuotas" gorm:"column:cuotas;not null"`
	Vencimiento Date            `json:"vencimiento" gorm:"column:vencimiento;type:date;not null;index"`
	Detalle     string          `json:"detalle" gorm:"column:detalle;type:text"`
	Deuda       decimal.Decimal `json:"deuda" gorm:"column:deuda;type:decimal(20,2);not null"`
	Pago        decimal.Decimal `json:"pago" gorm:"column:pago;type:decimal(20,2);not null"`
	MedioDePago string          `json:"medio_de_pago" gorm:"column:medio_de_pago;size:100"`
	UsuarioID   uint            `json:"usuario_id" gorm:"column:usuario_id;not null;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Usuario *User `json:"-" gorm:"foreignKey:UsuarioID"`
}

// TableName maps to the persisted schema.
func (CreditCard) TableName() string { return "tarjetas_credito" }
