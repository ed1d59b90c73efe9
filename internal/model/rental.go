package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rental tracks one rental payment period for a tenant and property.
type Rental struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Cuota       int             `json:"cuota" gorm:"column:cuota;not null"`
	Vencimiento Date            `json:"vencimiento" gorm:"column:vencimiento;type:date;not null;index"`
	Inquilino   string          `json:"inquilino" gorm:"column:inquilino;size:255;not null"`
	Deuda       decimal.Decimal `json:"deuda" gorm:"column:deuda;type:decimal(20,2);not null"`
	Pagado      decimal.Decimal `json:"pagado" gorm:"column:pagado;type:decimal(20,2);not null"`
	Propiedad   string          `json:"propiedad" gorm:"column:propiedad;type:text"`
	Recibo      string          `json:"recibo" gorm:"column:recibo;size:100"`
	UsuarioID   uint            `json:"usuario_id" gorm:"column:usuario_id;not null;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Usuario *User `json:"-" gorm:"foreignKey:UsuarioID"`
}

// TableName maps to the persisted schema.
func (Rental) TableName() string { return "alquileres" }
