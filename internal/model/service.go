package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service tracks a recurring service bill (utilities, subscriptions)
// with amounts in local currency and USD.
type Service struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Vencimiento Date            `json:"vencimiento" gorm:"column:vencimiento;type:date;not null;index"`
	Servicio    string          `json:"servicio" gorm:"column:servicio;size:100;not null"`
	Detalle     string          `json:"detalle" gorm:"column:detalle;type:text"`
	Cuenta      string          `json:"cuenta" gorm:"column:cuenta;size:100"`
	MontoARS    decimal.Decimal `json:"monto_ars" gorm:"column:monto_ars;type:decimal(20,2);default:0"`
	MontoUSD    decimal.Decimal `json:"monto_usd" gorm:"column:monto_usd;type:decimal(20,2);default:0"`
	UsuarioID   uint            `json:"usuario_id" gorm:"column:usuario_id;not null;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Usuario *User `json:"-" gorm:"foreignKey:UsuarioID"`
}

// TableName maps to the persisted schema.
func (Service) TableName() string { return "servicios" }
