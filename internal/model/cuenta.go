package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account kinds.
const (
	CuentaEfectivo = "efectivo"
	CuentaFiscal   = "fiscal"
	CuentaBanco    = "banco"
)

// Cuenta is a money account with a running balance. Cuentas are transversal:
// they carry no empresa FK, so shifts from several empresas can settle into
// the same drawer or bank account.
type Cuenta struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	Tipo      string          `gorm:"type:varchar(20);not null"`
	Nombre    string          `gorm:"not null;index"`
	Saldo     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Activo    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cuenta) TableName() string { return "cuentas" }
