package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance kinds.
const (
	SaldoPorCobrar = "por_cobrar"
	SaldoPorPagar  = "por_pagar"
	SaldoPrestamo  = "prestamo"
)

// Saldo is a running per-entidad ledger (optionally scoped to an empresa):
// saldo_actual must always equal monto_inicial + cargos - abonos.
type Saldo struct {
	ID           uint            `gorm:"primaryKey;autoIncrement"`
	EntidadID    uint            `gorm:"not null;index"`
	EmpresaID    *uint           `gorm:"index"`
	Tipo         string          `gorm:"type:varchar(20);not null"`
	MontoInicial decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Cargos       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Abonos       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	SaldoActual  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Saldo) TableName() string { return "saldos" }
