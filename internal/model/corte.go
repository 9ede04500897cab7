package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Corte status values.
const (
	CorteActivo    = "activo"
	CorteCerrado   = "cerrado"
	CorteEliminado = "eliminado"
)

// Corte is an end-of-shift reconciliation record. The categorized buckets are
// accumulated by the movement ledger; the derived fields (efectivo_esperado,
// diferencia, adeudo_generado) are always recomputed from the buckets and are
// never entered directly. Uniquely keyed by (empresa, empleado, fecha, sesion).
type Corte struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	EmpresaID  uint      `gorm:"not null;uniqueIndex:idx_corte_turno"`
	EmpleadoID uint      `gorm:"not null;uniqueIndex:idx_corte_turno"`
	Fecha      time.Time `gorm:"type:date;not null;uniqueIndex:idx_corte_turno"`
	Sesion     int       `gorm:"not null;uniqueIndex:idx_corte_turno"`

	// Manually captured figure the cashier reports as the shift's net sale.
	VentaNeta decimal.Decimal `gorm:"type:decimal(14,2);not null"`

	// Categorized movement buckets.
	VentaEfectivo      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	VentaTarjeta       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	VentaCredito       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	VentaTransferencia decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Cortesias          decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Cobranza           decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	RetiroParcial      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Gastos             decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Compras            decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Prestamos          decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	OtrosRetiros       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	// Derived.
	EfectivoEsperado decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	EfectivoReal     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Diferencia       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	AdeudoGenerado   bool            `gorm:"not null;default:false"`

	Estado    string `gorm:"type:varchar(20);not null;default:'activo'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Empresa     *Empresa     `gorm:"foreignKey:EmpresaID"`
	Empleado    *Entidad     `gorm:"foreignKey:EmpleadoID"`
	Movimientos []Movimiento `gorm:"foreignKey:CorteID"`
}

func (Corte) TableName() string { return "cortes" }
