package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement types. Ingresos: ventas + cobranza. Egresos: the rest.
// "traspaso" moves money between two cuentas and is neither.
const (
	TipoVentaEfectivo      = "venta_efectivo"
	TipoVentaTarjeta       = "venta_tarjeta"
	TipoVentaCredito       = "venta_credito"
	TipoVentaTransferencia = "venta_transferencia"
	TipoCortesia           = "cortesia"
	TipoCobranza           = "cobranza"
	TipoRetiroParcial      = "retiro_parcial"
	TipoGasto              = "gasto"
	TipoCompra             = "compra"
	TipoPrestamo           = "prestamo"
	TipoOtroRetiro         = "otro_retiro"
	TipoTraspaso           = "traspaso"
	// TipoAdeudo records the debt generated by a corte shortfall. It is
	// intentionally absent from CorteCampoPorTipo so that posting it against
	// the corte does not feed back into the reconciliation buckets.
	TipoAdeudo = "adeudo"
)

// CorteCampoPorTipo maps a movement type to the corte column it accumulates
// into. Types without an entry are silently skipped by the ledger.
var CorteCampoPorTipo = map[string]string{
	TipoVentaEfectivo:      "venta_efectivo",
	TipoVentaTarjeta:       "venta_tarjeta",
	TipoVentaCredito:       "venta_credito",
	TipoVentaTransferencia: "venta_transferencia",
	TipoCortesia:           "cortesias",
	TipoCobranza:           "cobranza",
	TipoRetiroParcial:      "retiro_parcial",
	TipoGasto:              "gastos",
	TipoCompra:             "compras",
	TipoPrestamo:           "prestamos",
	TipoOtroRetiro:         "otros_retiros",
}

// EsTipoIngreso reports whether the type brings money in.
func EsTipoIngreso(tipo string) bool {
	switch tipo {
	case TipoVentaEfectivo, TipoVentaTarjeta, TipoVentaCredito, TipoVentaTransferencia, TipoCobranza:
		return true
	}
	return false
}

// Movimiento is a single posted financial event. Creating one mutates the
// linked cuenta balances, the linked corte buckets, and the linked entidad
// saldo inside one transaction; deleting one reverses all of it.
type Movimiento struct {
	ID             uint            `gorm:"primaryKey;autoIncrement"`
	Tipo           string          `gorm:"type:varchar(30);not null;index"`
	Monto          decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	EsIngreso      bool            `gorm:"not null"`
	EsTraspaso     bool            `gorm:"not null;default:false"`
	CuentaOrigenID *uint           `gorm:"index"`
	CuentaDestinoID *uint          `gorm:"index"`
	EmpresaID      *uint           `gorm:"index"`
	CorteID        *uint           `gorm:"index"`
	EntidadID      *uint           `gorm:"index"`
	EmpleadoID     *uint           `gorm:"index"`
	CategoriaID    *uint           `gorm:"index"`
	SubcategoriaID *uint           `gorm:"index"`
	MetodoPago     *string         `gorm:"type:varchar(20)"`
	Plataforma     *string         `gorm:"type:varchar(30)"`
	Descripcion    string          `gorm:"not null"`
	Fecha          time.Time       `gorm:"not null;index"`
	CreatedAt      time.Time

	CuentaOrigen  *Cuenta  `gorm:"foreignKey:CuentaOrigenID"`
	CuentaDestino *Cuenta  `gorm:"foreignKey:CuentaDestinoID"`
	Entidad       *Entidad `gorm:"foreignKey:EntidadID"`
	Empleado      *Entidad `gorm:"foreignKey:EmpleadoID"`
}

func (Movimiento) TableName() string { return "movimientos" }
