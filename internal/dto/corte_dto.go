package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovimientoCorteRequest is one movement captured inside a shift
// reconciliation. It is posted through the regular movement pipeline with
// corte_id, empresa_id and fecha inherited from the corte.
type MovimientoCorteRequest struct {
	Tipo            string          `json:"tipo"  validate:"required,oneof=venta_efectivo venta_tarjeta venta_credito venta_transferencia cortesia cobranza retiro_parcial gasto compra prestamo otro_retiro"`
	Monto           decimal.Decimal `json:"monto" validate:"required"`
	CuentaOrigenID  *uint           `json:"cuenta_origen_id"`
	CuentaDestinoID *uint           `json:"cuenta_destino_id"`
	EntidadID       *uint           `json:"entidad_id"`
	CategoriaID     *uint           `json:"categoria_id"`
	SubcategoriaID  *uint           `json:"subcategoria_id"`
	MetodoPago      *string         `json:"metodo_pago" validate:"omitempty,oneof=efectivo tarjeta transferencia"`
	Plataforma      *string         `json:"plataforma"`
	Descripcion     string          `json:"descripcion" validate:"omitempty,max=500"`
}

type CrearCorteRequest struct {
	EmpresaID    uint                     `json:"empresa_id"    validate:"required"`
	EmpleadoID   uint                     `json:"empleado_id"   validate:"required"`
	Fecha        string                   `json:"fecha"         validate:"required,datetime=2006-01-02"`
	Sesion       int                      `json:"sesion"        validate:"required,min=1"`
	VentaNeta    decimal.Decimal          `json:"venta_neta"    validate:"required"`
	EfectivoReal decimal.Decimal          `json:"efectivo_real"`
	Movimientos  []MovimientoCorteRequest `json:"movimientos"   validate:"required,min=1,dive"`
}

// ActualizarCorteRequest re-captures the counted cash or the declared net
// sale; derived fields are recomputed from the stored movements.
type ActualizarCorteRequest struct {
	VentaNeta    *decimal.Decimal `json:"venta_neta"`
	EfectivoReal *decimal.Decimal `json:"efectivo_real"`
	Estado       *string          `json:"estado" validate:"omitempty,oneof=activo cerrado"`
}

type CorteResponse struct {
	ID                 uint            `json:"id"`
	EmpresaID          uint            `json:"empresa_id"`
	Empresa            string          `json:"empresa,omitempty"`
	EmpleadoID         uint            `json:"empleado_id"`
	Empleado           string          `json:"empleado,omitempty"`
	Fecha              time.Time       `json:"fecha"`
	Sesion             int             `json:"sesion"`
	VentaNeta          decimal.Decimal `json:"venta_neta"`
	VentaEfectivo      decimal.Decimal `json:"venta_efectivo"`
	VentaTarjeta       decimal.Decimal `json:"venta_tarjeta"`
	VentaCredito       decimal.Decimal `json:"venta_credito"`
	VentaTransferencia decimal.Decimal `json:"venta_transferencia"`
	Cortesias          decimal.Decimal `json:"cortesias"`
	Cobranza           decimal.Decimal `json:"cobranza"`
	RetiroParcial      decimal.Decimal `json:"retiro_parcial"`
	Gastos             decimal.Decimal `json:"gastos"`
	Compras            decimal.Decimal `json:"compras"`
	Prestamos          decimal.Decimal `json:"prestamos"`
	OtrosRetiros       decimal.Decimal `json:"otros_retiros"`
	EfectivoEsperado   decimal.Decimal `json:"efectivo_esperado"`
	EfectivoReal       decimal.Decimal `json:"efectivo_real"`
	Diferencia         decimal.Decimal `json:"diferencia"`
	Clasificacion      string          `json:"clasificacion"`
	AdeudoGenerado     bool            `json:"adeudo_generado"`
	Estado             string          `json:"estado"`
	TotalMovimientos   int             `json:"total_movimientos,omitempty"`
}

// CorteFilter collects the query parameters of GET /api/cortes.
type CorteFilter struct {
	EmpresaID  *uint
	EmpleadoID *uint
	Estado     string
	FechaDesde *time.Time
	FechaHasta *time.Time
	Limit      int
	Offset     int
}

type EnviarReporteRequest struct {
	Email string `json:"email" validate:"required,email"`
}
