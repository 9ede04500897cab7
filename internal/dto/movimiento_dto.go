package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CrearMovimientoRequest struct {
	Tipo            string          `json:"tipo"  validate:"required,oneof=venta_efectivo venta_tarjeta venta_credito venta_transferencia cortesia cobranza retiro_parcial gasto compra prestamo otro_retiro traspaso"`
	Monto           decimal.Decimal `json:"monto" validate:"required"`
	Fecha           *time.Time      `json:"fecha"`
	CuentaOrigenID  *uint           `json:"cuenta_origen_id"`
	CuentaDestinoID *uint           `json:"cuenta_destino_id"`
	EmpresaID       *uint           `json:"empresa_id"`
	CorteID         *uint           `json:"corte_id"`
	EntidadID       *uint           `json:"entidad_id"`
	EmpleadoID      *uint           `json:"empleado_id"`
	CategoriaID     *uint           `json:"categoria_id"`
	SubcategoriaID  *uint           `json:"subcategoria_id"`
	MetodoPago      *string         `json:"metodo_pago" validate:"omitempty,oneof=efectivo tarjeta transferencia"`
	Plataforma      *string         `json:"plataforma"`
	Descripcion     string          `json:"descripcion" validate:"omitempty,max=500"`
}

// ActualizarMovimientoRequest covers descriptive fields only; the amount,
// type and account wiring of a posted movement never change. To correct
// those, delete the movement and capture it again.
type ActualizarMovimientoRequest struct {
	Descripcion    *string `json:"descripcion" validate:"omitempty,max=500"`
	CategoriaID    *uint   `json:"categoria_id"`
	SubcategoriaID *uint   `json:"subcategoria_id"`
	MetodoPago     *string `json:"metodo_pago" validate:"omitempty,oneof=efectivo tarjeta transferencia"`
	Plataforma     *string `json:"plataforma"`
}

type MovimientoResponse struct {
	ID              uint            `json:"id"`
	Tipo            string          `json:"tipo"`
	Monto           decimal.Decimal `json:"monto"`
	EsIngreso       bool            `json:"es_ingreso"`
	EsTraspaso      bool            `json:"es_traspaso"`
	Fecha           time.Time       `json:"fecha"`
	CuentaOrigenID  *uint           `json:"cuenta_origen_id"`
	CuentaDestinoID *uint           `json:"cuenta_destino_id"`
	EmpresaID       *uint           `json:"empresa_id"`
	CorteID         *uint           `json:"corte_id"`
	EntidadID       *uint           `json:"entidad_id"`
	EmpleadoID      *uint           `json:"empleado_id"`
	CategoriaID     *uint           `json:"categoria_id"`
	SubcategoriaID  *uint           `json:"subcategoria_id"`
	MetodoPago      *string         `json:"metodo_pago"`
	Plataforma      *string         `json:"plataforma"`
	Descripcion     string          `json:"descripcion"`
}

// MovimientoFilter collects the query parameters of GET /api/movimientos.
type MovimientoFilter struct {
	Tipo       string
	EmpresaID  *uint
	CorteID    *uint
	EntidadID  *uint
	CuentaID   *uint
	FechaDesde *time.Time
	FechaHasta *time.Time
	Limit      int
	Offset     int
}
