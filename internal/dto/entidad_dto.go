package dto

import "github.com/shopspring/decimal"

// SaldoInicialRequest optionally opens a balance ledger for a new entidad.
type SaldoInicialRequest struct {
	Tipo      string          `json:"tipo"       validate:"required,oneof=por_cobrar por_pagar prestamo"`
	Monto     decimal.Decimal `json:"monto"      validate:"min=0"`
	EmpresaID *uint           `json:"empresa_id"`
}

type CrearEntidadRequest struct {
	Nombre          string               `json:"nombre"            validate:"required,min=2"`
	Telefono        *string              `json:"telefono"          validate:"omitempty,max=20"`
	EsEmpleado      bool                 `json:"es_empleado"`
	EsCliente       bool                 `json:"es_cliente"`
	EsProveedor     bool                 `json:"es_proveedor"`
	PuedeOperarCaja bool                 `json:"puede_operar_caja"`
	EmpresaIDs      []uint               `json:"empresa_ids"`
	SaldoInicial    *SaldoInicialRequest `json:"saldo_inicial"`
}

type ActualizarEntidadRequest struct {
	Nombre          *string `json:"nombre" validate:"omitempty,min=2"`
	Telefono        *string `json:"telefono" validate:"omitempty,max=20"`
	EsEmpleado      *bool   `json:"es_empleado"`
	EsCliente       *bool   `json:"es_cliente"`
	EsProveedor     *bool   `json:"es_proveedor"`
	PuedeOperarCaja *bool   `json:"puede_operar_caja"`
	Activo          *bool   `json:"activo"`
}

type EmpresaRelacionResponse struct {
	EmpresaID    uint   `json:"empresa_id"`
	Empresa      string `json:"empresa"`
	TipoRelacion string `json:"tipo_relacion"`
	Activo       bool   `json:"activo"`
}

type EntidadResponse struct {
	ID              uint                      `json:"id"`
	Nombre          string                    `json:"nombre"`
	Telefono        *string                   `json:"telefono"`
	EsEmpleado      bool                      `json:"es_empleado"`
	EsCliente       bool                      `json:"es_cliente"`
	EsProveedor     bool                      `json:"es_proveedor"`
	PuedeOperarCaja bool                      `json:"puede_operar_caja"`
	Activo          bool                      `json:"activo"`
	Empresas        []EmpresaRelacionResponse `json:"empresas,omitempty"`
}

// EntidadFilter drives GET /api/entidades and its role-scoped views.
type EntidadFilter struct {
	Rol       string // empleado | cliente | proveedor | "" (all)
	Activo    *bool
	Busqueda  string
	EmpresaID *uint
	Limit     int
	Offset    int
}
