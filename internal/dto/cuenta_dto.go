package dto

import "github.com/shopspring/decimal"

type CrearCuentaRequest struct {
	Tipo         string          `json:"tipo"          validate:"required,oneof=efectivo fiscal banco"`
	Nombre       string          `json:"nombre"        validate:"required,min=2"`
	SaldoInicial decimal.Decimal `json:"saldo_inicial" validate:"min=0"`
}

type ActualizarCuentaRequest struct {
	Tipo   *string `json:"tipo"   validate:"omitempty,oneof=efectivo fiscal banco"`
	Nombre *string `json:"nombre" validate:"omitempty,min=2"`
	Activo *bool   `json:"activo"`
}

type CuentaResponse struct {
	ID     uint            `json:"id"`
	Tipo   string          `json:"tipo"`
	Nombre string          `json:"nombre"`
	Saldo  decimal.Decimal `json:"saldo"`
	Activo bool            `json:"activo"`
}
