package service

import (
	"cajacentral/internal/model"

	"github.com/shopspring/decimal"
)

// Display classification of a corte's cash difference.
const (
	CorteSobrante = "sobrante"
	CorteExacto   = "exacto"
	CorteFaltante = "faltante"
)

// ToleranciaAdeudo is the cash shortfall, in currency units, the business
// absorbs before charging the difference to the employee.
var ToleranciaAdeudo = decimal.NewFromInt(50)

type ResultadoCorte struct {
	EfectivoEsperado decimal.Decimal
	Diferencia       decimal.Decimal
	Clasificacion    string
	GeneraAdeudo     bool
	MontoAdeudo      decimal.Decimal
}

// CalcularCorte derives the expected drawer cash for a shift from its
// accumulated buckets and the declared net sale.
//
// Cash into the drawer: venta_neta plus cobranza. Everything the drawer paid
// out, or that was sold without cash reaching it (card, transfer, withdrawals,
// expenses, purchases, loans, courtesies), is egress. Cash sales and credit
// sales contribute zero: cash sales are already inside venta_neta, and credit
// never touched the drawer.
func CalcularCorte(c *model.Corte) ResultadoCorte {
	egreso := c.VentaTarjeta.
		Add(c.VentaTransferencia).
		Add(c.RetiroParcial).
		Add(c.Gastos).
		Add(c.Compras).
		Add(c.Prestamos).
		Add(c.Cortesias).
		Add(c.OtrosRetiros)

	esperado := c.VentaNeta.Add(c.Cobranza).Sub(egreso)
	diferencia := c.EfectivoReal.Sub(esperado)

	r := ResultadoCorte{
		EfectivoEsperado: esperado,
		Diferencia:       diferencia,
		Clasificacion:    clasificarDiferencia(diferencia),
	}
	if diferencia.LessThan(ToleranciaAdeudo.Neg()) {
		r.GeneraAdeudo = true
		r.MontoAdeudo = diferencia.Abs()
	}
	return r
}

func clasificarDiferencia(d decimal.Decimal) string {
	switch {
	case d.IsPositive():
		return CorteSobrante
	case d.IsZero():
		return CorteExacto
	default:
		return CorteFaltante
	}
}
