package service

import (
	"testing"

	"cajacentral/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestCalcularCorteExacto(t *testing.T) {
	c := &model.Corte{
		VentaNeta:    d("1000"),
		Cobranza:     d("200"),
		Gastos:       d("100"),
		EfectivoReal: d("1100"),
	}
	res := CalcularCorte(c)

	assert.True(t, res.EfectivoEsperado.Equal(d("1100")), "esperado = 1000 + 200 - 100")
	assert.True(t, res.Diferencia.IsZero())
	assert.False(t, res.GeneraAdeudo)
	assert.Equal(t, CorteExacto, res.Clasificacion)
}

func TestCalcularCorteFaltanteFueraDeTolerancia(t *testing.T) {
	c := &model.Corte{
		VentaNeta:    d("1000"),
		Cobranza:     d("200"),
		Gastos:       d("100"),
		EfectivoReal: d("1000"),
	}
	res := CalcularCorte(c)

	assert.True(t, res.Diferencia.Equal(d("-100")))
	assert.True(t, res.GeneraAdeudo)
	assert.True(t, res.MontoAdeudo.Equal(d("100")))
	assert.Equal(t, CorteFaltante, res.Clasificacion)
}

func TestCalcularCorteLimiteDeTolerancia(t *testing.T) {
	// -50 exacto no genera adeudo; -50.01 sí.
	enLimite := &model.Corte{VentaNeta: d("1000"), EfectivoReal: d("950")}
	res := CalcularCorte(enLimite)
	assert.True(t, res.Diferencia.Equal(d("-50")))
	assert.False(t, res.GeneraAdeudo)
	assert.Equal(t, CorteFaltante, res.Clasificacion)

	pasado := &model.Corte{VentaNeta: d("1000"), EfectivoReal: d("949.99")}
	res = CalcularCorte(pasado)
	assert.True(t, res.Diferencia.Equal(d("-50.01")))
	assert.True(t, res.GeneraAdeudo)
	assert.True(t, res.MontoAdeudo.Equal(d("50.01")))
}

func TestCalcularCorteSobrante(t *testing.T) {
	c := &model.Corte{VentaNeta: d("1000"), EfectivoReal: d("1050")}
	res := CalcularCorte(c)
	assert.True(t, res.Diferencia.Equal(d("50")))
	assert.False(t, res.GeneraAdeudo)
	assert.Equal(t, CorteSobrante, res.Clasificacion)
}

func TestCalcularCorteContribucionesConSigno(t *testing.T) {
	// Cada bucket mueve el esperado exactamente por su monto, con su signo.
	base := model.Corte{VentaNeta: d("500")}
	esperadoBase := CalcularCorte(&base).EfectivoEsperado

	casos := []struct {
		nombre string
		mod    func(*model.Corte)
		delta  string
	}{
		{"cobranza suma", func(c *model.Corte) { c.Cobranza = d("30") }, "30"},
		{"venta tarjeta resta", func(c *model.Corte) { c.VentaTarjeta = d("30") }, "-30"},
		{"venta transferencia resta", func(c *model.Corte) { c.VentaTransferencia = d("30") }, "-30"},
		{"retiro parcial resta", func(c *model.Corte) { c.RetiroParcial = d("30") }, "-30"},
		{"gastos restan", func(c *model.Corte) { c.Gastos = d("30") }, "-30"},
		{"compras restan", func(c *model.Corte) { c.Compras = d("30") }, "-30"},
		{"prestamos restan", func(c *model.Corte) { c.Prestamos = d("30") }, "-30"},
		{"cortesias restan", func(c *model.Corte) { c.Cortesias = d("30") }, "-30"},
		{"otros retiros restan", func(c *model.Corte) { c.OtrosRetiros = d("30") }, "-30"},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			c := base
			tc.mod(&c)
			res := CalcularCorte(&c)
			assert.True(t, res.EfectivoEsperado.Sub(esperadoBase).Equal(d(tc.delta)))
		})
	}
}

func TestCalcularCorteEfectivoYCreditoNoContribuyen(t *testing.T) {
	// La venta en efectivo ya vive dentro de la venta neta y el crédito nunca
	// tocó el cajón: ninguno mueve el esperado.
	c := &model.Corte{
		VentaNeta:     d("1000"),
		VentaEfectivo: d("300"),
		VentaCredito:  d("200"),
		EfectivoReal:  d("1000"),
	}
	res := CalcularCorte(c)
	assert.True(t, res.EfectivoEsperado.Equal(d("1000")))
	assert.True(t, res.Diferencia.IsZero())
}
