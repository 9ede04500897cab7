package service

import (
	"context"
	"testing"

	"cajacentral/internal/dto"
	"cajacentral/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearEmpresaNombreActivoDuplicado(t *testing.T) {
	empresas := newFakeEmpresaRepo()
	svc := NewEmpresaService(empresas)
	empresas.agregar("Carnicería Principal")

	_, err := svc.Crear(context.Background(), dto.CrearEmpresaRequest{Nombre: "carnicería principal"})
	var ev *ErrValidacion
	require.ErrorAs(t, err, &ev)

	// Otra grafía sí pasa.
	e, err := svc.Crear(context.Background(), dto.CrearEmpresaRequest{Nombre: "Expendio Centro"})
	require.NoError(t, err)
	assert.True(t, e.Activo)
}

func TestEliminarEmpresaSoftYHard(t *testing.T) {
	empresas := newFakeEmpresaRepo()
	svc := NewEmpresaService(empresas)

	conHistoria := empresas.agregar("Con cortes")
	empresas.deps[conHistoria.ID] = 5
	resultado, err := svc.Eliminar(context.Background(), conHistoria.ID)
	require.NoError(t, err)
	require.NotNil(t, resultado)
	assert.False(t, resultado.Activo)

	nueva := empresas.agregar("Sin historia")
	resultado, err = svc.Eliminar(context.Background(), nueva.ID)
	require.NoError(t, err)
	assert.Nil(t, resultado)
	_, err = svc.Obtener(context.Background(), nueva.ID)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestActualizarEmpresaReactivada(t *testing.T) {
	empresas := newFakeEmpresaRepo()
	svc := NewEmpresaService(empresas)
	e := empresas.agregar("Asadero")
	e.Activo = false

	cierto := true
	actualizada, err := svc.Actualizar(context.Background(), e.ID, dto.ActualizarEmpresaRequest{Activo: &cierto})
	require.NoError(t, err)
	assert.True(t, actualizada.Activo)
}

func TestCrearCuentaNombreActivoDuplicado(t *testing.T) {
	cuentas := newFakeCuentaRepo()
	svc := NewCuentaService(cuentas)
	cuentas.agregar(model.CuentaEfectivo, "Caja chica", d("0"))

	_, err := svc.Crear(context.Background(), dto.CrearCuentaRequest{
		Tipo:   model.CuentaEfectivo,
		Nombre: "caja CHICA",
	})
	var ev *ErrValidacion
	require.ErrorAs(t, err, &ev)
	assert.Contains(t, ev.Detalle, "cuenta activa")

	// Un nombre ocupado solo por una cuenta inactiva sí se puede reusar.
	vieja := cuentas.agregar(model.CuentaBanco, "Banco viejo", d("0"))
	vieja.Activo = false
	c, err := svc.Crear(context.Background(), dto.CrearCuentaRequest{
		Tipo:   model.CuentaBanco,
		Nombre: "Banco viejo",
	})
	require.NoError(t, err)
	assert.True(t, c.Activo)
}

func TestActualizarCuentaNoPisaNombreAjeno(t *testing.T) {
	cuentas := newFakeCuentaRepo()
	svc := NewCuentaService(cuentas)
	cuentas.agregar(model.CuentaEfectivo, "Caja chica", d("0"))
	banco := cuentas.agregar(model.CuentaBanco, "Banco operativo", d("0"))

	nombre := "Caja Chica"
	_, err := svc.Actualizar(context.Background(), banco.ID, dto.ActualizarCuentaRequest{Nombre: &nombre})
	var ev *ErrValidacion
	require.ErrorAs(t, err, &ev)

	// Cambiar solo la grafía del propio nombre no choca consigo misma.
	propio := "BANCO OPERATIVO"
	c, err := svc.Actualizar(context.Background(), banco.ID, dto.ActualizarCuentaRequest{Nombre: &propio})
	require.NoError(t, err)
	assert.Equal(t, propio, c.Nombre)
}

func TestCuentaActualizarNoTocaSaldo(t *testing.T) {
	cuentas := newFakeCuentaRepo()
	svc := NewCuentaService(cuentas)

	c, err := svc.Crear(context.Background(), dto.CrearCuentaRequest{
		Tipo:         model.CuentaEfectivo,
		Nombre:       "Caja chica",
		SaldoInicial: d("1500"),
	})
	require.NoError(t, err)
	assert.True(t, c.Saldo.Equal(d("1500")))

	nombre := "Caja chica mostrador"
	c, err = svc.Actualizar(context.Background(), c.ID, dto.ActualizarCuentaRequest{Nombre: &nombre})
	require.NoError(t, err)
	assert.Equal(t, nombre, c.Nombre)
	assert.True(t, c.Saldo.Equal(d("1500")), "el saldo solo se mueve con movimientos")
}

func TestEliminarCuentaConMovimientosSoloDesactiva(t *testing.T) {
	cuentas := newFakeCuentaRepo()
	svc := NewCuentaService(cuentas)

	usada := cuentas.agregar(model.CuentaBanco, "Banco operativo", d("900"))
	cuentas.deps[usada.ID] = 12
	resultado, err := svc.Eliminar(context.Background(), usada.ID)
	require.NoError(t, err)
	require.NotNil(t, resultado)
	assert.False(t, resultado.Activo)
	assert.True(t, resultado.Saldo.Equal(d("900")), "desactivar conserva el saldo")

	libre := cuentas.agregar(model.CuentaFiscal, "Cuenta fiscal", d("0"))
	resultado, err = svc.Eliminar(context.Background(), libre.ID)
	require.NoError(t, err)
	assert.Nil(t, resultado)
}
