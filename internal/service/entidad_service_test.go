package service

import (
	"context"
	"testing"

	"cajacentral/internal/dto"
	"cajacentral/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevoEntornoEntidades() (*EntidadService, *fakeEntidadRepo, *fakeSaldoRepo) {
	entidades := newFakeEntidadRepo()
	saldos := newFakeSaldoRepo()
	return NewEntidadService(nil, entidades, saldos), entidades, saldos
}

func TestCrearEntidadConRelacionesYSaldoInicial(t *testing.T) {
	svc, _, _ := nuevoEntornoEntidades()

	tel := "555-0134"
	e, err := svc.Crear(context.Background(), dto.CrearEntidadRequest{
		Nombre:          "María López",
		Telefono:        &tel,
		EsEmpleado:      true,
		EsCliente:       true,
		PuedeOperarCaja: true,
		EmpresaIDs:      []uint{1, 2},
		SaldoInicial:    &dto.SaldoInicialRequest{Tipo: model.SaldoPorCobrar, Monto: d("250")},
	})
	require.NoError(t, err)
	require.NotZero(t, e.ID)
	assert.True(t, e.Activo)

	// Una relación por empresa y por rol: 2 empresas × (empleado, cliente).
	completa, err := svc.Obtener(context.Background(), e.ID)
	require.NoError(t, err)
	require.Len(t, completa.Empresas, 4)
	roles := map[string]int{}
	for _, rel := range completa.Empresas {
		roles[rel.TipoRelacion]++
		assert.True(t, rel.Activo)
	}
	assert.Equal(t, 2, roles[model.RelacionEmpleado])
	assert.Equal(t, 2, roles[model.RelacionCliente])

	saldos, err := svc.Saldos(context.Background(), e.ID)
	require.NoError(t, err)
	require.Len(t, saldos, 1)
	assert.Equal(t, model.SaldoPorCobrar, saldos[0].Tipo)
	assert.True(t, saldos[0].MontoInicial.Equal(d("250")))
	assert.True(t, saldos[0].SaldoActual.Equal(d("250")))
}

func TestCrearEntidadSinRolRechazada(t *testing.T) {
	svc, _, _ := nuevoEntornoEntidades()

	_, err := svc.Crear(context.Background(), dto.CrearEntidadRequest{Nombre: "Sin Rol"})
	var ev *ErrValidacion
	require.ErrorAs(t, err, &ev)
	assert.Contains(t, ev.Detalle, "al menos un rol")
}

func TestOperarCajaRequiereRolEmpleado(t *testing.T) {
	svc, _, _ := nuevoEntornoEntidades()

	_, err := svc.Crear(context.Background(), dto.CrearEntidadRequest{
		Nombre:          "Cliente con caja",
		EsCliente:       true,
		PuedeOperarCaja: true,
	})
	var ev *ErrValidacion
	require.ErrorAs(t, err, &ev)
	assert.Contains(t, ev.Detalle, "empleado")
}

func TestCrearEntidadNombreActivoDuplicado(t *testing.T) {
	svc, entidades, _ := nuevoEntornoEntidades()
	entidades.agregar("Juan Pérez", true, false, false, false)

	_, err := svc.Crear(context.Background(), dto.CrearEntidadRequest{Nombre: "juan pérez", EsCliente: true})
	var ev *ErrValidacion
	require.ErrorAs(t, err, &ev)

	// El mismo nombre de una entidad inactiva no bloquea.
	inactiva := entidades.agregar("Pedro Gómez", false, true, false, false)
	inactiva.Activo = false
	_, err = svc.Crear(context.Background(), dto.CrearEntidadRequest{Nombre: "Pedro Gómez", EsCliente: true})
	require.NoError(t, err)
}

func TestActualizarEntidadMantieneInvariantes(t *testing.T) {
	svc, entidades, _ := nuevoEntornoEntidades()
	e := entidades.agregar("Cajera", true, false, false, true)

	// Quitarle el rol de empleado dejaría a una no-empleada operando caja.
	falso := false
	_, err := svc.Actualizar(context.Background(), e.ID, dto.ActualizarEntidadRequest{EsEmpleado: &falso})
	var ev *ErrValidacion
	require.ErrorAs(t, err, &ev)

	// Quitando ambos flags a la vez sí procede, pero necesita otro rol.
	cierto := true
	actualizada, err := svc.Actualizar(context.Background(), e.ID, dto.ActualizarEntidadRequest{
		EsEmpleado:      &falso,
		PuedeOperarCaja: &falso,
		EsCliente:       &cierto,
	})
	require.NoError(t, err)
	assert.False(t, actualizada.EsEmpleado)
	assert.False(t, actualizada.PuedeOperarCaja)
	assert.True(t, actualizada.EsCliente)
}

func TestEliminarEntidadSoftConDependencias(t *testing.T) {
	svc, entidades, _ := nuevoEntornoEntidades()
	e := entidades.agregar("Proveedor con historia", false, false, true, false)
	entidades.deps[e.ID] = 3

	resultado, err := svc.Eliminar(context.Background(), e.ID)
	require.NoError(t, err)
	require.NotNil(t, resultado, "con dependencias se desactiva, no se borra")
	assert.False(t, resultado.Activo)

	// La fila sigue existiendo.
	quedo, err := svc.Obtener(context.Background(), e.ID)
	require.NoError(t, err)
	assert.False(t, quedo.Activo)
}

func TestEliminarEntidadHardSinDependencias(t *testing.T) {
	svc, entidades, _ := nuevoEntornoEntidades()
	e := entidades.agregar("Proveedor recién dado de alta", false, false, true, false)

	resultado, err := svc.Eliminar(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Nil(t, resultado, "sin dependencias la fila desaparece")

	_, err = svc.Obtener(context.Background(), e.ID)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestListarEntidadesPorRol(t *testing.T) {
	svc, entidades, _ := nuevoEntornoEntidades()
	entidades.agregar("Empleada", true, false, false, true)
	entidades.agregar("Cliente", false, true, false, false)
	entidades.agregar("Mixta", true, true, false, false)

	empleados, total, err := svc.Listar(context.Background(), dto.EntidadFilter{Rol: model.RelacionEmpleado})
	require.NoError(t, err)
	assert.Len(t, empleados, 2)
	assert.EqualValues(t, 2, total)

	clientes, _, err := svc.Listar(context.Background(), dto.EntidadFilter{Rol: model.RelacionCliente})
	require.NoError(t, err)
	assert.Len(t, clientes, 2)
}
