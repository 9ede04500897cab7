package service

// In-memory repository fakes. They back the service tests without a real
// Postgres: runTx sees a nil *gorm.DB and runs the closure directly, so the
// services exercise the exact same code paths as in production.

import (
	"context"
	"strings"
	"time"

	"cajacentral/internal/dto"
	"cajacentral/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── cuentas ──────────────────────────────────────────────────────────────────

type fakeCuentaRepo struct {
	cuentas map[uint]*model.Cuenta
	nextID  uint
	deps    map[uint]int64
}

func newFakeCuentaRepo() *fakeCuentaRepo {
	return &fakeCuentaRepo{cuentas: map[uint]*model.Cuenta{}, deps: map[uint]int64{}}
}

func (r *fakeCuentaRepo) agregar(tipo, nombre string, saldo decimal.Decimal) *model.Cuenta {
	r.nextID++
	c := &model.Cuenta{ID: r.nextID, Tipo: tipo, Nombre: nombre, Saldo: saldo, Activo: true}
	r.cuentas[c.ID] = c
	return c
}

func (r *fakeCuentaRepo) Create(_ context.Context, c *model.Cuenta) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.cuentas[c.ID] = &cp
	return nil
}

func (r *fakeCuentaRepo) FindByID(_ context.Context, id uint) (*model.Cuenta, error) {
	c, ok := r.cuentas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCuentaRepo) FindByIDTx(_ *gorm.DB, id uint) (*model.Cuenta, error) {
	return r.FindByID(context.Background(), id)
}

func (r *fakeCuentaRepo) FindActivaPorNombre(_ context.Context, nombre string) (*model.Cuenta, error) {
	for _, c := range r.cuentas {
		if c.Activo && strings.EqualFold(c.Nombre, nombre) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCuentaRepo) List(_ context.Context, soloActivas bool, limit, offset int) ([]model.Cuenta, int64, error) {
	var out []model.Cuenta
	for _, c := range r.cuentas {
		if soloActivas && !c.Activo {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCuentaRepo) Update(_ context.Context, c *model.Cuenta) error {
	cp := *c
	r.cuentas[c.ID] = &cp
	return nil
}

func (r *fakeCuentaRepo) Delete(_ context.Context, id uint) error {
	delete(r.cuentas, id)
	return nil
}

func (r *fakeCuentaRepo) CountDependencias(_ context.Context, id uint) (int64, error) {
	return r.deps[id], nil
}

func (r *fakeCuentaRepo) AjustarSaldoTx(_ *gorm.DB, id uint, delta decimal.Decimal) error {
	c, ok := r.cuentas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Saldo = c.Saldo.Add(delta)
	return nil
}

// ── saldos ───────────────────────────────────────────────────────────────────

type fakeSaldoRepo struct {
	saldos []*model.Saldo
	nextID uint
}

func newFakeSaldoRepo() *fakeSaldoRepo { return &fakeSaldoRepo{} }

func (r *fakeSaldoRepo) buscar(entidadID uint, empresaID *uint, tipo string) *model.Saldo {
	for _, s := range r.saldos {
		if s.EntidadID != entidadID || s.Tipo != tipo {
			continue
		}
		if (s.EmpresaID == nil) != (empresaID == nil) {
			continue
		}
		if s.EmpresaID != nil && *s.EmpresaID != *empresaID {
			continue
		}
		return s
	}
	return nil
}

func (r *fakeSaldoRepo) Create(_ context.Context, s *model.Saldo) error {
	return r.CreateTx(nil, s)
}

func (r *fakeSaldoRepo) CreateTx(_ *gorm.DB, s *model.Saldo) error {
	r.nextID++
	s.ID = r.nextID
	s.SaldoActual = s.MontoInicial.Add(s.Cargos).Sub(s.Abonos)
	r.saldos = append(r.saldos, s)
	return nil
}

func (r *fakeSaldoRepo) FindByID(_ context.Context, id uint) (*model.Saldo, error) {
	for _, s := range r.saldos {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSaldoRepo) ListByEntidad(_ context.Context, entidadID uint) ([]model.Saldo, error) {
	var out []model.Saldo
	for _, s := range r.saldos {
		if s.EntidadID == entidadID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSaldoRepo) CargoTx(tx *gorm.DB, entidadID uint, empresaID *uint, tipo string, monto decimal.Decimal) error {
	s := r.buscar(entidadID, empresaID, tipo)
	if s == nil {
		s = &model.Saldo{EntidadID: entidadID, EmpresaID: empresaID, Tipo: tipo}
		_ = r.CreateTx(tx, s)
	}
	s.Cargos = s.Cargos.Add(monto)
	s.SaldoActual = s.MontoInicial.Add(s.Cargos).Sub(s.Abonos)
	return nil
}

func (r *fakeSaldoRepo) AbonoTx(tx *gorm.DB, entidadID uint, empresaID *uint, tipo string, monto decimal.Decimal) error {
	s := r.buscar(entidadID, empresaID, tipo)
	if s == nil {
		s = &model.Saldo{EntidadID: entidadID, EmpresaID: empresaID, Tipo: tipo}
		_ = r.CreateTx(tx, s)
	}
	s.Abonos = s.Abonos.Add(monto)
	s.SaldoActual = s.MontoInicial.Add(s.Cargos).Sub(s.Abonos)
	return nil
}

// ── movimientos ──────────────────────────────────────────────────────────────

type fakeMovimientoRepo struct {
	movimientos map[uint]*model.Movimiento
	nextID      uint
}

func newFakeMovimientoRepo() *fakeMovimientoRepo {
	return &fakeMovimientoRepo{movimientos: map[uint]*model.Movimiento{}}
}

func (r *fakeMovimientoRepo) DB() *gorm.DB { return nil }

func (r *fakeMovimientoRepo) CreateTx(_ *gorm.DB, m *model.Movimiento) error {
	r.nextID++
	m.ID = r.nextID
	cp := *m
	r.movimientos[m.ID] = &cp
	return nil
}

func (r *fakeMovimientoRepo) DeleteTx(_ *gorm.DB, id uint) error {
	delete(r.movimientos, id)
	return nil
}

func (r *fakeMovimientoRepo) FindByID(_ context.Context, id uint) (*model.Movimiento, error) {
	m, ok := r.movimientos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMovimientoRepo) Update(_ context.Context, m *model.Movimiento) error {
	cp := *m
	r.movimientos[m.ID] = &cp
	return nil
}

func (r *fakeMovimientoRepo) List(_ context.Context, f dto.MovimientoFilter) ([]model.Movimiento, int64, error) {
	var out []model.Movimiento
	for _, m := range r.movimientos {
		if f.Tipo != "" && m.Tipo != f.Tipo {
			continue
		}
		if f.CorteID != nil && (m.CorteID == nil || *m.CorteID != *f.CorteID) {
			continue
		}
		if f.EntidadID != nil && (m.EntidadID == nil || *m.EntidadID != *f.EntidadID) {
			continue
		}
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (r *fakeMovimientoRepo) ListByCorteTx(_ *gorm.DB, corteID uint) ([]model.Movimiento, error) {
	var out []model.Movimiento
	for _, m := range r.movimientos {
		if m.CorteID != nil && *m.CorteID == corteID {
			out = append(out, *m)
		}
	}
	return out, nil
}

// ── cortes ───────────────────────────────────────────────────────────────────

type fakeCorteRepo struct {
	cortes map[uint]*model.Corte
	nextID uint
	movs   *fakeMovimientoRepo
}

func newFakeCorteRepo(movs *fakeMovimientoRepo) *fakeCorteRepo {
	return &fakeCorteRepo{cortes: map[uint]*model.Corte{}, movs: movs}
}

func (r *fakeCorteRepo) DB() *gorm.DB { return nil }

func (r *fakeCorteRepo) CreateTx(_ *gorm.DB, c *model.Corte) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.cortes[c.ID] = &cp
	return nil
}

func (r *fakeCorteRepo) FindByID(_ context.Context, id uint) (*model.Corte, error) {
	c, ok := r.cortes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	if r.movs != nil {
		cp.Movimientos, _ = r.movs.ListByCorteTx(nil, id)
	}
	return &cp, nil
}

func (r *fakeCorteRepo) FindByIDTx(_ *gorm.DB, id uint) (*model.Corte, error) {
	c, ok := r.cortes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCorteRepo) FindPorTurno(_ context.Context, empresaID, empleadoID uint, fecha time.Time, sesion int) (*model.Corte, error) {
	for _, c := range r.cortes {
		if c.EmpresaID == empresaID && c.EmpleadoID == empleadoID && c.Sesion == sesion &&
			c.Fecha.Format("2006-01-02") == fecha.Format("2006-01-02") {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCorteRepo) List(_ context.Context, f dto.CorteFilter) ([]model.Corte, int64, error) {
	var out []model.Corte
	for _, c := range r.cortes {
		if f.Estado != "" && c.Estado != f.Estado {
			continue
		}
		if f.Estado == "" && c.Estado == model.CorteEliminado {
			continue
		}
		if f.EmpresaID != nil && c.EmpresaID != *f.EmpresaID {
			continue
		}
		if f.EmpleadoID != nil && c.EmpleadoID != *f.EmpleadoID {
			continue
		}
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCorteRepo) UpdateTx(_ *gorm.DB, c *model.Corte) error {
	cp := *c
	cp.Movimientos = nil
	r.cortes[c.ID] = &cp
	return nil
}

func (r *fakeCorteRepo) IncrementarBucketTx(_ *gorm.DB, corteID uint, campo string, monto decimal.Decimal) error {
	c, ok := r.cortes[corteID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	switch campo {
	case "venta_efectivo":
		c.VentaEfectivo = c.VentaEfectivo.Add(monto)
	case "venta_tarjeta":
		c.VentaTarjeta = c.VentaTarjeta.Add(monto)
	case "venta_credito":
		c.VentaCredito = c.VentaCredito.Add(monto)
	case "venta_transferencia":
		c.VentaTransferencia = c.VentaTransferencia.Add(monto)
	case "cortesias":
		c.Cortesias = c.Cortesias.Add(monto)
	case "cobranza":
		c.Cobranza = c.Cobranza.Add(monto)
	case "retiro_parcial":
		c.RetiroParcial = c.RetiroParcial.Add(monto)
	case "gastos":
		c.Gastos = c.Gastos.Add(monto)
	case "compras":
		c.Compras = c.Compras.Add(monto)
	case "prestamos":
		c.Prestamos = c.Prestamos.Add(monto)
	case "otros_retiros":
		c.OtrosRetiros = c.OtrosRetiros.Add(monto)
	}
	return nil
}

// ── empresas ─────────────────────────────────────────────────────────────────

type fakeEmpresaRepo struct {
	empresas map[uint]*model.Empresa
	nextID   uint
	deps     map[uint]int64
}

func newFakeEmpresaRepo() *fakeEmpresaRepo {
	return &fakeEmpresaRepo{empresas: map[uint]*model.Empresa{}, deps: map[uint]int64{}}
}

func (r *fakeEmpresaRepo) agregar(nombre string) *model.Empresa {
	r.nextID++
	e := &model.Empresa{ID: r.nextID, Nombre: nombre, Activo: true}
	r.empresas[e.ID] = e
	return e
}

func (r *fakeEmpresaRepo) Create(_ context.Context, e *model.Empresa) error {
	r.nextID++
	e.ID = r.nextID
	cp := *e
	r.empresas[e.ID] = &cp
	return nil
}

func (r *fakeEmpresaRepo) FindByID(_ context.Context, id uint) (*model.Empresa, error) {
	e, ok := r.empresas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmpresaRepo) FindActivaPorNombre(_ context.Context, nombre string) (*model.Empresa, error) {
	for _, e := range r.empresas {
		if e.Activo && strings.EqualFold(e.Nombre, nombre) {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEmpresaRepo) List(_ context.Context, soloActivas bool, limit, offset int) ([]model.Empresa, int64, error) {
	var out []model.Empresa
	for _, e := range r.empresas {
		if soloActivas && !e.Activo {
			continue
		}
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *fakeEmpresaRepo) Update(_ context.Context, e *model.Empresa) error {
	cp := *e
	r.empresas[e.ID] = &cp
	return nil
}

func (r *fakeEmpresaRepo) Delete(_ context.Context, id uint) error {
	delete(r.empresas, id)
	return nil
}

func (r *fakeEmpresaRepo) CountDependencias(_ context.Context, id uint) (int64, error) {
	return r.deps[id], nil
}

// ── entidades ────────────────────────────────────────────────────────────────

type fakeEntidadRepo struct {
	entidades  map[uint]*model.Entidad
	relaciones []*model.EmpresaEntidad
	nextID     uint
	nextRelID  uint
	deps       map[uint]int64
}

func newFakeEntidadRepo() *fakeEntidadRepo {
	return &fakeEntidadRepo{entidades: map[uint]*model.Entidad{}, deps: map[uint]int64{}}
}

func (r *fakeEntidadRepo) agregar(nombre string, empleado, cliente, proveedor, operaCaja bool) *model.Entidad {
	r.nextID++
	e := &model.Entidad{
		ID:              r.nextID,
		Nombre:          nombre,
		EsEmpleado:      empleado,
		EsCliente:       cliente,
		EsProveedor:     proveedor,
		PuedeOperarCaja: operaCaja,
		Activo:          true,
	}
	r.entidades[e.ID] = e
	return e
}

func (r *fakeEntidadRepo) Create(_ context.Context, e *model.Entidad) error {
	return r.CreateTx(nil, e)
}

func (r *fakeEntidadRepo) CreateTx(_ *gorm.DB, e *model.Entidad) error {
	r.nextID++
	e.ID = r.nextID
	cp := *e
	r.entidades[e.ID] = &cp
	return nil
}

func (r *fakeEntidadRepo) CreateRelacionTx(_ *gorm.DB, rel *model.EmpresaEntidad) error {
	r.nextRelID++
	rel.ID = r.nextRelID
	cp := *rel
	r.relaciones = append(r.relaciones, &cp)
	return nil
}

func (r *fakeEntidadRepo) FindByID(_ context.Context, id uint) (*model.Entidad, error) {
	e, ok := r.entidades[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	for _, rel := range r.relaciones {
		if rel.EntidadID == id {
			cp.Empresas = append(cp.Empresas, *rel)
		}
	}
	return &cp, nil
}

func (r *fakeEntidadRepo) FindActivaPorNombre(_ context.Context, nombre string) (*model.Entidad, error) {
	for _, e := range r.entidades {
		if e.Activo && strings.EqualFold(e.Nombre, nombre) {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEntidadRepo) List(_ context.Context, f dto.EntidadFilter) ([]model.Entidad, int64, error) {
	var out []model.Entidad
	for _, e := range r.entidades {
		switch f.Rol {
		case model.RelacionEmpleado:
			if !e.EsEmpleado {
				continue
			}
		case model.RelacionCliente:
			if !e.EsCliente {
				continue
			}
		case model.RelacionProveedor:
			if !e.EsProveedor {
				continue
			}
		}
		if f.Activo != nil && e.Activo != *f.Activo {
			continue
		}
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *fakeEntidadRepo) Update(_ context.Context, e *model.Entidad) error {
	cp := *e
	cp.Empresas = nil
	r.entidades[e.ID] = &cp
	return nil
}

func (r *fakeEntidadRepo) Delete(_ context.Context, id uint) error {
	delete(r.entidades, id)
	return nil
}

func (r *fakeEntidadRepo) CountDependencias(_ context.Context, id uint) (int64, error) {
	return r.deps[id], nil
}
