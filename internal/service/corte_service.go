package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cajacentral/internal/dto"
	"cajacentral/internal/model"
	"cajacentral/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReporteQueue enqueues the async PDF-and-email pipeline for a corte.
type ReporteQueue interface {
	EncolarReporte(ctx context.Context, corteID uint, email string) error
}

type CorteService struct {
	db          *gorm.DB
	cortes      repository.CorteRepository
	empresas    repository.EmpresaRepository
	entidades   repository.EntidadRepository
	saldos      repository.SaldoRepository
	movimientos *MovimientoService
	reportes    ReporteQueue
}

func NewCorteService(
	db *gorm.DB,
	cortes repository.CorteRepository,
	empresas repository.EmpresaRepository,
	entidades repository.EntidadRepository,
	saldos repository.SaldoRepository,
	movimientos *MovimientoService,
	reportes ReporteQueue,
) *CorteService {
	return &CorteService{
		db:          db,
		cortes:      cortes,
		empresas:    empresas,
		entidades:   entidades,
		saldos:      saldos,
		movimientos: movimientos,
		reportes:    reportes,
	}
}

// Crear registers a shift reconciliation: the corte row, every captured
// movement with its side effects, the derived totals and, on a shortfall past
// tolerance, the employee's debt. All of it commits or rolls back together.
func (s *CorteService) Crear(ctx context.Context, req dto.CrearCorteRequest) (*model.Corte, error) {
	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, validacion("fecha inválida: se espera AAAA-MM-DD")
	}
	if !req.VentaNeta.IsPositive() {
		return nil, validacion("la venta neta debe ser mayor a cero")
	}
	if len(req.Movimientos) == 0 {
		return nil, validacion("el corte requiere al menos un movimiento")
	}

	empresa, err := s.empresas.FindByID(ctx, req.EmpresaID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, validacion("la empresa %d no existe", req.EmpresaID)
	}
	if err != nil {
		return nil, err
	}
	if !empresa.Activo {
		return nil, validacion("la empresa %q está inactiva", empresa.Nombre)
	}

	empleado, err := s.entidades.FindByID(ctx, req.EmpleadoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, validacion("el empleado %d no existe", req.EmpleadoID)
	}
	if err != nil {
		return nil, err
	}
	if !empleado.Activo || !empleado.EsEmpleado {
		return nil, validacion("la entidad %d no es un empleado activo", req.EmpleadoID)
	}
	if !empleado.PuedeOperarCaja {
		return nil, validacion("el empleado %q no está habilitado para operar caja", empleado.Nombre)
	}

	if _, err := s.cortes.FindPorTurno(ctx, req.EmpresaID, req.EmpleadoID, fecha, req.Sesion); err == nil {
		return nil, validacion("ya existe un corte para ese empleado, fecha y sesión")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &model.Corte{
		EmpresaID:    req.EmpresaID,
		EmpleadoID:   req.EmpleadoID,
		Fecha:        fecha,
		Sesion:       req.Sesion,
		VentaNeta:    req.VentaNeta,
		EfectivoReal: req.EfectivoReal,
		Estado:       model.CorteActivo,
	}
	err = runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.cortes.CreateTx(tx, c); err != nil {
			return err
		}
		for _, mr := range req.Movimientos {
			m := &model.Movimiento{
				Tipo:            mr.Tipo,
				Monto:           mr.Monto,
				EsIngreso:       model.EsTipoIngreso(mr.Tipo),
				CuentaOrigenID:  mr.CuentaOrigenID,
				CuentaDestinoID: mr.CuentaDestinoID,
				EmpresaID:       &c.EmpresaID,
				CorteID:         &c.ID,
				EntidadID:       mr.EntidadID,
				EmpleadoID:      &c.EmpleadoID,
				CategoriaID:     mr.CategoriaID,
				SubcategoriaID:  mr.SubcategoriaID,
				MetodoPago:      mr.MetodoPago,
				Plataforma:      mr.Plataforma,
				Descripcion:     mr.Descripcion,
				Fecha:           fecha,
			}
			if err := s.movimientos.CrearTx(tx, m); err != nil {
				return err
			}
		}

		fresh, err := s.cortes.FindByIDTx(tx, c.ID)
		if err != nil {
			return err
		}
		res := CalcularCorte(fresh)
		fresh.EfectivoEsperado = res.EfectivoEsperado
		fresh.Diferencia = res.Diferencia
		if res.GeneraAdeudo {
			if err := s.generarAdeudoTx(tx, fresh, res.MontoAdeudo); err != nil {
				return err
			}
		}
		return s.cortes.UpdateTx(tx, fresh)
	})
	if err != nil {
		return nil, err
	}
	return s.Obtener(ctx, c.ID)
}

// generarAdeudoTx charges the shortfall to the employee: one adeudo movement
// tied to the corte plus a cargo on the employee's prestamo ledger. The
// adeudo type maps to no corte bucket, so posting it does not disturb the
// reconciliation it came from.
func (s *CorteService) generarAdeudoTx(tx *gorm.DB, c *model.Corte, monto decimal.Decimal) error {
	ref := fmt.Sprintf("ADEUDO C%d %s S%d", c.ID, c.Fecha.Format("2006-01-02"), c.Sesion)
	m := &model.Movimiento{
		Tipo:        model.TipoAdeudo,
		Monto:       monto,
		EmpresaID:   &c.EmpresaID,
		CorteID:     &c.ID,
		EntidadID:   &c.EmpleadoID,
		EmpleadoID:  &c.EmpleadoID,
		Descripcion: ref,
		Fecha:       c.Fecha,
	}
	if err := s.movimientos.CrearTx(tx, m); err != nil {
		return err
	}
	if err := s.saldos.CargoTx(tx, c.EmpleadoID, &c.EmpresaID, model.SaldoPrestamo, monto); err != nil {
		return err
	}
	c.AdeudoGenerado = true
	return nil
}

func (s *CorteService) Obtener(ctx context.Context, id uint) (*model.Corte, error) {
	c, err := s.cortes.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	if c.Estado == model.CorteEliminado {
		return nil, ErrNoEncontrado
	}
	return c, nil
}

func (s *CorteService) Listar(ctx context.Context, f dto.CorteFilter) ([]model.Corte, int64, error) {
	return s.cortes.List(ctx, f)
}

// Actualizar re-captures venta_neta, efectivo_real or the estado and
// recomputes the derived totals from the stored buckets. A shortfall past
// tolerance generates the adeudo here too, but never twice for one corte.
func (s *CorteService) Actualizar(ctx context.Context, id uint, req dto.ActualizarCorteRequest) (*model.Corte, error) {
	if _, err := s.Obtener(ctx, id); err != nil {
		return nil, err
	}
	if req.VentaNeta != nil && !req.VentaNeta.IsPositive() {
		return nil, validacion("la venta neta debe ser mayor a cero")
	}
	err := runTx(ctx, s.db, func(tx *gorm.DB) error {
		c, err := s.cortes.FindByIDTx(tx, id)
		if err != nil {
			return err
		}
		if req.VentaNeta != nil {
			c.VentaNeta = *req.VentaNeta
		}
		if req.EfectivoReal != nil {
			c.EfectivoReal = *req.EfectivoReal
		}
		if req.Estado != nil {
			c.Estado = *req.Estado
		}
		res := CalcularCorte(c)
		c.EfectivoEsperado = res.EfectivoEsperado
		c.Diferencia = res.Diferencia
		if res.GeneraAdeudo && !c.AdeudoGenerado {
			if err := s.generarAdeudoTx(tx, c, res.MontoAdeudo); err != nil {
				return err
			}
		}
		return s.cortes.UpdateTx(tx, c)
	})
	if err != nil {
		return nil, err
	}
	return s.Obtener(ctx, id)
}

// Eliminar is always soft: the corte keeps its movements and totals but stops
// showing up in lists and lookups.
func (s *CorteService) Eliminar(ctx context.Context, id uint) error {
	c, err := s.Obtener(ctx, id)
	if err != nil {
		return err
	}
	return runTx(ctx, s.db, func(tx *gorm.DB) error {
		c.Estado = model.CorteEliminado
		return s.cortes.UpdateTx(tx, c)
	})
}

// EnviarReporte queues the PDF report of the corte for delivery to email.
func (s *CorteService) EnviarReporte(ctx context.Context, id uint, email string) error {
	if _, err := s.Obtener(ctx, id); err != nil {
		return err
	}
	if s.reportes == nil {
		return errors.New("cola de reportes no configurada")
	}
	return s.reportes.EncolarReporte(ctx, id, email)
}
