package service

import (
	"context"
	"errors"
	"time"

	"cajacentral/internal/dto"
	"cajacentral/internal/model"
	"cajacentral/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MovimientoService struct {
	db          *gorm.DB
	movimientos repository.MovimientoRepository
	cuentas     repository.CuentaRepository
	cortes      repository.CorteRepository
	saldos      repository.SaldoRepository
}

func NewMovimientoService(
	db *gorm.DB,
	movimientos repository.MovimientoRepository,
	cuentas repository.CuentaRepository,
	cortes repository.CorteRepository,
	saldos repository.SaldoRepository,
) *MovimientoService {
	return &MovimientoService{db: db, movimientos: movimientos, cuentas: cuentas, cortes: cortes, saldos: saldos}
}

// Crear posts a standalone movement: the row, its account effects, its corte
// bucket and its entidad saldo all land in one transaction.
func (s *MovimientoService) Crear(ctx context.Context, req dto.CrearMovimientoRequest) (*model.Movimiento, error) {
	fecha := time.Now()
	if req.Fecha != nil {
		fecha = *req.Fecha
	}
	m := &model.Movimiento{
		Tipo:            req.Tipo,
		Monto:           req.Monto,
		EsIngreso:       model.EsTipoIngreso(req.Tipo),
		EsTraspaso:      req.Tipo == model.TipoTraspaso,
		CuentaOrigenID:  req.CuentaOrigenID,
		CuentaDestinoID: req.CuentaDestinoID,
		EmpresaID:       req.EmpresaID,
		CorteID:         req.CorteID,
		EntidadID:       req.EntidadID,
		EmpleadoID:      req.EmpleadoID,
		CategoriaID:     req.CategoriaID,
		SubcategoriaID:  req.SubcategoriaID,
		MetodoPago:      req.MetodoPago,
		Plataforma:      req.Plataforma,
		Descripcion:     req.Descripcion,
		Fecha:           fecha,
	}
	err := runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.CrearTx(tx, m); err != nil {
			return err
		}
		if m.CorteID != nil {
			return s.recalcularCorteTx(tx, *m.CorteID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// CrearTx validates and posts one movement inside an existing transaction.
// Callers that touch a corte are responsible for recomputing its derived
// fields afterwards.
func (s *MovimientoService) CrearTx(tx *gorm.DB, m *model.Movimiento) error {
	if !m.Monto.IsPositive() {
		return validacion("el monto debe ser mayor a cero")
	}
	if m.EsTraspaso {
		if m.CuentaOrigenID == nil || m.CuentaDestinoID == nil {
			return validacion("un traspaso requiere cuenta de origen y cuenta de destino")
		}
		if *m.CuentaOrigenID == *m.CuentaDestinoID {
			return validacion("un traspaso requiere cuentas distintas")
		}
		origen, err := s.cuentas.FindByIDTx(tx, *m.CuentaOrigenID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return validacion("la cuenta de origen %d no existe", *m.CuentaOrigenID)
		}
		if err != nil {
			return err
		}
		if origen.Saldo.LessThan(m.Monto) {
			return validacion("saldo insuficiente en la cuenta %q", origen.Nombre)
		}
	}
	if err := s.movimientos.CreateTx(tx, m); err != nil {
		return err
	}
	return s.aplicarEfectosTx(tx, m, decimal.NewFromInt(1))
}

// aplicarEfectosTx posts the side effects of a movement scaled by signo:
// +1 applies them, -1 reverses them.
func (s *MovimientoService) aplicarEfectosTx(tx *gorm.DB, m *model.Movimiento, signo decimal.Decimal) error {
	monto := m.Monto.Mul(signo)

	switch {
	case m.EsTraspaso:
		if err := s.cuentas.AjustarSaldoTx(tx, *m.CuentaOrigenID, monto.Neg()); err != nil {
			return err
		}
		if err := s.cuentas.AjustarSaldoTx(tx, *m.CuentaDestinoID, monto); err != nil {
			return err
		}
	case m.EsIngreso:
		if m.CuentaDestinoID != nil {
			if err := s.cuentas.AjustarSaldoTx(tx, *m.CuentaDestinoID, monto); err != nil {
				return err
			}
		}
	default:
		if m.CuentaOrigenID != nil {
			if err := s.cuentas.AjustarSaldoTx(tx, *m.CuentaOrigenID, monto.Neg()); err != nil {
				return err
			}
		}
	}

	if m.CorteID != nil {
		if campo, ok := model.CorteCampoPorTipo[m.Tipo]; ok {
			if err := s.cortes.IncrementarBucketTx(tx, *m.CorteID, campo, monto); err != nil {
				return err
			}
		}
	}

	if m.EntidadID != nil {
		switch m.Tipo {
		case model.TipoVentaCredito:
			return s.saldos.CargoTx(tx, *m.EntidadID, m.EmpresaID, model.SaldoPorCobrar, monto)
		case model.TipoCobranza:
			return s.saldos.AbonoTx(tx, *m.EntidadID, m.EmpresaID, model.SaldoPorCobrar, monto)
		case model.TipoPrestamo:
			return s.saldos.CargoTx(tx, *m.EntidadID, m.EmpresaID, model.SaldoPrestamo, monto)
		case model.TipoCompra:
			return s.saldos.CargoTx(tx, *m.EntidadID, m.EmpresaID, model.SaldoPorPagar, monto)
		}
	}
	return nil
}

// recalcularCorteTx refreshes the derived fields of a corte after its buckets
// moved. It never generates an adeudo: that decision belongs to the corte
// creation and edit paths.
func (s *MovimientoService) recalcularCorteTx(tx *gorm.DB, corteID uint) error {
	c, err := s.cortes.FindByIDTx(tx, corteID)
	if err != nil {
		return err
	}
	res := CalcularCorte(c)
	c.EfectivoEsperado = res.EfectivoEsperado
	c.Diferencia = res.Diferencia
	return s.cortes.UpdateTx(tx, c)
}

func (s *MovimientoService) Obtener(ctx context.Context, id uint) (*model.Movimiento, error) {
	m, err := s.movimientos.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	return m, err
}

func (s *MovimientoService) Listar(ctx context.Context, f dto.MovimientoFilter) ([]model.Movimiento, int64, error) {
	return s.movimientos.List(ctx, f)
}

// Actualizar changes descriptive fields only. Amount, type and account wiring
// are immutable once posted; correcting those means delete and re-capture.
func (s *MovimientoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarMovimientoRequest) (*model.Movimiento, error) {
	m, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Descripcion != nil {
		m.Descripcion = *req.Descripcion
	}
	if req.CategoriaID != nil {
		m.CategoriaID = req.CategoriaID
	}
	if req.SubcategoriaID != nil {
		m.SubcategoriaID = req.SubcategoriaID
	}
	if req.MetodoPago != nil {
		m.MetodoPago = req.MetodoPago
	}
	if req.Plataforma != nil {
		m.Plataforma = req.Plataforma
	}
	if err := s.movimientos.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Eliminar reverses every side effect of the movement and removes the row, so
// a create-then-delete round trip leaves all balances untouched.
//
// Adeudos generados por un corte se rechazan: su cargo al saldo del empleado
// lo asienta el corte, no aplicarEfectosTx, así que borrarlos aquí dejaría el
// saldo sin revertir y el corte marcado con adeudo_generado.
func (s *MovimientoService) Eliminar(ctx context.Context, id uint) error {
	m, err := s.Obtener(ctx, id)
	if err != nil {
		return err
	}
	if m.Tipo == model.TipoAdeudo && m.CorteID != nil {
		return validacion("el adeudo lo administra su corte; corrige el efectivo real del corte %d", *m.CorteID)
	}
	return runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.aplicarEfectosTx(tx, m, decimal.NewFromInt(-1)); err != nil {
			return err
		}
		if m.CorteID != nil {
			if err := s.recalcularCorteTx(tx, *m.CorteID); err != nil {
				return err
			}
		}
		return s.movimientos.DeleteTx(tx, m.ID)
	})
}
