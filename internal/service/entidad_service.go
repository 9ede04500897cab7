package service

import (
	"context"
	"errors"

	"cajacentral/internal/dto"
	"cajacentral/internal/model"
	"cajacentral/internal/repository"

	"gorm.io/gorm"
)

type EntidadService struct {
	db        *gorm.DB
	entidades repository.EntidadRepository
	saldos    repository.SaldoRepository
}

func NewEntidadService(db *gorm.DB, entidades repository.EntidadRepository, saldos repository.SaldoRepository) *EntidadService {
	return &EntidadService{db: db, entidades: entidades, saldos: saldos}
}

// Crear inserts the entidad, its empresa relations and the optional opening
// balance in one transaction.
func (s *EntidadService) Crear(ctx context.Context, req dto.CrearEntidadRequest) (*model.Entidad, error) {
	if !req.EsEmpleado && !req.EsCliente && !req.EsProveedor {
		return nil, validacion("la entidad debe tener al menos un rol: empleado, cliente o proveedor")
	}
	if req.PuedeOperarCaja && !req.EsEmpleado {
		return nil, validacion("solo un empleado puede operar caja")
	}
	if _, err := s.entidades.FindActivaPorNombre(ctx, req.Nombre); err == nil {
		return nil, validacion("ya existe una entidad activa con el nombre %q", req.Nombre)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	e := &model.Entidad{
		Nombre:          req.Nombre,
		Telefono:        req.Telefono,
		EsEmpleado:      req.EsEmpleado,
		EsCliente:       req.EsCliente,
		EsProveedor:     req.EsProveedor,
		PuedeOperarCaja: req.PuedeOperarCaja,
		Activo:          true,
	}
	err := runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.entidades.CreateTx(tx, e); err != nil {
			return err
		}
		for _, empresaID := range req.EmpresaIDs {
			for _, rel := range rolesDe(e) {
				r := &model.EmpresaEntidad{
					EmpresaID:    empresaID,
					EntidadID:    e.ID,
					TipoRelacion: rel,
					Activo:       true,
				}
				if err := s.entidades.CreateRelacionTx(tx, r); err != nil {
					return err
				}
			}
		}
		if req.SaldoInicial != nil {
			saldo := &model.Saldo{
				EntidadID:    e.ID,
				EmpresaID:    req.SaldoInicial.EmpresaID,
				Tipo:         req.SaldoInicial.Tipo,
				MontoInicial: req.SaldoInicial.Monto,
			}
			if err := s.saldos.CreateTx(tx, saldo); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func rolesDe(e *model.Entidad) []string {
	var roles []string
	if e.EsEmpleado {
		roles = append(roles, model.RelacionEmpleado)
	}
	if e.EsCliente {
		roles = append(roles, model.RelacionCliente)
	}
	if e.EsProveedor {
		roles = append(roles, model.RelacionProveedor)
	}
	return roles
}

func (s *EntidadService) Obtener(ctx context.Context, id uint) (*model.Entidad, error) {
	e, err := s.entidades.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	return e, err
}

func (s *EntidadService) Listar(ctx context.Context, f dto.EntidadFilter) ([]model.Entidad, int64, error) {
	return s.entidades.List(ctx, f)
}

func (s *EntidadService) Actualizar(ctx context.Context, id uint, req dto.ActualizarEntidadRequest) (*model.Entidad, error) {
	e, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil && *req.Nombre != e.Nombre {
		if dup, err := s.entidades.FindActivaPorNombre(ctx, *req.Nombre); err == nil && dup.ID != id {
			return nil, validacion("ya existe una entidad activa con el nombre %q", *req.Nombre)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		e.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		e.Telefono = req.Telefono
	}
	if req.EsEmpleado != nil {
		e.EsEmpleado = *req.EsEmpleado
	}
	if req.EsCliente != nil {
		e.EsCliente = *req.EsCliente
	}
	if req.EsProveedor != nil {
		e.EsProveedor = *req.EsProveedor
	}
	if req.PuedeOperarCaja != nil {
		e.PuedeOperarCaja = *req.PuedeOperarCaja
	}
	if req.Activo != nil {
		e.Activo = *req.Activo
	}
	if !e.EsEmpleado && !e.EsCliente && !e.EsProveedor {
		return nil, validacion("la entidad debe tener al menos un rol: empleado, cliente o proveedor")
	}
	if e.PuedeOperarCaja && !e.EsEmpleado {
		return nil, validacion("solo un empleado puede operar caja")
	}
	if err := s.entidades.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Eliminar deactivates the entidad when movements or cortes reference it;
// with zero dependents it removes the row together with its relations and
// saldos, and returns nil.
func (s *EntidadService) Eliminar(ctx context.Context, id uint) (*model.Entidad, error) {
	e, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	deps, err := s.entidades.CountDependencias(ctx, id)
	if err != nil {
		return nil, err
	}
	if deps > 0 {
		e.Activo = false
		if err := s.entidades.Update(ctx, e); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, s.entidades.Delete(ctx, id)
}

func (s *EntidadService) Saldos(ctx context.Context, entidadID uint) ([]model.Saldo, error) {
	if _, err := s.Obtener(ctx, entidadID); err != nil {
		return nil, err
	}
	return s.saldos.ListByEntidad(ctx, entidadID)
}
