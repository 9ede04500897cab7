package service

import (
	"context"
	"errors"

	"cajacentral/internal/dto"
	"cajacentral/internal/model"
	"cajacentral/internal/repository"

	"gorm.io/gorm"
)

type EmpresaService struct {
	empresas repository.EmpresaRepository
}

func NewEmpresaService(empresas repository.EmpresaRepository) *EmpresaService {
	return &EmpresaService{empresas: empresas}
}

func (s *EmpresaService) Crear(ctx context.Context, req dto.CrearEmpresaRequest) (*model.Empresa, error) {
	if _, err := s.empresas.FindActivaPorNombre(ctx, req.Nombre); err == nil {
		return nil, validacion("ya existe una empresa activa con el nombre %q", req.Nombre)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	e := &model.Empresa{Nombre: req.Nombre, Activo: true}
	if err := s.empresas.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EmpresaService) Obtener(ctx context.Context, id uint) (*model.Empresa, error) {
	e, err := s.empresas.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	return e, err
}

func (s *EmpresaService) Listar(ctx context.Context, soloActivas bool, limit, offset int) ([]model.Empresa, int64, error) {
	return s.empresas.List(ctx, soloActivas, limit, offset)
}

func (s *EmpresaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarEmpresaRequest) (*model.Empresa, error) {
	e, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil && *req.Nombre != e.Nombre {
		if dup, err := s.empresas.FindActivaPorNombre(ctx, *req.Nombre); err == nil && dup.ID != id {
			return nil, validacion("ya existe una empresa activa con el nombre %q", *req.Nombre)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		e.Nombre = *req.Nombre
	}
	if req.Activo != nil {
		e.Activo = *req.Activo
	}
	if err := s.empresas.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Eliminar deactivates the empresa when cortes or movimientos reference it and
// returns the updated record; with zero dependents it removes the row (along
// with its entidad relations) and returns nil.
func (s *EmpresaService) Eliminar(ctx context.Context, id uint) (*model.Empresa, error) {
	e, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	deps, err := s.empresas.CountDependencias(ctx, id)
	if err != nil {
		return nil, err
	}
	if deps > 0 {
		e.Activo = false
		if err := s.empresas.Update(ctx, e); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, s.empresas.Delete(ctx, id)
}
