package service

import (
	"context"
	"errors"

	"cajacentral/internal/dto"
	"cajacentral/internal/model"
	"cajacentral/internal/repository"

	"gorm.io/gorm"
)

type CuentaService struct {
	cuentas repository.CuentaRepository
}

func NewCuentaService(cuentas repository.CuentaRepository) *CuentaService {
	return &CuentaService{cuentas: cuentas}
}

func (s *CuentaService) Crear(ctx context.Context, req dto.CrearCuentaRequest) (*model.Cuenta, error) {
	if _, err := s.cuentas.FindActivaPorNombre(ctx, req.Nombre); err == nil {
		return nil, validacion("ya existe una cuenta activa con el nombre %q", req.Nombre)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	c := &model.Cuenta{
		Tipo:   req.Tipo,
		Nombre: req.Nombre,
		Saldo:  req.SaldoInicial,
		Activo: true,
	}
	if err := s.cuentas.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CuentaService) Obtener(ctx context.Context, id uint) (*model.Cuenta, error) {
	c, err := s.cuentas.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	return c, err
}

func (s *CuentaService) Listar(ctx context.Context, soloActivas bool, limit, offset int) ([]model.Cuenta, int64, error) {
	return s.cuentas.List(ctx, soloActivas, limit, offset)
}

// Actualizar changes descriptive fields only. The balance moves exclusively
// through movements.
func (s *CuentaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarCuentaRequest) (*model.Cuenta, error) {
	c, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Tipo != nil {
		c.Tipo = *req.Tipo
	}
	if req.Nombre != nil && *req.Nombre != c.Nombre {
		if dup, err := s.cuentas.FindActivaPorNombre(ctx, *req.Nombre); err == nil && dup.ID != id {
			return nil, validacion("ya existe una cuenta activa con el nombre %q", *req.Nombre)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		c.Nombre = *req.Nombre
	}
	if req.Activo != nil {
		c.Activo = *req.Activo
	}
	if err := s.cuentas.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Eliminar deactivates the cuenta when movements reference it; with zero
// dependents it removes the row and returns nil.
func (s *CuentaService) Eliminar(ctx context.Context, id uint) (*model.Cuenta, error) {
	c, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	deps, err := s.cuentas.CountDependencias(ctx, id)
	if err != nil {
		return nil, err
	}
	if deps > 0 {
		c.Activo = false
		if err := s.cuentas.Update(ctx, c); err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, s.cuentas.Delete(ctx, id)
}
