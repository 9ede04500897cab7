package service

import (
	"context"
	"errors"

	"cajacentral/internal/dto"
	"cajacentral/internal/model"
	"cajacentral/internal/repository"

	"gorm.io/gorm"
)

type CategoriaService struct {
	categorias repository.CategoriaRepository
}

func NewCategoriaService(categorias repository.CategoriaRepository) *CategoriaService {
	return &CategoriaService{categorias: categorias}
}

func (s *CategoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*model.Categoria, error) {
	c := &model.Categoria{Nombre: req.Nombre, Descripcion: req.Descripcion, Activo: true}
	if err := s.categorias.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoriaService) Obtener(ctx context.Context, id uint) (*model.Categoria, error) {
	c, err := s.categorias.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	return c, err
}

func (s *CategoriaService) Listar(ctx context.Context, soloActivas bool, limit, offset int) ([]model.Categoria, int64, error) {
	return s.categorias.List(ctx, soloActivas, limit, offset)
}

func (s *CategoriaService) Actualizar(ctx context.Context, id uint, req dto.ActualizarCategoriaRequest) (*model.Categoria, error) {
	c, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		c.Descripcion = req.Descripcion
	}
	if req.Activo != nil {
		c.Activo = *req.Activo
	}
	if err := s.categorias.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoriaService) Eliminar(ctx context.Context, id uint) (*model.Categoria, error) {
	c, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	deps, err := s.categorias.CountDependencias(ctx, id)
	if err != nil {
		return nil, err
	}
	if deps > 0 {
		c.Activo = false
		if err := s.categorias.Update(ctx, c); err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, s.categorias.Delete(ctx, id)
}

func (s *CategoriaService) CrearSubcategoria(ctx context.Context, req dto.CrearSubcategoriaRequest) (*model.Subcategoria, error) {
	if _, err := s.Obtener(ctx, req.CategoriaID); err != nil {
		if errors.Is(err, ErrNoEncontrado) {
			return nil, validacion("la categoría %d no existe", req.CategoriaID)
		}
		return nil, err
	}
	sub := &model.Subcategoria{CategoriaID: req.CategoriaID, Nombre: req.Nombre, Activo: true}
	if err := s.categorias.CreateSubcategoria(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *CategoriaService) ListarSubcategorias(ctx context.Context, categoriaID *uint, soloActivas bool, limit, offset int) ([]model.Subcategoria, int64, error) {
	return s.categorias.ListSubcategorias(ctx, categoriaID, soloActivas, limit, offset)
}

func (s *CategoriaService) ActualizarSubcategoria(ctx context.Context, id uint, req dto.ActualizarSubcategoriaRequest) (*model.Subcategoria, error) {
	sub, err := s.categorias.FindSubcategoriaByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil {
		sub.Nombre = *req.Nombre
	}
	if req.Activo != nil {
		sub.Activo = *req.Activo
	}
	if err := s.categorias.UpdateSubcategoria(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *CategoriaService) EliminarSubcategoria(ctx context.Context, id uint) (*model.Subcategoria, error) {
	sub, err := s.categorias.FindSubcategoriaByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	deps, err := s.categorias.CountDependenciasSubcategoria(ctx, id)
	if err != nil {
		return nil, err
	}
	if deps > 0 {
		sub.Activo = false
		if err := s.categorias.UpdateSubcategoria(ctx, sub); err != nil {
			return nil, err
		}
		return sub, nil
	}
	return nil, s.categorias.DeleteSubcategoria(ctx, id)
}
