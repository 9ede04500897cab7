package repository

import (
	"context"

	"cajacentral/internal/model"

	"gorm.io/gorm"
)

type CategoriaRepository interface {
	Create(ctx context.Context, c *model.Categoria) error
	FindByID(ctx context.Context, id uint) (*model.Categoria, error)
	List(ctx context.Context, soloActivas bool, limit, offset int) ([]model.Categoria, int64, error)
	Update(ctx context.Context, c *model.Categoria) error
	Delete(ctx context.Context, id uint) error
	CountDependencias(ctx context.Context, id uint) (int64, error)

	CreateSubcategoria(ctx context.Context, s *model.Subcategoria) error
	FindSubcategoriaByID(ctx context.Context, id uint) (*model.Subcategoria, error)
	ListSubcategorias(ctx context.Context, categoriaID *uint, soloActivas bool, limit, offset int) ([]model.Subcategoria, int64, error)
	UpdateSubcategoria(ctx context.Context, s *model.Subcategoria) error
	DeleteSubcategoria(ctx context.Context, id uint) error
	CountDependenciasSubcategoria(ctx context.Context, id uint) (int64, error)
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) Create(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) FindByID(ctx context.Context, id uint) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).Preload("Subcategorias").First(&c, id).Error
	return &c, err
}

func (r *categoriaRepo) List(ctx context.Context, soloActivas bool, limit, offset int) ([]model.Categoria, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Categoria{})
	if soloActivas {
		q = q.Where("activo = true")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var categorias []model.Categoria
	err := q.Preload("Subcategorias").Order("nombre ASC").Limit(limit).Offset(offset).Find(&categorias).Error
	return categorias, total, err
}

func (r *categoriaRepo) Update(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("categoria_id = ?", id).Delete(&model.Subcategoria{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Categoria{}, id).Error
	})
}

func (r *categoriaRepo) CountDependencias(ctx context.Context, id uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Movimiento{}).Where("categoria_id = ?", id).Count(&total).Error
	return total, err
}

func (r *categoriaRepo) CreateSubcategoria(ctx context.Context, s *model.Subcategoria) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *categoriaRepo) FindSubcategoriaByID(ctx context.Context, id uint) (*model.Subcategoria, error) {
	var s model.Subcategoria
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *categoriaRepo) ListSubcategorias(ctx context.Context, categoriaID *uint, soloActivas bool, limit, offset int) ([]model.Subcategoria, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Subcategoria{})
	if categoriaID != nil {
		q = q.Where("categoria_id = ?", *categoriaID)
	}
	if soloActivas {
		q = q.Where("activo = true")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var subs []model.Subcategoria
	err := q.Order("nombre ASC").Limit(limit).Offset(offset).Find(&subs).Error
	return subs, total, err
}

func (r *categoriaRepo) UpdateSubcategoria(ctx context.Context, s *model.Subcategoria) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *categoriaRepo) DeleteSubcategoria(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Subcategoria{}, id).Error
}

func (r *categoriaRepo) CountDependenciasSubcategoria(ctx context.Context, id uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Movimiento{}).Where("subcategoria_id = ?", id).Count(&total).Error
	return total, err
}
