package repository

import (
	"context"

	"cajacentral/internal/model"

	"gorm.io/gorm"
)

type EmpresaRepository interface {
	Create(ctx context.Context, e *model.Empresa) error
	FindByID(ctx context.Context, id uint) (*model.Empresa, error)
	FindActivaPorNombre(ctx context.Context, nombre string) (*model.Empresa, error)
	List(ctx context.Context, soloActivas bool, limit, offset int) ([]model.Empresa, int64, error)
	Update(ctx context.Context, e *model.Empresa) error
	Delete(ctx context.Context, id uint) error
	// CountDependencias reports how many cortes and movimientos reference the
	// empresa; a nonzero count forces deactivation instead of deletion.
	CountDependencias(ctx context.Context, id uint) (int64, error)
}

type empresaRepo struct{ db *gorm.DB }

func NewEmpresaRepository(db *gorm.DB) EmpresaRepository { return &empresaRepo{db: db} }

func (r *empresaRepo) Create(ctx context.Context, e *model.Empresa) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *empresaRepo) FindByID(ctx context.Context, id uint) (*model.Empresa, error) {
	var e model.Empresa
	err := r.db.WithContext(ctx).First(&e, id).Error
	return &e, err
}

func (r *empresaRepo) FindActivaPorNombre(ctx context.Context, nombre string) (*model.Empresa, error) {
	var e model.Empresa
	err := r.db.WithContext(ctx).Where("LOWER(nombre) = LOWER(?) AND activo = true", nombre).First(&e).Error
	return &e, err
}

func (r *empresaRepo) List(ctx context.Context, soloActivas bool, limit, offset int) ([]model.Empresa, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Empresa{})
	if soloActivas {
		q = q.Where("activo = true")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var empresas []model.Empresa
	err := q.Order("nombre ASC").Limit(limit).Offset(offset).Find(&empresas).Error
	return empresas, total, err
}

func (r *empresaRepo) Update(ctx context.Context, e *model.Empresa) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *empresaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("empresa_id = ?", id).Delete(&model.EmpresaEntidad{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Empresa{}, id).Error
	})
}

func (r *empresaRepo) CountDependencias(ctx context.Context, id uint) (int64, error) {
	var cortes, movimientos int64
	if err := r.db.WithContext(ctx).Model(&model.Corte{}).Where("empresa_id = ?", id).Count(&cortes).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Movimiento{}).Where("empresa_id = ?", id).Count(&movimientos).Error; err != nil {
		return 0, err
	}
	return cortes + movimientos, nil
}
