package repository

import (
	"context"

	"cajacentral/internal/dto"
	"cajacentral/internal/model"

	"gorm.io/gorm"
)

type EntidadRepository interface {
	Create(ctx context.Context, e *model.Entidad) error
	CreateTx(tx *gorm.DB, e *model.Entidad) error
	CreateRelacionTx(tx *gorm.DB, rel *model.EmpresaEntidad) error
	FindByID(ctx context.Context, id uint) (*model.Entidad, error)
	FindActivaPorNombre(ctx context.Context, nombre string) (*model.Entidad, error)
	List(ctx context.Context, f dto.EntidadFilter) ([]model.Entidad, int64, error)
	Update(ctx context.Context, e *model.Entidad) error
	Delete(ctx context.Context, id uint) error
	CountDependencias(ctx context.Context, id uint) (int64, error)
}

type entidadRepo struct{ db *gorm.DB }

func NewEntidadRepository(db *gorm.DB) EntidadRepository { return &entidadRepo{db: db} }

func (r *entidadRepo) Create(ctx context.Context, e *model.Entidad) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *entidadRepo) CreateTx(tx *gorm.DB, e *model.Entidad) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(e).Error
}

func (r *entidadRepo) CreateRelacionTx(tx *gorm.DB, rel *model.EmpresaEntidad) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(rel).Error
}

func (r *entidadRepo) FindByID(ctx context.Context, id uint) (*model.Entidad, error) {
	var e model.Entidad
	err := r.db.WithContext(ctx).Preload("Empresas").Preload("Empresas.Empresa").First(&e, id).Error
	return &e, err
}

func (r *entidadRepo) FindActivaPorNombre(ctx context.Context, nombre string) (*model.Entidad, error) {
	var e model.Entidad
	err := r.db.WithContext(ctx).Where("LOWER(nombre) = LOWER(?) AND activo = true", nombre).First(&e).Error
	return &e, err
}

func (r *entidadRepo) List(ctx context.Context, f dto.EntidadFilter) ([]model.Entidad, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Entidad{})
	switch f.Rol {
	case model.RelacionEmpleado:
		q = q.Where("es_empleado = true")
	case model.RelacionCliente:
		q = q.Where("es_cliente = true")
	case model.RelacionProveedor:
		q = q.Where("es_proveedor = true")
	}
	if f.Activo != nil {
		q = q.Where("activo = ?", *f.Activo)
	}
	if f.Busqueda != "" {
		q = q.Where("nombre ILIKE ?", "%"+f.Busqueda+"%")
	}
	if f.EmpresaID != nil {
		q = q.Where("id IN (SELECT entidad_id FROM empresa_entidades WHERE empresa_id = ? AND activo = true)", *f.EmpresaID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var entidades []model.Entidad
	err := q.Preload("Empresas").Preload("Empresas.Empresa").
		Order("nombre ASC").Limit(f.Limit).Offset(f.Offset).Find(&entidades).Error
	return entidades, total, err
}

func (r *entidadRepo) Update(ctx context.Context, e *model.Entidad) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *entidadRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entidad_id = ?", id).Delete(&model.EmpresaEntidad{}).Error; err != nil {
			return err
		}
		if err := tx.Where("entidad_id = ?", id).Delete(&model.Saldo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Entidad{}, id).Error
	})
}

func (r *entidadRepo) CountDependencias(ctx context.Context, id uint) (int64, error) {
	var movimientos, cortes int64
	err := r.db.WithContext(ctx).Model(&model.Movimiento{}).
		Where("entidad_id = ? OR empleado_id = ?", id, id).Count(&movimientos).Error
	if err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Corte{}).Where("empleado_id = ?", id).Count(&cortes).Error; err != nil {
		return 0, err
	}
	return movimientos + cortes, nil
}
