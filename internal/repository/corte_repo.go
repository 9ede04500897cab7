package repository

import (
	"context"
	"time"

	"cajacentral/internal/dto"
	"cajacentral/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CorteRepository interface {
	DB() *gorm.DB
	CreateTx(tx *gorm.DB, c *model.Corte) error
	FindByID(ctx context.Context, id uint) (*model.Corte, error)
	FindByIDTx(tx *gorm.DB, id uint) (*model.Corte, error)
	// FindPorTurno looks up the unique (empresa, empleado, fecha, sesion) key.
	FindPorTurno(ctx context.Context, empresaID, empleadoID uint, fecha time.Time, sesion int) (*model.Corte, error)
	List(ctx context.Context, f dto.CorteFilter) ([]model.Corte, int64, error)
	UpdateTx(tx *gorm.DB, c *model.Corte) error
	// IncrementarBucketTx adds monto to one categorized corte column.
	// campo comes from model.CorteCampoPorTipo, never from user input.
	IncrementarBucketTx(tx *gorm.DB, corteID uint, campo string, monto decimal.Decimal) error
}

type corteRepo struct{ db *gorm.DB }

func NewCorteRepository(db *gorm.DB) CorteRepository { return &corteRepo{db: db} }

func (r *corteRepo) DB() *gorm.DB { return r.db }

func (r *corteRepo) CreateTx(tx *gorm.DB, c *model.Corte) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(c).Error
}

func (r *corteRepo) FindByID(ctx context.Context, id uint) (*model.Corte, error) {
	var c model.Corte
	err := r.db.WithContext(ctx).
		Preload("Empresa").Preload("Empleado").Preload("Movimientos").
		First(&c, id).Error
	return &c, err
}

func (r *corteRepo) FindByIDTx(tx *gorm.DB, id uint) (*model.Corte, error) {
	if tx == nil {
		tx = r.db
	}
	var c model.Corte
	err := tx.First(&c, id).Error
	return &c, err
}

func (r *corteRepo) FindPorTurno(ctx context.Context, empresaID, empleadoID uint, fecha time.Time, sesion int) (*model.Corte, error) {
	var c model.Corte
	err := r.db.WithContext(ctx).
		Where("empresa_id = ? AND empleado_id = ? AND fecha = ? AND sesion = ?",
			empresaID, empleadoID, fecha.Format("2006-01-02"), sesion).
		First(&c).Error
	return &c, err
}

func (r *corteRepo) List(ctx context.Context, f dto.CorteFilter) ([]model.Corte, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Corte{})
	if f.EmpresaID != nil {
		q = q.Where("empresa_id = ?", *f.EmpresaID)
	}
	if f.EmpleadoID != nil {
		q = q.Where("empleado_id = ?", *f.EmpleadoID)
	}
	if f.Estado != "" {
		q = q.Where("estado = ?", f.Estado)
	} else {
		q = q.Where("estado <> ?", model.CorteEliminado)
	}
	if f.FechaDesde != nil {
		q = q.Where("fecha >= ?", f.FechaDesde.Format("2006-01-02"))
	}
	if f.FechaHasta != nil {
		q = q.Where("fecha <= ?", f.FechaHasta.Format("2006-01-02"))
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var cortes []model.Corte
	err := q.Preload("Empresa").Preload("Empleado").
		Order("fecha DESC, sesion DESC").Limit(f.Limit).Offset(f.Offset).Find(&cortes).Error
	return cortes, total, err
}

func (r *corteRepo) UpdateTx(tx *gorm.DB, c *model.Corte) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Save(c).Error
}

func (r *corteRepo) IncrementarBucketTx(tx *gorm.DB, corteID uint, campo string, monto decimal.Decimal) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&model.Corte{}).Where("id = ?", corteID).
		Update(campo, gorm.Expr(campo+" + ?", monto)).Error
}
