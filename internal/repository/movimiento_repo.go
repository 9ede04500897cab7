package repository

import (
	"context"

	"cajacentral/internal/dto"
	"cajacentral/internal/model"

	"gorm.io/gorm"
)

type MovimientoRepository interface {
	// DB exposes the handle so services can open a transaction spanning
	// movements, accounts, cortes and saldos.
	DB() *gorm.DB
	CreateTx(tx *gorm.DB, m *model.Movimiento) error
	DeleteTx(tx *gorm.DB, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Movimiento, error)
	Update(ctx context.Context, m *model.Movimiento) error
	List(ctx context.Context, f dto.MovimientoFilter) ([]model.Movimiento, int64, error)
	ListByCorteTx(tx *gorm.DB, corteID uint) ([]model.Movimiento, error)
}

type movimientoRepo struct{ db *gorm.DB }

func NewMovimientoRepository(db *gorm.DB) MovimientoRepository { return &movimientoRepo{db: db} }

func (r *movimientoRepo) DB() *gorm.DB { return r.db }

func (r *movimientoRepo) CreateTx(tx *gorm.DB, m *model.Movimiento) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(m).Error
}

func (r *movimientoRepo) DeleteTx(tx *gorm.DB, id uint) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Delete(&model.Movimiento{}, id).Error
}

func (r *movimientoRepo) FindByID(ctx context.Context, id uint) (*model.Movimiento, error) {
	var m model.Movimiento
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *movimientoRepo) Update(ctx context.Context, m *model.Movimiento) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *movimientoRepo) List(ctx context.Context, f dto.MovimientoFilter) ([]model.Movimiento, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Movimiento{})
	if f.Tipo != "" {
		q = q.Where("tipo = ?", f.Tipo)
	}
	if f.EmpresaID != nil {
		q = q.Where("empresa_id = ?", *f.EmpresaID)
	}
	if f.CorteID != nil {
		q = q.Where("corte_id = ?", *f.CorteID)
	}
	if f.EntidadID != nil {
		q = q.Where("entidad_id = ?", *f.EntidadID)
	}
	if f.CuentaID != nil {
		q = q.Where("cuenta_origen_id = ? OR cuenta_destino_id = ?", *f.CuentaID, *f.CuentaID)
	}
	if f.FechaDesde != nil {
		q = q.Where("fecha >= ?", *f.FechaDesde)
	}
	if f.FechaHasta != nil {
		q = q.Where("fecha <= ?", *f.FechaHasta)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var movs []model.Movimiento
	err := q.Order("fecha DESC, id DESC").Limit(f.Limit).Offset(f.Offset).Find(&movs).Error
	return movs, total, err
}

func (r *movimientoRepo) ListByCorteTx(tx *gorm.DB, corteID uint) ([]model.Movimiento, error) {
	if tx == nil {
		tx = r.db
	}
	var movs []model.Movimiento
	err := tx.Where("corte_id = ?", corteID).Order("id ASC").Find(&movs).Error
	return movs, err
}
