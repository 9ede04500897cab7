package repository

import (
	"context"

	"cajacentral/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CuentaRepository interface {
	Create(ctx context.Context, c *model.Cuenta) error
	FindByID(ctx context.Context, id uint) (*model.Cuenta, error)
	FindByIDTx(tx *gorm.DB, id uint) (*model.Cuenta, error)
	FindActivaPorNombre(ctx context.Context, nombre string) (*model.Cuenta, error)
	List(ctx context.Context, soloActivas bool, limit, offset int) ([]model.Cuenta, int64, error)
	Update(ctx context.Context, c *model.Cuenta) error
	Delete(ctx context.Context, id uint) error
	CountDependencias(ctx context.Context, id uint) (int64, error)
	// AjustarSaldoTx moves the running balance by delta (negative to debit).
	AjustarSaldoTx(tx *gorm.DB, id uint, delta decimal.Decimal) error
}

type cuentaRepo struct{ db *gorm.DB }

func NewCuentaRepository(db *gorm.DB) CuentaRepository { return &cuentaRepo{db: db} }

func (r *cuentaRepo) Create(ctx context.Context, c *model.Cuenta) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cuentaRepo) FindByID(ctx context.Context, id uint) (*model.Cuenta, error) {
	var c model.Cuenta
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *cuentaRepo) FindByIDTx(tx *gorm.DB, id uint) (*model.Cuenta, error) {
	if tx == nil {
		tx = r.db
	}
	var c model.Cuenta
	err := tx.First(&c, id).Error
	return &c, err
}

func (r *cuentaRepo) FindActivaPorNombre(ctx context.Context, nombre string) (*model.Cuenta, error) {
	var c model.Cuenta
	err := r.db.WithContext(ctx).Where("LOWER(nombre) = LOWER(?) AND activo = true", nombre).First(&c).Error
	return &c, err
}

func (r *cuentaRepo) List(ctx context.Context, soloActivas bool, limit, offset int) ([]model.Cuenta, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Cuenta{})
	if soloActivas {
		q = q.Where("activo = true")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var cuentas []model.Cuenta
	err := q.Order("nombre ASC").Limit(limit).Offset(offset).Find(&cuentas).Error
	return cuentas, total, err
}

func (r *cuentaRepo) Update(ctx context.Context, c *model.Cuenta) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cuentaRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Cuenta{}, id).Error
}

func (r *cuentaRepo) CountDependencias(ctx context.Context, id uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Movimiento{}).
		Where("cuenta_origen_id = ? OR cuenta_destino_id = ?", id, id).Count(&total).Error
	return total, err
}

func (r *cuentaRepo) AjustarSaldoTx(tx *gorm.DB, id uint, delta decimal.Decimal) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&model.Cuenta{}).Where("id = ?", id).
		Update("saldo", gorm.Expr("saldo + ?", delta)).Error
}
