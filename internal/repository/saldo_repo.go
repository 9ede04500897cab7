package repository

import (
	"context"
	"errors"

	"cajacentral/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaldoRepository interface {
	Create(ctx context.Context, s *model.Saldo) error
	CreateTx(tx *gorm.DB, s *model.Saldo) error
	FindByID(ctx context.Context, id uint) (*model.Saldo, error)
	ListByEntidad(ctx context.Context, entidadID uint) ([]model.Saldo, error)
	// CargoTx adds monto to cargos (creating the ledger if missing);
	// AbonoTx adds to abonos. Both keep saldo_actual in step.
	CargoTx(tx *gorm.DB, entidadID uint, empresaID *uint, tipo string, monto decimal.Decimal) error
	AbonoTx(tx *gorm.DB, entidadID uint, empresaID *uint, tipo string, monto decimal.Decimal) error
}

type saldoRepo struct{ db *gorm.DB }

func NewSaldoRepository(db *gorm.DB) SaldoRepository { return &saldoRepo{db: db} }

func (r *saldoRepo) Create(ctx context.Context, s *model.Saldo) error {
	s.SaldoActual = s.MontoInicial.Add(s.Cargos).Sub(s.Abonos)
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *saldoRepo) CreateTx(tx *gorm.DB, s *model.Saldo) error {
	if tx == nil {
		tx = r.db
	}
	s.SaldoActual = s.MontoInicial.Add(s.Cargos).Sub(s.Abonos)
	return tx.Create(s).Error
}

func (r *saldoRepo) FindByID(ctx context.Context, id uint) (*model.Saldo, error) {
	var s model.Saldo
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *saldoRepo) ListByEntidad(ctx context.Context, entidadID uint) ([]model.Saldo, error) {
	var saldos []model.Saldo
	err := r.db.WithContext(ctx).Where("entidad_id = ?", entidadID).Order("id ASC").Find(&saldos).Error
	return saldos, err
}

func (r *saldoRepo) CargoTx(tx *gorm.DB, entidadID uint, empresaID *uint, tipo string, monto decimal.Decimal) error {
	return r.aplicar(tx, entidadID, empresaID, tipo, monto, decimal.Zero)
}

func (r *saldoRepo) AbonoTx(tx *gorm.DB, entidadID uint, empresaID *uint, tipo string, monto decimal.Decimal) error {
	return r.aplicar(tx, entidadID, empresaID, tipo, decimal.Zero, monto)
}

func (r *saldoRepo) aplicar(tx *gorm.DB, entidadID uint, empresaID *uint, tipo string, cargo, abono decimal.Decimal) error {
	if tx == nil {
		tx = r.db
	}
	var s model.Saldo
	q := tx.Where("entidad_id = ? AND tipo = ?", entidadID, tipo)
	if empresaID != nil {
		q = q.Where("empresa_id = ?", *empresaID)
	} else {
		q = q.Where("empresa_id IS NULL")
	}
	err := q.First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = model.Saldo{EntidadID: entidadID, EmpresaID: empresaID, Tipo: tipo}
		if err := tx.Create(&s).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	s.Cargos = s.Cargos.Add(cargo)
	s.Abonos = s.Abonos.Add(abono)
	s.SaldoActual = s.MontoInicial.Add(s.Cargos).Sub(s.Abonos)
	return tx.Save(&s).Error
}
