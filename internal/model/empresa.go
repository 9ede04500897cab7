package model

import "time"

// Empresa is the root tenant unit: every corte and most movimientos belong to
// one. Cuentas are deliberately NOT scoped to an empresa (see Cuenta).
type Empresa struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Nombre    string `gorm:"not null;index"`
	Activo    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Empresa) TableName() string { return "empresas" }
