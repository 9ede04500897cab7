package model

import "time"

// Relation tags carried by EmpresaEntidad.
const (
	RelacionEmpleado  = "empleado"
	RelacionCliente   = "cliente"
	RelacionProveedor = "proveedor"
)

// Entidad unifies empleado/cliente/proveedor in a single record. One entidad
// can hold any combination of role flags simultaneously, but never zero.
type Entidad struct {
	ID              uint    `gorm:"primaryKey;autoIncrement"`
	Nombre          string  `gorm:"not null;index"`
	Telefono        *string `gorm:"type:varchar(20)"`
	EsEmpleado      bool    `gorm:"not null;default:false"`
	EsCliente       bool    `gorm:"not null;default:false"`
	EsProveedor     bool    `gorm:"not null;default:false"`
	PuedeOperarCaja bool    `gorm:"not null;default:false"`
	Activo          bool    `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Empresas []EmpresaEntidad `gorm:"foreignKey:EntidadID"`
}

func (Entidad) TableName() string { return "entidades" }

// EmpresaEntidad relates an entidad to an empresa with a relationship-type
// tag. The same pair may appear once per tipo_relacion.
type EmpresaEntidad struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	EmpresaID    uint   `gorm:"not null;index"`
	EntidadID    uint   `gorm:"not null;index"`
	TipoRelacion string `gorm:"type:varchar(20);not null"`
	Activo       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time

	Empresa *Empresa `gorm:"foreignKey:EmpresaID"`
}

func (EmpresaEntidad) TableName() string { return "empresa_entidades" }
