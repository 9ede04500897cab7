package model

import "time"

// Categoria is the first level of the expense taxonomy.
type Categoria struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Nombre      string  `gorm:"not null;index"`
	Descripcion *string
	Activo      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Subcategorias []Subcategoria `gorm:"foreignKey:CategoriaID"`
}

func (Categoria) TableName() string { return "categorias" }

// Subcategoria is the second (and last) level of the expense taxonomy.
type Subcategoria struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	CategoriaID uint   `gorm:"not null;index"`
	Nombre      string `gorm:"not null"`
	Activo      bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Subcategoria) TableName() string { return "subcategorias" }
