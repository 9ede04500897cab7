package dto

type CrearCategoriaRequest struct {
	Nombre      string  `json:"nombre" validate:"required,min=2"`
	Descripcion *string `json:"descripcion"`
}

type ActualizarCategoriaRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=2"`
	Descripcion *string `json:"descripcion"`
	Activo      *bool   `json:"activo"`
}

type SubcategoriaResponse struct {
	ID          uint   `json:"id"`
	CategoriaID uint   `json:"categoria_id"`
	Nombre      string `json:"nombre"`
	Activo      bool   `json:"activo"`
}

type CategoriaResponse struct {
	ID            uint                   `json:"id"`
	Nombre        string                 `json:"nombre"`
	Descripcion   *string                `json:"descripcion"`
	Activo        bool                   `json:"activo"`
	Subcategorias []SubcategoriaResponse `json:"subcategorias,omitempty"`
}

type CrearSubcategoriaRequest struct {
	CategoriaID uint   `json:"categoria_id" validate:"required"`
	Nombre      string `json:"nombre"       validate:"required,min=2"`
}

type ActualizarSubcategoriaRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=2"`
	Activo *bool   `json:"activo"`
}
