package dto

type CrearEmpresaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=2"`
}

type ActualizarEmpresaRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=2"`
	Activo *bool   `json:"activo"`
}

type EmpresaResponse struct {
	ID        uint   `json:"id"`
	Nombre    string `json:"nombre"`
	Activo    bool   `json:"activo"`
	CreatedAt string `json:"created_at"`
}
