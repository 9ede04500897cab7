package handler

import (
	"net/http"

	"cajacentral/internal/dto"
	"cajacentral/internal/service"

	"github.com/gin-gonic/gin"
)

type EmpresaHandler struct{ svc *service.EmpresaService }

func NewEmpresaHandler(svc *service.EmpresaService) *EmpresaHandler {
	return &EmpresaHandler{svc: svc}
}

// Listar godoc
// @Summary Lista empresas
// @Tags empresas
// @Produce json
// @Security BearerAuth
// @Param activas query bool false "Solo empresas activas"
// @Success 200 {object} dto.ListResponse[dto.EmpresaResponse]
// @Router /api/empresas [get]
func (h *EmpresaHandler) Listar(c *gin.Context) {
	limit, offset := paginacion(c)
	soloActivas := false
	if v := queryBool(c, "activas"); v != nil {
		soloActivas = *v
	}
	empresas, total, err := h.svc.Listar(c.Request.Context(), soloActivas, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.EmpresaResponse, 0, len(empresas))
	for i := range empresas {
		items = append(items, empresaResponse(&empresas[i]))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.EmpresaResponse]{
		Items:      items,
		Pagination: dto.NewPagination(total, limit, offset),
	})
}

// Obtener godoc
// @Summary Obtiene una empresa
// @Tags empresas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Success 200 {object} dto.EmpresaResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/empresas/{id} [get]
func (h *EmpresaHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item(empresaResponse(e)))
}

// Crear godoc
// @Summary Crea una empresa
// @Tags empresas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearEmpresaRequest true "Empresa"
// @Success 201 {object} dto.EmpresaResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/empresas [post]
func (h *EmpresaHandler) Crear(c *gin.Context) {
	var req dto.CrearEmpresaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	e, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item(empresaResponse(e)))
}

// Actualizar godoc
// @Summary Actualiza una empresa
// @Tags empresas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Param body body dto.ActualizarEmpresaRequest true "Cambios"
// @Success 200 {object} dto.EmpresaResponse
// @Router /api/empresas/{id} [put]
func (h *EmpresaHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarEmpresaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	e, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item(empresaResponse(e)))
}

// Eliminar godoc
// @Summary Elimina o desactiva una empresa
// @Tags empresas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Success 200 {object} dto.EmpresaResponse
// @Success 204
// @Router /api/empresas/{id} [delete]
func (h *EmpresaHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if e == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, item(empresaResponse(e)))
}
