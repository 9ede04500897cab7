package handler

import (
	"net/http"

	"cajacentral/internal/dto"
	"cajacentral/internal/service"

	"github.com/gin-gonic/gin"
)

type CuentaHandler struct{ svc *service.CuentaService }

func NewCuentaHandler(svc *service.CuentaService) *CuentaHandler {
	return &CuentaHandler{svc: svc}
}

// Listar godoc
// @Summary Lista cuentas de dinero
// @Tags cuentas
// @Produce json
// @Security BearerAuth
// @Param activas query bool false "Solo cuentas activas"
// @Success 200 {object} dto.ListResponse[dto.CuentaResponse]
// @Router /api/cuentas [get]
func (h *CuentaHandler) Listar(c *gin.Context) {
	limit, offset := paginacion(c)
	soloActivas := false
	if v := queryBool(c, "activas"); v != nil {
		soloActivas = *v
	}
	cuentas, total, err := h.svc.Listar(c.Request.Context(), soloActivas, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.CuentaResponse, 0, len(cuentas))
	for i := range cuentas {
		items = append(items, cuentaResponse(&cuentas[i]))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.CuentaResponse]{
		Items:      items,
		Pagination: dto.NewPagination(total, limit, offset),
	})
}

// Obtener godoc
// @Summary Obtiene una cuenta
// @Tags cuentas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Success 200 {object} dto.CuentaResponse
// @Router /api/cuentas/{id} [get]
func (h *CuentaHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cta, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item(cuentaResponse(cta)))
}

// Crear godoc
// @Summary Crea una cuenta
// @Tags cuentas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearCuentaRequest true "Cuenta"
// @Success 201 {object} dto.CuentaResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/cuentas [post]
func (h *CuentaHandler) Crear(c *gin.Context) {
	var req dto.CrearCuentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cta, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item(cuentaResponse(cta)))
}

// Actualizar godoc
// @Summary Actualiza una cuenta (campos descriptivos)
// @Tags cuentas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Param body body dto.ActualizarCuentaRequest true "Cambios"
// @Success 200 {object} dto.CuentaResponse
// @Router /api/cuentas/{id} [put]
func (h *CuentaHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarCuentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cta, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item(cuentaResponse(cta)))
}

// Eliminar godoc
// @Summary Elimina o desactiva una cuenta
// @Tags cuentas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Success 200 {object} dto.CuentaResponse
// @Success 204
// @Router /api/cuentas/{id} [delete]
func (h *CuentaHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cta, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if cta == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, item(cuentaResponse(cta)))
}
