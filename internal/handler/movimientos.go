package handler

import (
	"net/http"

	"cajacentral/internal/dto"
	"cajacentral/internal/service"

	"github.com/gin-gonic/gin"
)

type MovimientoHandler struct{ svc *service.MovimientoService }

func NewMovimientoHandler(svc *service.MovimientoService) *MovimientoHandler {
	return &MovimientoHandler{svc: svc}
}

// Listar godoc
// @Summary Lista movimientos con filtros
// @Tags movimientos
// @Produce json
// @Security BearerAuth
// @Param tipo query string false "Tipo de movimiento"
// @Param empresa_id query int false "Empresa"
// @Param corte_id query int false "Corte"
// @Param entidad_id query int false "Entidad"
// @Param cuenta_id query int false "Cuenta (origen o destino)"
// @Param fecha_desde query string false "AAAA-MM-DD"
// @Param fecha_hasta query string false "AAAA-MM-DD"
// @Success 200 {object} dto.ListResponse[dto.MovimientoResponse]
// @Router /api/movimientos [get]
func (h *MovimientoHandler) Listar(c *gin.Context) {
	limit, offset := paginacion(c)
	f := dto.MovimientoFilter{
		Tipo:       c.Query("tipo"),
		EmpresaID:  queryUint(c, "empresa_id"),
		CorteID:    queryUint(c, "corte_id"),
		EntidadID:  queryUint(c, "entidad_id"),
		CuentaID:   queryUint(c, "cuenta_id"),
		FechaDesde: queryFecha(c, "fecha_desde"),
		FechaHasta: queryFecha(c, "fecha_hasta"),
		Limit:      limit,
		Offset:     offset,
	}
	movs, total, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.MovimientoResponse, 0, len(movs))
	for i := range movs {
		items = append(items, movimientoResponse(&movs[i]))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.MovimientoResponse]{
		Items:      items,
		Pagination: dto.NewPagination(total, limit, offset),
	})
}

// Obtener godoc
// @Summary Obtiene un movimiento
// @Tags movimientos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Success 200 {object} dto.MovimientoResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/movimientos/{id} [get]
func (h *MovimientoHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item(movimientoResponse(m)))
}

// Crear godoc
// @Summary Registra un movimiento y aplica sus efectos
// @Tags movimientos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearMovimientoRequest true "Movimiento"
// @Success 201 {object} dto.MovimientoResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/movimientos [post]
func (h *MovimientoHandler) Crear(c *gin.Context) {
	var req dto.CrearMovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	m, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item(movimientoResponse(m)))
}

// Actualizar godoc
// @Summary Actualiza los campos descriptivos de un movimiento
// @Tags movimientos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Param body body dto.ActualizarMovimientoRequest true "Cambios"
// @Success 200 {object} dto.MovimientoResponse
// @Router /api/movimientos/{id} [put]
func (h *MovimientoHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarMovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	m, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item(movimientoResponse(m)))
}

// Eliminar godoc
// @Summary Elimina un movimiento revirtiendo todos sus efectos
// @Tags movimientos
// @Security BearerAuth
// @Param id path int true "ID"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /api/movimientos/{id} [delete]
func (h *MovimientoHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
