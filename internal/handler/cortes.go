package handler

import (
	"net/http"

	"cajacentral/internal/dto"
	"cajacentral/internal/service"

	"github.com/gin-gonic/gin"
)

type CorteHandler struct{ svc *service.CorteService }

func NewCorteHandler(svc *service.CorteService) *CorteHandler { return &CorteHandler{svc: svc} }

// Listar godoc
// @Summary Lista cortes de caja
// @Tags cortes
// @Produce json
// @Security BearerAuth
// @Param empresa_id query int false "Empresa"
// @Param empleado_id query int false "Empleado"
// @Param estado query string false "activo | cerrado"
// @Param fecha_desde query string false "AAAA-MM-DD"
// @Param fecha_hasta query string false "AAAA-MM-DD"
// @Success 200 {object} dto.ListResponse[dto.CorteResponse]
// @Router /api/cortes [get]
func (h *CorteHandler) Listar(c *gin.Context) {
	limit, offset := paginacion(c)
	f := dto.CorteFilter{
		EmpresaID:  queryUint(c, "empresa_id"),
		EmpleadoID: queryUint(c, "empleado_id"),
		Estado:     c.Query("estado"),
		FechaDesde: queryFecha(c, "fecha_desde"),
		FechaHasta: queryFecha(c, "fecha_hasta"),
		Limit:      limit,
		Offset:     offset,
	}
	cortes, total, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.CorteResponse, 0, len(cortes))
	for i := range cortes {
		items = append(items, corteResponse(&cortes[i]))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.CorteResponse]{
		Items:      items,
		Pagination: dto.NewPagination(total, limit, offset),
	})
}

// Obtener godoc
// @Summary Obtiene un corte con sus totales derivados
// @Tags cortes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Success 200 {object} dto.CorteResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/cortes/{id} [get]
func (h *CorteHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	corte, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item(corteResponse(corte)))
}

// Crear godoc
// @Summary Registra el corte de un turno con sus movimientos
// @Tags cortes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearCorteRequest true "Corte y movimientos"
// @Success 201 {object} dto.CorteResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/cortes [post]
func (h *CorteHandler) Crear(c *gin.Context) {
	var req dto.CrearCorteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	corte, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item(corteResponse(corte)))
}

// Actualizar godoc
// @Summary Recaptura venta neta o efectivo contado y recalcula el corte
// @Tags cortes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Param body body dto.ActualizarCorteRequest true "Cambios"
// @Success 200 {object} dto.CorteResponse
// @Router /api/cortes/{id} [put]
func (h *CorteHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarCorteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	corte, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item(corteResponse(corte)))
}

// Eliminar godoc
// @Summary Elimina (soft) un corte
// @Tags cortes
// @Security BearerAuth
// @Param id path int true "ID"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /api/cortes/{id} [delete]
func (h *CorteHandler) Eliminar(c *gin.Context) {
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

// EnviarReporte godoc
// @Summary Encola el reporte PDF del corte para envío por correo
// @Tags cortes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Param body body dto.EnviarReporteRequest true "Destinatario"
// @Success 202 {object} map[string]string
// @Router /api/cortes/{id}/enviar-reporte [post]
func (h *CorteHandler) EnviarReporte(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.EnviarReporteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EnviarReporte(c.Request.Context(), id, req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"detail": "reporte encolado"})
}
