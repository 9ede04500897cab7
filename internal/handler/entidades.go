package handler

import (
	"net/http"

	"cajacentral/internal/dto"
	"cajacentral/internal/model"
	"cajacentral/internal/service"

	"github.com/gin-gonic/gin"
)

// EntidadHandler serves /api/entidades plus the role-scoped views
// /api/empleados, /api/clientes and /api/proveedores. The scoped views are
// the same catalog filtered by role flag, with the flag forced on create.
type EntidadHandler struct {
	svc *service.EntidadService
	// rol pins the handler to one role; empty means the full catalog.
	rol string
}

func NewEntidadHandler(svc *service.EntidadService) *EntidadHandler {
	return &EntidadHandler{svc: svc}
}

func NewEntidadHandlerPorRol(svc *service.EntidadService, rol string) *EntidadHandler {
	return &EntidadHandler{svc: svc, rol: rol}
}

// Listar godoc
// @Summary Lista entidades (empleados, clientes, proveedores)
// @Tags entidades
// @Produce json
// @Security BearerAuth
// @Param activas query bool false "Solo entidades activas"
// @Param busqueda query string false "Búsqueda por nombre"
// @Param empresa_id query int false "Filtra por empresa relacionada"
// @Success 200 {object} dto.ListResponse[dto.EntidadResponse]
// @Router /api/entidades [get]
func (h *EntidadHandler) Listar(c *gin.Context) {
	limit, offset := paginacion(c)
	f := dto.EntidadFilter{
		Rol:       h.rol,
		Activo:    queryBool(c, "activas"),
		Busqueda:  c.Query("busqueda"),
		EmpresaID: queryUint(c, "empresa_id"),
		Limit:     limit,
		Offset:    offset,
	}
	entidades, total, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.EntidadResponse, 0, len(entidades))
	for i := range entidades {
		items = append(items, entidadResponse(&entidades[i]))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.EntidadResponse]{
		Items:      items,
		Pagination: dto.NewPagination(total, limit, offset),
	})
}

// Obtener godoc
// @Summary Obtiene una entidad con sus relaciones de empresa
// @Tags entidades
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Success 200 {object} dto.EntidadResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/entidades/{id} [get]
func (h *EntidadHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item(entidadResponse(e)))
}

// Crear godoc
// @Summary Crea una entidad con al menos un rol
// @Tags entidades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearEntidadRequest true "Entidad"
// @Success 201 {object} dto.EntidadResponse
// @Failure 400 {object} apierror.ValidationError
// @Router /api/entidades [post]
func (h *EntidadHandler) Crear(c *gin.Context) {
	var req dto.CrearEntidadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	// The scoped views force their own role flag.
	switch h.rol {
	case model.RelacionEmpleado:
		req.EsEmpleado = true
	case model.RelacionCliente:
		req.EsCliente = true
	case model.RelacionProveedor:
		req.EsProveedor = true
	}
	e, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item(entidadResponse(e)))
}

// Actualizar godoc
// @Summary Actualiza una entidad
// @Tags entidades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Param body body dto.ActualizarEntidadRequest true "Cambios"
// @Success 200 {object} dto.EntidadResponse
// @Router /api/entidades/{id} [put]
func (h *EntidadHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarEntidadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	e, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item(entidadResponse(e)))
}

// Eliminar godoc
// @Summary Elimina o desactiva una entidad
// @Tags entidades
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Success 200 {object} dto.EntidadResponse
// @Success 204
// @Router /api/entidades/{id} [delete]
func (h *EntidadHandler) Eliminar(c *gin.Context) {
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
	c.JSON(http.StatusOK, item(entidadResponse(e)))
}

// Saldos godoc
// @Summary Lista los saldos (por cobrar, por pagar, préstamos) de una entidad
// @Tags entidades
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Success 200 {array} model.Saldo
// @Router /api/entidades/{id}/saldos [get]
func (h *EntidadHandler) Saldos(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	saldos, err := h.svc.Saldos(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": saldos})
}
