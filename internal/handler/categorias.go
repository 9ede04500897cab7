package handler

import (
	"net/http"

	"cajacentral/internal/dto"
	"cajacentral/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriaHandler struct{ svc *service.CategoriaService }

func NewCategoriaHandler(svc *service.CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{svc: svc}
}

// Listar godoc
// @Summary Lista categorías de gasto con sus subcategorías
// @Tags categorias
// @Produce json
// @Security BearerAuth
// @Param activas query bool false "Solo categorías activas"
// @Success 200 {object} dto.ListResponse[dto.CategoriaResponse]
// @Router /api/categorias [get]
func (h *CategoriaHandler) Listar(c *gin.Context) {
	limit, offset := paginacion(c)
	soloActivas := false
	if v := queryBool(c, "activas"); v != nil {
		soloActivas = *v
	}
	categorias, total, err := h.svc.Listar(c.Request.Context(), soloActivas, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.CategoriaResponse, 0, len(categorias))
	for i := range categorias {
		items = append(items, categoriaResponse(&categorias[i]))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.CategoriaResponse]{
		Items:      items,
		Pagination: dto.NewPagination(total, limit, offset),
	})
}

// Obtener godoc
// @Summary Obtiene una categoría
// @Tags categorias
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Success 200 {object} dto.CategoriaResponse
// @Router /api/categorias/{id} [get]
func (h *CategoriaHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cat, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item(categoriaResponse(cat)))
}

// Crear godoc
// @Summary Crea una categoría
// @Tags categorias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearCategoriaRequest true "Categoría"
// @Success 201 {object} dto.CategoriaResponse
// @Router /api/categorias [post]
func (h *CategoriaHandler) Crear(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cat, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item(categoriaResponse(cat)))
}

// Actualizar godoc
// @Summary Actualiza una categoría
// @Tags categorias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Param body body dto.ActualizarCategoriaRequest true "Cambios"
// @Success 200 {object} dto.CategoriaResponse
// @Router /api/categorias/{id} [put]
func (h *CategoriaHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cat, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item(categoriaResponse(cat)))
}

// Eliminar godoc
// @Summary Elimina o desactiva una categoría
// @Tags categorias
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Success 200 {object} dto.CategoriaResponse
// @Success 204
// @Router /api/categorias/{id} [delete]
func (h *CategoriaHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cat, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if cat == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, item(categoriaResponse(cat)))
}

// ListarSubcategorias godoc
// @Summary Lista subcategorías, opcionalmente filtradas por categoría
// @Tags categorias
// @Produce json
// @Security BearerAuth
// @Param categoria_id query int false "Categoría padre"
// @Param activas query bool false "Solo subcategorías activas"
// @Success 200 {object} dto.ListResponse[dto.SubcategoriaResponse]
// @Router /api/subcategorias [get]
func (h *CategoriaHandler) ListarSubcategorias(c *gin.Context) {
	limit, offset := paginacion(c)
	soloActivas := false
	if v := queryBool(c, "activas"); v != nil {
		soloActivas = *v
	}
	subs, total, err := h.svc.ListarSubcategorias(c.Request.Context(), queryUint(c, "categoria_id"), soloActivas, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.SubcategoriaResponse, 0, len(subs))
	for i := range subs {
		items = append(items, subcategoriaResponse(&subs[i]))
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.SubcategoriaResponse]{
		Items:      items,
		Pagination: dto.NewPagination(total, limit, offset),
	})
}

// CrearSubcategoria godoc
// @Summary Crea una subcategoría
// @Tags categorias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearSubcategoriaRequest true "Subcategoría"
// @Success 201 {object} dto.SubcategoriaResponse
// @Router /api/subcategorias [post]
func (h *CategoriaHandler) CrearSubcategoria(c *gin.Context) {
	var req dto.CrearSubcategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sub, err := h.svc.CrearSubcategoria(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item(subcategoriaResponse(sub)))
}

// ActualizarSubcategoria godoc
// @Summary Actualiza una subcategoría
// @Tags categorias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Param body body dto.ActualizarSubcategoriaRequest true "Cambios"
// @Success 200 {object} dto.SubcategoriaResponse
// @Router /api/subcategorias/{id} [put]
func (h *CategoriaHandler) ActualizarSubcategoria(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarSubcategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sub, err := h.svc.ActualizarSubcategoria(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item(subcategoriaResponse(sub)))
}

// EliminarSubcategoria godoc
// @Summary Elimina o desactiva una subcategoría
// @Tags categorias
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID"
// @Success 200 {object} dto.SubcategoriaResponse
// @Success 204
// @Router /api/subcategorias/{id} [delete]
func (h *CategoriaHandler) EliminarSubcategoria(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sub, err := h.svc.EliminarSubcategoria(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if sub == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, item(subcategoriaResponse(sub)))
}
