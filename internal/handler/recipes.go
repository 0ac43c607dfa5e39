package handler

import (
	"net/http"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/apierror"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/dto"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RecipesHandler struct{ svc service.RecipeService }

func NewRecipesHandler(svc service.RecipeService) *RecipesHandler {
	return &RecipesHandler{svc: svc}
}

// List godoc
// @Summary List recipes
// @Tags recipes
// @Produce json
// @Param search query string false "Name substring"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.RecipeListResponse
// @Security BearerAuth
// @Router /api/recipes [get]
func (h *RecipesHandler) List(c *gin.Context) {
	var filter dto.RecipeFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Create a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param body body dto.RecipeRequest true "Recipe"
// @Success 200 {object} dto.RecipeResponse
// @Security BearerAuth
// @Router /api/recipes [post]
func (h *RecipesHandler) Create(c *gin.Context) {
	var req dto.RecipeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Replace a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe_id path string true "Recipe id"
// @Param body body dto.RecipeRequest true "Recipe"
// @Success 200 {object} dto.RecipeResponse
// @Failure 404 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/recipes/{recipe_id} [put]
func (h *RecipesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("recipe_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid recipe id"))
		return
	}
	var req dto.RecipeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a recipe
// @Tags recipes
// @Produce json
// @Param recipe_id path string true "Recipe id"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Security BearerAuth
// @Router /api/recipes/{recipe_id} [delete]
func (h *RecipesHandler) Delete(c *gin.Context) {
	raw := c.Param("recipe_id")
	// The frontend occasionally sends the literal string "undefined" when a
	// row has no id bound yet; treat it like any malformed id.
	if raw == "" || raw == "undefined" {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid recipe id"))
		return
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid recipe id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}
