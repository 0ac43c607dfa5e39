package handler

import (
	"net/http"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/apierror"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/dto"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Token godoc
// @Summary Exchange credentials for a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Accept json
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} apierror.APIError
// @Router /api/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	// The login form posts urlencoded fields; ShouldBind also accepts JSON
	// bodies so scripted clients work either way.
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid credentials payload"))
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Username and password are required"))
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
