package handler

import (
	"errors"
	"net/http"

	"lojamoz/internal/app/loja/entity"
	"lojamoz/internal/app/loja/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AdminHandler struct {
	adminService service.AdminServiceInterface
	validator    *validator.Validate
}

func NewAdminHandler(adminService service.AdminServiceInterface) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		validator:    validator.New(),
	}
}

// Login handles POST /admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req entity.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	admin, token, err := h.adminService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao fazer login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensagem": "Login realizado com sucesso!",
		"token":    token,
		"admin":    admin,
	})
}

// Verify handles GET /admin/verify. RequireAdmin already resolved the
// account, so reaching here means the token is good.
func (h *AdminHandler) Verify(c *gin.Context) {
	adminID := c.GetUint("admin_id")

	admin, err := h.adminService.Verify(c.Request.Context(), adminID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido ou expirado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valido": true,
		"admin":  admin,
	})
}
