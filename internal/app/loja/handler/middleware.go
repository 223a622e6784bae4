package handler

import (
	"net/http"
	"strings"

	"lojamoz/internal/app/loja/service"
	"lojamoz/internal/app/loja/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards routes with the two token schemes. Shopper
// tokens are trusted as-is for their lifetime; console tokens are
// resolved to a live admin row on every request.
type AuthMiddleware struct {
	tokenManager *util.TokenManager
	adminService service.AdminServiceInterface
}

func NewAuthMiddleware(tokenManager *util.TokenManager, adminService service.AdminServiceInterface) *AuthMiddleware {
	return &AuthMiddleware{
		tokenManager: tokenManager,
		adminService: adminService,
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// RequireUser rejects requests without a valid shopper token and puts
// user_id, email and is_admin into the gin context.
func (m *AuthMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token de autenticação necessário"})
			c.Abort()
			return
		}

		claims, err := m.tokenManager.ValidateUserToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido ou expirado"})
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido ou expirado"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("email", claims.Email)
		c.Set("is_admin", claims.IsAdmin)
		c.Next()
	}
}

// OptionalUser attaches the shopper identity when a valid token is
// present and silently continues otherwise. Checkout uses it so guests
// and broken tokens still order.
func (m *AuthMiddleware) OptionalUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.tokenManager.ValidateUserToken(token)
		if err != nil {
			c.Next()
			return
		}

		if userID, err := claims.UserID(); err == nil {
			c.Set("user_id", userID)
			c.Set("email", claims.Email)
		}
		c.Next()
	}
}

// RequireAdmin validates the console token and re-checks the admin
// against the database, so revoked accounts lose access immediately.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token de autenticação necessário"})
			c.Abort()
			return
		}

		claims, err := m.tokenManager.ValidateAdminToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido ou expirado"})
			c.Abort()
			return
		}

		admin, err := m.adminService.Verify(c.Request.Context(), claims.AdminID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido ou expirado"})
			c.Abort()
			return
		}

		c.Set("admin_id", admin.ID)
		c.Set("admin_username", admin.Username)
		c.Next()
	}
}
