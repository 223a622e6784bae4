package handler

import (
	"errors"
	"net/http"

	"lojamoz/internal/app/loja/entity"
	"lojamoz/internal/app/loja/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FavoriteHandler struct {
	favoriteService service.FavoriteServiceInterface
	validator       *validator.Validate
}

func NewFavoriteHandler(favoriteService service.FavoriteServiceInterface) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		validator:       validator.New(),
	}
}

// AddFavorite handles POST /favorites.
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req entity.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	favorite, err := h.favoriteService.AddFavorite(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		case errors.Is(err, service.ErrFavoriteExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Produto já está nos favoritos"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao adicionar favorito"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"mensagem": "Produto adicionado aos favoritos!",
		"favorito": favorite,
	})
}

// RemoveFavorite handles DELETE /favorites/:produto_id.
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID := c.GetUint("user_id")

	productID, ok := parseIDParam(c, "produto_id")
	if !ok {
		return
	}

	err := h.favoriteService.RemoveFavorite(c.Request.Context(), userID, productID)
	if err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favorito não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao remover favorito"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensagem": "Produto removido dos favoritos!"})
}

// ListFavorites handles GET /favorites, joined with live product data.
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID := c.GetUint("user_id")

	favorites, err := h.favoriteService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar favoritos"})
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// CheckFavorite handles GET /favorites/:produto_id/status.
func (h *FavoriteHandler) CheckFavorite(c *gin.Context) {
	userID := c.GetUint("user_id")

	productID, ok := parseIDParam(c, "produto_id")
	if !ok {
		return
	}

	isFavorite, err := h.favoriteService.IsFavorite(c.Request.Context(), userID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao verificar favorito"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_favorito": isFavorite})
}
