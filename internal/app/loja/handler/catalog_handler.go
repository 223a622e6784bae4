package handler

import (
	"errors"
	"net/http"
	"strconv"

	"lojamoz/internal/app/loja/entity"
	"lojamoz/internal/app/loja/repository"
	"lojamoz/internal/app/loja/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
	validator      *validator.Validate
}

func NewCatalogHandler(catalogService service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		validator:      validator.New(),
	}
}

// GetCategories handles GET /categories, served through the Redis
// cache when warm.
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.GetAllCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar categorias"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /admin/categories.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req entity.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar categoria"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// GetProducts handles GET /products with optional categoria_id and
// busca filters. Only active products are listed.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	filter := repository.ProductFilter{
		ActiveOnly: true,
		Search:     c.Query("busca"),
	}

	if categoryStr := c.Query("categoria_id"); categoryStr != "" {
		categoryID, err := strconv.ParseUint(categoryStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Categoria inválida"})
			return
		}
		id := uint(categoryID)
		filter.CategoryID = &id
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar produtos"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar produto"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /admin/products.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req entity.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Categoria não encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar produto"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /admin/products/:id with partial updates.
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req entity.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		case errors.Is(err, service.ErrCategoryNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Categoria não encontrada"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar produto"})
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /admin/products/:id. Products still
// referenced by order items come back as a conflict.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.catalogService.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Produto não encontrado"})
		case errors.Is(err, service.ErrProductInUse):
			c.JSON(http.StatusConflict, gin.H{"error": "Produto não pode ser excluído pois está associado a pedidos"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao excluir produto"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensagem": "Produto excluído com sucesso"})
}

// SyncExternal handles POST /admin/sync.
func (h *CatalogHandler) SyncExternal(c *gin.Context) {
	if err := h.catalogService.SyncExternal(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao sincronizar dados"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensagem": "Dados sincronizados com sucesso!"})
}

// SyncPortuguese handles POST /admin/sync-portugues, reloading the
// built-in catalog.
func (h *CatalogHandler) SyncPortuguese(c *gin.Context) {
	if err := h.catalogService.SyncPortuguese(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao sincronizar produtos em português"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensagem": "Produtos em português sincronizados com sucesso!"})
}

// Status handles GET /status.
func (h *CatalogHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.Status(c.Request.Context()))
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return 0, false
	}
	return uint(id), true
}

func formatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			switch fieldError.Tag() {
			case "required":
				return "Campo " + fieldError.Field() + " é obrigatório"
			case "email":
				return "Campo " + fieldError.Field() + " deve ser um email válido"
			case "min":
				return "Campo " + fieldError.Field() + " deve ter no mínimo " + fieldError.Param() + " caracteres"
			default:
				return "Campo " + fieldError.Field() + " inválido"
			}
		}
	}
	return "Dados inválidos"
}
