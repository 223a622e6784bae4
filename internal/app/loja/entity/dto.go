package entity

// Request and response shapes for the HTTP surface. JSON keys keep the
// Portuguese wire format of the original frontend.

type SignupRequest struct {
	Name      string `json:"nome" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"senha" validate:"required,min=6"`
	Phone     string `json:"telefone"`
	Address   string `json:"endereco"`
	BirthDate string `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
	Gender    string `json:"genero"`
	AvatarURL string `json:"avatar_url"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// UpdateProfileRequest uses pointers so absent fields stay untouched.
type UpdateProfileRequest struct {
	Name      *string `json:"nome,omitempty"`
	Phone     *string `json:"telefone,omitempty"`
	Address   *string `json:"endereco,omitempty"`
	BirthDate *string `json:"data_nascimento,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender    *string `json:"genero,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type CreateOrderRequest struct {
	Items         []OrderItemRequest `json:"itens" validate:"required,min=1,dive"`
	Total         float64            `json:"total" validate:"required,gte=0"`
	CustomerName  string             `json:"nome_cliente" validate:"required"`
	CustomerEmail string             `json:"email_cliente" validate:"required,email"`
	CustomerPhone string             `json:"telefone_cliente" validate:"required"`
	Address       string             `json:"endereco_entrega" validate:"required"`
	City          string             `json:"cidade_entrega" validate:"required"`
	PostalCode    string             `json:"cep_entrega" validate:"required"`
	Notes         string             `json:"observacoes"`
}

// OrderItemRequest is a cart line. Preco is the client-declared unit
// price, persisted verbatim.
type OrderItemRequest struct {
	ProductID uint    `json:"produto_id" validate:"required"`
	Quantity  int     `json:"quantidade" validate:"required,gt=0"`
	UnitPrice float64 `json:"preco" validate:"gte=0"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateProductRequest struct {
	Name        string  `json:"nome" validate:"required"`
	Description string  `json:"descricao" validate:"required"`
	Price       float64 `json:"preco" validate:"required,gte=0"`
	Stock       int     `json:"estoque" validate:"gte=0"`
	ImageURL    string  `json:"imagem_url"`
	CategoryID  uint    `json:"categoria_id" validate:"required"`
	Active      *bool   `json:"ativo,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"nome,omitempty"`
	Description *string  `json:"descricao,omitempty"`
	Price       *float64 `json:"preco,omitempty" validate:"omitempty,gte=0"`
	Stock       *int     `json:"estoque,omitempty" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"imagem_url,omitempty"`
	CategoryID  *uint    `json:"categoria_id,omitempty"`
	Active      *bool    `json:"ativo,omitempty"`
}

type CreateCategoryRequest struct {
	Name        string `json:"nome" validate:"required"`
	Description string `json:"descricao"`
}

type AddFavoriteRequest struct {
	ProductID uint `json:"produto_id" validate:"required"`
}

type UpdateUserActiveRequest struct {
	Active *bool `json:"ativo" validate:"required"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ProductResponse is a product plus its category name, scanned from a
// joined select.
type ProductResponse struct {
	Product      `gorm:"embedded"`
	CategoryName string `json:"categoria_nome" gorm:"column:categoria_nome"`
}

// FavoriteWithProduct is a favorite joined with its live product row.
// The inner join drops favorites whose product no longer exists.
type FavoriteWithProduct struct {
	Favorite     `gorm:"embedded"`
	ProductName  string  `json:"produto_nome" gorm:"column:produto_nome"`
	ProductPrice float64 `json:"produto_preco" gorm:"column:produto_preco"`
	ProductImage string  `json:"produto_imagem" gorm:"column:produto_imagem"`
	ProductStock int     `json:"produto_estoque" gorm:"column:produto_estoque"`
}

// OrderItemResponse enriches an item with the current product name and
// image; deleted products surface as "Produto removido".
type OrderItemResponse struct {
	ID           uint    `json:"id"`
	ProductID    uint    `json:"produto_id"`
	ProductName  string  `json:"produto_nome"`
	ProductImage string  `json:"produto_imagem"`
	Quantity     int     `json:"quantidade"`
	UnitPrice    float64 `json:"preco_unitario"`
}

type OrderResponse struct {
	ID            uint                `json:"id"`
	UserID        *uint               `json:"usuario_id,omitempty"`
	Total         float64             `json:"total"`
	Status        OrderStatus         `json:"status"`
	CustomerName  string              `json:"nome_cliente"`
	CustomerEmail string              `json:"email_cliente"`
	CustomerPhone string              `json:"telefone_cliente"`
	Address       string              `json:"endereco_entrega"`
	City          string              `json:"cidade_entrega"`
	PostalCode    string              `json:"cep_entrega"`
	Notes         string              `json:"observacoes"`
	CreatedAt     string              `json:"data_pedido"`
	UpdatedAt     string              `json:"data_atualizacao"`
	Items         []OrderItemResponse `json:"itens"`
}

// FavoriteResponse is a favorite enriched with the live product data.
type FavoriteResponse struct {
	ID           uint    `json:"id"`
	ProductID    uint    `json:"produto_id"`
	ProductName  string  `json:"produto_nome"`
	ProductPrice float64 `json:"produto_preco"`
	ProductImage string  `json:"produto_imagem"`
	ProductStock int     `json:"produto_estoque"`
	CreatedAt    string  `json:"data_favorito"`
}

// RecentOrder is the statistics payload's shortened order view.
type RecentOrder struct {
	ID           uint        `json:"id"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	CreatedAt    string      `json:"data_pedido"`
	CustomerName string      `json:"nome_cliente"`
}

// OrderStatistics is the admin aggregate report. Revenue counts only
// processando, enviado and entregue orders.
type OrderStatistics struct {
	TotalOrders  int64                 `json:"total_pedidos"`
	TotalRevenue float64               `json:"faturamento_total"`
	StatusCounts map[OrderStatus]int64 `json:"status_counts"`
	RecentOrders []RecentOrder         `json:"pedidos_recentes"`
}

// UserWithOrderCount is the admin user listing row.
type UserWithOrderCount struct {
	User        `gorm:"embedded"`
	TotalOrders int64 `json:"total_pedidos" gorm:"column:total_pedidos"`
}

// OrderEvent is published to Kafka after order mutations,
// best-effort. EventType is ORDER_CREATED or ORDER_STATUS_UPDATED.
type OrderEvent struct {
	EventType  string      `json:"event_type"`
	OrderID    uint        `json:"pedido_id"`
	UserID     *uint       `json:"usuario_id,omitempty"`
	Total      float64     `json:"total"`
	Status     OrderStatus `json:"status"`
	ItemsCount int         `json:"items_count"`
	Timestamp  string      `json:"timestamp"`
}

// ExternalProduct is one item of the Fake Store API payload.
type ExternalProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// StatusResponse reports local counts and external API reachability.
type StatusResponse struct {
	ExternalAPIOnline bool   `json:"api_externa_online"`
	LocalProducts     int64  `json:"produtos_locais"`
	LocalCategories   int64  `json:"categorias_locais"`
	LastSync          string `json:"ultima_sincronizacao"`
}
