package entity

import (
	"time"
)

// Column and table names follow the original loja schema so an
// existing database keeps working; JSON tags keep the Portuguese wire
// format the mobile frontend speaks.

// Category groups products.
type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"nome" gorm:"column:nome;size:100;not null"`
	Description string `json:"descricao" gorm:"column:descricao"`
}

func (Category) TableName() string {
	return "categoria"
}

// Product is a catalog entry. Inactive products are hidden from the
// public listing but stay referenced by past order items.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"nome" gorm:"column:nome;size:200;not null"`
	Description string    `json:"descricao" gorm:"column:descricao"`
	Price       float64   `json:"preco" gorm:"column:preco;not null"`
	Stock       int       `json:"estoque" gorm:"column:estoque;default:0"`
	ImageURL    string    `json:"imagem_url" gorm:"column:imagem_url;size:500"`
	CategoryID  uint      `json:"categoria_id" gorm:"column:categoria_id"`
	Active      bool      `json:"ativo" gorm:"column:ativo;default:true"`
	CreatedAt   time.Time `json:"data_criacao" gorm:"column:data_criacao;autoCreateTime"`
}

func (Product) TableName() string {
	return "produto"
}

// User is a shopper account. Never hard-deleted; admins flip Active.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"nome" gorm:"column:nome;size:100;not null"`
	Email        string     `json:"email" gorm:"column:email;size:120;uniqueIndex;not null"`
	Phone        string     `json:"telefone" gorm:"column:telefone;size:20"`
	Address      string     `json:"endereco" gorm:"column:endereco"`
	PasswordHash string     `json:"-" gorm:"column:senha_hash;size:128"`
	IsAdmin      bool       `json:"is_admin" gorm:"column:is_admin;default:false"`
	BirthDate    *time.Time `json:"data_nascimento" gorm:"column:data_nascimento"`
	Gender       string     `json:"genero" gorm:"column:genero;size:10"`
	AvatarURL    string     `json:"avatar_url" gorm:"column:avatar_url;size:200"`
	Active       bool       `json:"ativo" gorm:"column:ativo;default:true"`
	CreatedAt    time.Time  `json:"data_criacao" gorm:"column:data_criacao;autoCreateTime"`
}

func (User) TableName() string {
	return "usuario"
}

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	OrderStatusPendente    OrderStatus = "pendente"
	OrderStatusProcessando OrderStatus = "processando"
	OrderStatusEnviado     OrderStatus = "enviado"
	OrderStatusEntregue    OrderStatus = "entregue"
	OrderStatusCancelado   OrderStatus = "cancelado"
)

// ValidOrderStatuses lists every accepted status, in lifecycle order.
var ValidOrderStatuses = []OrderStatus{
	OrderStatusPendente,
	OrderStatusProcessando,
	OrderStatusEnviado,
	OrderStatusEntregue,
	OrderStatusCancelado,
}

// IsValid reports whether s is one of the five defined statuses.
func (s OrderStatus) IsValid() bool {
	for _, valid := range ValidOrderStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Order is created atomically with its items at checkout. UserID is
// nil for guest orders. Total is the client-declared amount, frozen at
// creation time.
type Order struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	UserID        *uint       `json:"usuario_id" gorm:"column:usuario_id"`
	Total         float64     `json:"total" gorm:"column:total;not null"`
	Status        OrderStatus `json:"status" gorm:"column:status;size:50;default:'pendente'"`
	CustomerName  string      `json:"nome_cliente" gorm:"column:nome_cliente;size:100"`
	CustomerEmail string      `json:"email_cliente" gorm:"column:email_cliente;size:120"`
	CustomerPhone string      `json:"telefone_cliente" gorm:"column:telefone_cliente;size:20"`
	Address       string      `json:"endereco_entrega" gorm:"column:endereco_entrega"`
	City          string      `json:"cidade_entrega" gorm:"column:cidade_entrega;size:100"`
	PostalCode    string      `json:"cep_entrega" gorm:"column:cep_entrega;size:10"`
	Notes         string      `json:"observacoes" gorm:"column:observacoes"`
	CreatedAt     time.Time   `json:"data_pedido" gorm:"column:data_pedido;autoCreateTime"`
	UpdatedAt     time.Time   `json:"data_atualizacao" gorm:"column:data_atualizacao;autoUpdateTime"`
	Items         []OrderItem `json:"itens,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "pedido"
}

// OrderItem snapshots quantity and unit price at order time; later
// product price changes never touch it.
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"pedido_id" gorm:"column:pedido_id;not null"`
	ProductID uint    `json:"produto_id" gorm:"column:produto_id;not null"`
	Quantity  int     `json:"quantidade" gorm:"column:quantidade;not null"`
	UnitPrice float64 `json:"preco_unitario" gorm:"column:preco_unitario;not null"`
}

func (OrderItem) TableName() string {
	return "item_pedido"
}

// Favorite links a user to a product. The (user, product) pair is
// unique; concurrent duplicate inserts lose on the index.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"usuario_id" gorm:"column:usuario_id;not null;uniqueIndex:unique_favorito"`
	ProductID uint      `json:"produto_id" gorm:"column:produto_id;not null;uniqueIndex:unique_favorito"`
	CreatedAt time.Time `json:"data_favorito" gorm:"column:data_favorito;autoCreateTime"`
}

func (Favorite) TableName() string {
	return "favorito"
}

// Admin is a console account, created by seeding and mutated only by
// login stamping or manual operations.
type Admin struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"column:username;size:50;uniqueIndex;not null"`
	Email        string     `json:"email" gorm:"column:email;size:120;uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"column:senha_hash;size:128;not null"`
	Active       bool       `json:"ativo" gorm:"column:ativo;default:true"`
	CreatedAt    time.Time  `json:"data_criacao" gorm:"column:data_criacao;autoCreateTime"`
	LastLogin    *time.Time `json:"ultimo_login" gorm:"column:ultimo_login"`
}

func (Admin) TableName() string {
	return "administrador"
}
