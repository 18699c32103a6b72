package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"notblank,max=100"`
	Price      decimal.Decimal `json:"price" validate:"gte=0,lt=1000000000000"`
	Stock      int             `json:"stock" validate:"gte=0,lte=2147483647"`
	CategoryID string          `json:"category_id" validate:"omitempty,uuid"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock: se maneja vía ajustes).
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,max=100"`
	Price      *decimal.Decimal `json:"price" validate:"omitempty,gte=0,lt=1000000000000"`
	CategoryID *string          `json:"category_id" validate:"omitempty"`
}

// ProductFilterRequest filtros de listado (query string).
type ProductFilterRequest struct {
	Name       string `query:"q"`
	InStock    bool   `query:"in_stock"`
	CategoryID string `query:"category_id" validate:"omitempty,uuid"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	CategoryID string          `json:"category_id,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// LowStockResponse productos bajo el umbral de reposición.
type LowStockResponse struct {
	Threshold int               `json:"threshold"`
	Items     []ProductResponse `json:"items"`
}

// DeletedProductResponse entrada del archivo de productos eliminados.
type DeletedProductResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CategoryName string          `json:"category_name,omitempty"`
	DeletedAt    time.Time       `json:"deleted_at"`
}
