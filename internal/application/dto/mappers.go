package dto

import (
	"github.com/jhoicas/Veterinaria-api/internal/domain/entity"
	"github.com/jhoicas/Veterinaria-api/internal/domain/repository"
)

// ToProductResponse convierte la entidad en su DTO de salida.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Stock:      p.Stock,
		CategoryID: p.CategoryID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ToProductList convierte una lista de productos.
func ToProductList(list []*entity.Product) []ProductResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return items
}

func ToCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func ToStockMovementResponse(m *entity.StockMovement) *StockMovementResponse {
	if m == nil {
		return nil
	}
	return &StockMovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		Delta:       m.Delta,
		Reason:      m.Reason,
		StockBefore: m.StockBefore,
		StockAfter:  m.StockAfter,
		SaleID:      m.SaleID,
		CreatedAt:   m.CreatedAt,
	}
}

// ToSaleResponse convierte una venta; productName puede venir vacío.
func ToSaleResponse(s *entity.Sale, productName string) *SaleResponse {
	if s == nil {
		return nil
	}
	return &SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		ProductName: productName,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		Total:       s.Total(),
		CreatedAt:   s.CreatedAt,
	}
}

func ToSaleRecordResponse(r *repository.SaleRecord) *SaleResponse {
	if r == nil {
		return nil
	}
	return ToSaleResponse(&r.Sale, r.ProductName)
}

func ToDeletedProductResponse(d *entity.DeletedProduct) *DeletedProductResponse {
	if d == nil {
		return nil
	}
	return &DeletedProductResponse{
		ID:           d.ID,
		ProductID:    d.ProductID,
		Name:         d.Name,
		Price:        d.Price,
		Stock:        d.Stock,
		CategoryName: d.CategoryName,
		DeletedAt:    d.DeletedAt,
	}
}

func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{ID: u.ID, Username: u.Username, Role: u.Role}
}
