package handler

import (
	"time"

	"bazaar/internal/domain"
	"bazaar/internal/service"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{ID: u.ID, Name: u.Name, Phone: u.PhoneNumber}
}

// ProductDTO is the JSON representation of a product listing.
type ProductDTO struct {
	ID          int64   `json:"id"`
	SellerID    int64   `json:"sellerId"`
	SellerName  string  `json:"sellerName,omitempty"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Stock       int64   `json:"stock"`
	Price       int64   `json:"price"`
}

func toProductDTO(p *domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		SellerID:    p.SellerID,
		Name:        p.Name,
		Description: p.Description,
		Stock:       p.Stock,
		Price:       p.Price,
	}
}

func toProductDTOs(products []domain.ProductDetail) []ProductDTO {
	dtos := make([]ProductDTO, len(products))
	for i, p := range products {
		dtos[i] = toProductDTO(&p.Product)
		dtos[i].SellerName = p.SellerName
	}
	return dtos
}

// PurchaseDTO is the JSON representation of a purchase with its buyer
// and product resolved.
type PurchaseDTO struct {
	ID          int64   `json:"id"`
	Buyer       UserDTO `json:"buyer"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   int64   `json:"unitPrice"`
	Date        string  `json:"date"`
	PaidDate    *string `json:"paidDate"`
}

func toPurchaseDTO(p domain.PurchaseDetail) PurchaseDTO {
	dto := PurchaseDTO{
		ID:          p.ID,
		Buyer:       UserDTO{ID: p.BuyerID, Name: p.BuyerName, Phone: p.BuyerPhone},
		ProductID:   p.ProductID,
		ProductName: p.ProductName,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
		Date:        p.PurchasedAt.Format(time.RFC3339),
	}
	if p.PaidAt != nil {
		paid := p.PaidAt.Format(time.RFC3339)
		dto.PaidDate = &paid
	}
	return dto
}

func toPurchaseDTOs(purchases []domain.PurchaseDetail) []PurchaseDTO {
	dtos := make([]PurchaseDTO, len(purchases))
	for i, p := range purchases {
		dtos[i] = toPurchaseDTO(p)
	}
	return dtos
}

// BuyerGroupDTO is one group of the seller summary.
type BuyerGroupDTO struct {
	Buyer     UserDTO       `json:"buyer"`
	AmountDue int64         `json:"amountDue"`
	Purchases []PurchaseDTO `json:"purchases"`
}

func toBuyerGroupDTOs(groups []service.BuyerGroup) []BuyerGroupDTO {
	dtos := make([]BuyerGroupDTO, len(groups))
	for i, g := range groups {
		dtos[i] = BuyerGroupDTO{
			Buyer:     UserDTO{ID: g.BuyerID, Name: g.BuyerName, Phone: g.BuyerPhone},
			AmountDue: g.AmountDue,
			Purchases: toPurchaseDTOs(g.Purchases),
		}
	}
	return dtos
}
