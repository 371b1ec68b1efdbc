// internal/models/common.go
package models

// Enums
type Size string

const (
	SizeS  Size = "S"
	SizeM  Size = "M"
	SizeL  Size = "L"
	SizeXL Size = "XL"
)

// Sizes lists every size in display order.
var Sizes = []Size{SizeS, SizeM, SizeL, SizeXL}

func (s Size) Valid() bool {
	switch s {
	case SizeS, SizeM, SizeL, SizeXL:
		return true
	}
	return false
}

// ProductCategories are the categories a product may be filed under.
var ProductCategories = []string{"Winter", "Summer", "Men", "Women", "Unisex", "Sweatshirt"}

func IsProductCategory(name string) bool {
	for _, c := range ProductCategories {
		if c == name {
			return true
		}
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancel    OrderStatus = "cancel"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancel:
		return true
	}
	return false
}

// IsTerminal reports whether no further status change is allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancel
}

type PosterKind string

const (
	PosterKindCategory PosterKind = "category"
	PosterKindSlide    PosterKind = "slide"
)

func (k PosterKind) Valid() bool {
	return k == PosterKindCategory || k == PosterKindSlide
}
