// internal/models/order.go
package models

import "strconv"

// Order groups the line items a user bought in one checkout.
type Order struct {
	ID          string      `json:"_id"`
	UserDetails UserDetails `json:"userDetails"`
	Orders      []LineItem  `json:"orders"`
}

type UserDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// LineItem is one product entry of an order. Status is tracked per item.
type LineItem struct {
	ID           string      `json:"_id"`
	ProductName  string      `json:"productName"`
	ProductImage string      `json:"productImage"`
	Quantity     int         `json:"quantity"`
	Price        float64     `json:"price"`
	Status       OrderStatus `json:"status"`
}

func (o Order) Item(id string) (LineItem, bool) {
	for _, item := range o.Orders {
		if item.ID == id {
			return item, true
		}
	}
	return LineItem{}, false
}

// WithItemStatus returns a copy of the order with one item's status replaced.
func (o Order) WithItemStatus(itemID string, status OrderStatus) Order {
	items := make([]LineItem, len(o.Orders))
	copy(items, o.Orders)
	for i := range items {
		if items[i].ID == itemID {
			items[i].Status = status
		}
	}
	o.Orders = items
	return o
}

func (i LineItem) PriceText() string {
	return strconv.FormatFloat(i.Price, 'f', -1, 64)
}

// OrderStatusUpdate is the body of PUT /api/order/{id}.
type OrderStatusUpdate struct {
	OrderID string      `json:"orderId"`
	Status  OrderStatus `json:"status"`
}
