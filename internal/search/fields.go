// internal/search/fields.go
package search

import (
	"strconv"

	"github.com/javajoker/dukan-admin/internal/models"
)

func ProductFields(p models.Product) []string {
	fields := []string{p.Name, p.PriceText()}
	return append(fields, p.CategoryNames()...)
}

func OrderFields(o models.Order) []string {
	fields := []string{o.ID, o.UserDetails.Email, o.UserDetails.Phone}
	for _, item := range o.Orders {
		fields = append(fields, item.ProductName)
	}
	return fields
}

func PosterFields(p models.Poster) []string {
	return []string{p.Name, p.Path, strconv.Itoa(p.SrNo)}
}

// OrderRow is one line of the orders table: a line item with its owning order.
type OrderRow struct {
	Order models.Order    `json:"order"`
	Item  models.LineItem `json:"item"`
}

func OrderRowFields(r OrderRow) []string {
	return []string{
		r.Order.ID,
		r.Item.ID,
		r.Order.UserDetails.Email,
		r.Order.UserDetails.Phone,
		r.Item.ProductName,
	}
}

// FilterLineItems flattens orders into table rows and keeps the rows matching
// query, in order-then-item order.
func FilterLineItems(orders []models.Order, query string) []OrderRow {
	rows := make([]OrderRow, 0, len(orders))
	for _, o := range orders {
		for _, item := range o.Orders {
			rows = append(rows, OrderRow{Order: o, Item: item})
		}
	}
	return Filter(rows, query, OrderRowFields)
}
