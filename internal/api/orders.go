// internal/api/orders.go
package api

import (
	"context"
	"net/http"

	"github.com/javajoker/dukan-admin/internal/models"
	"github.com/javajoker/dukan-admin/internal/session"
)

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.Do(ctx, http.MethodGet, "/api/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus changes the status of one line item of order orderID.
func (c *Client) UpdateOrderStatus(ctx context.Context, sess *session.Session, orderID, itemID string, status models.OrderStatus) error {
	body := models.OrderStatusUpdate{
		OrderID: itemID,
		Status:  status,
	}
	return c.Do(ctx, http.MethodPut, "/api/order/"+escape(orderID), body, sess, nil)
}
