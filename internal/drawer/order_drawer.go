// internal/drawer/order_drawer.go
package drawer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/javajoker/dukan-admin/internal/models"
	"github.com/javajoker/dukan-admin/internal/session"
)

var (
	ErrTerminal        = errors.New("order item is delivered or cancelled")
	ErrConfirmRequired = errors.New("cancelling needs an explicit confirmation")
	ErrNoPendingCancel = errors.New("no cancellation awaiting confirmation")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrItemNotFound    = errors.New("order item not found")
)

// SelectableStatuses are offered by the status selector. Cancel has its own
// confirm-gated action.
var SelectableStatuses = []models.OrderStatus{
	models.OrderStatusPending,
	models.OrderStatusShipped,
	models.OrderStatusDelivered,
}

var statusLabels = map[models.OrderStatus]string{
	models.OrderStatusPending:   "Pending",
	models.OrderStatusShipped:   "Shipped",
	models.OrderStatusDelivered: "Delivered",
	models.OrderStatusCancel:    "Cancelled",
}

func StatusLabel(s models.OrderStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

type StatusUpdater interface {
	UpdateOrderStatus(ctx context.Context, sess *session.Session, orderID, itemID string, status models.OrderStatus) error
}

type StatusOption struct {
	Value models.OrderStatus `json:"value"`
	Label string             `json:"label"`
}

// Detail is the read-only view of the drawer.
type Detail struct {
	OrderID      string             `json:"orderId"`
	ItemID       string             `json:"itemId"`
	ProductName  string             `json:"productName"`
	ProductImage string             `json:"productImage"`
	Quantity     int                `json:"quantity"`
	Price        float64            `json:"price"`
	Status       models.OrderStatus `json:"status"`
	Customer     models.UserDetails `json:"customer"`

	ShowStatusSelector bool           `json:"showStatusSelector"`
	StatusOptions      []StatusOption `json:"statusOptions,omitempty"`
	ShowCancel         bool           `json:"showCancel"`
	CancelPending      bool           `json:"cancelPending"`
	StaticLabel        string         `json:"staticLabel,omitempty"`
}

// OrderDrawer shows one line item of an order and issues status changes for
// it. Every change is sent immediately; nothing is batched.
type OrderDrawer struct {
	mu            sync.Mutex
	order         models.Order
	itemID        string
	updater       StatusUpdater
	cancelPending bool
}

func Open(order models.Order, itemID string, updater StatusUpdater) (*OrderDrawer, error) {
	if _, ok := order.Item(itemID); !ok {
		return nil, fmt.Errorf("%w: %s in order %s", ErrItemNotFound, itemID, order.ID)
	}
	return &OrderDrawer{
		order:   order,
		itemID:  itemID,
		updater: updater,
	}, nil
}

// Sync replaces the drawer's copy of the order with the latest listed one. A
// cancellation awaiting confirmation is dropped once the item is terminal.
func (d *OrderDrawer) Sync(order models.Order) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := order.Item(d.itemID); !ok || order.ID != d.order.ID {
		return fmt.Errorf("%w: %s in order %s", ErrItemNotFound, d.itemID, order.ID)
	}
	d.order = order
	if d.mutable() != nil {
		d.cancelPending = false
	}
	return nil
}

func (d *OrderDrawer) Order() models.Order {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.order
}

func (d *OrderDrawer) Detail() Detail {
	d.mu.Lock()
	defer d.mu.Unlock()

	item, _ := d.order.Item(d.itemID)
	detail := Detail{
		OrderID:       d.order.ID,
		ItemID:        item.ID,
		ProductName:   item.ProductName,
		ProductImage:  item.ProductImage,
		Quantity:      item.Quantity,
		Price:         item.Price,
		Status:        item.Status,
		Customer:      d.order.UserDetails,
		CancelPending: d.cancelPending,
	}

	if item.Status.IsTerminal() {
		detail.StaticLabel = StatusLabel(item.Status)
		return detail
	}

	detail.ShowStatusSelector = true
	detail.ShowCancel = true
	for _, s := range SelectableStatuses {
		detail.StatusOptions = append(detail.StatusOptions, StatusOption{Value: s, Label: StatusLabel(s)})
	}
	return detail
}

// ChangeStatus moves the item to one of SelectableStatuses. It returns the
// order as it stands after the change was confirmed by the shop API.
func (d *OrderDrawer) ChangeStatus(ctx context.Context, sess *session.Session, status models.OrderStatus) (models.Order, error) {
	if status == models.OrderStatusCancel {
		return models.Order{}, ErrConfirmRequired
	}
	if !status.Valid() {
		return models.Order{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return d.send(ctx, sess, status)
}

// RequestCancel arms the cancel action; nothing is sent until ConfirmCancel.
func (d *OrderDrawer) RequestCancel() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.mutable(); err != nil {
		return err
	}
	d.cancelPending = true
	return nil
}

func (d *OrderDrawer) AbortCancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelPending = false
}

// ConfirmCancel sends the armed cancellation. Only one confirmation consumes
// it; a failed send arms it again.
func (d *OrderDrawer) ConfirmCancel(ctx context.Context, sess *session.Session) (models.Order, error) {
	d.mu.Lock()
	if !d.cancelPending {
		d.mu.Unlock()
		return models.Order{}, ErrNoPendingCancel
	}
	d.cancelPending = false
	d.mu.Unlock()

	updated, err := d.send(ctx, sess, models.OrderStatusCancel)
	if err != nil && !errors.Is(err, ErrTerminal) {
		d.mu.Lock()
		d.cancelPending = true
		d.mu.Unlock()
	}
	return updated, err
}

func (d *OrderDrawer) send(ctx context.Context, sess *session.Session, status models.OrderStatus) (models.Order, error) {
	d.mu.Lock()
	if err := d.mutable(); err != nil {
		d.mu.Unlock()
		return models.Order{}, err
	}
	orderID, itemID := d.order.ID, d.itemID
	d.mu.Unlock()

	if err := d.updater.UpdateOrderStatus(ctx, sess, orderID, itemID, status); err != nil {
		return models.Order{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.order = d.order.WithItemStatus(itemID, status)
	return d.order, nil
}

// mutable must be called with mu held.
func (d *OrderDrawer) mutable() error {
	item, _ := d.order.Item(d.itemID)
	if item.Status.IsTerminal() {
		return ErrTerminal
	}
	return nil
}
