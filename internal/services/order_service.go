// internal/services/order_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/dukan-admin/internal/api"
	"github.com/javajoker/dukan-admin/internal/drawer"
	"github.com/javajoker/dukan-admin/internal/models"
	"github.com/javajoker/dukan-admin/internal/search"
	"github.com/javajoker/dukan-admin/internal/session"
	"github.com/javajoker/dukan-admin/internal/store"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderAPI interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	drawer.StatusUpdater
}

type OrderService struct {
	client OrderAPI
	store  *store.ListStore[models.Order]

	mu      sync.Mutex
	drawers map[string]*drawer.OrderDrawer
}

func NewOrderService(client OrderAPI) *OrderService {
	return &OrderService{
		client:  client,
		store:   store.New(orderID, client.ListOrders),
		drawers: make(map[string]*drawer.OrderDrawer),
	}
}

func orderID(o models.Order) string {
	return o.ID
}

func (s *OrderService) Refresh(ctx context.Context) error {
	if err := s.store.Load(ctx); err != nil {
		logrus.WithError(err).Error("Failed to fetch orders")
		return err
	}
	return nil
}

// Sync fetches the list when force is set or when no fetch has succeeded yet.
func (s *OrderService) Sync(ctx context.Context, force bool) error {
	if !force && s.store.Loaded() {
		return nil
	}
	return s.Refresh(ctx)
}

func (s *OrderService) Search(query string) []models.Order {
	return search.Filter(s.store.Items(), query, search.OrderFields)
}

// Rows returns the matching line items, one row per item, as the orders
// table lists them.
func (s *OrderService) Rows(query string) []search.OrderRow {
	return search.FilterLineItems(s.store.Items(), query)
}

func (s *OrderService) Get(id string) (models.Order, error) {
	o, ok := s.store.Get(id)
	if !ok {
		return models.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	return o, nil
}

// OpenDrawer shows one line item to the caller, replacing any drawer the
// caller had open.
func (s *OrderService) OpenDrawer(sess *session.Session, orderID, itemID string) (drawer.Detail, error) {
	d, err := s.open(sess, orderID, itemID)
	if err != nil {
		return drawer.Detail{}, err
	}
	return d.Detail(), nil
}

func (s *OrderService) CloseDrawer(sess *session.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drawers, sess.Key())
}

func (s *OrderService) ChangeStatus(ctx context.Context, sess *session.Session, orderID, itemID string, status models.OrderStatus) (drawer.Detail, error) {
	d, err := s.current(sess, orderID, itemID)
	if err != nil {
		return drawer.Detail{}, err
	}

	if _, err := d.ChangeStatus(ctx, sess, status); err != nil {
		return d.Detail(), err
	}
	s.applied(orderID, itemID, status)
	return d.Detail(), nil
}

func (s *OrderService) RequestCancel(sess *session.Session, orderID, itemID string) (drawer.Detail, error) {
	d, err := s.current(sess, orderID, itemID)
	if err != nil {
		return drawer.Detail{}, err
	}
	if err := d.RequestCancel(); err != nil {
		return d.Detail(), err
	}
	return d.Detail(), nil
}

func (s *OrderService) AbortCancel(sess *session.Session, orderID, itemID string) (drawer.Detail, error) {
	d, err := s.current(sess, orderID, itemID)
	if err != nil {
		return drawer.Detail{}, err
	}
	d.AbortCancel()
	return d.Detail(), nil
}

func (s *OrderService) ConfirmCancel(ctx context.Context, sess *session.Session, orderID, itemID string) (drawer.Detail, error) {
	d, err := s.current(sess, orderID, itemID)
	if err != nil {
		return drawer.Detail{}, err
	}

	if _, err := d.ConfirmCancel(ctx, sess); err != nil {
		return d.Detail(), err
	}
	s.applied(orderID, itemID, models.OrderStatusCancel)
	return d.Detail(), nil
}

func (s *OrderService) open(sess *session.Session, orderID, itemID string) (*drawer.OrderDrawer, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	d, err := drawer.Open(order, itemID, s.client)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.drawers[sess.Key()] = d
	s.mu.Unlock()
	return d, nil
}

// current returns the caller's drawer when it shows the given item, and opens
// it from the list otherwise. A reused drawer is brought up to date with the
// list first, so changes confirmed through other sessions are seen.
func (s *OrderService) current(sess *session.Session, orderID, itemID string) (*drawer.OrderDrawer, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	d, ok := s.drawers[sess.Key()]
	s.mu.Unlock()

	if ok {
		detail := d.Detail()
		if detail.OrderID == orderID && detail.ItemID == itemID {
			if err := d.Sync(order); err != nil {
				return nil, err
			}
			return d, nil
		}
	}
	return s.open(sess, orderID, itemID)
}

// applied patches only the changed item of the listed order.
func (s *OrderService) applied(orderID, itemID string, status models.OrderStatus) {
	logrus.WithFields(logrus.Fields{
		"order_id": orderID,
		"item_id":  itemID,
		"status":   status,
	}).Info("Order status updated")

	err := s.store.Update(orderID, func(o models.Order) models.Order {
		return o.WithItemStatus(itemID, status)
	})
	if err != nil {
		logrus.WithError(err).WithField("order_id", orderID).Warn("Updated order is no longer listed")
	}
}

var _ OrderAPI = (*api.Client)(nil)
