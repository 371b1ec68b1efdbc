// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/dukan-admin/internal/api"
	"github.com/javajoker/dukan-admin/internal/form"
	"github.com/javajoker/dukan-admin/internal/models"
	"github.com/javajoker/dukan-admin/internal/search"
	"github.com/javajoker/dukan-admin/internal/session"
	"github.com/javajoker/dukan-admin/internal/store"
)

var ErrProductNotFound = errors.New("product not found")

type ProductAPI interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, id string, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// ProductService keeps the products list in sync with the shop API and runs
// the product form.
type ProductService struct {
	client ProductAPI
	store  *store.ListStore[models.Product]
	forms  *form.Pool[*form.ProductDraft]
}

func NewProductService(client ProductAPI, images form.ImageStore) *ProductService {
	s := &ProductService{
		client: client,
		store:  store.New(productID, client.ListProducts),
	}
	submitter := &productSubmitter{client: client}
	s.forms = form.NewPool(func() *form.Controller[*form.ProductDraft] {
		return form.NewController(form.NewProductDraft, form.Submitter[*form.ProductDraft](submitter), images)
	})
	return s
}

func productID(p models.Product) string {
	return p.ID
}

// Refresh re-fetches the list. A failure is logged and the previous list kept.
func (s *ProductService) Refresh(ctx context.Context) error {
	if err := s.store.Load(ctx); err != nil {
		logrus.WithError(err).Error("Failed to fetch products")
		return err
	}
	return nil
}

// Sync fetches the list when force is set or when no fetch has succeeded yet.
func (s *ProductService) Sync(ctx context.Context, force bool) error {
	if !force && s.store.Loaded() {
		return nil
	}
	return s.Refresh(ctx)
}

func (s *ProductService) Search(query string) []models.Product {
	return search.Filter(s.store.Items(), query, search.ProductFields)
}

func (s *ProductService) Get(id string) (models.Product, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return models.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return p, nil
}

// Delete removes the product remotely and, only once that succeeded, locally.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteProduct(ctx, id); err != nil {
		logrus.WithError(err).WithField("product_id", id).Warn("Failed to delete product")
		return err
	}
	s.store.Remove(id)
	return nil
}

func (s *ProductService) Form(sess *session.Session) *form.Controller[*form.ProductDraft] {
	return s.forms.Get(sess.Key())
}

func (s *ProductService) StartCreate(sess *session.Session) (*form.ProductDraft, error) {
	return s.Form(sess).New()
}

func (s *ProductService) StartEdit(sess *session.Session, id string) (*form.ProductDraft, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	c := s.Form(sess)
	if err := c.Edit(form.ProductDraftFrom(p)); err != nil {
		return nil, err
	}
	d, _ := c.Draft()
	return d, nil
}

func (s *ProductService) SetFields(sess *session.Session, fields map[string]interface{}) (*form.ProductDraft, error) {
	c := s.Form(sess)
	for _, key := range sortedKeys(fields) {
		if err := c.SetField(key, fields[key]); err != nil {
			return nil, err
		}
	}
	d, _ := c.Draft()
	return d, nil
}

func (s *ProductService) SetImage(ctx context.Context, sess *session.Session, filename string, r io.Reader) (*form.ProductDraft, error) {
	c := s.Form(sess)
	if err := c.SetImage(ctx, filename, r); err != nil {
		return nil, err
	}
	d, _ := c.Draft()
	return d, nil
}

func (s *ProductService) Cancel(sess *session.Session) error {
	return s.Form(sess).Cancel()
}

// Submit sends the caller's draft. An edit patches the local list in place; a
// create re-fetches the list since only the shop API knows the new id.
func (s *ProductService) Submit(ctx context.Context, sess *session.Session) (*models.Product, error) {
	c := s.Form(sess)
	submitted, err := c.Submit(ctx, sess)
	if err != nil {
		return nil, err
	}

	product, err := submitted.Payload()
	if err != nil {
		return nil, err
	}

	if submitted.ID() == "" {
		s.Refresh(ctx)
		return product, nil
	}

	if err := s.store.ReplaceOne(product.ID, *product); err != nil {
		s.Refresh(ctx)
	}
	return product, nil
}

type productSubmitter struct {
	client ProductAPI
}

func (p *productSubmitter) Create(ctx context.Context, sess *session.Session, d *form.ProductDraft) error {
	payload, err := d.Payload()
	if err != nil {
		return err
	}
	return p.client.CreateProduct(ctx, payload)
}

func (p *productSubmitter) Update(ctx context.Context, sess *session.Session, id string, d *form.ProductDraft) error {
	payload, err := d.Payload()
	if err != nil {
		return err
	}
	return p.client.UpdateProduct(ctx, id, payload)
}

// sortedKeys fixes the order fields are applied in, so a rejected value
// always stops at the same field.
func sortedKeys(fields map[string]interface{}) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var _ ProductAPI = (*api.Client)(nil)
