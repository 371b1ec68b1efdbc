// internal/form/controller_test.go
package form

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/dukan-admin/internal/models"
	"github.com/javajoker/dukan-admin/internal/session"
)

// 1x1 transparent PNG
var pngPixel, _ = base64.StdEncoding.DecodeString("iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII=")

type fakeSubmitter struct {
	err     error
	created []*ProductDraft
	updated map[string]*ProductDraft
	sess    *session.Session
}

func (f *fakeSubmitter) Create(ctx context.Context, sess *session.Session, d *ProductDraft) error {
	f.sess = sess
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, d)
	return nil
}

func (f *fakeSubmitter) Update(ctx context.Context, sess *session.Session, id string, d *ProductDraft) error {
	f.sess = sess
	if f.err != nil {
		return f.err
	}
	if f.updated == nil {
		f.updated = map[string]*ProductDraft{}
	}
	f.updated[id] = d
	return nil
}

func newProductController(sub *fakeSubmitter) *Controller[*ProductDraft] {
	return NewController(NewProductDraft, Submitter[*ProductDraft](sub), nil)
}

func fillProduct(t *testing.T, c *Controller[*ProductDraft]) {
	t.Helper()
	fields := map[string]interface{}{
		"name":        "Red Hoodie",
		"price":       "999",
		"quantity":    12.0,
		"description": "Warm and red",
		"category":    []interface{}{"Winter", "Unisex"},
		"size":        "S, m ,XL",
		"isNew":       "on",
	}
	for k, v := range fields {
		require.NoError(t, c.SetField(k, v), k)
	}
	require.NoError(t, c.SetImage(context.Background(), "hoodie.png", bytes.NewReader(pngPixel)))
}

func TestCreateFlow(t *testing.T) {
	sub := &fakeSubmitter{}
	c := newProductController(sub)
	assert.Equal(t, StateIdle, c.State())

	draft, err := c.New()
	require.NoError(t, err)
	assert.Equal(t, DefaultCouponCode, draft.CouponCode)
	assert.Equal(t, StateCreating, c.State())

	fillProduct(t, c)

	sess := session.New("tok", "admin")
	submitted, err := c.Submit(context.Background(), sess)
	require.NoError(t, err)

	assert.Equal(t, StateIdle, c.State())
	_, ok := c.Draft()
	assert.False(t, ok)

	require.Len(t, sub.created, 1)
	assert.Same(t, sess, sub.sess)
	assert.Equal(t, "Red Hoodie", submitted.Name)
	assert.Equal(t, []models.Size{models.SizeS, models.SizeM, models.SizeXL}, submitted.Size)
	assert.True(t, strings.HasPrefix(submitted.Image, "data:image/png;base64,"))

	payload, err := submitted.Payload()
	require.NoError(t, err)
	assert.Equal(t, 999.0, payload.Price)
	assert.Equal(t, 12, payload.Quantity)
	assert.True(t, payload.IsNew)
	require.Len(t, payload.Category, 2)
	assert.Equal(t, "Winter", payload.Category[0].Name)
	assert.NotEmpty(t, payload.Category[0].ID)
	assert.NotEqual(t, payload.Category[0].ID, payload.Category[1].ID)
}

func TestFailedSubmitKeepsDraft(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("503")}
	c := newProductController(sub)
	_, err := c.New()
	require.NoError(t, err)
	fillProduct(t, c)

	before, _ := c.Draft()
	_, err = c.Submit(context.Background(), nil)
	require.Error(t, err)

	after, ok := c.Draft()
	require.True(t, ok)
	assert.Equal(t, before, after)
	assert.Equal(t, StateCreating, c.State())

	// retry succeeds with the same draft
	sub.err = nil
	_, err = c.Submit(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, sub.created, 1)
}

func TestSubmitValidatesRequiredFields(t *testing.T) {
	sub := &fakeSubmitter{}
	c := newProductController(sub)
	_, err := c.New()
	require.NoError(t, err)
	require.NoError(t, c.SetField("name", "Cap"))

	_, err = c.Submit(context.Background(), nil)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fields := map[string]bool{}
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	assert.Equal(t, map[string]bool{
		"price":       true,
		"category":    true,
		"size":        true,
		"description": true,
		"image":       true,
	}, fields)
	assert.Empty(t, sub.created)
	assert.Equal(t, StateCreating, c.State())
}

func TestSubmitRejectsUnknownCategory(t *testing.T) {
	sub := &fakeSubmitter{}
	c := newProductController(sub)
	_, err := c.New()
	require.NoError(t, err)
	fillProduct(t, c)
	require.NoError(t, c.SetField("category", "Winter,Hats"))

	_, err = c.Submit(context.Background(), nil)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "product_category", verr.Fields[0].Tag)
	assert.Contains(t, verr.Fields[0].Message, "Sweatshirt")
	assert.Empty(t, sub.created)
}

func TestEditFlowKeepsIdentityAndExistingImage(t *testing.T) {
	sub := &fakeSubmitter{}
	c := newProductController(sub)
	product := models.Product{
		ID:          "p1",
		Name:        "Red Hoodie",
		Price:       999,
		Quantity:    3,
		Image:       "https://cdn.example/p1.png",
		Category:    []models.CategoryTag{{ID: "cat-winter", Name: "Winter"}},
		Size:        []models.Size{models.SizeL},
		Description: "Warm",
	}

	require.NoError(t, c.Edit(ProductDraftFrom(product)))
	assert.Equal(t, StateEditing, c.State())

	require.NoError(t, c.SetField("price", 799))
	require.NoError(t, c.SetField("category", "Winter,Men"))

	submitted, err := c.Submit(context.Background(), nil)
	require.NoError(t, err)
	require.Contains(t, sub.updated, "p1")

	payload, err := submitted.Payload()
	require.NoError(t, err)
	assert.Equal(t, "p1", payload.ID)
	assert.Equal(t, 799.0, payload.Price)
	assert.Equal(t, "https://cdn.example/p1.png", payload.Image)
	assert.Equal(t, "cat-winter", payload.Category[0].ID)
	assert.NotEqual(t, "cat-winter", payload.Category[1].ID)
	assert.Equal(t, "Men", payload.Category[1].Name)
}

func TestEditRequiresIdentity(t *testing.T) {
	c := newProductController(&fakeSubmitter{})
	assert.ErrorIs(t, c.Edit(NewProductDraft()), ErrNoIdentity)
	assert.Equal(t, StateIdle, c.State())
}

func TestSetFieldWithoutDraft(t *testing.T) {
	c := newProductController(&fakeSubmitter{})
	assert.ErrorIs(t, c.SetField("name", "x"), ErrNoDraft)
	_, err := c.Submit(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestRejectedValueLeavesDraftUntouched(t *testing.T) {
	c := newProductController(&fakeSubmitter{})
	_, err := c.New()
	require.NoError(t, err)
	require.NoError(t, c.SetField("size", []string{"M"}))

	assert.Error(t, c.SetField("size", []string{"M", "XXL"}))
	assert.ErrorIs(t, c.SetField("colour", "red"), ErrUnknownField)

	d, _ := c.Draft()
	assert.Equal(t, []models.Size{models.SizeM}, d.Size)
}

func TestClearAndCancel(t *testing.T) {
	c := newProductController(&fakeSubmitter{})
	_, err := c.New()
	require.NoError(t, err)
	require.NoError(t, c.Clear())
	assert.Equal(t, StateIdle, c.State())

	require.NoError(t, c.Edit(&ProductDraft{ProductID: "p1"}))
	require.NoError(t, c.Cancel())
	assert.Equal(t, StateIdle, c.State())
	_, ok := c.Draft()
	assert.False(t, ok)
}

type blockingSubmitter struct {
	fakeSubmitter
	entered chan struct{}
	release chan struct{}
}

func (b *blockingSubmitter) Create(ctx context.Context, sess *session.Session, d *ProductDraft) error {
	close(b.entered)
	<-b.release
	return b.fakeSubmitter.Create(ctx, sess, d)
}

func TestBusyWhileSubmitting(t *testing.T) {
	sub := &blockingSubmitter{entered: make(chan struct{}), release: make(chan struct{})}
	c := NewController(NewProductDraft, Submitter[*ProductDraft](sub), nil)
	_, err := c.New()
	require.NoError(t, err)
	fillProduct(t, c)

	done := make(chan error)
	go func() {
		_, err := c.Submit(context.Background(), nil)
		done <- err
	}()
	<-sub.entered

	assert.Equal(t, StateSubmitting, c.State())
	assert.ErrorIs(t, c.SetField("name", "other"), ErrBusy)
	assert.ErrorIs(t, c.Clear(), ErrBusy)
	_, err = c.New()
	assert.ErrorIs(t, err, ErrBusy)

	close(sub.release)
	require.NoError(t, <-done)
	assert.Equal(t, "Red Hoodie", sub.created[0].Name)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "submitting", StateSubmitting.String())
	assert.Equal(t, "idle", StateIdle.String())
}

func TestPayloadIsStableAcrossCalls(t *testing.T) {
	d := NewProductDraft()
	require.NoError(t, d.Set("price", "10"))
	require.NoError(t, d.Set("category", []string{"Summer"}))

	first, err := d.Payload()
	require.NoError(t, err)
	second, err := d.Clone().Payload()
	require.NoError(t, err)
	assert.Equal(t, first.Category, second.Category)
}
