// internal/services/shop_test.go
package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/javajoker/dukan-admin/internal/api"
	"github.com/javajoker/dukan-admin/internal/models"
)

type shopCall struct {
	Method string
	Path   string
	Header http.Header
	Body   map[string]interface{}
}

type shopFailure struct {
	status int
	body   string
}

// fakeShop serves canned collections and records every request it receives.
type fakeShop struct {
	mu       sync.Mutex
	products []models.Product
	orders   []models.Order
	posters  models.Posters
	calls    []shopCall
	failures map[string]shopFailure
}

func newFakeShop() *fakeShop {
	return &fakeShop{
		products: []models.Product{
			{ID: "p1", Name: "Red Hoodie", Price: 999, Image: "https://cdn/p1.png", Category: []models.CategoryTag{{ID: "c1", Name: "Winter"}}},
			{ID: "p2", Name: "Blue Tee", Price: 499, Category: []models.CategoryTag{{ID: "c2", Name: "Summer"}}},
		},
		orders: []models.Order{
			{
				ID:          "ord1",
				UserDetails: models.UserDetails{Name: "Asha", Phone: "9800000001", Email: "asha@example.com"},
				Orders: []models.LineItem{
					{ID: "o1", ProductName: "Red Hoodie", Quantity: 1, Price: 999, Status: models.OrderStatusPending},
					{ID: "o2", ProductName: "Blue Tee", Quantity: 2, Price: 499, Status: models.OrderStatusDelivered},
				},
			},
		},
		posters: models.Posters{
			Categories: []models.Poster{{ID: "cat1", Name: "Winter", Img: "https://cdn/w.png", SrNo: 1, Path: "/winter"}},
			Slides:     []models.Poster{{ID: "sl1", Name: "Sale", Img: "https://cdn/s.png", SrNo: 1, Path: "/sale"}},
		},
		failures: map[string]shopFailure{},
	}
}

// fail makes the next requests to method+path answer with status and body.
func (f *fakeShop) fail(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[method+" "+path] = shopFailure{status: status, body: body}
}

// heal undoes fail for method+path.
func (f *fakeShop) heal(method, path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.failures, method+" "+path)
}

// fetches counts the GET requests made to path.
func (f *fakeShop) fetches(path string) int {
	n := 0
	for _, c := range f.recorded() {
		if c.Method == http.MethodGet && c.Path == path {
			n++
		}
	}
	return n
}

func (f *fakeShop) recorded() []shopCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]shopCall(nil), f.calls...)
}

// mutations returns the recorded calls other than GETs.
func (f *fakeShop) mutations() []shopCall {
	var out []shopCall
	for _, c := range f.recorded() {
		if c.Method != http.MethodGet {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeShop) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]interface{}
	if len(raw) > 0 {
		json.Unmarshal(raw, &body)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, shopCall{Method: r.Method, Path: r.URL.Path, Header: r.Header.Clone(), Body: body})

	w.Header().Set("Content-Type", "application/json")
	if failure, ok := f.failures[r.Method+" "+r.URL.Path]; ok {
		w.WriteHeader(failure.status)
		io.WriteString(w, failure.body)
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/products":
		json.NewEncoder(w).Encode(f.products)
	case r.Method == http.MethodGet && r.URL.Path == "/api/orders":
		json.NewEncoder(w).Encode(f.orders)
	case r.Method == http.MethodGet && r.URL.Path == "/api/getPosters":
		json.NewEncoder(w).Encode(f.posters)
	case r.Method == http.MethodPost && r.URL.Path == "/api/products":
		var p models.Product
		json.Unmarshal(raw, &p)
		p.ID = "p-new"
		f.products = append(f.products, p)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(p)
	default:
		io.WriteString(w, `{"message":"ok"}`)
	}
}

func newShopClient(t *testing.T) (*api.Client, *fakeShop) {
	t.Helper()
	shop := newFakeShop()
	srv := httptest.NewServer(shop)
	t.Cleanup(srv.Close)

	client, err := api.NewClient(api.Options{BaseURL: srv.URL})
	require.NoError(t, err)
	return client, shop
}
