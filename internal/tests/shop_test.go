// internal/tests/shop_test.go
package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/javajoker/dukan-admin/internal/models"
)

type shopRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   map[string]interface{}
}

// fakeShop stands in for the remote shop API.
type fakeShop struct {
	mu       sync.Mutex
	requests []shopRequest
	failures map[string]string
	statuses map[string]int
}

func newFakeShop() *fakeShop {
	return &fakeShop{
		failures: map[string]string{},
		statuses: map[string]int{},
	}
}

func (f *fakeShop) fail(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[method+" "+path] = status
	f.failures[method+" "+path] = body
}

func (f *fakeShop) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = nil
	f.failures = map[string]string{}
	f.statuses = map[string]int{}
}

// fetches counts the GET requests made to path.
func (f *fakeShop) fetches(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, r := range f.requests {
		if r.Method == http.MethodGet && r.Path == path {
			n++
		}
	}
	return n
}

func (f *fakeShop) mutations() []shopRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []shopRequest
	for _, r := range f.requests {
		if r.Method != http.MethodGet {
			out = append(out, r)
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
	f.requests = append(f.requests, shopRequest{Method: r.Method, Path: r.URL.Path, Header: r.Header.Clone(), Body: body})
	status, failing := f.statuses[r.Method+" "+r.URL.Path]
	failure := f.failures[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if failing {
		w.WriteHeader(status)
		io.WriteString(w, failure)
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/products":
		json.NewEncoder(w).Encode([]models.Product{
			{ID: "p1", Name: "Red Hoodie", Price: 999, Category: []models.CategoryTag{{ID: "c1", Name: "Winter"}}},
			{ID: "p2", Name: "Blue Tee", Price: 499, Category: []models.CategoryTag{{ID: "c2", Name: "Summer"}}},
		})
	case r.Method == http.MethodGet && r.URL.Path == "/api/orders":
		json.NewEncoder(w).Encode([]models.Order{{
			ID:          "ord1",
			UserDetails: models.UserDetails{Name: "Asha", Phone: "9800000001", Email: "asha@example.com"},
			Orders: []models.LineItem{
				{ID: "o1", ProductName: "Red Hoodie", Quantity: 1, Price: 999, Status: models.OrderStatusPending},
			},
		}})
	case r.Method == http.MethodGet && r.URL.Path == "/api/getPosters":
		json.NewEncoder(w).Encode(models.Posters{
			Categories: []models.Poster{{ID: "cat1", Name: "Winter", Img: "https://cdn/w.png", SrNo: 1}},
			Slides:     []models.Poster{{ID: "sl1", Name: "Sale", Img: "https://cdn/s.png", SrNo: 1}},
		})
	default:
		io.WriteString(w, `{"message":"ok"}`)
	}
}
