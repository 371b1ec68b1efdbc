// internal/models/product.go
package models

import "strconv"

type Product struct {
	ID          string        `json:"_id,omitempty"`
	Name        string        `json:"name"`
	Price       float64       `json:"price"`
	Quantity    int           `json:"quantity"`
	Image       string        `json:"image"`
	Category    []CategoryTag `json:"category"`
	Size        []Size        `json:"size"`
	Description string        `json:"description"`
	CouponCode  string        `json:"couponCode"`
	IsNew       bool          `json:"isNew"`
	IsPopular   bool          `json:"isPopular"`
	IsTrending  bool          `json:"isTrending"`
	Reviews     []Review      `json:"reviews"`
	Sold        int           `json:"sold,omitempty"`
}

type CategoryTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Review struct {
	Comment string     `json:"comment"`
	Rating  string     `json:"rating"`
	User    ReviewUser `json:"user"`
}

type ReviewUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Img   string `json:"img"`
}

// CategoryNames returns the names of the product's category tags in order.
func (p Product) CategoryNames() []string {
	names := make([]string, 0, len(p.Category))
	for _, c := range p.Category {
		names = append(names, c.Name)
	}
	return names
}

// PriceText renders the price the way the products table shows it.
func (p Product) PriceText() string {
	return strconv.FormatFloat(p.Price, 'f', -1, 64)
}
