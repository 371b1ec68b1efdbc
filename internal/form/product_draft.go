// internal/form/product_draft.go
package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/javajoker/dukan-admin/internal/models"
)

const DefaultCouponCode = "DUKAN20"

// CategoryOptions are the categories offered by the product form.
var CategoryOptions = models.ProductCategories

// ProductDraft mirrors the product form. Price and quantity stay as typed
// until the draft is turned into a payload.
type ProductDraft struct {
	ProductID     string          `json:"_id,omitempty"`
	Name          string          `json:"name" validate:"required"`
	Price         string          `json:"price" validate:"required,numeric"`
	Quantity      string          `json:"quantity" validate:"omitempty,number"`
	Category      []string        `json:"category" validate:"required,min=1,dive,product_category"`
	Size          []models.Size   `json:"size" validate:"required,min=1,dive,shirt_size"`
	Description   string          `json:"description" validate:"required"`
	CouponCode    string          `json:"couponCode"`
	IsNew         bool            `json:"isNew"`
	IsPopular     bool            `json:"isPopular"`
	IsTrending    bool            `json:"isTrending"`
	Image         string          `json:"image" validate:"required_without=ExistingImage"`
	ExistingImage string          `json:"existingImage,omitempty"`
	Reviews       []models.Review `json:"reviews,omitempty"`

	sold        int
	categoryIDs map[string]string
}

func NewProductDraft() *ProductDraft {
	return &ProductDraft{
		CouponCode:  DefaultCouponCode,
		Category:    []string{},
		Size:        []models.Size{},
		categoryIDs: map[string]string{},
	}
}

// ProductDraftFrom loads an existing product into an edit draft. Category ids
// are remembered so unchanged categories keep them on save.
func ProductDraftFrom(p models.Product) *ProductDraft {
	d := &ProductDraft{
		ProductID:     p.ID,
		Name:          p.Name,
		Price:         p.PriceText(),
		Quantity:      strconv.Itoa(p.Quantity),
		Category:      p.CategoryNames(),
		Size:          append([]models.Size{}, p.Size...),
		Description:   p.Description,
		CouponCode:    p.CouponCode,
		IsNew:         p.IsNew,
		IsPopular:     p.IsPopular,
		IsTrending:    p.IsTrending,
		ExistingImage: p.Image,
		Reviews:       append([]models.Review(nil), p.Reviews...),
		sold:          p.Sold,
		categoryIDs:   make(map[string]string, len(p.Category)),
	}
	for _, c := range p.Category {
		if c.ID != "" {
			d.categoryIDs[c.Name] = c.ID
		}
	}
	d.assignCategoryIDs()
	return d
}

func (d *ProductDraft) ID() string {
	return d.ProductID
}

func (d *ProductDraft) Set(key string, value interface{}) error {
	var err error
	switch key {
	case "name":
		d.Name, err = toString(value)
	case "description":
		d.Description, err = toString(value)
	case "couponCode":
		d.CouponCode, err = toString(value)
	case "image":
		d.Image, err = toString(value)
	case "price":
		var s string
		s, err = toString(value)
		d.Price = strings.TrimSpace(s)
	case "quantity":
		var s string
		s, err = toString(value)
		d.Quantity = strings.TrimSpace(s)
	case "category":
		if d.Category, err = toSet(value); err == nil {
			d.assignCategoryIDs()
		}
	case "size":
		d.Size, err = toSizes(value)
	case "isNew":
		d.IsNew, err = toBool(value)
	case "isPopular":
		d.IsPopular, err = toBool(value)
	case "isTrending":
		d.IsTrending, err = toBool(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

func (d *ProductDraft) SetImage(url string) {
	d.Image = url
}

func (d *ProductDraft) Validate() error {
	return validateDraft(d)
}

func (d *ProductDraft) Clone() *ProductDraft {
	c := *d
	c.Category = append([]string{}, d.Category...)
	c.Size = append([]models.Size{}, d.Size...)
	c.Reviews = append([]models.Review(nil), d.Reviews...)
	if d.categoryIDs != nil {
		c.categoryIDs = make(map[string]string, len(d.categoryIDs))
		for k, v := range d.categoryIDs {
			c.categoryIDs[k] = v
		}
	}
	return &c
}

// assignCategoryIDs gives every newly selected category a UUID once, so
// repeated payloads of the same draft carry the same ids.
func (d *ProductDraft) assignCategoryIDs() {
	if d.categoryIDs == nil {
		d.categoryIDs = make(map[string]string, len(d.Category))
	}
	for _, name := range d.Category {
		if _, ok := d.categoryIDs[name]; !ok {
			d.categoryIDs[name] = uuid.NewString()
		}
	}
}

// Payload converts the draft into the body of POST/PUT /api/products.
func (d *ProductDraft) Payload() (*models.Product, error) {
	price, err := strconv.ParseFloat(d.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}

	quantity := 0
	if d.Quantity != "" {
		if quantity, err = strconv.Atoi(d.Quantity); err != nil {
			return nil, fmt.Errorf("quantity: %w", err)
		}
	}

	categories := make([]models.CategoryTag, 0, len(d.Category))
	for _, name := range d.Category {
		categories = append(categories, models.CategoryTag{ID: d.categoryIDs[name], Name: name})
	}

	image := d.Image
	if image == "" {
		image = d.ExistingImage
	}

	reviews := d.Reviews
	if reviews == nil {
		reviews = []models.Review{}
	}

	return &models.Product{
		ID:          d.ProductID,
		Name:        d.Name,
		Price:       price,
		Quantity:    quantity,
		Image:       image,
		Category:    categories,
		Size:        append([]models.Size{}, d.Size...),
		Description: d.Description,
		CouponCode:  d.CouponCode,
		IsNew:       d.IsNew,
		IsPopular:   d.IsPopular,
		IsTrending:  d.IsTrending,
		Reviews:     reviews,
		Sold:        d.sold,
	}, nil
}

func toSizes(v interface{}) ([]models.Size, error) {
	values, err := toSet(v)
	if err != nil {
		return nil, err
	}
	sizes := make([]models.Size, 0, len(values))
	for _, s := range values {
		size := models.Size(strings.ToUpper(s))
		if !size.Valid() {
			return nil, fmt.Errorf("unknown size %q", s)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}
