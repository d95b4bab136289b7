package forms

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/seedtoserve/storefront/internal/api"
	"github.com/seedtoserve/storefront/internal/logging"
	"github.com/seedtoserve/storefront/internal/models"
	"github.com/seedtoserve/storefront/internal/validation"
)

// ProductDraft binds raw form input. Price and stock arrive as text and are
// coerced to numbers during Submit, the same contract the web form had.
type ProductDraft struct {
	CategoryName string
	Name         string
	Description  string
	Price        string
	Stock        string
	ImagePath    string
}

// productRules is the coerced draft the validation layer checks.
type productRules struct {
	CategoryName string  `json:"categoryName" validate:"required"`
	Name         string  `json:"name" validate:"required,min=2"`
	Price        float64 `json:"price" validate:"gt=0"`
	Stock        int     `json:"stock" validate:"gte=0"`
}

// ProductForm drives the add-product form, including the optional image file
// carried in the multipart body.
type ProductForm struct {
	client   *api.Client
	draft    ProductDraft
	inFlight bool
}

func NewProductForm(client *api.Client) *ProductForm {
	return &ProductForm{client: client}
}

func (f *ProductForm) Draft() ProductDraft { return f.draft }

func (f *ProductForm) SetDraft(d ProductDraft) { f.draft = d }

func (f *ProductForm) InFlight() bool { return f.inFlight }

// Submit coerces and validates the draft, then creates the product. An
// unparseable price or stock is a local validation error; nothing reaches the
// network for an invalid draft.
func (f *ProductForm) Submit(ctx context.Context, token string) (*models.Product, error) {
	if f.inFlight {
		return nil, ErrSubmitInFlight
	}
	f.inFlight = true
	defer func() { f.inFlight = false }()

	rules, verr := f.coerce()
	if verr != nil {
		return nil, verr
	}
	if err := validation.Validate(rules); err != nil {
		return nil, err
	}

	req := api.ProductRequest{
		CategoryName: rules.CategoryName,
		Name:         rules.Name,
		Description:  f.draft.Description,
		Price:        rules.Price,
		Stock:        rules.Stock,
	}

	if f.draft.ImagePath != "" {
		img, err := os.Open(f.draft.ImagePath)
		if err != nil {
			return nil, fmt.Errorf("open image: %w", err)
		}
		defer img.Close()
		req.Image = img
		req.ImageName = filepath.Base(f.draft.ImagePath)
	}

	created, err := f.client.AddProduct(ctx, token, req)
	if err != nil {
		logging.FromContext(ctx).Warn("add product rejected", "error", err)
		return nil, err
	}

	f.draft = ProductDraft{}
	return created, nil
}

func (f *ProductForm) coerce() (productRules, error) {
	rules := productRules{
		CategoryName: f.draft.CategoryName,
		Name:         f.draft.Name,
	}

	// Empty inputs coerce to zero, like the web form did; price 0 then fails
	// the gt=0 rule with its own message.
	errs := validation.Errors{}
	var price float64
	var stock int
	var err error
	if f.draft.Price != "" {
		if price, err = strconv.ParseFloat(f.draft.Price, 64); err != nil {
			errs["price"] = "Price must be a number"
		}
	}
	if f.draft.Stock != "" {
		if stock, err = strconv.Atoi(f.draft.Stock); err != nil {
			errs["stock"] = "Stock must be a whole number"
		}
	}
	if len(errs) > 0 {
		return rules, errs
	}

	rules.Price = price
	rules.Stock = stock
	return rules, nil
}
