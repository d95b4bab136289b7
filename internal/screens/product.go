package screens

import (
	"context"

	"github.com/seedtoserve/storefront/internal/api"
	"github.com/seedtoserve/storefront/internal/forms"
	"github.com/seedtoserve/storefront/internal/models"
	"github.com/seedtoserve/storefront/internal/viewmodel"
)

// ProductScreen is the farmer dashboard's product page. Besides the product
// table it mirrors the category list, which feeds the category selector.
type ProductScreen struct {
	client     *api.Client
	Form       *forms.ProductForm
	List       *viewmodel.List[models.Product]
	Categories []models.Category
}

func NewProductScreen(client *api.Client) *ProductScreen {
	return &ProductScreen{
		client: client,
		Form:   forms.NewProductForm(client),
		List:   viewmodel.NewList[models.Product](),
	}
}

// Load fetches both the product snapshot and the categories for the selector.
func (s *ProductScreen) Load(ctx context.Context, token string) error {
	products, err := s.client.ListProducts(ctx, token)
	if err != nil {
		return err
	}
	categories, err := s.client.ListCategories(ctx, token)
	if err != nil {
		return err
	}
	s.List.Load(products)
	s.Categories = categories
	return nil
}

// Add submits the form and appends the server-confirmed record.
func (s *ProductScreen) Add(ctx context.Context, token string) (*models.Product, error) {
	created, err := s.Form.Submit(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := s.List.Append(*created); err != nil {
		return nil, err
	}
	return created, nil
}

// Delete issues the delete call and drops the matching row; confirmation
// happens upstream.
func (s *ProductScreen) Delete(ctx context.Context, token, name string) error {
	if err := s.client.DeleteProduct(ctx, token, name); err != nil {
		return err
	}
	s.List.Remove(name)
	return nil
}

// CommitEdit sends exactly the scratch fields to the update call and replaces
// the edited row with the server's returned record.
func (s *ProductScreen) CommitEdit(ctx context.Context, token string) (*models.Product, error) {
	index, editing := s.List.Editing()
	if !editing {
		return nil, viewmodel.ErrNoEdit
	}
	original, err := s.List.At(index)
	if err != nil {
		return nil, err
	}
	draft, err := s.List.Draft()
	if err != nil {
		return nil, err
	}

	updated, err := s.client.UpdateProduct(ctx, token, original.Key(), api.ProductUpdateRequest{
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Stock:       draft.Stock,
	})
	if err != nil {
		return nil, err
	}
	if err := s.List.CommitEdit(*updated); err != nil {
		return nil, err
	}
	return updated, nil
}
