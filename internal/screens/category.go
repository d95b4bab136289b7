// Package screens wires one form controller and one list view model per
// dashboard page, the way each page of the storefront owns its table and its
// add form.
package screens

import (
	"context"

	"github.com/seedtoserve/storefront/internal/api"
	"github.com/seedtoserve/storefront/internal/forms"
	"github.com/seedtoserve/storefront/internal/models"
	"github.com/seedtoserve/storefront/internal/viewmodel"
)

// CategoryScreen is the farmer dashboard's category page: the add form plus
// the table mirror of the server's category list.
type CategoryScreen struct {
	client *api.Client
	Form   *forms.CategoryForm
	List   *viewmodel.List[models.Category]
}

func NewCategoryScreen(client *api.Client) *CategoryScreen {
	return &CategoryScreen{
		client: client,
		Form:   forms.NewCategoryForm(client),
		List:   viewmodel.NewList[models.Category](),
	}
}

// Load replaces the mirror with the latest server snapshot.
func (s *CategoryScreen) Load(ctx context.Context, token string) error {
	categories, err := s.client.ListCategories(ctx, token)
	if err != nil {
		return err
	}
	s.List.Load(categories)
	return nil
}

// Add submits the form and appends the server-confirmed record, never the
// local draft.
func (s *CategoryScreen) Add(ctx context.Context, token string) (*models.Category, error) {
	created, err := s.Form.Submit(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := s.List.Append(*created); err != nil {
		return nil, err
	}
	return created, nil
}

// Delete issues the delete call and drops the matching row. The caller is
// responsible for having confirmed with the user first.
func (s *CategoryScreen) Delete(ctx context.Context, token, name string) error {
	if err := s.client.DeleteCategory(ctx, token, name); err != nil {
		return err
	}
	s.List.Remove(name)
	return nil
}

// CommitEdit sends the scratch draft to the update call, addressing the
// category by its pre-edit name, and replaces the row with the server's
// returned record.
func (s *CategoryScreen) CommitEdit(ctx context.Context, token string) (*models.Category, error) {
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

	updated, err := s.client.UpdateCategory(ctx, token, original.Key(), api.CategoryRequest{
		Name:        draft.Name,
		Description: draft.Description,
	})
	if err != nil {
		return nil, err
	}
	if err := s.List.CommitEdit(*updated); err != nil {
		return nil, err
	}
	return updated, nil
}
