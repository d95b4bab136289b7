package forms

import (
	"context"

	"github.com/seedtoserve/storefront/internal/api"
	"github.com/seedtoserve/storefront/internal/logging"
	"github.com/seedtoserve/storefront/internal/models"
	"github.com/seedtoserve/storefront/internal/validation"
)

type CategoryDraft struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
}

// CategoryForm drives the add-category form on the farmer dashboard.
type CategoryForm struct {
	client   *api.Client
	draft    CategoryDraft
	inFlight bool
}

func NewCategoryForm(client *api.Client) *CategoryForm {
	return &CategoryForm{client: client}
}

func (f *CategoryForm) Draft() CategoryDraft { return f.draft }

func (f *CategoryForm) SetDraft(d CategoryDraft) { f.draft = d }

func (f *CategoryForm) InFlight() bool { return f.inFlight }

// Submit validates and creates the category, returning the server-confirmed
// record. The draft resets on success.
func (f *CategoryForm) Submit(ctx context.Context, token string) (*models.Category, error) {
	if f.inFlight {
		return nil, ErrSubmitInFlight
	}
	f.inFlight = true
	defer func() { f.inFlight = false }()

	if err := validation.Validate(f.draft); err != nil {
		return nil, err
	}

	created, err := f.client.AddCategory(ctx, token, api.CategoryRequest{
		Name:        f.draft.Name,
		Description: f.draft.Description,
	})
	if err != nil {
		logging.FromContext(ctx).Warn("add category rejected", "error", err)
		return nil, err
	}

	f.draft = CategoryDraft{}
	return created, nil
}
