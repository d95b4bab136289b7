package forms

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedtoserve/storefront/internal/validation"
)

func TestProductPriceAndStockRejectedLocally(t *testing.T) {
	cases := []struct {
		name  string
		price string
		stock string
		field string
	}{
		{"zero price", "0", "5", "price"},
		{"negative price", "-3", "5", "price"},
		{"negative stock", "4.5", "-1", "stock"},
		{"garbage price", "abc", "5", "price"},
		{"garbage stock", "4.5", "lots", "stock"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, calls := newAPIServer(t, http.StatusCreated, map[string]string{})

			form := NewProductForm(client)
			form.SetDraft(ProductDraft{
				CategoryName: "Fruit",
				Name:         "Tomato",
				Price:        tc.price,
				Stock:        tc.stock,
			})

			_, err := form.Submit(context.Background(), "tok")
			require.Error(t, err)

			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs, tc.field)
			assert.Zero(t, *calls, "invalid draft must not reach the network")
		})
	}
}

func TestProductRequiresCategorySelection(t *testing.T) {
	client, calls := newAPIServer(t, http.StatusCreated, map[string]string{})

	form := NewProductForm(client)
	form.SetDraft(ProductDraft{Name: "Tomato", Price: "2", Stock: "3"})

	_, err := form.Submit(context.Background(), "tok")
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Please select category", verrs["categoryName"])
	assert.Zero(t, *calls)
}

func TestCategoryNameTooShortRejectedLocally(t *testing.T) {
	client, calls := newAPIServer(t, http.StatusCreated, map[string]string{})

	form := NewCategoryForm(client)
	form.SetDraft(CategoryDraft{Name: "x"})

	_, err := form.Submit(context.Background(), "tok")
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "name")
	assert.Zero(t, *calls)
}
