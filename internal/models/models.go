package models

// Category is a product grouping owned by a farmer. Its name doubles as the
// identity key for update and delete calls, so renaming a category re-keys it.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Key returns the identity key used to address the category.
func (c Category) Key() string { return c.Name }

// Product is a sellable item inside a category. Like Category, it is
// addressed by name.
type Product struct {
	CategoryName string  `json:"categoryName"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	ImageURL     string  `json:"imageUrl,omitempty"`
}

// Key returns the identity key used to address the product.
func (p Product) Key() string { return p.Name }

// Profile is the cached user identity kept alongside the session token.
type Profile struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}
