package api

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/seedtoserve/storefront/internal/models"
)

// Client wraps the SeedToServe HTTP API. Every call is a single attempt: no
// retries, no backoff. Authenticated calls take the bearer token explicitly so
// the client itself stays stateless.
type Client struct {
	rc *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{rc: rc}
}

type RegisterRequest struct {
	RegistrationType string `json:"registrationType"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	ConfirmPassword  string `json:"confirmPassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	Role    string `json:"role"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductRequest is sent as multipart form data so it can carry the optional
// image file alongside the scalar fields.
type ProductRequest struct {
	CategoryName string
	Name         string
	Description  string
	Price        float64
	Stock        int
	Image        io.Reader
	ImageName    string
}

type ProductUpdateRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	var out MessageResponse
	var apiErr errorEnvelope

	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&apiErr).
		Post("/api/auth/register")
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if resp.IsError() {
		return nil, newServerError(resp.StatusCode(), apiErr)
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	var apiErr errorEnvelope

	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&apiErr).
		Post("/api/auth/login")
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp.IsError() {
		return nil, newServerError(resp.StatusCode(), apiErr)
	}
	return &out, nil
}

func (c *Client) ListCategories(ctx context.Context, token string) ([]models.Category, error) {
	var out []models.Category
	var apiErr errorEnvelope

	resp, err := c.rc.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		SetError(&apiErr).
		Get("/api/farmer/categories/show/categories")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if resp.IsError() {
		return nil, newServerError(resp.StatusCode(), apiErr)
	}
	return out, nil
}

func (c *Client) AddCategory(ctx context.Context, token string, req CategoryRequest) (*models.Category, error) {
	var out models.Category
	var apiErr errorEnvelope

	resp, err := c.rc.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(req).
		SetResult(&out).
		SetError(&apiErr).
		Post("/api/farmer/categories/add/category")
	if err != nil {
		return nil, fmt.Errorf("add category: %w", err)
	}
	if resp.IsError() {
		return nil, newServerError(resp.StatusCode(), apiErr)
	}
	return &out, nil
}

// UpdateCategory addresses the category by its current name; the request body
// may carry a new name, which re-keys the category on the server.
func (c *Client) UpdateCategory(ctx context.Context, token, originalName string, req CategoryRequest) (*models.Category, error) {
	var out models.Category
	var apiErr errorEnvelope

	resp, err := c.rc.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(req).
		SetResult(&out).
		SetError(&apiErr).
		Put("/api/farmer/categories/update/category/" + url.PathEscape(originalName))
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	if resp.IsError() {
		return nil, newServerError(resp.StatusCode(), apiErr)
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, token, name string) error {
	var apiErr errorEnvelope

	resp, err := c.rc.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetError(&apiErr).
		Delete("/api/farmer/categories/delete/category/" + url.PathEscape(name))
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if resp.IsError() {
		return newServerError(resp.StatusCode(), apiErr)
	}
	return nil
}

func (c *Client) ListProducts(ctx context.Context, token string) ([]models.Product, error) {
	var out []models.Product
	var apiErr errorEnvelope

	resp, err := c.rc.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		SetError(&apiErr).
		Get("/api/farmer/products/show/products")
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if resp.IsError() {
		return nil, newServerError(resp.StatusCode(), apiErr)
	}
	return out, nil
}

func (c *Client) AddProduct(ctx context.Context, token string, req ProductRequest) (*models.Product, error) {
	var out models.Product
	var apiErr errorEnvelope

	r := c.rc.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetMultipartFormData(map[string]string{
			"categoryName": req.CategoryName,
			"name":         req.Name,
			"description":  req.Description,
			"price":        strconv.FormatFloat(req.Price, 'f', -1, 64),
			"stock":        strconv.Itoa(req.Stock),
		}).
		SetResult(&out).
		SetError(&apiErr)

	if req.Image != nil {
		r.SetFileReader("image", req.ImageName, req.Image)
	}

	resp, err := r.Post("/api/farmer/products/add/product")
	if err != nil {
		return nil, fmt.Errorf("add product: %w", err)
	}
	if resp.IsError() {
		return nil, newServerError(resp.StatusCode(), apiErr)
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token, originalName string, req ProductUpdateRequest) (*models.Product, error) {
	var out models.Product
	var apiErr errorEnvelope

	resp, err := c.rc.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(req).
		SetResult(&out).
		SetError(&apiErr).
		Put("/api/farmer/products/update/product/" + url.PathEscape(originalName))
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if resp.IsError() {
		return nil, newServerError(resp.StatusCode(), apiErr)
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token, name string) error {
	var apiErr errorEnvelope

	resp, err := c.rc.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetError(&apiErr).
		Delete("/api/farmer/products/delete/product/" + url.PathEscape(name))
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if resp.IsError() {
		return newServerError(resp.StatusCode(), apiErr)
	}
	return nil
}
