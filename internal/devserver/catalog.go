package devserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func (s *Server) ListCategories(c echo.Context) error {
	var categories []Category
	if err := s.DB.Order("id ASC").Find(&categories).Error; err != nil {
		return messageResponse(c, http.StatusInternalServerError, "unable to fetch categories")
	}
	return c.JSON(http.StatusOK, categories)
}

func (s *Server) AddCategory(c echo.Context) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return messageResponse(c, http.StatusBadRequest, "invalid input")
	}
	if req.Name == "" {
		return messageResponse(c, http.StatusBadRequest, "category name is required")
	}

	category := Category{Name: req.Name, Description: req.Description}
	if err := s.DB.Create(&category).Error; err != nil {
		return messageResponse(c, http.StatusBadRequest, "category already exists")
	}
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory addresses the category by its current name. A new name in
// the body re-keys it; products keep following the category by name.
func (s *Server) UpdateCategory(c echo.Context) error {
	originalName := c.Param("name")

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return messageResponse(c, http.StatusBadRequest, "invalid input")
	}

	var category Category
	if err := s.DB.Where("name = ?", originalName).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return messageResponse(c, http.StatusNotFound, "category not found")
		}
		return messageResponse(c, http.StatusInternalServerError, "unable to update category")
	}

	if req.Name != "" && req.Name != originalName {
		if err := s.DB.Model(&Product{}).
			Where("category_name = ?", originalName).
			Update("category_name", req.Name).Error; err != nil {
			return messageResponse(c, http.StatusInternalServerError, "unable to update category")
		}
		category.Name = req.Name
	}
	category.Description = req.Description

	if err := s.DB.Save(&category).Error; err != nil {
		return messageResponse(c, http.StatusBadRequest, "category already exists")
	}
	return c.JSON(http.StatusOK, category)
}

func (s *Server) DeleteCategory(c echo.Context) error {
	name := c.Param("name")
	if err := s.DB.Where("name = ?", name).Delete(&Category{}).Error; err != nil {
		return messageResponse(c, http.StatusInternalServerError, "unable to delete category")
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) ListProducts(c echo.Context) error {
	var products []Product
	if err := s.DB.Order("id ASC").Find(&products).Error; err != nil {
		return messageResponse(c, http.StatusInternalServerError, "unable to fetch products")
	}
	return c.JSON(http.StatusOK, products)
}

// AddProduct takes multipart form data so it can carry the optional image.
// The stub records the filename as the image URL; real storage belongs to the
// production backend.
func (s *Server) AddProduct(c echo.Context) error {
	categoryName := c.FormValue("categoryName")
	name := c.FormValue("name")
	description := c.FormValue("description")

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price <= 0 {
		return messageResponse(c, http.StatusBadRequest, "price must be a number greater than 0")
	}
	stock, err := strconv.Atoi(c.FormValue("stock"))
	if err != nil || stock < 0 {
		return messageResponse(c, http.StatusBadRequest, "stock must be a non-negative number")
	}

	var category Category
	if err := s.DB.Where("name = ?", categoryName).First(&category).Error; err != nil {
		return messageResponse(c, http.StatusBadRequest, "category does not exist")
	}

	product := Product{
		CategoryName: categoryName,
		Name:         name,
		Description:  description,
		Price:        price,
		Stock:        stock,
	}
	if file, err := c.FormFile("image"); err == nil {
		product.ImageURL = "/uploads/" + file.Filename
	}

	if err := s.DB.Create(&product).Error; err != nil {
		return messageResponse(c, http.StatusBadRequest, "product already exists")
	}
	return c.JSON(http.StatusCreated, product)
}

func (s *Server) UpdateProduct(c echo.Context) error {
	originalName := c.Param("name")

	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Stock       int     `json:"stock"`
	}
	if err := c.Bind(&req); err != nil {
		return messageResponse(c, http.StatusBadRequest, "invalid input")
	}

	var product Product
	if err := s.DB.Where("name = ?", originalName).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return messageResponse(c, http.StatusNotFound, "product not found")
		}
		return messageResponse(c, http.StatusInternalServerError, "unable to update product")
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	product.Description = req.Description
	product.Price = req.Price
	product.Stock = req.Stock

	if err := s.DB.Save(&product).Error; err != nil {
		return messageResponse(c, http.StatusBadRequest, "product already exists")
	}
	return c.JSON(http.StatusOK, product)
}

func (s *Server) DeleteProduct(c echo.Context) error {
	name := c.Param("name")
	if err := s.DB.Where("name = ?", name).Delete(&Product{}).Error; err != nil {
		return messageResponse(c, http.StatusInternalServerError, "unable to delete product")
	}
	return c.NoContent(http.StatusNoContent)
}
