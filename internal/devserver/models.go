package devserver

// gorm models for the stand-in backend. IDs stay internal; the API addresses
// categories and products by name, matching the production contract.

type User struct {
	ID           string `gorm:"primaryKey"`
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null"`
}

type Category struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
}

type Product struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	CategoryName string  `gorm:"index;not null" json:"categoryName"`
	Name         string  `gorm:"uniqueIndex;not null" json:"name"`
	Description  string  `json:"description"`
	Price        float64 `gorm:"not null" json:"price"`
	Stock        int     `gorm:"not null" json:"stock"`
	ImageURL     string  `json:"imageUrl"`
}
