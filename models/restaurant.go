package models

import "time"

type Restaurant struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	City         string     `json:"city"`
	Address      string     `json:"address"`
	Cuisine      string     `json:"cuisine"`
	Rating       float64    `json:"rating" gorm:"default:0"` // mean of review ratings, one decimal
	Thumbnail    string     `json:"thumbnail"`
	DeliveryTime int        `json:"delivery_time" gorm:"default:30"` // minutes
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	OwnerID      *uint      `json:"owner_id"`
	MenuItems    []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type MenuItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" gorm:"not null"`
	Category     string    `json:"category"` // Appetizer, Main Course, Dessert, Beverage
	Image        string    `json:"image"`
	IsVeg        bool      `json:"is_veg" gorm:"default:true"`
	IsAvailable  bool      `json:"is_available" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
