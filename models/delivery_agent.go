package models

import "time"

// DeliveryAgent is a separate identity space from User. Agents register
// and log in through their own endpoints and are linked to orders by ID.
type DeliveryAgent struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone         string    `json:"phone" gorm:"uniqueIndex;not null"`
	PasswordHash  string    `json:"-" gorm:"not null"`
	VehicleType   string    `json:"vehicle_type"` // Bike, Scooter, Car
	VehicleNumber string    `json:"vehicle_number"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	IsAvailable   bool      `json:"is_available" gorm:"default:true"`
	Location      string    `json:"location"`
	CreatedAt     time.Time `json:"created_at"`
}
