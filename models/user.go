package models

import "time"

// Role defines the closed set of roles a user account can hold.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
	RoleDelivery Role = "delivery"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleOwner, RoleDelivery, RoleAdmin:
		return true
	}
	return false
}

// CanManagePlatform gates admin-only operations: user management, role
// assignment, restaurant CRUD and cascade deletion.
func (r Role) CanManagePlatform() bool {
	return r == RoleAdmin
}

// CanUpdateOrderStatus gates direct order status changes. Customers go
// through the cancel endpoint instead.
func (r Role) CanUpdateOrderStatus() bool {
	return r == RoleAdmin || r == RoleOwner || r == RoleDelivery
}

// CanCancelAnyOrder reports whether the role may cancel an order
// regardless of its current status.
func (r Role) CanCancelAnyOrder() bool {
	return r == RoleAdmin || r == RoleOwner
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Address      string    `json:"address"`
	Role         Role      `json:"role" gorm:"not null;default:'customer'"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	RestaurantID *uint     `json:"restaurant_id"` // set only while the user owns a restaurant
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
