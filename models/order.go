package models

import "time"

// OrderStatus represents all possible states of a food delivery order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

type Order struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserID          uint           `json:"user_id" gorm:"not null;index"`
	User            *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RestaurantID    uint           `json:"restaurant_id" gorm:"not null;index"`
	Restaurant      *Restaurant    `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	DeliveryAgentID *uint          `json:"delivery_agent_id"`
	DeliveryAgent   *DeliveryAgent `json:"delivery_agent,omitempty" gorm:"foreignKey:DeliveryAgentID"`
	TotalAmount     float64        `json:"total_amount" gorm:"not null"`
	DeliveryAddress string         `json:"delivery_address" gorm:"not null"`
	PaymentMethod   string         `json:"payment_method" gorm:"default:'cash'"` // cash, card, upi
	Status          OrderStatus    `json:"status" gorm:"not null;default:'pending'"`
	Items           []OrderItem    `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type OrderItem struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	OrderID         uint      `json:"order_id" gorm:"not null;index"`
	MenuItemID      uint      `json:"menu_item_id" gorm:"not null"`
	MenuItem        *MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity        int       `json:"quantity" gorm:"not null"`
	PriceAtPurchase float64   `json:"price_at_purchase" gorm:"not null"` // snapshot, immutable after creation
}
