package models

import (
	"time"
)

type Order struct {
	ID              int64       `json:"id" gorm:"primaryKey"`
	CustomerName    string      `json:"customer_name" gorm:"not null"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerEmail   string      `json:"customer_email"`
	DeliveryAddress string      `json:"delivery_address"`
	OrderType       OrderType   `json:"order_type" gorm:"default:'delivery'"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	TotalPrice      float64     `json:"total_price" gorm:"not null"`
	Status          OrderStatus `json:"status" gorm:"default:'pending'"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCooking   OrderStatus = "cooking"
	OrderDelivery  OrderStatus = "delivery"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

type OrderType string

const (
	TypeDelivery OrderType = "delivery"
	TypeTakeaway OrderType = "takeaway"
)

// PickupAddress is stored as the delivery address of takeaway orders.
const PickupAddress = "Самовывоз"
