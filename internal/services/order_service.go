package services

import (
	"errors"
	"fmt"

	"food_storefront/internal/cart"
	"food_storefront/internal/models"
	"food_storefront/internal/repository"

	"github.com/skip2/go-qrcode"
)

var (
	ErrDishNotFound  = errors.New("dish not found")
	ErrOrderNotFound = errors.New("order not found")
)

// ValidationError rejects a checkout before any state is touched.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CheckoutRequest carries the customer details of a checkout. Items and
// total come from the active cart, never from the request.
type CheckoutRequest struct {
	CustomerName    string           `json:"customer_name"`
	CustomerPhone   string           `json:"customer_phone"`
	CustomerEmail   string           `json:"customer_email"`
	DeliveryAddress string           `json:"delivery_address"`
	OrderType       models.OrderType `json:"order_type"`
}

type OrderService interface {
	ListOrders() ([]models.Order, error)
	SubmitOrder(req CheckoutRequest, lines cart.Cart) (*models.Order, error)
	UpdateOrderStatus(id int64, status models.OrderStatus) error
	OrderQRCode(id int64) ([]byte, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	baseURL   string
}

func NewOrderService(orderRepo repository.OrderRepository, baseURL string) OrderService {
	return &orderService{orderRepo: orderRepo, baseURL: baseURL}
}

func (s *orderService) ListOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// SubmitOrder validates the checkout, freezes the cart into order items
// and persists the order. Clearing the cart on success is the caller's
// job.
func (s *orderService) SubmitOrder(req CheckoutRequest, lines cart.Cart) (*models.Order, error) {
	if req.OrderType == "" {
		req.OrderType = models.TypeDelivery
	}
	if err := validateCheckout(req, lines); err != nil {
		return nil, err
	}

	address := req.DeliveryAddress
	if req.OrderType == models.TypeTakeaway {
		address = models.PickupAddress
	}

	order := &models.Order{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		DeliveryAddress: address,
		OrderType:       req.OrderType,
		Items:           cart.Snapshot(lines),
		TotalPrice:      cart.TotalPrice(lines),
		Status:          models.OrderPending,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrderStatus sets any status on the matching order. Transitions
// are deliberately unrestricted; unknown ids are a silent no-op.
func (s *orderService) UpdateOrderStatus(id int64, status models.OrderStatus) error {
	return s.orderRepo.UpdateStatus(id, status)
}

// OrderQRCode renders a pickup receipt: a QR encoding the order lookup
// URL.
func (s *orderService) OrderQRCode(id int64) ([]byte, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		if order.ID == id {
			qrData := fmt.Sprintf("%s/api/orders/%d", s.baseURL, id)
			return qrcode.Encode(qrData, qrcode.Medium, 256)
		}
	}
	return nil, ErrOrderNotFound
}

func validateCheckout(req CheckoutRequest, lines cart.Cart) error {
	if len(lines) == 0 {
		return &ValidationError{Message: "cart is empty"}
	}
	if req.CustomerName == "" {
		return &ValidationError{Message: "customer name is required"}
	}
	if req.CustomerPhone == "" {
		return &ValidationError{Message: "customer phone is required"}
	}
	if req.OrderType == models.TypeDelivery && req.DeliveryAddress == "" {
		return &ValidationError{Message: "delivery address is required"}
	}
	return nil
}
