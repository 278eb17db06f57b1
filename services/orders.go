package services

import (
	"errors"

	"github.com/eatupnow/eatupnow-api/lifecycle"
	"github.com/eatupnow/eatupnow-api/models"
	"github.com/eatupnow/eatupnow-api/store"
)

// OrderLine is one requested (menu item, quantity) pair.
type OrderLine struct {
	MenuItemID uint
	Quantity   int
}

// OrderService implements order placement, status changes, cancellation
// and the delivery-agent claim flow.
type OrderService struct {
	store *store.Store
}

func NewOrderService(s *store.Store) *OrderService {
	return &OrderService{store: s}
}

// Place validates the requested items, computes the total from current
// menu prices, snapshots each price into its line item and persists the
// order with its items in a single transaction.
func (s *OrderService) Place(userID, restaurantID uint, address, paymentMethod string, lines []OrderLine) (*models.Order, error) {
	restaurant, err := s.store.RestaurantByID(restaurantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	if !restaurant.IsActive {
		return nil, ErrRestaurantClosed
	}

	var items []models.OrderItem
	var total float64
	for _, line := range lines {
		menuItem, err := s.store.MenuItemByID(line.MenuItemID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrMenuItemNotFound
			}
			return nil, err
		}
		if menuItem.RestaurantID != restaurantID {
			return nil, ErrWrongRestaurant
		}
		if !menuItem.IsAvailable {
			return nil, ErrItemUnavailable
		}
		total += menuItem.Price * float64(line.Quantity)
		items = append(items, models.OrderItem{
			MenuItemID:      menuItem.ID,
			Quantity:        line.Quantity,
			PriceAtPurchase: menuItem.Price,
		})
	}

	order := &models.Order{
		UserID:          userID,
		RestaurantID:    restaurantID,
		TotalAmount:     total,
		DeliveryAddress: address,
		PaymentMethod:   paymentMethod,
		Status:          models.StatusPending,
	}

	err = s.store.Tx(func(tx *store.Store) error {
		if err := tx.CreateOrder(order); err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.CreateOrderItem(&items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Items = items
	return order, nil
}

// UpdateStatus sets the order's status for an authorized actor.
func (s *OrderService) UpdateStatus(orderID uint, role models.Role, status models.OrderStatus) (*models.Order, error) {
	if err := lifecycle.CheckStatusChange(role, status); err != nil {
		return nil, err
	}
	order, err := s.store.OrderByID(orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if err := s.store.UpdateOrderStatus(order, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// Cancel cancels an order on behalf of its owning customer. Admin and
// owner roles may cancel from any state.
func (s *OrderService) Cancel(orderID, userID uint, role models.Role) (*models.Order, error) {
	order, err := s.store.OrderByID(orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if !role.CanCancelAnyOrder() && order.UserID != userID {
		return nil, ErrNotYourOrder
	}
	if err := lifecycle.CheckCancel(role, order.Status); err != nil {
		return nil, err
	}
	if err := s.store.UpdateOrderStatus(order, models.StatusCancelled); err != nil {
		return nil, err
	}
	order.Status = models.StatusCancelled
	return order, nil
}

// Accept assigns an unclaimed preparing order to the agent and moves it
// to out_for_delivery.
func (s *OrderService) Accept(orderID, agentID uint) (*models.Order, error) {
	order, err := s.store.OrderByID(orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.DeliveryAgentID != nil {
		return nil, ErrAlreadyAssigned
	}
	if order.Status != models.StatusPreparing {
		return nil, ErrOrderNotReady
	}

	order.DeliveryAgentID = &agentID
	order.Status = models.StatusOutForDelivery
	if err := s.store.SaveOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}
