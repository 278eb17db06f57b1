package store

import "github.com/eatupnow/eatupnow-api/models"

func (s *Store) CreateOrder(o *models.Order) error {
	return s.db.Create(o).Error
}

func (s *Store) CreateOrderItem(item *models.OrderItem) error {
	return s.db.Create(item).Error
}

// OrderByID loads an order with its line items.
func (s *Store) OrderByID(id uint) (*models.Order, error) {
	var o models.Order
	if err := s.db.Preload("Items").First(&o, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &o, nil
}

func (s *Store) OrdersByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) OrdersByRestaurant(restaurantID uint, status models.OrderStatus) ([]models.Order, error) {
	q := s.db.Preload("Items").Where("restaurant_id = ?", restaurantID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var orders []models.Order
	if err := q.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) AllOrders() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UnassignedPreparingOrders lists orders a delivery agent can claim.
func (s *Store) UnassignedPreparingOrders() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("status = ? AND delivery_agent_id IS NULL", models.StatusPreparing).
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) SaveOrder(o *models.Order) error {
	return s.db.Save(o).Error
}

func (s *Store) UpdateOrderStatus(o *models.Order, status models.OrderStatus) error {
	return s.db.Model(o).Update("status", status).Error
}

// HasDeliveredOrder reports whether the user has at least one delivered
// order from the restaurant. Reviews are gated on this.
func (s *Store) HasDeliveredOrder(userID, restaurantID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Order{}).
		Where("user_id = ? AND restaurant_id = ? AND status = ?",
			userID, restaurantID, models.StatusDelivered).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteOrdersByRestaurant removes the restaurant's orders together with
// their line items.
func (s *Store) DeleteOrdersByRestaurant(restaurantID uint) error {
	var orderIDs []uint
	err := s.db.Model(&models.Order{}).
		Where("restaurant_id = ?", restaurantID).
		Pluck("id", &orderIDs).Error
	if err != nil {
		return err
	}
	if len(orderIDs) > 0 {
		if err := s.db.Where("order_id IN ?", orderIDs).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
	}
	return s.db.Where("restaurant_id = ?", restaurantID).Delete(&models.Order{}).Error
}

func (s *Store) CountOrderItems(orderID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.OrderItem{}).Where("order_id = ?", orderID).Count(&count).Error
	return count, err
}
