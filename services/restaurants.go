package services

import (
	"errors"

	"github.com/eatupnow/eatupnow-api/store"
)

// RestaurantService implements restaurant removal with its cascade.
type RestaurantService struct {
	store *store.Store
}

func NewRestaurantService(s *store.Store) *RestaurantService {
	return &RestaurantService{store: s}
}

// Delete removes a restaurant together with everything referencing it:
// line items of its orders, the orders, its reviews and menu items, and
// any user's owner link. One transaction, so a failure partway leaves
// nothing half-deleted.
func (s *RestaurantService) Delete(restaurantID uint) error {
	return s.store.Tx(func(tx *store.Store) error {
		restaurant, err := tx.RestaurantByID(restaurantID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRestaurantNotFound
			}
			return err
		}
		if err := tx.DeleteOrdersByRestaurant(restaurantID); err != nil {
			return err
		}
		if err := tx.DeleteReviewsByRestaurant(restaurantID); err != nil {
			return err
		}
		if err := tx.DeleteMenuItemsByRestaurant(restaurantID); err != nil {
			return err
		}
		owner, err := tx.OwnerOfRestaurant(restaurantID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if owner != nil {
			owner.RestaurantID = nil
			if err := tx.SaveUser(owner); err != nil {
				return err
			}
		}
		return tx.DeleteRestaurant(restaurant)
	})
}
