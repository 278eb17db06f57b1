package services

import (
	"errors"

	"github.com/eatupnow/eatupnow-api/models"
	"github.com/eatupnow/eatupnow-api/store"
)

// UserService implements admin user management, most importantly the
// owner/restaurant assignment invariants: at most one restaurant per
// owner and one owner per restaurant.
type UserService struct {
	store *store.Store
}

func NewUserService(s *store.Store) *UserService {
	return &UserService{store: s}
}

// AssignRole changes a user's role and restaurant assignment.
//
// With a restaurant: the role is forced to owner regardless of the
// requested value, the restaurant's current owner (if different) is
// demoted to customer and unlinked, and the target's previous
// restaurant (if any) loses its back-pointer. Last writer wins.
//
// Without a restaurant: the user's link is cleared and the requested
// role applied verbatim.
//
// Every write happens in one transaction.
func (s *UserService) AssignRole(userID uint, role models.Role, restaurantID *uint) (*models.User, error) {
	var result *models.User
	err := s.store.Tx(func(tx *store.Store) error {
		user, err := tx.UserByID(userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if restaurantID == nil {
			if user.RestaurantID != nil {
				if err := s.detachFromRestaurant(tx, user); err != nil {
					return err
				}
			}
			user.Role = role
			user.RestaurantID = nil
			if err := tx.SaveUser(user); err != nil {
				return err
			}
			result = user
			return nil
		}

		restaurant, err := tx.RestaurantByID(*restaurantID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRestaurantNotFound
			}
			return err
		}

		// Demote the restaurant's current owner, if it is someone else.
		if restaurant.OwnerID != nil && *restaurant.OwnerID != user.ID {
			prev, err := tx.UserByID(*restaurant.OwnerID)
			if err == nil {
				prev.Role = models.RoleCustomer
				prev.RestaurantID = nil
				if err := tx.SaveUser(prev); err != nil {
					return err
				}
			} else if !errors.Is(err, store.ErrNotFound) {
				return err
			}
		}

		// Detach the target from any restaurant they previously owned.
		if user.RestaurantID != nil && *user.RestaurantID != restaurant.ID {
			if err := s.detachFromRestaurant(tx, user); err != nil {
				return err
			}
		}

		user.Role = models.RoleOwner
		user.RestaurantID = &restaurant.ID
		if err := tx.SaveUser(user); err != nil {
			return err
		}

		restaurant.OwnerID = &user.ID
		if err := tx.SaveRestaurant(restaurant); err != nil {
			return err
		}

		result = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// detachFromRestaurant clears the back-pointer on the restaurant the
// user currently owns.
func (s *UserService) detachFromRestaurant(tx *store.Store, user *models.User) error {
	prev, err := tx.RestaurantByID(*user.RestaurantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	if prev.OwnerID != nil && *prev.OwnerID == user.ID {
		prev.OwnerID = nil
		if err := tx.SaveRestaurant(prev); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a user account; a restaurant they owned is unlinked
// first so no dangling owner reference remains.
func (s *UserService) Delete(userID uint) error {
	return s.store.Tx(func(tx *store.Store) error {
		user, err := tx.UserByID(userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if user.RestaurantID != nil {
			if err := s.detachFromRestaurant(tx, user); err != nil {
				return err
			}
		}
		return tx.DeleteUser(user)
	})
}
