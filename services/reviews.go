package services

import (
	"errors"
	"math"

	"github.com/eatupnow/eatupnow-api/models"
	"github.com/eatupnow/eatupnow-api/store"
)

// ReviewService implements review creation and the aggregate-rating
// recomputation it triggers.
type ReviewService struct {
	store *store.Store
}

func NewReviewService(s *store.Store) *ReviewService {
	return &ReviewService{store: s}
}

// Create inserts a review and recomputes the restaurant's rating as the
// mean of all its reviews, rounded to one decimal. The caller must have
// at least one delivered order from the restaurant.
func (s *ReviewService) Create(userID, restaurantID uint, rating int, comment string) (*models.Review, error) {
	restaurant, err := s.store.RestaurantByID(restaurantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	delivered, err := s.store.HasDeliveredOrder(userID, restaurantID)
	if err != nil {
		return nil, err
	}
	if !delivered {
		return nil, ErrReviewNotAllowed
	}

	review := &models.Review{
		UserID:       userID,
		RestaurantID: restaurantID,
		Rating:       rating,
		Comment:      comment,
	}

	err = s.store.Tx(func(tx *store.Store) error {
		if err := tx.CreateReview(review); err != nil {
			return err
		}
		avg, err := tx.AverageRating(restaurantID)
		if err != nil {
			return err
		}
		restaurant.Rating = math.Round(avg*10) / 10
		return tx.SaveRestaurant(restaurant)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}
