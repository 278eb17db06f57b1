package store

import "github.com/eatupnow/eatupnow-api/models"

func (s *Store) CreateReview(r *models.Review) error {
	return s.db.Create(r).Error
}

func (s *Store) ReviewsByRestaurant(restaurantID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *Store) ReviewsByUser(userID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// AverageRating computes the mean rating over all of the restaurant's
// reviews. Returns 0 when there are none.
func (s *Store) AverageRating(restaurantID uint) (float64, error) {
	var avg *float64
	err := s.db.Model(&models.Review{}).
		Where("restaurant_id = ?", restaurantID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (s *Store) DeleteReviewsByRestaurant(restaurantID uint) error {
	return s.db.Where("restaurant_id = ?", restaurantID).Delete(&models.Review{}).Error
}

func (s *Store) CountReviews(restaurantID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Review{}).Where("restaurant_id = ?", restaurantID).Count(&count).Error
	return count, err
}
