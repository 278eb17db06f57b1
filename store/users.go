package store

import "github.com/eatupnow/eatupnow-api/models"

func (s *Store) CreateUser(u *models.User) error {
	return s.db.Create(u).Error
}

func (s *Store) UserByID(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &u, nil
}

func (s *Store) UserByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &u, nil
}

// EmailTaken reports whether a user account already uses the email.
func (s *Store) EmailTaken(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Users lists accounts, optionally filtered by role.
func (s *Store) Users(role models.Role) ([]models.User, error) {
	var users []models.User
	q := s.db
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) SaveUser(u *models.User) error {
	return s.db.Save(u).Error
}

func (s *Store) DeleteUser(u *models.User) error {
	return s.db.Delete(u).Error
}

// OwnerOfRestaurant returns the user whose RestaurantID points at the
// restaurant, if any.
func (s *Store) OwnerOfRestaurant(restaurantID uint) (*models.User, error) {
	var u models.User
	err := s.db.Where("restaurant_id = ?", restaurantID).First(&u).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &u, nil
}
