package store

import "github.com/eatupnow/eatupnow-api/models"

// RestaurantFilter narrows restaurant listings. Zero values mean "no
// filter". Limit is clamped by the handler.
type RestaurantFilter struct {
	City      string
	Cuisine   string
	Search    string
	MinRating float64
	Skip      int
	Limit     int
}

func (s *Store) CreateRestaurant(r *models.Restaurant) error {
	return s.db.Create(r).Error
}

func (s *Store) RestaurantByID(id uint) (*models.Restaurant, error) {
	var r models.Restaurant
	if err := s.db.First(&r, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &r, nil
}

// Restaurants lists active restaurants matching the filter.
func (s *Store) Restaurants(f RestaurantFilter) ([]models.Restaurant, error) {
	q := s.db.Where("is_active = ?", true)
	if f.City != "" {
		q = q.Where("city LIKE ?", "%"+f.City+"%")
	}
	if f.Cuisine != "" {
		q = q.Where("cuisine LIKE ?", "%"+f.Cuisine+"%")
	}
	if f.Search != "" {
		q = q.Where("name LIKE ?", "%"+f.Search+"%")
	}
	if f.MinRating > 0 {
		q = q.Where("rating >= ?", f.MinRating)
	}
	if f.Skip > 0 {
		q = q.Offset(f.Skip)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var restaurants []models.Restaurant
	if err := q.Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *Store) AllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *Store) SaveRestaurant(r *models.Restaurant) error {
	return s.db.Save(r).Error
}

// UpdateRestaurantFields applies a partial update; only the provided
// columns change.
func (s *Store) UpdateRestaurantFields(r *models.Restaurant, fields map[string]interface{}) error {
	return s.db.Model(r).Updates(fields).Error
}

func (s *Store) DeleteRestaurant(r *models.Restaurant) error {
	return s.db.Delete(r).Error
}

// ── Menu items ──────────────────────────────────────────────────────

// MenuFilter narrows menu listings for a restaurant.
type MenuFilter struct {
	Category      string
	IsVeg         *bool
	OnlyAvailable bool
}

func (s *Store) CreateMenuItem(m *models.MenuItem) error {
	return s.db.Create(m).Error
}

func (s *Store) MenuItemByID(id uint) (*models.MenuItem, error) {
	var m models.MenuItem
	if err := s.db.First(&m, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &m, nil
}

func (s *Store) MenuItems(restaurantID uint, f MenuFilter) ([]models.MenuItem, error) {
	q := s.db.Where("restaurant_id = ?", restaurantID)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.IsVeg != nil {
		q = q.Where("is_veg = ?", *f.IsVeg)
	}
	if f.OnlyAvailable {
		q = q.Where("is_available = ?", true)
	}

	var items []models.MenuItem
	if err := q.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) UpdateMenuItemFields(m *models.MenuItem, fields map[string]interface{}) error {
	return s.db.Model(m).Updates(fields).Error
}

func (s *Store) DeleteMenuItem(m *models.MenuItem) error {
	return s.db.Delete(m).Error
}

func (s *Store) DeleteMenuItemsByRestaurant(restaurantID uint) error {
	return s.db.Where("restaurant_id = ?", restaurantID).Delete(&models.MenuItem{}).Error
}

func (s *Store) CountMenuItems(restaurantID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.MenuItem{}).Where("restaurant_id = ?", restaurantID).Count(&count).Error
	return count, err
}
