package store

import "github.com/eatupnow/eatupnow-api/models"

func (s *Store) CreateAgent(a *models.DeliveryAgent) error {
	return s.db.Create(a).Error
}

func (s *Store) AgentByID(id uint) (*models.DeliveryAgent, error) {
	var a models.DeliveryAgent
	if err := s.db.First(&a, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &a, nil
}

func (s *Store) AgentByEmail(email string) (*models.DeliveryAgent, error) {
	var a models.DeliveryAgent
	if err := s.db.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &a, nil
}

// AgentEmailOrPhoneTaken reports whether another agent already uses the
// email or phone number.
func (s *Store) AgentEmailOrPhoneTaken(email, phone string) (bool, error) {
	var count int64
	err := s.db.Model(&models.DeliveryAgent{}).
		Where("email = ? OR phone = ?", email, phone).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) Agents() ([]models.DeliveryAgent, error) {
	var agents []models.DeliveryAgent
	if err := s.db.Order("id").Find(&agents).Error; err != nil {
		return nil, err
	}
	return agents, nil
}

func (s *Store) SaveAgent(a *models.DeliveryAgent) error {
	return s.db.Save(a).Error
}
