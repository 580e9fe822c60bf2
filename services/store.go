package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/XidanAbds29/huehouse-api/models"
)

// GormOrderStore persists orders through the shared gorm connection.
type GormOrderStore struct {
	DB *gorm.DB
}

func (s *GormOrderStore) Create(order *models.Order) error {
	return s.DB.Create(order).Error
}

func (s *GormOrderStore) UpdateCourier(orderID uint, status, trackingID string) error {
	return s.DB.Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"courier_status": status,
			"tracking_id":    trackingID,
		}).Error
}

// GormProfileStore upserts customer profiles, overwriting every field with
// the latest submission.
type GormProfileStore struct {
	DB *gorm.DB
}

func (s *GormProfileStore) Upsert(profile models.Customer) error {
	return s.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&profile).Error
}
