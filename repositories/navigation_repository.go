package repositories

import (
	"myblog-api/models"

	"gorm.io/gorm"
)

type NavigationRepository interface {
	Create(entry *models.NavigationEntry) error
	GetByID(id uint) (*models.NavigationEntry, error)
	GetAll() ([]models.NavigationEntry, error)
	Update(entry *models.NavigationEntry) error
	Delete(id uint) error
}

type navigationRepository struct {
	db *gorm.DB
}

func NewNavigationRepository(db *gorm.DB) NavigationRepository {
	return &navigationRepository{db: db}
}

func (r *navigationRepository) Create(entry *models.NavigationEntry) error {
	return storeErr(r.db.Create(entry).Error)
}

func (r *navigationRepository) GetByID(id uint) (*models.NavigationEntry, error) {
	var entry models.NavigationEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		return nil, storeErr(err)
	}
	return &entry, nil
}

func (r *navigationRepository) GetAll() ([]models.NavigationEntry, error) {
	var entries []models.NavigationEntry
	err := r.db.Order("sort_order ASC, id ASC").Find(&entries).Error
	return entries, storeErr(err)
}

func (r *navigationRepository) Update(entry *models.NavigationEntry) error {
	return storeErr(r.db.Save(entry).Error)
}

func (r *navigationRepository) Delete(id uint) error {
	return storeErr(r.db.Delete(&models.NavigationEntry{}, id).Error)
}
