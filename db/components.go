package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"dashcomposer/models"
)

// CreateComponent inserts a component, rejecting duplicate names before
// the insert so the caller gets ErrDuplicateName rather than a
// driver-specific constraint error.
func (d *DB) CreateComponent(component *models.Component) error {
	if _, err := d.GetComponentByName(component.Name); err == nil {
		return ErrDuplicateName
	} else if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to check component name: %w", err)
	}
	if err := d.gorm.Create(component).Error; err != nil {
		return fmt.Errorf("failed to create component: %w", err)
	}
	return nil
}

func (d *DB) GetComponent(id uint) (*models.Component, error) {
	var component models.Component
	err := d.gorm.First(&component, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get component: %w", err)
	}
	return &component, nil
}

func (d *DB) GetComponentByName(name string) (*models.Component, error) {
	var component models.Component
	err := d.gorm.Where("name = ?", name).First(&component).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get component by name: %w", err)
	}
	return &component, nil
}

func (d *DB) ListComponents(skip, limit int) ([]models.Component, error) {
	var components []models.Component
	err := d.gorm.Offset(skip).Limit(limit).Find(&components).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list components: %w", err)
	}
	return components, nil
}

// UpdateComponent applies a partial update and returns the fresh row.
// A renamed component must not collide with an existing name.
func (d *DB) UpdateComponent(id uint, updates map[string]interface{}) (*models.Component, error) {
	existing, err := d.GetComponent(id)
	if err != nil {
		return nil, err
	}

	if name, ok := updates["name"].(string); ok && name != existing.Name {
		if _, err := d.GetComponentByName(name); err == nil {
			return nil, ErrDuplicateName
		} else if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("failed to check component name: %w", err)
		}
	}

	if err := d.gorm.Model(existing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update component: %w", err)
	}
	return d.GetComponent(id)
}

func (d *DB) DeleteComponent(id uint) error {
	result := d.gorm.Delete(&models.Component{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete component: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *DB) ComponentsByType(componentType string) ([]models.Component, error) {
	var components []models.Component
	err := d.gorm.Where("component_type = ?", componentType).Find(&components).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list components by type: %w", err)
	}
	return components, nil
}

func (d *DB) ComponentsBySource(dataSource string) ([]models.Component, error) {
	var components []models.Component
	err := d.gorm.Where("data_source = ?", dataSource).Find(&components).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list components by source: %w", err)
	}
	return components, nil
}

func (d *DB) ComponentsByInterval(interval string) ([]models.Component, error) {
	var components []models.Component
	// "interval" is a reserved word on postgres, so it has to be quoted.
	err := d.gorm.Where(`"interval" = ?`, interval).Find(&components).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list components by interval: %w", err)
	}
	return components, nil
}

// SearchComponents matches name or description, case-insensitively on
// both sqlite and postgres.
func (d *DB) SearchComponents(term string, skip, limit int) ([]models.Component, error) {
	var components []models.Component
	pattern := "%" + strings.ToLower(term) + "%"
	err := d.gorm.
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Offset(skip).Limit(limit).
		Find(&components).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search components: %w", err)
	}
	return components, nil
}

func (d *DB) RecentComponents(limit int) ([]models.Component, error) {
	var components []models.Component
	err := d.gorm.Order("created_at DESC").Limit(limit).Find(&components).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent components: %w", err)
	}
	return components, nil
}

func (d *DB) CountComponents() (int64, error) {
	var count int64
	if err := d.gorm.Model(&models.Component{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count components: %w", err)
	}
	return count, nil
}

func (d *DB) CountComponentsByType(componentType string) (int64, error) {
	var count int64
	err := d.gorm.Model(&models.Component{}).Where("component_type = ?", componentType).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count components by type: %w", err)
	}
	return count, nil
}

func (d *DB) CountComponentsBySource(dataSource string) (int64, error) {
	var count int64
	err := d.gorm.Model(&models.Component{}).Where("data_source = ?", dataSource).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count components by source: %w", err)
	}
	return count, nil
}
