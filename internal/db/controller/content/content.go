// Package content provides CRUD operations for the CMS content sections.
//
// A section payload is an opaque JSON blob defined by the site frontend; the
// controller never validates or transforms it beyond storing the bytes.
package content

import (
	"errors"

	"gorm.io/gorm"

	"github.com/aikya-dev/aikya/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrSectionNotFound is returned when a content section is not found.
	ErrSectionNotFound = errors.New("content section not found")
	// ErrSectionNameEmpty is returned when a section name is empty.
	ErrSectionNameEmpty = errors.New("section name cannot be empty")
	// ErrSectionAlreadyExists is returned when creating a section that already exists.
	ErrSectionAlreadyExists = errors.New("content section already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a content section by its name.
func Get(db *gorm.DB, name string) (*models.ContentSection, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrSectionNameEmpty
	}

	var section models.ContentSection
	result := db.Where(nameQueryPattern, name).First(&section)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, result.Error
	}

	return &section, nil
}

// GetAll retrieves all content sections ordered by name.
func GetAll(db *gorm.DB) ([]models.ContentSection, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var sections []models.ContentSection
	result := db.Order("name").Find(&sections)
	if result.Error != nil {
		return nil, result.Error
	}

	return sections, nil
}

// Create creates a new content section.
func Create(db *gorm.DB, name string, value []byte) (*models.ContentSection, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrSectionNameEmpty
	}

	var existing models.ContentSection
	result := db.Where(nameQueryPattern, name).First(&existing)
	if result.Error == nil {
		return nil, ErrSectionAlreadyExists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	section := &models.ContentSection{
		Name:  name,
		Value: value,
	}

	result = db.Create(section)
	if result.Error != nil {
		return nil, result.Error
	}

	return section, nil
}

// Set creates or updates a content section by name (upsert operation).
func Set(db *gorm.DB, name string, value []byte) (*models.ContentSection, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrSectionNameEmpty
	}

	var section models.ContentSection
	result := db.Where(nameQueryPattern, name).First(&section)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return Create(db, name, value)
	}
	if result.Error != nil {
		return nil, result.Error
	}

	section.Value = value
	result = db.Save(&section)
	if result.Error != nil {
		return nil, result.Error
	}

	return &section, nil
}

// UpdateByName updates an existing content section by name.
func UpdateByName(db *gorm.DB, name string, value []byte) (*models.ContentSection, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrSectionNameEmpty
	}

	var section models.ContentSection
	result := db.Where(nameQueryPattern, name).First(&section)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, result.Error
	}

	section.Value = value
	result = db.Save(&section)
	if result.Error != nil {
		return nil, result.Error
	}

	return &section, nil
}

// DeleteByName deletes a content section by name.
func DeleteByName(db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}
	if name == "" {
		return ErrSectionNameEmpty
	}

	result := db.Where(nameQueryPattern, name).Delete(&models.ContentSection{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSectionNotFound
	}

	return nil
}
