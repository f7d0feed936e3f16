package projects

import (
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// List returns the user's projects, most recently updated first.
func List(db *gorm.DB, userID uint) ([]Project, error) {
	var out []Project
	err := db.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&out).Error
	return out, err
}

// Get loads a project owned by userID. Someone else's project is reported as
// not found.
func Get(db *gorm.DB, userID uint, id string) (*Project, error) {
	var p Project
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save creates a project when id is empty, otherwise updates the user's own
// project with that id.
func Save(db *gorm.DB, userID uint, id, name string, data Data) (*Project, error) {
	name, data = Normalize(name, data)
	if err := Validate(name, data); err != nil {
		return nil, err
	}

	if id == "" {
		p := Project{UserID: userID, Name: name, Data: datatypes.NewJSONType(data)}
		if err := db.Create(&p).Error; err != nil {
			return nil, fmt.Errorf("create project: %w", err)
		}
		return &p, nil
	}

	p, err := Get(db, userID, id)
	if err != nil {
		return nil, err
	}
	p.Name = name
	p.Data = datatypes.NewJSONType(data)
	if err := db.Save(p).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return p, nil
}

func Delete(db *gorm.DB, userID uint, id string) error {
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAllForUser is used when an account is removed.
func DeleteAllForUser(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&Project{}).Error
}
