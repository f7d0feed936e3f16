package projects

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"construlab/internal/domain/geometry"
	"construlab/internal/domain/units"
)

// Data is the saved drawing: an ordered path with its scale.
type Data struct {
	Points     []geometry.Point `json:"points"`
	Scale      float64          `json:"scale"`
	IsClosed   bool             `json:"isClosed"`
	UnitSystem units.System     `json:"unitSystem"`
}

type Project struct {
	ID        string                   `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    uint                     `gorm:"not null;index:idx_projects_user_updated,priority:1" json:"user_id"`
	Name      string                   `gorm:"not null" json:"name"`
	Data      datatypes.JSONType[Data] `json:"data"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `gorm:"index:idx_projects_user_updated,priority:2" json:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// AreaM2 is the footprint area of the saved drawing.
func (p *Project) AreaM2() float64 {
	d := p.Data.Data()
	return geometry.AreaM2(d.Points, d.Scale)
}
