package projects

import (
	"errors"
	"strings"

	"construlab/internal/domain/units"
)

// MinPoints is the smallest path that encloses an area.
const MinPoints = 3

var (
	ErrNameRequired = errors.New("project name is required")
	ErrTooFewPoints = errors.New("at least 3 points are required")
	ErrInvalidScale = errors.New("scale must be positive")
	ErrNotFound     = errors.New("project not found")
)

// Normalize trims the name and fills drawing defaults before Validate.
func Normalize(name string, d Data) (string, Data) {
	if d.UnitSystem == "" {
		d.UnitSystem = units.SI
	}
	return strings.TrimSpace(name), d
}

func Validate(name string, d Data) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if len(d.Points) < MinPoints {
		return ErrTooFewPoints
	}
	if d.Scale <= 0 {
		return ErrInvalidScale
	}
	return nil
}
