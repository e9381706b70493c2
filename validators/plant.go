package validators

import (
	"errors"
	"slices"
	"verdant/plantcare-api/internal/model"
)

var (
	ErrPlantNameEmpty  = errors.New("plant name is required")
	ErrSunlightInvalid = errors.New("sunlight must be one of low, medium or high")

	sunlightLevels = []string{model.SunlightLow, model.SunlightMedium, model.SunlightHigh}
)

func PlantNameValidator(n string) error {
	if n == "" {
		return ErrPlantNameEmpty
	}

	return nil
}

// SunlightValidator accepts an empty value so that plants without a
// recorded light requirement can still be saved
func SunlightValidator(s string) error {
	if s == "" {
		return nil
	}

	if !slices.Contains(sunlightLevels, s) {
		return ErrSunlightInvalid
	}

	return nil
}
