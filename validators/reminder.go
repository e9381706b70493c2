package validators

import (
	"errors"
	"slices"
	"verdant/plantcare-api/internal/model"
)

var (
	ErrReminderTypeInvalid = errors.New("type must be one of watering, fertilizing, repotting, pruning or other")
	ErrDueDateEmpty        = errors.New("due date is required")

	reminderTypes = []string{
		model.ReminderWatering,
		model.ReminderFertilizing,
		model.ReminderRepotting,
		model.ReminderPruning,
		model.ReminderOther,
	}
)

func ReminderTypeValidator(t string) error {
	if !slices.Contains(reminderTypes, t) {
		return ErrReminderTypeInvalid
	}

	return nil
}
