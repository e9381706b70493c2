package service

import (
	"time"
	"verdant/plantcare-api/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReminderCleanup periodically deletes reminders whose plant no longer
// exists. Plant deletion removes its reminders in the same
// transaction, so normally there is nothing to do here. This job is
// the safety net for rows left behind by older deployments or manual
// database edits, and it is safe to run any number of times.
func ReminderCleanup(t time.Duration, db *gorm.DB) {
	ticker := time.NewTicker(t)

	zap.L().Debug("Reminder cleanup attached", zap.Duration("tick_every", t))

	go func() {
		for range ticker.C {
			res := db.
				Where("plant_id NOT IN (?)", db.Model(model.Plant{}).Select("id")).
				Delete(&model.Reminder{})
			if res.Error != nil {
				zap.L().Error("Failed to cleanup orphaned reminders", zap.Error(res.Error))
				continue
			}

			if res.RowsAffected > 0 {
				zap.L().Info("Cleaned up orphaned reminders", zap.Int64("count", res.RowsAffected))
			}
		}
	}()
}
