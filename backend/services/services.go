package services

import (
	"go.uber.org/zap"

	"habittracker/backend/config"
	"habittracker/backend/store"
)

// Services bundles every service over one store.
type Services struct {
	Auth       *AuthService
	Users      *UserService
	Habits     *HabitService
	Metrics    *MetricsService
	Categories *CategoryService
	Reminders  *ReminderService
	Export     *ExportService
}

func New(s store.Store, cfg *config.Config, clock Clock, logger *zap.Logger) *Services {
	return &Services{
		Auth:       NewAuthService(s, cfg, clock, logger),
		Users:      NewUserService(s),
		Habits:     NewHabitService(s, clock),
		Metrics:    NewMetricsService(s),
		Categories: NewCategoryService(s, clock),
		Reminders:  NewReminderService(s, clock, logger),
		Export:     NewExportService(s),
	}
}
