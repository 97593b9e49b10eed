package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"habittracker/backend/models"
)

// GormStore persists aggregates in PostgreSQL through GORM. The *gorm.DB must be
// opened with TranslateError so that unique violations surface as ErrConflict.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Habit{},
		&models.CheckRecord{},
		&models.Category{},
		&models.RefreshToken{},
		&models.ResetToken{},
		&models.Reminder{},
	)
}

func (s *GormStore) Users() UserRepository { return gormUsers{s.db} }
func (s *GormStore) Habits() HabitRepository { return gormHabits{s.db} }
func (s *GormStore) Checks() CheckRepository { return gormChecks{s.db} }
func (s *GormStore) Categories() CategoryRepository { return gormCategories{s.db} }
func (s *GormStore) Tokens() TokenRepository { return gormTokens{s.db} }
func (s *GormStore) Reminders() ReminderRepository { return gormReminders{s.db} }

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}

// affected turns a zero-row write into ErrNotFound.
func affected(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type gormUsers struct{ db *gorm.DB }

func (r gormUsers) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r gormUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r gormUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r gormUsers) Update(ctx context.Context, user *models.User) error {
	return affected(r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]any{
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"role":          user.Role,
	}))
}

type gormHabits struct{ db *gorm.DB }

func (r gormHabits) Create(ctx context.Context, habit *models.Habit) error {
	return translate(r.db.WithContext(ctx).Create(habit).Error)
}

func (r gormHabits) Get(ctx context.Context, id string) (*models.Habit, error) {
	var habit models.Habit
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&habit).Error; err != nil {
		return nil, translate(err)
	}
	return &habit, nil
}

func (r gormHabits) ListByUser(ctx context.Context, userID string) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at, id").Find(&habits).Error; err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return habits, nil
}

func (r gormHabits) Update(ctx context.Context, habit *models.Habit) error {
	return affected(r.db.WithContext(ctx).Model(&models.Habit{}).Where("id = ?", habit.ID).Updates(map[string]any{
		"name":        habit.Name,
		"description": habit.Description,
	}))
}

func (r gormHabits) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", id).Delete(&models.CheckRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("habit_id = ?", id).Delete(&models.Reminder{}).Error; err != nil {
			return err
		}
		return affected(tx.Where("id = ?", id).Delete(&models.Habit{}))
	})
}

type gormChecks struct{ db *gorm.DB }

func habitExists(tx *gorm.DB, id string) error {
	var n int64
	if err := tx.Model(&models.Habit{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r gormChecks) Add(ctx context.Context, habitID, date string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := habitExists(tx, habitID); err != nil {
			return err
		}
		record := models.CheckRecord{HabitID: habitID, Date: date, CreatedAt: time.Now().UTC()}
		return translate(tx.Create(&record).Error)
	})
}

func (r gormChecks) List(ctx context.Context, habitID string) ([]string, error) {
	db := r.db.WithContext(ctx)
	if err := habitExists(db, habitID); err != nil {
		return nil, err
	}

	var records []models.CheckRecord
	if err := db.Where("habit_id = ?", habitID).Order("created_at").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list checks: %w", err)
	}
	dates := make([]string, 0, len(records))
	for _, rec := range records {
		dates = append(dates, rec.Date)
	}
	return dates, nil
}

type gormCategories struct{ db *gorm.DB }

func (r gormCategories) Create(ctx context.Context, category *models.Category) error {
	return translate(r.db.WithContext(ctx).Create(category).Error)
}

func (r gormCategories) Get(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r gormCategories) List(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := r.db.WithContext(ctx).Order("created_at").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r gormCategories) Update(ctx context.Context, category *models.Category) error {
	return affected(r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", category.ID).Update("name", category.Name))
}

func (r gormCategories) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{}))
}

type gormTokens struct{ db *gorm.DB }

func (r gormTokens) SaveRefresh(ctx context.Context, token models.RefreshToken) error {
	return r.db.WithContext(ctx).Save(&token).Error
}

func (r gormTokens) GetRefresh(ctx context.Context, userID string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&token).Error; err != nil {
		return nil, translate(err)
	}
	return &token, nil
}

func (r gormTokens) SaveReset(ctx context.Context, token models.ResetToken) error {
	return r.db.WithContext(ctx).Save(&token).Error
}

func (r gormTokens) GetReset(ctx context.Context, token string) (*models.ResetToken, error) {
	var reset models.ResetToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&reset).Error; err != nil {
		return nil, translate(err)
	}
	return &reset, nil
}

func (r gormTokens) DeleteReset(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&models.ResetToken{}).Error
}

type gormReminders struct{ db *gorm.DB }

func (r gormReminders) Create(ctx context.Context, reminder *models.Reminder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := habitExists(tx, reminder.HabitID); err != nil {
			return err
		}
		return translate(tx.Create(reminder).Error)
	})
}

func (r gormReminders) Get(ctx context.Context, id string) (*models.Reminder, error) {
	var reminder models.Reminder
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reminder).Error; err != nil {
		return nil, translate(err)
	}
	return &reminder, nil
}

func (r gormReminders) ListByUser(ctx context.Context, userID string) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("remind_at").Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return reminders, nil
}

func (r gormReminders) ListDue(ctx context.Context, now time.Time) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	err := r.db.WithContext(ctx).
		Where("sent_at IS NULL AND remind_at <= ?", now).
		Order("remind_at").
		Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	return reminders, nil
}

func (r gormReminders) MarkSent(ctx context.Context, id string, at time.Time) error {
	return affected(r.db.WithContext(ctx).Model(&models.Reminder{}).Where("id = ?", id).Update("sent_at", at))
}

func (r gormReminders) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Reminder{}))
}
