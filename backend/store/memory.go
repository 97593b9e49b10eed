package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"habittracker/backend/models"
)

// MemoryStore keeps every aggregate in process memory. A single lock covers all
// maps so that cascading deletes and check-in duplicate detection are atomic.
type MemoryStore struct {
	mu         sync.RWMutex
	users      map[string]models.User
	emails     map[string]string // email -> user id
	habits     map[string]models.Habit
	checks     map[string][]string // habit id -> dates
	categories map[string]models.Category
	refresh    map[string]models.RefreshToken
	resets     map[string]models.ResetToken
	reminders  map[string]models.Reminder
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[string]models.User),
		emails:     make(map[string]string),
		habits:     make(map[string]models.Habit),
		checks:     make(map[string][]string),
		categories: make(map[string]models.Category),
		refresh:    make(map[string]models.RefreshToken),
		resets:     make(map[string]models.ResetToken),
		reminders:  make(map[string]models.Reminder),
	}
}

func (s *MemoryStore) Users() UserRepository { return memoryUsers{s} }
func (s *MemoryStore) Habits() HabitRepository { return memoryHabits{s} }
func (s *MemoryStore) Checks() CheckRepository { return memoryChecks{s} }
func (s *MemoryStore) Categories() CategoryRepository { return memoryCategories{s} }
func (s *MemoryStore) Tokens() TokenRepository { return memoryTokens{s} }
func (s *MemoryStore) Reminders() ReminderRepository { return memoryReminders{s} }

func (s *MemoryStore) Close() error { return nil }

type memoryUsers struct{ s *MemoryStore }

func (r memoryUsers) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.emails[user.Email]; ok {
		return ErrConflict
	}
	if _, ok := r.s.users[user.ID]; ok {
		return ErrConflict
	}
	r.s.users[strings.Clone(user.ID)] = *user
	r.s.emails[strings.Clone(user.Email)] = user.ID
	return nil
}

func (r memoryUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r memoryUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.emails[email]
	if !ok {
		return nil, ErrNotFound
	}
	user := r.s.users[id]
	return &user, nil
}

func (r memoryUsers) Update(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.users[user.ID]
	if !ok {
		return ErrNotFound
	}
	if current.Email != user.Email {
		if _, taken := r.s.emails[user.Email]; taken {
			return ErrConflict
		}
		delete(r.s.emails, current.Email)
		r.s.emails[strings.Clone(user.Email)] = user.ID
	}
	r.s.users[strings.Clone(user.ID)] = *user
	return nil
}

type memoryHabits struct{ s *MemoryStore }

func (r memoryHabits) Create(_ context.Context, habit *models.Habit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.habits[habit.ID]; ok {
		return ErrConflict
	}
	id := strings.Clone(habit.ID)
	r.s.habits[id] = *habit
	r.s.checks[id] = []string{}
	return nil
}

func (r memoryHabits) Get(_ context.Context, id string) (*models.Habit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	habit, ok := r.s.habits[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &habit, nil
}

func (r memoryHabits) ListByUser(_ context.Context, userID string) ([]models.Habit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	habits := make([]models.Habit, 0)
	for _, h := range r.s.habits {
		if h.UserID == userID {
			habits = append(habits, h)
		}
	}
	sort.Slice(habits, func(i, j int) bool {
		if habits[i].CreatedAt.Equal(habits[j].CreatedAt) {
			return habits[i].ID < habits[j].ID
		}
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})
	return habits, nil
}

func (r memoryHabits) Update(_ context.Context, habit *models.Habit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.habits[habit.ID]; !ok {
		return ErrNotFound
	}
	r.s.habits[strings.Clone(habit.ID)] = *habit
	return nil
}

func (r memoryHabits) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.habits[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.habits, id)
	delete(r.s.checks, id)
	for rid, rem := range r.s.reminders {
		if rem.HabitID == id {
			delete(r.s.reminders, rid)
		}
	}
	return nil
}

type memoryChecks struct{ s *MemoryStore }

func (r memoryChecks) Add(_ context.Context, habitID, date string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.habits[habitID]; !ok {
		return ErrNotFound
	}
	for _, d := range r.s.checks[habitID] {
		if d == date {
			return ErrConflict
		}
	}
	// map assignment stores the given key, which may alias a request buffer
	r.s.checks[strings.Clone(habitID)] = append(r.s.checks[habitID], strings.Clone(date))
	return nil
}

func (r memoryChecks) List(_ context.Context, habitID string) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, ok := r.s.habits[habitID]; !ok {
		return nil, ErrNotFound
	}
	return append([]string(nil), r.s.checks[habitID]...), nil
}

type memoryCategories struct{ s *MemoryStore }

func (r memoryCategories) nameTaken(name, exceptID string) bool {
	for id, c := range r.s.categories {
		if c.Name == name && id != exceptID {
			return true
		}
	}
	return false
}

func (r memoryCategories) Create(_ context.Context, category *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.nameTaken(category.Name, "") {
		return ErrConflict
	}
	r.s.categories[strings.Clone(category.ID)] = *category
	return nil
}

func (r memoryCategories) Get(_ context.Context, id string) (*models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	category, ok := r.s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &category, nil
}

func (r memoryCategories) List(_ context.Context) ([]models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	categories := make([]models.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].CreatedAt.Before(categories[j].CreatedAt)
	})
	return categories, nil
}

func (r memoryCategories) Update(_ context.Context, category *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[category.ID]; !ok {
		return ErrNotFound
	}
	if r.nameTaken(category.Name, category.ID) {
		return ErrConflict
	}
	r.s.categories[strings.Clone(category.ID)] = *category
	return nil
}

func (r memoryCategories) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.categories, id)
	return nil
}

type memoryTokens struct{ s *MemoryStore }

func (r memoryTokens) SaveRefresh(_ context.Context, token models.RefreshToken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.refresh[strings.Clone(token.UserID)] = token
	return nil
}

func (r memoryTokens) GetRefresh(_ context.Context, userID string) (*models.RefreshToken, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	token, ok := r.s.refresh[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &token, nil
}

func (r memoryTokens) SaveReset(_ context.Context, token models.ResetToken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.resets[strings.Clone(token.Token)] = token
	return nil
}

func (r memoryTokens) GetReset(_ context.Context, token string) (*models.ResetToken, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	reset, ok := r.s.resets[token]
	if !ok {
		return nil, ErrNotFound
	}
	return &reset, nil
}

func (r memoryTokens) DeleteReset(_ context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.resets, token)
	return nil
}

type memoryReminders struct{ s *MemoryStore }

func (r memoryReminders) Create(_ context.Context, reminder *models.Reminder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.habits[reminder.HabitID]; !ok {
		return ErrNotFound
	}
	r.s.reminders[strings.Clone(reminder.ID)] = *reminder
	return nil
}

func (r memoryReminders) Get(_ context.Context, id string) (*models.Reminder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	reminder, ok := r.s.reminders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &reminder, nil
}

func (r memoryReminders) ListByUser(_ context.Context, userID string) ([]models.Reminder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	reminders := make([]models.Reminder, 0)
	for _, rem := range r.s.reminders {
		if rem.UserID == userID {
			reminders = append(reminders, rem)
		}
	}
	sortReminders(reminders)
	return reminders, nil
}

func (r memoryReminders) ListDue(_ context.Context, now time.Time) ([]models.Reminder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	due := make([]models.Reminder, 0)
	for _, rem := range r.s.reminders {
		if rem.SentAt == nil && !rem.RemindAt.After(now) {
			due = append(due, rem)
		}
	}
	sortReminders(due)
	return due, nil
}

func (r memoryReminders) MarkSent(_ context.Context, id string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	reminder, ok := r.s.reminders[id]
	if !ok {
		return ErrNotFound
	}
	reminder.SentAt = &at
	r.s.reminders[strings.Clone(id)] = reminder
	return nil
}

func (r memoryReminders) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reminders[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.reminders, id)
	return nil
}

func sortReminders(reminders []models.Reminder) {
	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].RemindAt.Before(reminders[j].RemindAt)
	})
}
