package repository

import (
	"sync"

	"okcoin_backend/internal/domain"
)

// userTaskKey - составной ключ для прогресса по заданиям
type userTaskKey struct {
	userID int64
	taskID int64
}

// Store is the in-memory entity store. It owns all game records; callers
// always receive copies, never pointers into the maps. Ids are assigned
// monotonically per entity type, starting at 1. The store does no
// cross-entity validation - that is the game service's job.
type Store struct {
	mu sync.RWMutex

	users     map[int64]*domain.User
	tasks     map[int64]*domain.Task
	userTasks map[userTaskKey]*domain.UserTask
	referrals map[int64]*domain.Referral

	nextUserID     int64
	nextTaskID     int64
	nextUserTaskID int64
	nextReferralID int64
}

// NewStore creates an empty store seeded with the default task set.
func NewStore() *Store {
	s := &Store{
		users:          make(map[int64]*domain.User),
		tasks:          make(map[int64]*domain.Task),
		userTasks:      make(map[userTaskKey]*domain.UserTask),
		referrals:      make(map[int64]*domain.Referral),
		nextUserID:     1,
		nextTaskID:     1,
		nextUserTaskID: 1,
		nextReferralID: 1,
	}
	s.seedTasks()
	return s
}

func target(n int64) *int64 { return &n }

// seedTasks создаёт стандартный набор заданий при старте процесса
func (s *Store) seedTasks() {
	defaults := []domain.Task{
		{
			Title:       "Share with 5 friends",
			Description: "Invite friends to earn bonus coins",
			Reward:      500,
			Icon:        "fas fa-share",
			Type:        domain.TaskTypeShare,
			Target:      target(5),
			IsActive:    true,
		},
		{
			Title:       "Reach 1000 coins",
			Description: "Tap your way to 1000 coins",
			Reward:      200,
			Icon:        "fas fa-check",
			Type:        domain.TaskTypeTap,
			Target:      target(1000),
			IsActive:    true,
		},
		{
			Title:       "Join Telegram Channel",
			Description: "Stay updated with latest news",
			Reward:      300,
			Icon:        "fab fa-telegram",
			Type:        domain.TaskTypeJoin,
			IsActive:    true,
		},
	}

	for i := range defaults {
		s.CreateTask(&defaults[i])
	}
}
