package domain

import "time"

// TaskType - тип задания, определяет как меряется прогресс
type TaskType string

const (
	TaskTypeTap   TaskType = "tap"   // прогресс = монеты пользователя
	TaskTypeShare TaskType = "share" // приглашения друзей
	TaskTypeJoin  TaskType = "join"  // бинарное: выполнено или нет
)

// Task - шаблон задания, общий для всех пользователей
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Reward      int64     `json:"reward"`
	Icon        string    `json:"icon"`
	Type        TaskType  `json:"type"`
	Target      *int64    `json:"target,omitempty"` // nil для бинарных заданий
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// TargetOrZero returns the numeric threshold, 0 for binary tasks.
func (t *Task) TargetOrZero() int64 {
	if t.Target == nil {
		return 0
	}
	return *t.Target
}

// UserTask - прогресс пользователя по заданию, одна строка на пару (user, task)
type UserTask struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	TaskID      int64      `json:"task_id"`
	Progress    int64      `json:"progress"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TaskWithProgress - задание с прогрессом пользователя (для API ответов)
type TaskWithProgress struct {
	Task
	Progress  int64 `json:"progress"`
	Completed bool  `json:"completed"`
}
