package repository

import (
	"sort"
	"time"

	"okcoin_backend/internal/domain"
)

// CreateTask assigns an id and stores the task. The passed struct is not
// retained; a copy with the assigned id is returned.
func (s *Store) CreateTask(t *domain.Task) *domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *t
	stored.ID = s.nextTaskID
	stored.CreatedAt = time.Now()
	s.nextTaskID++
	s.tasks[stored.ID] = &stored

	cp := stored
	return &cp
}

// TaskByID returns a copy of the task, ok=false if the id is unknown.
func (s *Store) TaskByID(id int64) (*domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, false
	}
	cp := *t
	return &cp, true
}

// ActiveTasks returns tasks with IsActive=true in insertion order.
// Неактивные задания скрыты, но не удалены.
func (s *Store) ActiveTasks() []*domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*domain.Task
	for _, t := range s.tasks {
		if !t.IsActive {
			continue
		}
		cp := *t
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}
