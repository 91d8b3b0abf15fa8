package repository

import (
	"sort"
	"time"

	"okcoin_backend/internal/domain"
)

// TaskProgress returns the progress row for the (user, task) pair.
// ok=false means no progress has ever been recorded - callers must not
// confuse that with a zero-progress row.
func (s *Store) TaskProgress(userID, taskID int64) (*domain.UserTask, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ut, ok := s.userTasks[userTaskKey{userID, taskID}]
	if !ok {
		return nil, false
	}
	cp := *ut
	return &cp, true
}

// UserTasks returns all progress rows recorded for a user.
func (s *Store) UserTasks(userID int64) []*domain.UserTask {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*domain.UserTask
	for _, ut := range s.userTasks {
		if ut.UserID != userID {
			continue
		}
		cp := *ut
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

// UpsertTaskProgress sets (not increments) the progress value for the pair,
// creating the row with completed=false if it does not exist yet.
func (s *Store) UpsertTaskProgress(userID, taskID, progress int64) *domain.UserTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := userTaskKey{userID, taskID}
	ut, ok := s.userTasks[key]
	if !ok {
		ut = &domain.UserTask{
			ID:        s.nextUserTaskID,
			UserID:    userID,
			TaskID:    taskID,
			Completed: false,
			CreatedAt: time.Now(),
		}
		s.nextUserTaskID++
		s.userTasks[key] = ut
	}
	ut.Progress = progress

	cp := *ut
	return &cp
}

// CompleteUserTask marks the pair's row as completed and stamps completedAt.
// ok=false if no row exists. Идемпотентность проверяет не стор, а сервис.
func (s *Store) CompleteUserTask(userID, taskID int64) (*domain.UserTask, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ut, ok := s.userTasks[userTaskKey{userID, taskID}]
	if !ok {
		return nil, false
	}

	completedAt := time.Now()
	ut.Completed = true
	ut.CompletedAt = &completedAt

	cp := *ut
	return &cp, true
}
