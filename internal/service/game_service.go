package service

import (
	"errors"
	"sync"
	"time"

	"okcoin_backend/internal/domain"
	"okcoin_backend/internal/game"
	"okcoin_backend/internal/repository"
)

var (
	// ErrNoEnergyOrNotFound is returned by Tap. The source system never
	// distinguished "user missing" from "energy empty" and callers must
	// treat both the same, so neither do we.
	ErrNoEnergyOrNotFound = errors.New("no energy or user not found")

	ErrNotFound          = errors.New("not found")
	ErrTaskCompleted     = errors.New("task already completed")
	ErrDuplicateReferral = errors.New("user already referred")
)

const (
	// ReferredBonus начисляется приглашённому пользователю
	ReferredBonus = 500
	// DefaultReferralReward начисляется пригласившему
	DefaultReferralReward = 1000

	// rankScanLimit bounds the leaderboard scan behind UserRank.
	rankScanLimit = 1000
	// rankNotFound is the sentinel rank for users outside that bound.
	rankNotFound = 999
)

// GameService is the business-rule layer over the entity store: taps,
// task progress, referrals, leaderboard. Every compound read-modify-write
// runs under a per-user mutex so concurrent adapters (HTTP и бот) cannot
// lose updates.
type GameService struct {
	store *repository.Store

	mu        sync.Mutex
	userLocks map[int64]*sync.Mutex
}

func NewGameService(store *repository.Store) *GameService {
	return &GameService{
		store:     store,
		userLocks: make(map[int64]*sync.Mutex),
	}
}

// userLock returns the mutex owning userID's critical section.
func (s *GameService) userLock(userID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.userLocks[userID] = l
	}
	return l
}

// lockUsers locks both users' sections in id order to avoid deadlock.
func (s *GameService) lockUsers(a, b int64) func() {
	if a == b {
		l := s.userLock(a)
		l.Lock()
		return l.Unlock
	}
	if a > b {
		a, b = b, a
	}
	la, lb := s.userLock(a), s.userLock(b)
	la.Lock()
	lb.Lock()
	return func() {
		lb.Unlock()
		la.Unlock()
	}
}

// CreateOrGetUser is idempotent on username: an existing record is
// returned unchanged, otherwise a user with the default starting state
// is created. The store does lookup and insert in one critical section,
// so concurrent first contacts with one username yield one record.
func (s *GameService) CreateOrGetUser(username string) *domain.User {
	return s.store.GetOrCreateUser(username)
}

// GetUser returns the user with energy reconciled to the current moment.
func (s *GameService) GetUser(id int64) (*domain.User, error) {
	l := s.userLock(id)
	l.Lock()
	defer l.Unlock()

	u, ok := s.store.UserByID(id)
	if !ok {
		return nil, ErrNotFound
	}
	return s.reconcileEnergy(u), nil
}

// UpdateUser applies a partial update to the user record.
func (s *GameService) UpdateUser(id int64, upd repository.UserUpdate) (*domain.User, error) {
	u, ok := s.store.UpdateUser(id, upd)
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

// reconcileEnergy lazily regenerates energy since the last update and,
// only if something was gained, writes energy and lastEnergyUpdate back
// in a single store write. Caller must hold the user's lock.
func (s *GameService) reconcileEnergy(u *domain.User) *domain.User {
	nowT := time.Now()
	newEnergy, changed := game.RegenerateEnergy(u.Energy, u.MaxEnergy, u.LastEnergyUpdate, nowT)
	if !changed {
		return u
	}

	updated, ok := s.store.UpdateUser(u.ID, repository.UserUpdate{
		Energy:           &newEnergy,
		LastEnergyUpdate: &nowT,
	})
	if !ok {
		return u
	}
	return updated
}

// Tap is the central game action: spends one energy, grants coinsPerTap
// coins, bumps totalTaps, then advances tap-type task progress and
// auto-completes the task once its target is reached.
func (s *GameService) Tap(userID int64) (*domain.User, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	u, ok := s.store.UserByID(userID)
	if !ok {
		return nil, ErrNoEnergyOrNotFound
	}

	u = s.reconcileEnergy(u)
	if u.Energy <= 0 {
		return nil, ErrNoEnergyOrNotFound
	}

	coins := u.Coins + u.CoinsPerTap
	energy := u.Energy - 1
	if energy < 0 {
		energy = 0
	}
	taps := u.TotalTaps + 1

	u, ok = s.store.UpdateUser(userID, repository.UserUpdate{
		Coins:     &coins,
		Energy:    &energy,
		TotalTaps: &taps,
	})
	if !ok {
		return nil, ErrNoEnergyOrNotFound
	}
	tapsTotal.Inc()

	return s.checkTapTask(u), nil
}

// checkTapTask records the user's coin total as progress on the tap task
// and completes it (crediting the reward on top of the tap's own) once
// the target is reached. Caller must hold the user's lock.
func (s *GameService) checkTapTask(u *domain.User) *domain.User {
	var tapTask *domain.Task
	for _, t := range s.store.ActiveTasks() {
		if t.Type == domain.TaskTypeTap {
			tapTask = t
			break
		}
	}
	if tapTask == nil {
		return u
	}

	s.store.UpsertTaskProgress(u.ID, tapTask.ID, u.Coins)
	if u.Coins < tapTask.TargetOrZero() {
		return u
	}

	ut, ok := s.store.TaskProgress(u.ID, tapTask.ID)
	if !ok || ut.Completed {
		return u
	}

	s.store.CompleteUserTask(u.ID, tapTask.ID)
	tasksCompletedTotal.WithLabelValues(string(tapTask.Type)).Inc()

	coins := u.Coins + tapTask.Reward
	if updated, ok := s.store.UpdateUser(u.ID, repository.UserUpdate{Coins: &coins}); ok {
		return updated
	}
	return u
}

// ActiveTasks lists the task definitions currently shown to players.
func (s *GameService) ActiveTasks() []*domain.Task {
	return s.store.ActiveTasks()
}

// UserTasksWithProgress joins the active tasks with the user's recorded
// progress; tasks without a row come back with zero progress.
func (s *GameService) UserTasksWithProgress(userID int64) []domain.TaskWithProgress {
	rows := s.store.UserTasks(userID)
	byTask := make(map[int64]*domain.UserTask, len(rows))
	for _, ut := range rows {
		byTask[ut.TaskID] = ut
	}

	tasks := s.store.ActiveTasks()
	res := make([]domain.TaskWithProgress, 0, len(tasks))
	for _, t := range tasks {
		twp := domain.TaskWithProgress{Task: *t}
		if ut, ok := byTask[t.ID]; ok {
			twp.Progress = ut.Progress
			twp.Completed = ut.Completed
		}
		res = append(res, twp)
	}
	return res
}

// TaskProgress returns the recorded progress row for the pair.
// ok=false means "никогда не записывался", not "ноль".
func (s *GameService) TaskProgress(userID, taskID int64) (*domain.UserTask, bool) {
	return s.store.TaskProgress(userID, taskID)
}

// UpdateTaskProgress overwrites the progress value for the pair,
// creating the row if needed.
func (s *GameService) UpdateTaskProgress(userID, taskID, progress int64) *domain.UserTask {
	return s.store.UpsertTaskProgress(userID, taskID, progress)
}

// CompleteTask marks the task completed for the user and credits its
// reward. Completion is a one-way transition: a second call fails with
// ErrTaskCompleted and no double reward. Threshold checks are the
// caller's concern, not CompleteTask's.
func (s *GameService) CompleteTask(userID, taskID int64) (*domain.User, error) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	u, ok := s.store.UserByID(userID)
	if !ok {
		return nil, ErrNotFound
	}
	task, ok := s.store.TaskByID(taskID)
	if !ok {
		return nil, ErrNotFound
	}

	if ut, ok := s.store.TaskProgress(userID, taskID); ok && ut.Completed {
		return nil, ErrTaskCompleted
	} else if !ok {
		// binary tasks may be completed without ever recording progress
		s.store.UpsertTaskProgress(userID, taskID, 0)
	}

	s.store.CompleteUserTask(userID, taskID)
	tasksCompletedTotal.WithLabelValues(string(task.Type)).Inc()

	coins := u.Coins + task.Reward
	updated, ok := s.store.UpdateUser(userID, repository.UserUpdate{Coins: &coins})
	if !ok {
		return nil, ErrNotFound
	}
	return updated, nil
}

// CreateReferral records that referrer brought in referred and credits
// both sides: the referrer gets reward coins plus the referral counters,
// the referred user gets ReferredBonus coins and a referredBy mark.
//
// Partial-failure policy, inherited from the source system: each side's
// credit is applied only if that user exists; the referral record is
// persisted either way.
func (s *GameService) CreateReferral(referrerID, referredID, reward int64) (*domain.Referral, error) {
	unlock := s.lockUsers(referrerID, referredID)
	defer unlock()

	if s.store.HasReferral(referrerID, referredID) {
		return nil, ErrDuplicateReferral
	}

	ref := s.store.CreateReferral(referrerID, referredID, reward)
	referralsTotal.Inc()

	if referrer, ok := s.store.UserByID(referrerID); ok {
		count := referrer.ReferralCount + 1
		earnings := referrer.ReferralEarnings + reward
		coins := referrer.Coins + reward
		s.store.UpdateUser(referrerID, repository.UserUpdate{
			ReferralCount:    &count,
			ReferralEarnings: &earnings,
			Coins:            &coins,
		})
	}

	if referred, ok := s.store.UserByID(referredID); ok {
		coins := referred.Coins + ReferredBonus
		by := referrerID
		s.store.UpdateUser(referredID, repository.UserUpdate{
			Coins:      &coins,
			ReferredBy: &by,
		})
	}

	return ref, nil
}

// UserReferrals lists a user's referrals, each enriched with a read-time
// snapshot of the referred user's public fields.
func (s *GameService) UserReferrals(userID int64) []domain.ReferralWithUser {
	refs := s.store.ReferralsByReferrer(userID)
	res := make([]domain.ReferralWithUser, 0, len(refs))
	for _, r := range refs {
		rwu := domain.ReferralWithUser{Referral: *r}
		if u, ok := s.store.UserByID(r.ReferredID); ok {
			p := u.Public()
			rwu.ReferredUser = &p
		}
		res = append(res, rwu)
	}
	return res
}

// LeaderboardEntry - пользователь с местом в топе
type LeaderboardEntry struct {
	domain.User
	Rank int `json:"rank"`
}

// Leaderboard returns the top limit users by coins, rank 1 first.
func (s *GameService) Leaderboard(limit int) []LeaderboardEntry {
	top := s.store.TopByCoins(limit)
	res := make([]LeaderboardEntry, 0, len(top))
	for i, u := range top {
		res = append(res, LeaderboardEntry{User: *u, Rank: i + 1})
	}
	return res
}

// UserRank locates the user within the top rankScanLimit users and
// returns the sentinel rank 999 when the user is not found there.
func (s *GameService) UserRank(userID int64) int {
	for i, u := range s.store.TopByCoins(rankScanLimit) {
		if u.ID == userID {
			return i + 1
		}
	}
	return rankNotFound
}
