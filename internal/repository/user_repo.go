package repository

import (
	"sort"
	"time"

	"okcoin_backend/internal/domain"
)

// Начальные значения для новых пользователей
const (
	initialEnergy      = 1000
	initialMaxEnergy   = 1000
	initialLevel       = 1
	initialCoinsPerTap = 1
)

// UserUpdate is a partial update: nil fields keep the stored value.
type UserUpdate struct {
	Coins            *int64
	Energy           *int
	MaxEnergy        *int
	Level            *int
	TotalTaps        *int64
	CoinsPerTap      *int64
	ReferralCount    *int
	ReferralEarnings *int64
	ReferredBy       *int64
	LastEnergyUpdate *time.Time
}

// CreateUser assigns an id and stores a user with the default starting state.
func (s *Store) CreateUser(username string) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createUserLocked(username)
}

// GetOrCreateUser returns the user owning the username, creating one with
// the default starting state if absent. Lookup and insert share one
// critical section so concurrent first contacts cannot double-create.
func (s *Store) GetOrCreateUser(username string) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp
		}
	}
	return s.createUserLocked(username)
}

// createUserLocked inserts a new user record. Caller must hold s.mu.
func (s *Store) createUserLocked(username string) *domain.User {
	u := &domain.User{
		ID:               s.nextUserID,
		Username:         username,
		Coins:            0,
		Energy:           initialEnergy,
		MaxEnergy:        initialMaxEnergy,
		Level:            initialLevel,
		TotalTaps:        0,
		CoinsPerTap:      initialCoinsPerTap,
		ReferralCount:    0,
		ReferralEarnings: 0,
		ReferredBy:       nil,
		LastEnergyUpdate: time.Now(),
		CreatedAt:        time.Now(),
	}
	s.nextUserID++
	s.users[u.ID] = u

	cp := *u
	return &cp
}

// UserByID returns a copy of the user, ok=false if the id is unknown.
func (s *Store) UserByID(id int64) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	cp := *u
	return &cp, true
}

// UserByUsername looks a user up by the unique username.
func (s *Store) UserByUsername(username string) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, true
		}
	}
	return nil, false
}

// UpdateUser merges the non-nil fields of upd into the stored record.
// Returns ok=false if the user does not exist.
func (s *Store) UpdateUser(id int64, upd UserUpdate) (*domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false
	}

	if upd.Coins != nil {
		u.Coins = *upd.Coins
	}
	if upd.Energy != nil {
		u.Energy = *upd.Energy
	}
	if upd.MaxEnergy != nil {
		u.MaxEnergy = *upd.MaxEnergy
	}
	if upd.Level != nil {
		u.Level = *upd.Level
	}
	if upd.TotalTaps != nil {
		u.TotalTaps = *upd.TotalTaps
	}
	if upd.CoinsPerTap != nil {
		u.CoinsPerTap = *upd.CoinsPerTap
	}
	if upd.ReferralCount != nil {
		u.ReferralCount = *upd.ReferralCount
	}
	if upd.ReferralEarnings != nil {
		u.ReferralEarnings = *upd.ReferralEarnings
	}
	if upd.ReferredBy != nil {
		v := *upd.ReferredBy
		u.ReferredBy = &v
	}
	if upd.LastEnergyUpdate != nil {
		u.LastEnergyUpdate = *upd.LastEnergyUpdate
	}

	cp := *u
	return &cp, true
}

// TopByCoins returns up to limit users ordered by coins desc.
// Ties keep insertion (id) order.
func (s *Store) TopByCoins(limit int) []*domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		res = append(res, &cp)
	}

	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	sort.SliceStable(res, func(i, j int) bool { return res[i].Coins > res[j].Coins })

	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res
}
