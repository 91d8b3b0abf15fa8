package repository

import (
	"sort"
	"time"

	"okcoin_backend/internal/domain"
)

// CreateReferral stores a referral record. Uniqueness of the
// (referrer, referred) pair is enforced by the game service.
func (s *Store) CreateReferral(referrerID, referredID, reward int64) *domain.Referral {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &domain.Referral{
		ID:         s.nextReferralID,
		ReferrerID: referrerID,
		ReferredID: referredID,
		Reward:     reward,
		CreatedAt:  time.Now(),
	}
	s.nextReferralID++
	s.referrals[r.ID] = r

	cp := *r
	return &cp
}

// ReferralsByReferrer returns all referrals made by a user, oldest first.
func (s *Store) ReferralsByReferrer(userID int64) []*domain.Referral {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*domain.Referral
	for _, r := range s.referrals {
		if r.ReferrerID != userID {
			continue
		}
		cp := *r
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

// HasReferral reports whether the exact (referrer, referred) pair exists.
func (s *Store) HasReferral(referrerID, referredID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.referrals {
		if r.ReferrerID == referrerID && r.ReferredID == referredID {
			return true
		}
	}
	return false
}
