package repository

import (
	"testing"

	"okcoin_backend/internal/domain"
)

func TestNewStoreSeedsDefaultTasks(t *testing.T) {
	s := NewStore()

	tasks := s.ActiveTasks()
	if len(tasks) != 3 {
		t.Fatalf("expected 3 seeded tasks, got %d", len(tasks))
	}
	if tasks[0].ID != 1 || tasks[1].ID != 2 || tasks[2].ID != 3 {
		t.Fatalf("task ids not assigned from 1: %d %d %d", tasks[0].ID, tasks[1].ID, tasks[2].ID)
	}

	var tap *domain.Task
	for _, task := range tasks {
		if task.Type == domain.TaskTypeTap {
			tap = task
		}
	}
	if tap == nil {
		t.Fatalf("expected a seeded tap task")
	}
	if tap.TargetOrZero() != 1000 || tap.Reward != 200 {
		t.Fatalf("tap task target/reward = %d/%d; want 1000/200", tap.TargetOrZero(), tap.Reward)
	}
}

func TestCreateUserDefaults(t *testing.T) {
	s := NewStore()

	u := s.CreateUser("alice")
	if u.ID != 1 {
		t.Fatalf("first user id = %d; want 1", u.ID)
	}
	if u.Coins != 0 || u.Energy != 1000 || u.MaxEnergy != 1000 ||
		u.Level != 1 || u.TotalTaps != 0 || u.CoinsPerTap != 1 ||
		u.ReferralCount != 0 || u.ReferralEarnings != 0 || u.ReferredBy != nil {
		t.Fatalf("unexpected defaults: %+v", u)
	}

	u2 := s.CreateUser("bob")
	if u2.ID != 2 {
		t.Fatalf("second user id = %d; want 2", u2.ID)
	}
}

func TestUserLookups(t *testing.T) {
	s := NewStore()
	created := s.CreateUser("alice")

	if _, ok := s.UserByID(42); ok {
		t.Fatalf("expected absent marker for unknown id")
	}

	u, ok := s.UserByID(created.ID)
	if !ok || u.Username != "alice" {
		t.Fatalf("UserByID = (%v, %v)", u, ok)
	}

	u, ok = s.UserByUsername("alice")
	if !ok || u.ID != created.ID {
		t.Fatalf("UserByUsername = (%v, %v)", u, ok)
	}
	if _, ok := s.UserByUsername("nobody"); ok {
		t.Fatalf("expected absent marker for unknown username")
	}
}

func TestGetOrCreateUser(t *testing.T) {
	s := NewStore()

	a := s.GetOrCreateUser("alice")
	b := s.GetOrCreateUser("alice")
	if a.ID != b.ID {
		t.Fatalf("same username produced ids %d and %d", a.ID, b.ID)
	}

	c := s.GetOrCreateUser("bob")
	if c.ID == a.ID {
		t.Fatalf("distinct usernames share id %d", c.ID)
	}
}

func TestUpdateUserShallowMerge(t *testing.T) {
	s := NewStore()
	u := s.CreateUser("alice")

	coins := int64(77)
	updated, ok := s.UpdateUser(u.ID, UserUpdate{Coins: &coins})
	if !ok {
		t.Fatalf("update of existing user failed")
	}
	if updated.Coins != 77 {
		t.Fatalf("coins = %d; want 77", updated.Coins)
	}
	// untouched fields keep their values
	if updated.Energy != 1000 || updated.Username != "alice" || updated.Level != 1 {
		t.Fatalf("merge clobbered untouched fields: %+v", updated)
	}

	if _, ok := s.UpdateUser(999, UserUpdate{Coins: &coins}); ok {
		t.Fatalf("expected absent marker updating unknown user")
	}
}

func TestReturnedCopiesAreDetached(t *testing.T) {
	s := NewStore()
	u := s.CreateUser("alice")

	u.Coins = 123456

	fresh, _ := s.UserByID(u.ID)
	if fresh.Coins != 0 {
		t.Fatalf("mutating the returned copy leaked into the store")
	}
}

func TestTaskProgressCompositeKey(t *testing.T) {
	s := NewStore()
	alice := s.CreateUser("alice")
	bob := s.CreateUser("bob")

	if _, ok := s.TaskProgress(alice.ID, 1); ok {
		t.Fatalf("expected no progress row before upsert")
	}

	s.UpsertTaskProgress(alice.ID, 1, 10)
	s.UpsertTaskProgress(bob.ID, 1, 99)

	ut, ok := s.TaskProgress(alice.ID, 1)
	if !ok || ut.Progress != 10 {
		t.Fatalf("alice progress = (%+v, %v); want 10", ut, ok)
	}

	// overwrite, not increment
	s.UpsertTaskProgress(alice.ID, 1, 25)
	ut, _ = s.TaskProgress(alice.ID, 1)
	if ut.Progress != 25 {
		t.Fatalf("progress = %d; want 25 (overwrite semantics)", ut.Progress)
	}

	// bob's row keyed independently
	ut, _ = s.TaskProgress(bob.ID, 1)
	if ut.Progress != 99 {
		t.Fatalf("bob progress = %d; want 99", ut.Progress)
	}
}

func TestCompleteUserTask(t *testing.T) {
	s := NewStore()
	u := s.CreateUser("alice")

	if _, ok := s.CompleteUserTask(u.ID, 1); ok {
		t.Fatalf("completing a missing row must return absent marker")
	}

	s.UpsertTaskProgress(u.ID, 1, 5)
	ut, ok := s.CompleteUserTask(u.ID, 1)
	if !ok || !ut.Completed || ut.CompletedAt == nil {
		t.Fatalf("CompleteUserTask = (%+v, %v)", ut, ok)
	}
}

func TestReferralStore(t *testing.T) {
	s := NewStore()

	if s.HasReferral(1, 2) {
		t.Fatalf("empty store reports referral")
	}

	ref := s.CreateReferral(1, 2, 1000)
	if ref.ID != 1 || ref.Reward != 1000 {
		t.Fatalf("unexpected referral: %+v", ref)
	}

	if !s.HasReferral(1, 2) {
		t.Fatalf("referral not found after create")
	}
	if s.HasReferral(2, 1) {
		t.Fatalf("pair lookup must be directional")
	}

	refs := s.ReferralsByReferrer(1)
	if len(refs) != 1 || refs[0].ReferredID != 2 {
		t.Fatalf("ReferralsByReferrer = %+v", refs)
	}
}

func TestTopByCoins(t *testing.T) {
	s := NewStore()
	a := s.CreateUser("a")
	b := s.CreateUser("b")
	c := s.CreateUser("c")

	set := func(id, coins int64) {
		if _, ok := s.UpdateUser(id, UserUpdate{Coins: &coins}); !ok {
			t.Fatalf("update failed for %d", id)
		}
	}
	set(a.ID, 50)
	set(b.ID, 200)
	set(c.ID, 10)

	top := s.TopByCoins(2)
	if len(top) != 2 {
		t.Fatalf("len = %d; want 2", len(top))
	}
	if top[0].ID != b.ID || top[1].ID != a.ID {
		t.Fatalf("order = [%d %d]; want [%d %d]", top[0].ID, top[1].ID, b.ID, a.ID)
	}

	// ties keep insertion order
	set(c.ID, 50)
	top = s.TopByCoins(3)
	if top[1].ID != a.ID || top[2].ID != c.ID {
		t.Fatalf("tie order = [%d %d]; want [%d %d]", top[1].ID, top[2].ID, a.ID, c.ID)
	}
}
