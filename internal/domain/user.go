package domain

import "time"

type User struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username"`
	Coins            int64     `json:"coins"`
	Energy           int       `json:"energy"`
	MaxEnergy        int       `json:"max_energy"`
	Level            int       `json:"level"`
	TotalTaps        int64     `json:"total_taps"`
	CoinsPerTap      int64     `json:"coins_per_tap"`
	ReferralCount    int       `json:"referral_count"`
	ReferralEarnings int64     `json:"referral_earnings"`
	ReferredBy       *int64    `json:"referred_by,omitempty"`
	LastEnergyUpdate time.Time `json:"last_energy_update"`
	CreatedAt        time.Time `json:"created_at"`
}

// PublicUser - снимок пользователя для чужих глаз (рефералы, топ)
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Coins    int64  `json:"coins"`
	Level    int    `json:"level"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Coins:    u.Coins,
		Level:    u.Level,
	}
}
