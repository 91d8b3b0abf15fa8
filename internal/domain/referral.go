package domain

import "time"

// Referral - запись о том, что один пользователь привёл другого.
// Не более одной записи на пару (referrer, referred).
type Referral struct {
	ID         int64     `json:"id"`
	ReferrerID int64     `json:"referrer_id"`
	ReferredID int64     `json:"referred_id"`
	Reward     int64     `json:"reward"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReferralWithUser - реферал со снимком приглашённого пользователя
type ReferralWithUser struct {
	Referral
	ReferredUser *PublicUser `json:"referred_user"`
}
