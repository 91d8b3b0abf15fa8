package handlers

import (
	"errors"
	"net/http"

	"okcoin_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type createReferralRequest struct {
	ReferrerID int64 `json:"referrer_id" binding:"required"`
	ReferredID int64 `json:"referred_id" binding:"required"`
	Reward     int64 `json:"reward"`
}

// CreateReferral records a referral and credits both sides.
func (h *Handler) CreateReferral(c *gin.Context) {
	var req createReferralRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid referral data"})
		return
	}

	reward := req.Reward
	if reward <= 0 {
		reward = service.DefaultReferralReward
	}

	ref, err := h.Game.CreateReferral(req.ReferrerID, req.ReferredID, reward)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateReferral) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already referred"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid referral data"})
		return
	}

	c.JSON(http.StatusOK, ref)
}

// UserReferrals lists a user's referrals with referred-user snapshots.
func (h *Handler) UserReferrals(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	c.JSON(http.StatusOK, h.Game.UserReferrals(userID))
}
