package domain

import "time"

const (
	InterestStatusPending  = "pending"
	InterestStatusAccepted = "accepted"
	InterestStatusDeclined = "declined"
)

// Interest is a one-directional expression of interest from one user to
// another.
type Interest struct {
	ID         string    `json:"id" db:"id"`
	FromUserID string    `json:"fromUserId" db:"from_user_id"`
	ToUserID   string    `json:"toUserId" db:"to_user_id"`
	Status     string    `json:"status" db:"status"`
	Message    *string   `json:"message" db:"message"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// CanTransitionTo reports whether moving the interest to the given status is
// legal. Only a pending interest may be resolved, and only to accepted or
// declined; resolved interests are final.
func (i *Interest) CanTransitionTo(status string) bool {
	if i.Status != InterestStatusPending {
		return false
	}
	return status == InterestStatusAccepted || status == InterestStatusDeclined
}
