package domain

import "time"

const (
	MatchStatusSuggested  = "suggested"
	MatchStatusInterested = "interested"
	MatchStatusMutual     = "mutual"
	MatchStatusPassed     = "passed"
)

// Match is a directed recommendation record: userID was shown matchedUserID
// with the given compatibility result. One row per (user, matched user) pair;
// re-running recommendations refreshes the row instead of appending history.
type Match struct {
	ID                 string    `json:"id" db:"id"`
	UserID             string    `json:"userId" db:"user_id"`
	MatchedUserID      string    `json:"matchedUserId" db:"matched_user_id"`
	CompatibilityScore int       `json:"compatibilityScore" db:"compatibility_score"`
	ScoreBreakdown     ScoreMap  `json:"scoreBreakdown" db:"score_breakdown"`
	AIInsights         *string   `json:"aiInsights" db:"ai_insights"`
	Status             string    `json:"status" db:"status"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
}

// MatchWithProfile is the /matches response shape: a match joined with the
// matched user's account and profile.
type MatchWithProfile struct {
	Match
	MatchedUser UserWithProfile `json:"matchedUser"`
}
