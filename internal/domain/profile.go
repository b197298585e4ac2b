package domain

import (
	"math"
	"strings"
	"time"

	"github.com/lib/pq"
)

const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

type Profile struct {
	ID                  string         `json:"id" db:"id"`
	UserID              string         `json:"userId" db:"user_id"`
	Age                 int            `json:"age" db:"age"`
	Gender              string         `json:"gender" db:"gender"`
	Religion            *string        `json:"religion" db:"religion"`
	Caste               *string        `json:"caste" db:"caste"`
	MotherTongue        *string        `json:"motherTongue" db:"mother_tongue"`
	Height              *int           `json:"height" db:"height"`
	Weight              *int           `json:"weight" db:"weight"`
	Education           *string        `json:"education" db:"education"`
	Occupation          *string        `json:"occupation" db:"occupation"`
	Income              *float64       `json:"income" db:"income"`
	Location            *string        `json:"location" db:"location"`
	Bio                 *string        `json:"bio" db:"bio"`
	Photos              pq.StringArray `json:"photos" db:"photos"`
	Interests           pq.StringArray `json:"interests" db:"interests"`
	Values              pq.StringArray `json:"values" db:"values"`
	Lifestyle           JSONMap        `json:"lifestyle" db:"lifestyle"`
	PersonalityTraits   ScoreMap       `json:"personalityTraits" db:"personality_traits"`
	PartnerPreferences  JSONMap        `json:"partnerPreferences" db:"partner_preferences"`
	ProfileCompleteness int            `json:"profileCompleteness" db:"profile_completeness"`
	IsActive            bool           `json:"isActive" db:"is_active"`
	VerificationStatus  string         `json:"verificationStatus" db:"verification_status"`
	CreatedAt           time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time      `json:"updatedAt" db:"updated_at"`
}

// completenessFields is the fixed number of required profile fields. Each
// counts for the same share of the score.
const completenessFields = 10

// Completeness returns the 0-100 percentage of required profile fields that
// are populated: age, gender, religion, education, occupation, location, bio,
// photos, interests, values. A field counts when it is a non-empty collection,
// a non-blank string or a strictly positive number. Always recomputed
// server-side; the stored value is never taken from client input.
func (p *Profile) Completeness() int {
	completed := 0

	if p.Age > 0 {
		completed++
	}
	if strings.TrimSpace(p.Gender) != "" {
		completed++
	}
	for _, s := range []*string{p.Religion, p.Education, p.Occupation, p.Location, p.Bio} {
		if s != nil && strings.TrimSpace(*s) != "" {
			completed++
		}
	}
	for _, list := range [][]string{p.Photos, p.Interests, p.Values} {
		if len(list) > 0 {
			completed++
		}
	}

	return int(math.Round(float64(completed) / float64(completenessFields) * 100))
}
