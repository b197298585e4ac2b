package domain

import "time"

type User struct {
	ID          string     `json:"id" db:"id"`
	Email       string     `json:"email" db:"email"`
	Password    string     `json:"-" db:"password"`
	FirstName   string     `json:"firstName" db:"first_name"`
	LastName    string     `json:"lastName" db:"last_name"`
	Phone       *string    `json:"phone" db:"phone"`
	IsVerified  bool       `json:"isVerified" db:"is_verified"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	LastLoginAt *time.Time `json:"lastLoginAt" db:"last_login_at"`
}

// UserWithProfile is the /profile response shape: the account joined with its
// matchable profile, when one has been created.
type UserWithProfile struct {
	User
	Profile *Profile `json:"profile,omitempty"`
}
