package domain

import (
	"fmt"
	"time"
)

// AccountAge describes when a Discord account was created.
type AccountAge struct {
	DisplayName string
	CreatedAt   time.Time
}

// NewAccountAge creates an AccountAge. The creation time is kept in UTC.
func NewAccountAge(displayName string, createdAt time.Time) *AccountAge {
	return &AccountAge{
		DisplayName: displayName,
		CreatedAt:   createdAt.UTC(),
	}
}

// Message returns the sentence sent back to the user.
func (a *AccountAge) Message() string {
	return fmt.Sprintf("%s's account was created at %s", a.DisplayName, a.CreatedAt.Format(time.RFC3339))
}
