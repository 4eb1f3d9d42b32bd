package application

import (
	"time"

	"github.com/sglre6355/fishbot/internal/modules/general/domain"
)

// Account is the part of a Discord user the age use case needs.
type Account struct {
	DisplayName string
	CreatedAt   time.Time
}

// AgeInteractor handles the age use case.
type AgeInteractor struct{}

// NewAgeInteractor creates a new AgeInteractor.
func NewAgeInteractor() *AgeInteractor {
	return &AgeInteractor{}
}

// Execute reports the age of target, or of invoker when no target is given.
func (a *AgeInteractor) Execute(invoker Account, target *Account) *domain.AccountAge {
	subject := invoker
	if target != nil {
		subject = *target
	}
	return domain.NewAccountAge(subject.DisplayName, subject.CreatedAt)
}
