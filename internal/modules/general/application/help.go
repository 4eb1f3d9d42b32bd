package application

import "github.com/sglre6355/fishbot/internal/modules/general/domain"

// HelpInteractor handles the help use case.
type HelpInteractor struct{}

// NewHelpInteractor creates a new HelpInteractor.
func NewHelpInteractor() *HelpInteractor {
	return &HelpInteractor{}
}

// Execute returns the help page.
func (h *HelpInteractor) Execute() *domain.HelpPage {
	return domain.NewHelpPage()
}

// FishProofInteractor handles the fishproof use case.
type FishProofInteractor struct{}

// NewFishProofInteractor creates a new FishProofInteractor.
func NewFishProofInteractor() *FishProofInteractor {
	return &FishProofInteractor{}
}

// Execute returns the proof text.
func (f *FishProofInteractor) Execute() string {
	return domain.FishProof
}
