package application

import (
	"testing"

	"github.com/sglre6355/fishbot/internal/modules/general/domain"
)

func TestHelpInteractor_Execute(t *testing.T) {
	page := NewHelpInteractor().Execute()

	if page == nil {
		t.Fatal("expected help page, got nil")
	}
	if page.LinkURL != domain.ProjectURL {
		t.Errorf("expected link %q, got %q", domain.ProjectURL, page.LinkURL)
	}
}

func TestFishProofInteractor_Execute(t *testing.T) {
	first := NewFishProofInteractor().Execute()
	second := NewFishProofInteractor().Execute()

	if first == "" {
		t.Fatal("expected proof text")
	}
	if first != second {
		t.Error("expected the same text on every call")
	}
}
