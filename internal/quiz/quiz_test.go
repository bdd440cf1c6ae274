package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Belphemur/AniWiki/internal/apperrors"
)

func TestLookup_AttackOnTitan(t *testing.T) {
	title, err := Lookup("00000")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if title != "Attack on Titan" {
		t.Errorf("Expected Attack on Titan, got %q", title)
	}
}

func TestLookup_EveryCodeMapped(t *testing.T) {
	if Codes() != 1<<CodeLength {
		t.Fatalf("Expected %d codes, got %d", 1<<CodeLength, Codes())
	}
	seen := map[string]bool{}
	for i := 0; i < 1<<CodeLength; i++ {
		code := fmt.Sprintf("%05b", i)
		title, err := Lookup(code)
		if err != nil {
			t.Errorf("Code %s has no recommendation: %v", code, err)
			continue
		}
		if seen[title] {
			t.Errorf("Title %q recommended twice", title)
		}
		seen[title] = true
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, code := range []string{"     ", "", "0000", "000000", "0000x"} {
		_, err := Lookup(code)
		if err == nil {
			t.Errorf("Expected error for code %q", code)
			continue
		}
		if !errors.Is(err, &apperrors.ErrNoRecommendation{}) {
			t.Errorf("Expected ErrNoRecommendation for %q, got %v", code, err)
		}
	}
}

func TestEncode(t *testing.T) {
	if got := Encode([]bool{false, true, false, true, true}); got != "01011" {
		t.Errorf("Expected 01011, got %q", got)
	}
	if got := Encode(nil); got != "" {
		t.Errorf("Expected empty code, got %q", got)
	}
}
