package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appengine-ltd/exodus-road/internal/game"
)

func finishedJourney(t *testing.T) *game.JourneyState {
	t.Helper()
	s, err := game.NewJourney(game.JourneyConfig{
		Seed:        1,
		LeaderName:  "Harper",
		LeaderTrait: game.TraitNavigator,
		FamilySize:  3,
		OriginID:    "phoenix",
		DestID:      "boise",
	})
	if err != nil {
		t.Fatal(err)
	}
	s.Phase = game.PhaseWin
	s.Day = 9
	s.DistanceTraveled = s.TotalDist
	return s
}

func TestJournalPDF(t *testing.T) {
	dir := t.TempDir()
	s := finishedJourney(t)
	score := game.ComputeScore(s)

	path, err := JournalPDF(dir, s, score)
	if err != nil {
		t.Fatalf("JournalPDF() error = %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("path = %q, want it inside %q", path, dir)
	}
	if !strings.HasSuffix(path, ".pdf") {
		t.Errorf("path = %q, want a .pdf name", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported file is empty")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(raw), "%PDF") {
		t.Error("exported file lacks the PDF magic header")
	}
}

func TestJournalPDFCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	s := finishedJourney(t)

	if _, err := JournalPDF(dir, s, game.ComputeScore(s)); err != nil {
		t.Fatalf("JournalPDF() with missing dir = %v", err)
	}
}
