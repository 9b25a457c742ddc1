// Package export renders a finished journey's journal and score to PDF,
// a keepsake the player can take off-screen.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/appengine-ltd/exodus-road/internal/game"
)

// JournalPDF writes the travel journal and final score to a PDF file in
// dir and returns its path.
func JournalPDF(dir string, s *game.JourneyState, score game.Score) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Exodus Road Journal", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Exodus Road", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s to %s", s.Origin.Name, s.Destination.Name), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("The %s family, departed day 1, journal closed day %d", s.Config.LeaderName, s.Day), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, outcomeLine(s), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Final score: %d", score.Total), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range score.Breakdown {
		pdf.CellFormat(0, 6, fmt.Sprintf("  %s: %+d", line.Label, line.Points), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "The family", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, member := range s.Family {
		status := "survived"
		if !member.Alive {
			status = "lost on the road"
		}
		role := ""
		if member.IsLeader {
			role = ", leader"
		}
		pdf.CellFormat(0, 6, fmt.Sprintf("  %s, age %d%s: %s", member.Name, member.Age, role, status), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Journal", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, entry := range s.Journal {
		pdf.MultiCell(0, 5, entry, "", "L", false)
	}

	name := fmt.Sprintf("exodus-road-%s.pdf", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write journal pdf: %w", err)
	}
	return path, nil
}

func outcomeLine(s *game.JourneyState) string {
	if s.Phase == game.PhaseWin {
		return fmt.Sprintf("Made it to %s in %d days.", s.Destination.Name, s.Day)
	}
	return fmt.Sprintf("The journey ended after %d days, %.0f miles short.", s.Day, s.TotalDist-s.DistanceTraveled)
}
