package sim

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ExportSummary appends a human-readable batch report to a text file,
// creating the directory and file as needed.
func ExportSummary(s *Summary, filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("twentyq batch results - %s\n", time.Now().Format("2006-01-02 15:04:05")))
	sb.WriteString(strings.Repeat("=", 50) + "\n")
	for i, res := range s.Results {
		sb.WriteString(fmt.Sprintf("Round %d: %q - %s in %d question(s)\n", i+1, res.Concept, res.Outcome, res.QuestionsUsed))
	}
	sb.WriteString(fmt.Sprintf("\nSuccesses: %d/%d (%.0f%%)\n", s.SuccessCount, len(s.Results), s.SuccessRate*100))
	sb.WriteString(fmt.Sprintf("Average questions used: %.2f\n\n", s.AverageQuestions))

	if _, err := file.WriteString(sb.String()); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}

	return nil
}
