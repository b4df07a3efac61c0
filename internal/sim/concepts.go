package sim

import (
	"os"
	"strings"
)

// DefaultConcepts is the fallback catalog when no file is supplied.
var DefaultConcepts = []string{"apple", "car", "computer"}

// ReadConcepts loads a concept catalog from a file, one concept per line.
// Blank lines and surrounding whitespace are ignored.
func ReadConcepts(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var concepts []string
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			concepts = append(concepts, line)
		}
	}
	if len(concepts) == 0 {
		return nil, ErrNoConcepts
	}
	return concepts, nil
}
