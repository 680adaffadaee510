package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alzcare/screening-service/internal/models"
)

//go:embed screening_items.json
var defaultCatalogJSON []byte

// JSONSource reads item definitions from a JSON document: either a top-level
// array of definitions or an object with a "questions" array.
type JSONSource struct {
	raw []byte
}

// NewJSONSource wraps a raw JSON document.
func NewJSONSource(raw []byte) *JSONSource {
	return &JSONSource{raw: raw}
}

// NewFileSource reads the document from path, falling back to the embedded
// default catalog when path is empty.
func NewFileSource(path string) (*JSONSource, error) {
	if path == "" {
		return NewJSONSource(defaultCatalogJSON), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return NewJSONSource(raw), nil
}

func (s *JSONSource) Definitions() ([]models.ItemDefinition, error) {
	var defs []models.ItemDefinition
	if err := json.Unmarshal(s.raw, &defs); err == nil {
		return defs, nil
	}

	var root struct {
		Questions []models.ItemDefinition `json:"questions"`
	}
	if err := json.Unmarshal(s.raw, &root); err != nil {
		return nil, fmt.Errorf("failed to parse item definitions: %w", err)
	}
	return root.Questions, nil
}
