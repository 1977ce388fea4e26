// Package classifier scores feature vectors with a trained logistic model.
package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/daireto/phishing-url-detector/internal/extractor"
)

// DefaultThreshold is the score above which a URL is flagged as phishing.
const DefaultThreshold = 0.5

// Model is a logistic regression over the extractor's feature vector.
type Model struct {
	Name      string             `json:"name"`
	Bias      float64            `json:"bias"`
	Weights   map[string]float64 `json:"weights"`
	Threshold float64            `json:"threshold"`
}

// Load reads a model from a JSON weights file.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse model file %q: %w", path, err)
	}

	if len(m.Weights) == 0 {
		return nil, fmt.Errorf("model file %q has no weights", path)
	}

	if m.Threshold <= 0 || m.Threshold >= 1 {
		m.Threshold = DefaultThreshold
	}

	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &m, nil
}

// LoadMostRecent loads the most recently modified *.json model in dir.
// Models are retrained and dropped into the directory over time; the
// newest file wins.
func LoadMostRecent(dir string) (*Model, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read model directory: %w", err)
	}

	var newest string
	var newestMod int64

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if newest == "" || info.ModTime().UnixNano() > newestMod {
			newest = entry.Name()
			newestMod = info.ModTime().UnixNano()
		}
	}

	if newest == "" {
		return nil, fmt.Errorf("no model found in %q", dir)
	}

	return Load(filepath.Join(dir, newest))
}

// Score returns the phishing probability for a feature vector. Features
// the model carries no weight for are ignored; features missing from the
// vector contribute nothing.
func (m *Model) Score(features extractor.Features) float64 {
	z := m.Bias
	for name, weight := range m.Weights {
		if value, ok := features[name]; ok {
			z += weight * value
		}
	}
	return sigmoid(z)
}

// Predict classifies a feature vector, returning the verdict and the score.
func (m *Model) Predict(features extractor.Features) (bool, float64) {
	score := m.Score(features)
	return score >= m.Threshold, score
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
