// Package storage writes the metadata sidecar that accompanies a finished
// render.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RunMetadata records what produced an artifact.
type RunMetadata struct {
	Output          string    `json:"output"`
	Timestamp       time.Time `json:"timestamp"`
	TotalFrames     int       `json:"total_frames"`
	FPS             int       `json:"fps"`
	DurationSeconds float64   `json:"duration_seconds"`
	Mass1           float64   `json:"mass_1"`
	Mass2           float64   `json:"mass_2"`
	Separation      float64   `json:"separation"`
	AmplitudeScale  float64   `json:"amplitude_scale"`
	RenderSeconds   float64   `json:"render_seconds"`
}

// SidecarPath maps an artifact path to its metadata path:
// outputs/wave.mp4 -> outputs/wave.json.
func SidecarPath(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + ".json"
}

// WriteSidecar saves the metadata next to the artifact and returns the
// sidecar path.
func WriteSidecar(meta RunMetadata) (string, error) {
	path := SidecarPath(meta.Output)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}
	return path, nil
}

// ReadSidecar loads previously written metadata.
func ReadSidecar(path string) (*RunMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
