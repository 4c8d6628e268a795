// Package recorder captures rendered report pages. In dry-run mode the
// pages land on disk instead of Telegram so a scan can be inspected
// without sending anything.
package recorder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Recorder receives the final report pages of a scan.
type Recorder interface {
	RecordPages(pages []string) error
}

// FileRecorder writes each non-empty page to Dir as a numbered text file.
type FileRecorder struct {
	Dir string
}

func NewFileRecorder(dir string) *FileRecorder {
	return &FileRecorder{Dir: dir}
}

func (r *FileRecorder) RecordPages(pages []string) error {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}
	n := 0
	for _, page := range pages {
		if strings.TrimSpace(page) == "" {
			continue
		}
		n++
		path := filepath.Join(r.Dir, fmt.Sprintf("sample_report_%d.txt", n))
		if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
			return fmt.Errorf("write report page %d: %w", n, err)
		}
		log.Info().Str("path", path).Msg("report page written")
	}
	return nil
}

// NoopRecorder discards pages, used when reports are delivered live.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (*NoopRecorder) RecordPages([]string) error { return nil }
