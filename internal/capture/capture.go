// Package capture supplies the images the verification pipeline compares:
// the on-site captured photo and the per-participant enrollment references.
package capture

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"veriface/internal/attendance/models"
	"veriface/internal/recognition"
)

// Source produces comparison images. The captured site photo comes from a
// local camera command writing to disk; enrollment references live in a
// blob bucket keyed by user id and are passed to the recognition service
// by reference.
type Source struct {
	command    string
	outputPath string
	bucket     string
	logger     *slog.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithLogger sets the logger used by the source.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}

func New(command, outputPath, bucket string, opts ...Option) (*Source, error) {
	if outputPath == "" {
		return nil, fmt.Errorf("capture output path is required")
	}
	if bucket == "" {
		return nil, fmt.Errorf("enrollment bucket is required")
	}
	s := &Source{
		command:    command,
		outputPath: outputPath,
		bucket:     bucket,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// FetchCaptured triggers the camera command when one is configured, then
// reads the captured frame from disk. Without a command the file at the
// output path is used as-is.
func (s *Source) FetchCaptured(ctx context.Context) (recognition.Image, error) {
	if s.command != "" {
		if err := s.runCamera(ctx); err != nil {
			return recognition.Image{}, err
		}
	}

	data, err := os.ReadFile(s.outputPath)
	if err != nil {
		return recognition.Image{}, fmt.Errorf("read captured image: %w", err)
	}
	if len(data) == 0 {
		return recognition.Image{}, fmt.Errorf("captured image at %s is empty", s.outputPath)
	}

	s.logger.InfoContext(ctx, "captured site image",
		slog.String("path", s.outputPath),
		slog.Int("bytes", len(data)))
	return recognition.InlineImage(data), nil
}

// FetchReference returns a storage reference to the participant's
// enrollment image. The recognition service reads the object itself, so
// the bytes never transit this process.
func (s *Source) FetchReference(ctx context.Context, userID models.UserID) (recognition.Image, error) {
	if !userID.IsValid() {
		return recognition.Image{}, fmt.Errorf("invalid user id %q", userID)
	}
	return recognition.StoredImage(s.bucket, userID.String()), nil
}

func (s *Source) runCamera(ctx context.Context) error {
	parts := strings.Fields(s.command)
	args := append(parts[1:], "-o", s.outputPath)

	cmd := exec.CommandContext(ctx, parts[0], args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("camera command failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
