package preview

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Writer saves rendered frames as numbered PNG files.
type Writer struct {
	outputDir string
	prefix    string
}

// NewWriter creates a writer for outputDir. Files are named
// <prefix>_<frame>.png with the frame number zero padded to four digits.
func NewWriter(outputDir, prefix string) *Writer {
	return &Writer{
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// OutputDir returns the directory frames are written to.
func (w *Writer) OutputDir() string {
	return w.outputDir
}

// Filename returns the path a frame is written to.
func (w *Writer) Filename(frame int) string {
	filename := fmt.Sprintf("%s_%04d.png", w.prefix, frame)
	if w.outputDir != "" {
		filename = filepath.Join(w.outputDir, filename)
	}
	return filename
}

// WriteFrame encodes img as PNG and returns the file path.
func (w *Writer) WriteFrame(img image.Image, frame int) (string, error) {
	if w.outputDir != "" {
		if err := os.MkdirAll(w.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := w.Filename(frame)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", filename, err)
	}

	return filename, nil
}
