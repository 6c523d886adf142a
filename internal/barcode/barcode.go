// Package barcode renders encoded payload text into scannable QR
// images. It only deals in finished base64 text; building that text is
// the processor's job.
package barcode

import (
	"fmt"
	"os"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Level selects QR error-correction strength. Higher levels survive
// more print damage at the cost of a denser image.
type Level int

const (
	LevelLow Level = iota + 1
	LevelMedium
	LevelHigh
	LevelHighest
)

// DefaultLevel balances image density against scan reliability on
// thermal receipt prints.
const DefaultLevel = LevelMedium

// DefaultSize is the rendered image edge in pixels.
const DefaultSize = 256

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	case LevelHighest:
		return "highest"
	default:
		return "unknown"
	}
}

// ParseLevel maps user input to a Level. Single letters follow the
// conventional QR L/M/Q/H naming.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "low":
		return LevelLow, nil
	case "m", "medium":
		return LevelMedium, nil
	case "q", "high":
		return LevelHigh, nil
	case "h", "highest":
		return LevelHighest, nil
	}
	return 0, fmt.Errorf("unknown error-correction level: %s", s)
}

func (l Level) recovery() qrcode.RecoveryLevel {
	switch l {
	case LevelLow:
		return qrcode.Low
	case LevelHigh:
		return qrcode.High
	case LevelHighest:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// PNG renders content as a size-by-size pixel QR image.
func PNG(content string, level Level, size int) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("nothing to render: content is empty")
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qrcode.Encode(content, level.recovery(), size)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}
	return png, nil
}

// WriteFile renders content and writes the PNG image to path.
func WriteFile(content string, level Level, size int, path string) error {
	png, err := PNG(content, level, size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("failed to write QR image: %w", err)
	}
	return nil
}
