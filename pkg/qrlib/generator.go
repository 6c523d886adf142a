package qrlib

import (
	"github.com/abdalrahmangwish/qr/internal/barcode"
	"github.com/abdalrahmangwish/qr/internal/processor"
)

// Options configures generator behavior
type Options struct {
	// StrictDates rejects dates that do not normalize to ISO-8601
	// instead of passing them through to the payload
	StrictDates bool

	// Level is the QR error-correction level for rendered images
	Level Level

	// Size is the rendered image edge in pixels
	Size int
}

// DefaultOptions returns the default generator options
func DefaultOptions() Options {
	return Options{
		StrictDates: false,
		Level:       LevelMedium,
		Size:        DefaultImageSize,
	}
}

// Generator builds QR payloads using the internal pipeline
type Generator struct {
	pipeline *processor.Pipeline
	options  Options
}

// NewGenerator creates a generator with the given options
func NewGenerator(opts Options) *Generator {
	if opts.Level == 0 {
		opts.Level = LevelMedium
	}
	if opts.Size == 0 {
		opts.Size = DefaultImageSize
	}

	var pipelineOpts []processor.Option
	if opts.StrictDates {
		pipelineOpts = append(pipelineOpts, processor.WithStrictDates())
	}

	return &Generator{
		pipeline: processor.NewPipeline(pipelineOpts...),
		options:  opts,
	}
}

// NewDefaultGenerator creates a generator with default options
func NewDefaultGenerator() *Generator {
	return NewGenerator(DefaultOptions())
}

// Encode validates fields and returns the base64 payload text
func (g *Generator) Encode(f Fields) (string, error) {
	result := g.pipeline.Process(f)
	if result.Error != nil {
		return "", result.Error
	}
	return result.Base64, nil
}

// Payload validates fields and returns the raw TLV payload bytes
func (g *Generator) Payload(f Fields) ([]byte, error) {
	result := g.pipeline.Process(f)
	if result.Error != nil {
		return nil, result.Error
	}
	return result.Payload, nil
}

// Validate runs presence and format checks without encoding. The
// returned fields carry the normalized invoice date.
func (g *Generator) Validate(f Fields) (Fields, error) {
	return g.pipeline.Validate(f)
}

// PNG encodes fields and renders the payload as a QR image
func (g *Generator) PNG(f Fields) ([]byte, error) {
	b64, err := g.Encode(f)
	if err != nil {
		return nil, err
	}
	return barcode.PNG(b64, g.options.Level, g.options.Size)
}

// WriteFile encodes fields and writes a QR image to path
func (g *Generator) WriteFile(f Fields, path string) error {
	b64, err := g.Encode(f)
	if err != nil {
		return err
	}
	return barcode.WriteFile(b64, g.options.Level, g.options.Size, path)
}

// Encode builds the base64 payload text with default options
func Encode(f Fields) (string, error) {
	return NewDefaultGenerator().Encode(f)
}

// Validate checks fields with default options
func Validate(f Fields) (Fields, error) {
	return NewDefaultGenerator().Validate(f)
}

// EncodePNG encodes fields and renders a QR image at the given
// error-correction level and pixel size. Zero values fall back to the
// defaults.
func EncodePNG(f Fields, level Level, size int) ([]byte, error) {
	return NewGenerator(Options{Level: level, Size: size}).PNG(f)
}
