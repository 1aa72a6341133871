package mediaproc

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/aiforge/tasks-ms-go/internal/port"
	xdraw "golang.org/x/image/draw"
)

// ErrInputNotFound marks a task whose declared input path is absent on disk.
var ErrInputNotFound = errors.New("input path does not exist")

// webpQuality is the lossy quality used for every produced file.
const webpQuality = 80

// Processor performs local media operations on filesystem paths. All outputs
// are WebP.
type Processor struct {
	enc WebPEncoder
}

// compile-time check: *Processor must satisfy port.MediaProcessor
var _ port.MediaProcessor = (*Processor)(nil)

func NewProcessor(enc WebPEncoder) *Processor {
	log.Println("initialising media processor...")
	return &Processor{enc: enc}
}

// Optimise re-encodes the image at inPath as lossy WebP into outPath.
func (p *Processor) Optimise(inPath, outPath string) error {
	img, err := p.decode(inPath)
	if err != nil {
		return err
	}
	return p.encode(img, outPath)
}

// Resize scales the image at inPath to width x height and writes WebP to outPath.
func (p *Processor) Resize(inPath, outPath string, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("mediaproc: invalid target size %dx%d", width, height)
	}

	img, err := p.decode(inPath)
	if err != nil {
		return err
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)

	return p.encode(dst, outPath)
}

func (p *Processor) decode(inPath string) (image.Image, error) {
	f, err := os.Open(inPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("mediaproc: %w: %q", ErrInputNotFound, inPath)
	}
	if err != nil {
		return nil, fmt.Errorf("mediaproc: could not open input %q: %w", inPath, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("failed to close input file %q: %v", inPath, err)
		}
	}()

	img, _, err := p.enc.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("mediaproc: failed to decode %q: %w", inPath, err)
	}
	return img, nil
}

func (p *Processor) encode(img image.Image, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("mediaproc: could not create output dir: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("mediaproc: could not create output %q: %w", outPath, err)
	}

	if err := p.enc.Encode(img, webpQuality, out); err != nil {
		_ = out.Close()
		return fmt.Errorf("mediaproc: failed to encode WebP: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("mediaproc: could not flush output %q: %w", outPath, err)
	}
	return nil
}
