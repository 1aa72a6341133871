package mediaproc

import (
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeEncoder decodes via image.Decode but "encodes" by writing a marker, so
// tests do not depend on the cgo WebP codec.
type fakeEncoder struct {
	encodedSize image.Point
	encodeErr   error
}

func (f *fakeEncoder) Encode(img image.Image, quality int, w io.Writer) error {
	if f.encodeErr != nil {
		return f.encodeErr
	}
	f.encodedSize = img.Bounds().Size()
	_, err := w.Write([]byte("webp-bytes"))
	return err
}

func (f *fakeEncoder) Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

func writeTestPNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create test png: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			t.Fatalf("close test png: %v", err)
		}
	}()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return path
}

func TestOptimise(t *testing.T) {
	dir := t.TempDir()
	in := writeTestPNG(t, dir, 4, 4)
	out := filepath.Join(dir, "out", "in.webp")

	enc := &fakeEncoder{}
	p := NewProcessor(enc)

	if err := p.Optimise(in, out); err != nil {
		t.Fatalf("Optimise: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "webp-bytes" {
		t.Errorf("output = %q", data)
	}
}

func TestOptimise_MissingInput(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "nope.png")

	p := NewProcessor(&fakeEncoder{})
	err := p.Optimise(missing, filepath.Join(dir, "out.webp"))
	if err == nil {
		t.Fatal("expected an error for a missing input path")
	}
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("error = %v; want ErrInputNotFound", err)
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error = %q; want it to name the path", err)
	}
}

func TestOptimise_UndecodableInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	if err := os.WriteFile(in, []byte("definitely not an image"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	p := NewProcessor(&fakeEncoder{})
	err := p.Optimise(in, filepath.Join(dir, "out.webp"))
	if err == nil || !strings.Contains(err.Error(), "failed to decode") {
		t.Errorf("error = %v; want a decode failure", err)
	}
}

func TestResize(t *testing.T) {
	dir := t.TempDir()
	in := writeTestPNG(t, dir, 8, 8)
	out := filepath.Join(dir, "out.webp")

	enc := &fakeEncoder{}
	p := NewProcessor(enc)

	if err := p.Resize(in, out, 4, 2); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if enc.encodedSize != image.Pt(4, 2) {
		t.Errorf("encoded size = %v; want (4,2)", enc.encodedSize)
	}
}

func TestResize_InvalidSize(t *testing.T) {
	dir := t.TempDir()
	in := writeTestPNG(t, dir, 8, 8)

	p := NewProcessor(&fakeEncoder{})
	if err := p.Resize(in, filepath.Join(dir, "out.webp"), 0, 10); err == nil {
		t.Error("expected an error for a zero width")
	}
}

func TestOptimise_EncodeError(t *testing.T) {
	dir := t.TempDir()
	in := writeTestPNG(t, dir, 2, 2)

	p := NewProcessor(&fakeEncoder{encodeErr: errors.New("codec blew up")})
	err := p.Optimise(in, filepath.Join(dir, "out.webp"))
	if err == nil || !strings.Contains(err.Error(), "codec blew up") {
		t.Errorf("error = %v; want the codec failure", err)
	}
}
