package mock

import "github.com/aiforge/tasks-ms-go/internal/port"

// MediaProcessor implements local media ops for tests.
type MediaProcessor struct {
	// errors
	OptimiseErr error
	ResizeErr   error

	// call flags and captured args
	OptimiseCalled bool
	ResizeCalled   bool
	InPath         string
	OutPath        string
	Width, Height  int
}

// compile-time check: *MediaProcessor must satisfy port.MediaProcessor
var _ port.MediaProcessor = (*MediaProcessor)(nil)

func (m *MediaProcessor) Optimise(inPath, outPath string) error {
	m.OptimiseCalled = true
	m.InPath, m.OutPath = inPath, outPath
	return m.OptimiseErr
}

func (m *MediaProcessor) Resize(inPath, outPath string, width, height int) error {
	m.ResizeCalled = true
	m.InPath, m.OutPath = inPath, outPath
	m.Width, m.Height = width, height
	return m.ResizeErr
}
