package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fjglira/GoSpecRunner/internal/domain"
)

// Writer renders a run report in one output format.
type Writer interface {
	Write(w io.Writer, report *domain.RunReport) error
	SupportedExtensions() []string
}

// WriterRegistry maps file extensions to writers.
type WriterRegistry interface {
	Register(writer Writer)
	WriterFor(extension string) (Writer, error)
}

// DefaultRegistry is a thread-safe writer registry.
type DefaultRegistry struct {
	mu      sync.RWMutex
	writers map[string]Writer
}

// NewRegistry creates a new DefaultRegistry.
func NewRegistry() *DefaultRegistry {
	return &DefaultRegistry{
		writers: make(map[string]Writer),
	}
}

// Register adds a writer to the registry for each of its supported extensions.
func (r *DefaultRegistry) Register(w Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range w.SupportedExtensions() {
		ext = strings.ToLower(strings.TrimPrefix(ext, "."))
		r.writers[ext] = w
	}
}

// WriterFor returns the writer registered for the given file extension.
func (r *DefaultRegistry) WriterFor(extension string) (Writer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ext := strings.ToLower(strings.TrimPrefix(extension, "."))
	if w, ok := r.writers[ext]; ok {
		return w, nil
	}
	return nil, fmt.Errorf("no report writer registered for extension %q", extension)
}
