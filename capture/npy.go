package capture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sbinet/npyio"

	"github.com/timzifer/siggen/acquisition"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// NPYWriter collects the samples of an acquisition and writes them as NumPy
// arrays on Close: one float32 array per analog channel
// (analog_<name>.npy) and one flat uint8 array of packed logic rows
// (logic.npy). Data is held in memory until Close.
type NPYWriter struct {
	mu       sync.Mutex
	dir      string
	logger   zerolog.Logger
	unitSize int
	logic    []byte
	names    map[int]string
	analog   map[int][]float32
	closed   bool
}

// NewNPYWriter creates dir if needed and returns a writer targeting it.
func NewNPYWriter(dir string, logger zerolog.Logger) (*NPYWriter, error) {
	if dir == "" {
		return nil, errors.New("npy output directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create npy directory: %w", err)
	}
	return &NPYWriter{
		dir:    dir,
		logger: logger,
		names:  make(map[int]string),
		analog: make(map[int][]float32),
	}, nil
}

// Send implements acquisition.Sink.
func (w *NPYWriter) Send(p acquisition.Packet) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return acquisition.ErrSinkClosed
	}
	switch v := p.(type) {
	case *acquisition.Header:
		w.unitSize = v.UnitSize
	case *acquisition.Logic:
		w.unitSize = v.UnitSize
		w.logic = append(w.logic, v.Data...)
	case *acquisition.Analog:
		w.names[v.Channel] = v.Name
		w.analog[v.Channel] = append(w.analog[v.Channel], v.Samples...)
	}
	return nil
}

// UnitSize returns the logic row width seen so far; logic.npy holds
// len/UnitSize rows.
func (w *NPYWriter) UnitSize() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.unitSize
}

// Close writes all collected arrays. Further packets are rejected.
func (w *NPYWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true

	var errs []error
	if len(w.logic) > 0 {
		if err := w.write("logic.npy", w.logic); err != nil {
			errs = append(errs, err)
		}
	}
	for ch, samples := range w.analog {
		name := fmt.Sprintf("analog_%s.npy", safeName(w.names[ch], ch))
		if err := w.write(name, samples); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (w *NPYWriter) write(name string, data interface{}) (err error) {
	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := npyio.Write(f, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.logger.Debug().Str("file", path).Msg("wrote npy array")
	return nil
}

func safeName(name string, ch int) string {
	cleaned := unsafeName.ReplaceAllString(name, "_")
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return fmt.Sprintf("A%d", ch)
	}
	return cleaned
}
