package recording

import (
	"fmt"
	"os"

	"github.com/tebeka/atexit"
)

// CSVWriter stores access traces in a CSV file.
type CSVWriter struct {
	path string
	file *os.File

	entries    []AccessTrace
	bufferSize int
}

// NewCSVWriter creates a CSVWriter that writes to path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{
		path:       path,
		bufferSize: 1000,
	}
}

// Init creates the CSV file. If the file already exists, it will be
// overwritten.
func (w *CSVWriter) Init() {
	file, err := os.Create(w.path)
	if err != nil {
		panic(err)
	}
	w.file = file

	fmt.Fprintf(file, "ID, Seq, Register, Kind, Value\n")

	atexit.Register(func() {
		w.Flush()
		err := w.file.Close()
		if err != nil {
			panic(err)
		}
	})
}

// Write buffers one trace entry.
func (w *CSVWriter) Write(t AccessTrace) {
	w.entries = append(w.entries, t)
	if len(w.entries) >= w.bufferSize {
		w.Flush()
	}
}

// Flush writes the buffered entries to the CSV file.
func (w *CSVWriter) Flush() {
	for _, t := range w.entries {
		fmt.Fprintf(w.file, "%s, %d, %s, %s, %#x\n",
			t.ID,
			t.Seq,
			t.Register,
			t.Kind,
			t.Value,
		)
	}

	w.entries = nil
}
