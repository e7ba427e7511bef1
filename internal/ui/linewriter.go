package ui

import (
	"bytes"
	"sync"
)

// LineWriter is an io.Writer that splits incoming bytes into lines and sends
// each completed line to a channel. The interpreter's stdout and stderr are
// pointed at one of these so the Bubble Tea model sees whole lines.
type LineWriter struct {
	mu  sync.Mutex
	ch  chan<- string
	buf bytes.Buffer
}

// NewLineWriter returns a writer feeding ch.
func NewLineWriter(ch chan<- string) *LineWriter {
	return &LineWriter{ch: ch}
}

func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		idx := bytes.IndexByte(w.buf.Bytes(), '\n')
		if idx < 0 {
			break
		}
		line := string(w.buf.Next(idx + 1))
		w.ch <- trimLineEnd(line)
	}
	return len(p), nil
}

// Flush emits any buffered partial line. Call it once the process exits.
func (w *LineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() == 0 {
		return
	}
	w.ch <- w.buf.String()
	w.buf.Reset()
}

// DrainLines consumes ch until it is closed. Once the UI stops reading, the
// interpreter may still be flooding stdout; without a drainer the LineWriter
// blocks on the channel send and the process never gets reaped.
func DrainLines(ch <-chan string) {
	for range ch {
	}
}

func trimLineEnd(line string) string {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}
