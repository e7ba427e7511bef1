package ui

import (
	"testing"
	"time"
)

func TestLineWriterSplitsLines(t *testing.T) {
	ch := make(chan string, 8)
	w := NewLineWriter(ch)

	if _, err := w.Write([]byte("hello\nwor")); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("ld\r\n")); err != nil {
		t.Fatal(err)
	}
	w.Flush()

	if got := <-ch; got != "hello" {
		t.Fatalf("first line = %q", got)
	}
	if got := <-ch; got != "world" {
		t.Fatalf("second line = %q", got)
	}
	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra line %q", extra)
	default:
	}
}

func TestDrainLinesUnblocksWriter(t *testing.T) {
	// Поток больше ёмкости канала: без дренажа Write застрянет на send.
	ch := make(chan string, 4)
	w := NewLineWriter(ch)
	go DrainLines(ch)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 2000; i++ {
			if _, err := w.Write([]byte("line\n")); err != nil {
				t.Error(err)
				break
			}
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("writer blocked: outputs channel was not drained")
	}
	close(ch)
}

func TestLineWriterFlushEmitsPartial(t *testing.T) {
	ch := make(chan string, 2)
	w := NewLineWriter(ch)
	if _, err := w.Write([]byte("no newline")); err != nil {
		t.Fatal(err)
	}
	w.Flush()
	if got := <-ch; got != "no newline" {
		t.Fatalf("partial = %q", got)
	}
}
