package gif

import (
	"bytes"
	"errors"
	"testing"
)

func TestBufferReadWrite(t *testing.T) {
	b := &Buffer{Data: make([]byte, 4)}
	for i, c := range []byte{10, 20, 30} {
		if err := b.writeByte(c); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}
	if !bytes.Equal(b.Readable(), []byte{10, 20, 30}) {
		t.Fatalf("readable = %v", b.Readable())
	}
	if len(b.Writable()) != 1 {
		t.Fatalf("writable = %d bytes", len(b.Writable()))
	}

	c, err := b.readByte()
	if err != nil || c != 10 {
		t.Fatalf("read = %d, %v", c, err)
	}

	mark := b.Mark()
	if _, err := b.readByte(); err != nil {
		t.Fatal(err)
	}
	if _, err := b.readByte(); err != nil {
		t.Fatal(err)
	}
	if n := b.SinceMark(mark); n != 2 {
		t.Fatalf("SinceMark = %d, want 2", n)
	}

	if _, err := b.readByte(); !errors.Is(err, ErrShortRead) {
		t.Fatalf("drained open buffer: got %v", err)
	}
	b.Closed = true
	if _, err := b.readByte(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("drained closed buffer: got %v", err)
	}
}

func TestBufferWriteLimits(t *testing.T) {
	b := &Buffer{Data: make([]byte, 1)}
	if err := b.writeByte(1); err != nil {
		t.Fatal(err)
	}
	if err := b.writeByte(2); !errors.Is(err, ErrShortWrite) {
		t.Fatalf("full buffer: got %v", err)
	}
	b.Closed = true
	if err := b.writeByte(3); !errors.Is(err, ErrClosedForWrites) {
		t.Fatalf("closed buffer: got %v", err)
	}
}

func TestBufferCompact(t *testing.T) {
	b := &Buffer{Data: []byte{1, 2, 3, 4}, ReadPos: 2, WritePos: 4}
	b.Compact()
	if b.ReadPos != 0 || b.WritePos != 2 {
		t.Fatalf("pos = %d/%d", b.ReadPos, b.WritePos)
	}
	if !bytes.Equal(b.Readable(), []byte{3, 4}) {
		t.Fatalf("readable = %v", b.Readable())
	}
	if len(b.Writable()) != 2 {
		t.Fatalf("writable = %d bytes", len(b.Writable()))
	}
}

func TestBufferSkip(t *testing.T) {
	b := &Buffer{Data: []byte{1, 2, 3}, WritePos: 3}
	if n := b.skip(2); n != 2 {
		t.Fatalf("skip = %d", n)
	}
	if n := b.skip(5); n != 1 {
		t.Fatalf("skip past end = %d", n)
	}
}

func TestBufferWindow(t *testing.T) {
	b := &Buffer{Data: []byte{1, 2, 3, 4, 5}, ReadPos: 1, WritePos: 4}

	// Limit below the readable size: not closed, capped view.
	w := b.window(2)
	if !bytes.Equal(w.Readable(), []byte{2, 3}) {
		t.Fatalf("window readable = %v", w.Readable())
	}
	if w.Closed {
		t.Fatal("window at its limit must stay open")
	}
	if _, err := (&w).readByte(); err != nil {
		t.Fatal(err)
	}

	// Limit beyond the readable size on an open buffer: exhaustion is a
	// suspension, more bytes may still arrive.
	w = b.window(10)
	w.ReadPos = w.WritePos
	if _, err := (&w).readByte(); !errors.Is(err, ErrShortRead) {
		t.Fatalf("starved open window: got %v", err)
	}

	// Same, but the outer buffer is closed: the window can never fill.
	b.Closed = true
	w = b.window(10)
	if !w.Closed {
		t.Fatal("window on a drained closed buffer must be closed")
	}

	// A closed buffer that still covers the whole limit stays open from
	// the window's point of view: hitting the limit is not EOF.
	w = b.window(3)
	if w.Closed {
		t.Fatal("fully covered window must stay open")
	}
}
