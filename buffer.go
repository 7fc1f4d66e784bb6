package gif

// Buffer is a bounded byte window with independent read and write
// positions, used for both the source and the destination of a decode.
// The caller owns Data and may append bytes (raising WritePos), free space
// (via Compact) or grow Data between Decode calls; the decoder never
// allocates or resizes it.
//
// Invariant: 0 <= ReadPos <= WritePos <= len(Data). Data[ReadPos:WritePos]
// is readable, Data[WritePos:] is writable.
type Buffer struct {
	Data     []byte // Backing storage, caller-owned.
	ReadPos  int    // Read index; bytes before it are consumed.
	WritePos int    // Write index; bytes before it are produced.
	Closed   bool   // Reader: no more bytes will ever arrive. Writer: no more writes expected.
}

// Readable returns the unread bytes Data[ReadPos:WritePos].
func (b *Buffer) Readable() []byte {
	return b.Data[b.ReadPos:b.WritePos]
}

// Writable returns the free space Data[WritePos:].
func (b *Buffer) Writable() []byte {
	return b.Data[b.WritePos:]
}

// Mark records the current read position.
func (b *Buffer) Mark() int {
	return b.ReadPos
}

// SinceMark returns the number of bytes consumed since mark.
func (b *Buffer) SinceMark(mark int) int {
	return b.ReadPos - mark
}

// Compact moves unread bytes to the front of Data, making room for the
// caller to append more input without growing the backing slice.
func (b *Buffer) Compact() {
	if b.ReadPos == 0 {
		return
	}
	n := copy(b.Data, b.Data[b.ReadPos:b.WritePos])
	b.ReadPos = 0
	b.WritePos = n
}

// validate checks the position invariant. A violation is a caller bug and
// is reported as the fatal ErrInvalidIO.
func (b *Buffer) validate() error {
	if b.ReadPos < 0 || b.ReadPos > b.WritePos || b.WritePos > len(b.Data) {
		return ErrInvalidIO
	}
	return nil
}

// readByte pops one byte. An empty open buffer suspends with ErrShortRead;
// an empty closed buffer is a truncated stream, ErrUnexpectedEOF.
func (b *Buffer) readByte() (byte, error) {
	if b.ReadPos >= b.WritePos {
		if b.Closed {
			return 0, ErrUnexpectedEOF
		}
		return 0, ErrShortRead
	}
	c := b.Data[b.ReadPos]
	b.ReadPos++
	return c, nil
}

// writeByte appends one byte. A full buffer suspends with ErrShortWrite;
// writing to a closed buffer is the fatal ErrClosedForWrites.
func (b *Buffer) writeByte(c byte) error {
	if b.Closed {
		return ErrClosedForWrites
	}
	if b.WritePos >= len(b.Data) {
		return ErrShortWrite
	}
	b.Data[b.WritePos] = c
	b.WritePos++
	return nil
}

// skip consumes up to n readable bytes and returns how many were consumed.
func (b *Buffer) skip(n int) int {
	if avail := b.WritePos - b.ReadPos; n > avail {
		n = avail
	}
	b.ReadPos += n
	return n
}

// window returns a view of at most n readable bytes sharing b's backing
// array. It is the limited scope handed to a nested decode: the view can
// never hand out more than n bytes, so an outer remaining-bytes budget
// constrains the inner operation. The view is closed only when the outer
// buffer can never fill it, which keeps exhaustion-at-the-limit a
// suspension rather than an EOF.
func (b *Buffer) window(n int) Buffer {
	end := b.ReadPos + n
	short := end > b.WritePos
	if short {
		end = b.WritePos
	}
	return Buffer{
		Data:     b.Data[:end],
		ReadPos:  b.ReadPos,
		WritePos: end,
		Closed:   b.Closed && short,
	}
}
