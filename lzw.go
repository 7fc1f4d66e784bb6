package gif

// lifecycle is the explicit init guard: the zero value means Init was
// never called, a fatal decode error moves the decoder to failed.
type lifecycle uint8

const (
	lifecycleUninitialized lifecycle = iota
	lifecycleReady
	lifecycleFailed
)

// lzwStep is the saved resume discriminant for LZWDecoder.Decode. A
// suspended call returns here and the next call re-enters the same
// logical step instead of the start of the function.
type lzwStep uint8

const (
	lzwStepStart lzwStep = iota // validate the literal width, reset the table
	lzwStepCode                 // accumulate bits and dispatch the next code
	lzwStepFlush                // flush stack[stackPos:] to the destination
	lzwStepDone                 // end code seen, decode is complete
)

// LZWDecoder decompresses the GIF variant of LZW: LSB-first codes of
// growing width (literalWidth+1 bits up to 12) over a table of prefix
// chains. It is incremental: Decode never blocks, suspending with
// ErrShortRead or ErrShortWrite when the source drains or the destination
// fills, and resumes exactly where it left off on the next call.
//
// The struct is plain data with fixed inline tables; it can live on the
// stack and needs no teardown. Init must be called before first use and
// before reusing the decoder for another code stream.
type LZWDecoder struct {
	state  lifecycle
	status error // pinned fatal status once state == lifecycleFailed

	literalWidth uint32

	// Fixed-capacity code table and reversal stack. Capacity is the
	// 12-bit code space, an invariant of the format.
	prefixes [MaxCodes]uint16
	suffixes [MaxCodes]byte
	stack    [MaxCodes]byte

	// Saved locals of the suspended Decode call.
	step      lzwStep
	clearCode uint32
	endCode   uint32
	saveCode  uint32 // next free table slot
	prevCode  uint32
	hasPrev   bool
	width     uint32 // current code width in bits
	bits      uint32 // bit accumulator, LSB first
	nBits     uint32 // valid bits in the accumulator
	stackPos  int    // stack[stackPos:] is the unflushed expansion tail
}

// Init (re)initializes the decoder. It must be called before any other
// method and again before decoding a second code stream.
func (d *LZWDecoder) Init() {
	if d == nil {
		return
	}
	*d = LZWDecoder{state: lifecycleReady}
}

// SetLiteralWidth sets the fixed code width of single-symbol entries.
// The value is validated at the start of the next Decode: outside 2..8
// that decode fails with ErrBadLiteralWidth.
func (d *LZWDecoder) SetLiteralWidth(w uint32) error {
	if d == nil {
		return ErrBadReceiver
	}
	if d.state == lifecycleUninitialized {
		return ErrInitializerNotCalled
	}
	d.literalWidth = w
	return nil
}

// Decode consumes codes from src and writes expanded bytes to dst until
// the end code is reached (nil), the source drains (ErrShortRead), the
// destination fills (ErrShortWrite) or the stream is invalid (fatal).
// Callers loop on suspensions, supplying the same decoder and buffers.
func (d *LZWDecoder) Decode(dst, src *Buffer) error {
	if d == nil {
		return ErrBadReceiver
	}
	switch d.state {
	case lifecycleUninitialized:
		return ErrInitializerNotCalled
	case lifecycleFailed:
		return d.status
	}
	if dst == nil || src == nil {
		return d.fail(ErrBadArgument)
	}
	if err := src.validate(); err != nil {
		return d.fail(err)
	}
	if err := dst.validate(); err != nil {
		return d.fail(err)
	}

	err := d.decode(dst, src)
	if IsFatal(err) {
		return d.fail(err)
	}
	return err
}

// fail pins err as the decoder's terminal status.
func (d *LZWDecoder) fail(err error) error {
	d.state = lifecycleFailed
	d.status = err
	return err
}

func (d *LZWDecoder) decode(dst, src *Buffer) error {
	if d.step == lzwStepStart {
		if d.literalWidth < minLiteralWidth || d.literalWidth > maxLiteralWidth {
			return ErrBadLiteralWidth
		}
		d.clearCode = 1 << d.literalWidth
		d.endCode = d.clearCode + 1
		d.saveCode = d.endCode + 1
		d.hasPrev = false
		d.width = d.literalWidth + 1
		d.bits = 0
		d.nBits = 0
		d.step = lzwStepCode
	}

	for {
		switch d.step {
		case lzwStepDone:
			return nil

		case lzwStepFlush:
			if err := d.flush(dst); err != nil {
				return err
			}

		case lzwStepCode:
			for d.nBits < d.width {
				c, err := src.readByte()
				if err != nil {
					return err
				}
				d.bits |= uint32(c) << d.nBits
				d.nBits += 8
			}
			code := d.bits & (1<<d.width - 1)
			d.bits >>= d.width
			d.nBits -= d.width

			switch {
			case code == d.clearCode:
				d.saveCode = d.endCode + 1
				d.hasPrev = false
				d.width = d.literalWidth + 1

			case code == d.endCode:
				d.step = lzwStepDone
				return nil

			case code <= d.saveCode:
				if err := d.expand(code); err != nil {
					return err
				}
				d.step = lzwStepFlush

			default:
				return ErrCodeOutOfRange
			}
		}
	}
}

// expand walks code's prefix chain backwards into the reversal stack and
// records the new table entry. The walk is bounded by the stack capacity:
// running out of stack means the chain is cyclical.
func (d *LZWDecoder) expand(code uint32) error {
	s := MaxCodes
	c := code

	if code == d.saveCode {
		// Single-symbol extension: the code names the entry about to be
		// created, the previous expansion followed by its first byte.
		// That last byte is patched in below, once the walk finds it.
		if !d.hasPrev {
			return ErrCodeOutOfRange
		}
		s--
		c = d.prevCode
	}

	for c >= d.clearCode {
		if s == 0 {
			return ErrCyclicalPrefixChain
		}
		s--
		d.stack[s] = d.suffixes[c]
		c = uint32(d.prefixes[c])
	}
	if s == 0 {
		return ErrCyclicalPrefixChain
	}
	s--
	first := byte(c)
	d.stack[s] = first
	if code == d.saveCode {
		d.stack[MaxCodes-1] = first
	}

	if d.hasPrev && d.saveCode < MaxCodes {
		d.prefixes[d.saveCode] = uint16(d.prevCode)
		d.suffixes[d.saveCode] = first
		d.saveCode++
		if d.saveCode == 1<<d.width && d.width < maxCodeWidth {
			d.width++
		}
	}
	d.prevCode = code
	d.hasPrev = true
	d.stackPos = s
	return nil
}

// flush copies the pending expansion tail to dst. The stack cursor
// advances as bytes land, so a call resumed after ErrShortWrite re-emits
// only what is left; the chain is never walked again.
func (d *LZWDecoder) flush(dst *Buffer) error {
	if dst.Closed {
		return ErrClosedForWrites
	}
	n := copy(dst.Writable(), d.stack[d.stackPos:])
	dst.WritePos += n
	d.stackPos += n
	if d.stackPos < MaxCodes {
		return ErrShortWrite
	}
	d.step = lzwStepCode
	return nil
}
