package gif

import "errors"

// decodePhase is the saved resume discriminant for Decoder.Decode. Phases
// are entered strictly in order; a suspended call re-enters its phase with
// the phase's saved locals intact.
type decodePhase uint8

const (
	phaseSignature decodePhase = iota
	phaseScreenDescriptor
	phaseGlobalColorTable
	phaseBlockIntroducer
	phaseExtensionLabel
	phaseExtensionSize
	phaseExtensionData
	phaseImageDescriptor
	phaseImageLiteralWidth
	phaseImageBlockSize
	phaseImageBlockData
	phaseDone
)

// Decoder is an incremental GIF decoder. It parses the container
// (signature, screen descriptor, optional global color table, extension
// and image blocks) and drives its embedded LZWDecoder to expand each
// image's compressed data into color-table indices written to the
// destination buffer.
//
// A Decoder is single-owner and must not be driven by more than one call
// at a time. Init must be called before first use; after a fatal error the
// instance is pinned to that error until Init is called again.
type Decoder struct {
	state  lifecycle
	status error // pinned fatal status once state == lifecycleFailed

	width                uint32
	height               uint32
	backgroundColorIndex byte
	globalColorTable     [ColorTableCapacity]byte
	gctLen               int
	interlaced           bool

	lzw LZWDecoder

	// Saved locals, one set per parsing phase.
	phase     decodePhase
	sig       [signatureLen]byte
	sigN      int
	desc      [screenDescLen]byte
	descN     int
	gctLeft   int
	skipLeft  int // unread bytes of the extension sub-block being skipped
	id        [imageDescLen]byte
	idN       int
	blockLeft int // unread bytes of the current image sub-block
	lzwDone   bool
}

// Init (re)initializes the decoder. It must be called before any other
// method and again before decoding a second stream.
func (d *Decoder) Init() {
	if d == nil {
		return
	}
	*d = Decoder{state: lifecycleReady}
	d.lzw.Init()
}

// Width returns the screen width from the screen descriptor. Valid once
// Decode has progressed past the descriptor.
func (d *Decoder) Width() uint32 { return d.width }

// Height returns the screen height from the screen descriptor.
func (d *Decoder) Height() uint32 { return d.height }

// BackgroundColorIndex returns the background color index from the screen
// descriptor.
func (d *Decoder) BackgroundColorIndex() byte { return d.backgroundColorIndex }

// GlobalColorTable returns the filled prefix of the global color table,
// 3 bytes RGB per entry. Empty when the stream carries no table.
func (d *Decoder) GlobalColorTable() []byte { return d.globalColorTable[:d.gctLen] }

// Interlaced reports whether the most recent image descriptor had the
// interlace flag set. Output order is not rearranged; de-interlacing is
// the caller's concern.
func (d *Decoder) Interlaced() bool { return d.interlaced }

// Decode consumes container bytes from src, writing decoded color-table
// indices to dst. It returns nil once the trailer is reached, ErrShortRead
// or ErrShortWrite when it needs more input bytes or output space, and a
// fatal error for malformed input or contract violations. Callers loop on
// suspensions, passing the same buffer pair (with bytes appended or space
// freed) until a terminal outcome.
func (d *Decoder) Decode(dst, src *Buffer) error {
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
func (d *Decoder) fail(err error) error {
	d.state = lifecycleFailed
	d.status = err
	return err
}

func (d *Decoder) decode(dst, src *Buffer) error {
	for {
		switch d.phase {
		case phaseSignature:
			for d.sigN < signatureLen {
				c, err := src.readByte()
				if err != nil {
					return err
				}
				d.sig[d.sigN] = c
				d.sigN++
			}
			if s := string(d.sig[:]); s != signatures[0] && s != signatures[1] {
				return ErrBadHeader
			}
			d.phase = phaseScreenDescriptor

		case phaseScreenDescriptor:
			for d.descN < screenDescLen {
				c, err := src.readByte()
				if err != nil {
					return err
				}
				d.desc[d.descN] = c
				d.descN++
			}
			d.width = uint32(d.desc[0]) | uint32(d.desc[1])<<8
			d.height = uint32(d.desc[2]) | uint32(d.desc[3])<<8
			flags := d.desc[4]
			d.backgroundColorIndex = d.desc[5]
			// desc[6] is the pixel aspect ratio, ignored.
			if flags&0x80 != 0 {
				d.gctLeft = 6 << (flags & 0x07) // 3 * 2^(size+1) bytes
				d.gctLen = 0
				d.phase = phaseGlobalColorTable
			} else {
				d.phase = phaseBlockIntroducer
			}

		case phaseGlobalColorTable:
			n := copy(d.globalColorTable[d.gctLen:d.gctLen+d.gctLeft], src.Readable())
			src.ReadPos += n
			d.gctLen += n
			d.gctLeft -= n
			if d.gctLeft > 0 {
				if src.Closed {
					return ErrUnexpectedEOF
				}
				return ErrShortRead
			}
			d.phase = phaseBlockIntroducer

		case phaseBlockIntroducer:
			c, err := src.readByte()
			if err != nil {
				return err
			}
			switch c {
			case introducerExtension:
				d.phase = phaseExtensionLabel
			case introducerImage:
				d.idN = 0
				d.phase = phaseImageDescriptor
			case introducerTrailer:
				d.phase = phaseDone
				return nil
			default:
				return ErrBadBlock
			}

		case phaseExtensionLabel:
			c, err := src.readByte()
			if err != nil {
				return err
			}
			switch c {
			case labelPlainText, labelGraphicControl, labelComment, labelApplication:
				// Recognized labels are framed identically; their payload
				// is skipped, never interpreted.
				d.phase = phaseExtensionSize
			default:
				return ErrBadExtensionLabel
			}

		case phaseExtensionSize:
			c, err := src.readByte()
			if err != nil {
				return err
			}
			if c == 0 {
				d.phase = phaseBlockIntroducer
			} else {
				d.skipLeft = int(c)
				d.phase = phaseExtensionData
			}

		case phaseExtensionData:
			d.skipLeft -= src.skip(d.skipLeft)
			if d.skipLeft > 0 {
				if src.Closed {
					return ErrUnexpectedEOF
				}
				return ErrShortRead
			}
			d.phase = phaseExtensionSize

		case phaseImageDescriptor:
			for d.idN < imageDescLen {
				c, err := src.readByte()
				if err != nil {
					return err
				}
				d.id[d.idN] = c
				d.idN++
			}
			flags := d.id[8]
			if flags&0x80 != 0 {
				return ErrUnsupportedLocalColorTable
			}
			d.interlaced = flags&0x40 != 0
			d.phase = phaseImageLiteralWidth

		case phaseImageLiteralWidth:
			c, err := src.readByte()
			if err != nil {
				return err
			}
			d.lzw.Init()
			if err := d.lzw.SetLiteralWidth(uint32(c)); err != nil {
				return err
			}
			d.lzwDone = false
			d.phase = phaseImageBlockSize

		case phaseImageBlockSize:
			c, err := src.readByte()
			if err != nil {
				return err
			}
			if c == 0 {
				d.phase = phaseBlockIntroducer
			} else {
				d.blockLeft = int(c)
				d.phase = phaseImageBlockData
			}

		case phaseImageBlockData:
			if d.lzwDone {
				// End code already seen: drain the remaining framing
				// without feeding the decompressor.
				d.blockLeft -= src.skip(d.blockLeft)
				if d.blockLeft > 0 {
					if src.Closed {
						return ErrUnexpectedEOF
					}
					return ErrShortRead
				}
				d.phase = phaseImageBlockSize
				continue
			}

			win := src.window(d.blockLeft)
			mark := win.Mark()
			zerr := d.lzw.Decode(dst, &win)
			consumed := win.SinceMark(mark)
			src.ReadPos += consumed
			d.blockLeft -= consumed

			switch {
			case zerr == nil:
				d.lzwDone = true
			case errors.Is(zerr, ErrShortRead):
				if win.ReadPos < win.WritePos {
					return ErrInternalInconsistentLimitedRead
				}
				if d.blockLeft > 0 {
					// The window starved because src itself is starved.
					return ErrShortRead
				}
				d.phase = phaseImageBlockSize
			default:
				// Short-write suspension or a fatal inner error.
				return zerr
			}

		case phaseDone:
			return nil
		}
	}
}

// DecodeAll decodes a complete in-memory GIF stream in one call and
// returns the flat sequence of color-table indices. The destination grows
// as needed; truncated or malformed input is a fatal error, never a
// silent short result.
func DecodeAll(data []byte) ([]byte, error) {
	d := &Decoder{}
	d.Init()
	src := &Buffer{Data: data, WritePos: len(data), Closed: true}
	dst := &Buffer{Data: make([]byte, 4096)}
	for {
		err := d.Decode(dst, src)
		switch {
		case err == nil:
			return dst.Data[:dst.WritePos], nil
		case errors.Is(err, ErrShortWrite):
			grown := make([]byte, 2*len(dst.Data))
			copy(grown, dst.Data[:dst.WritePos])
			dst.Data = grown
		default:
			return nil, err
		}
	}
}
