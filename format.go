package gif

// GIF container constants.
const (
	introducerExtension = 0x21 // Extension block: label byte + sub-block sequence.
	introducerImage     = 0x2C // Image descriptor: 9 bytes + LZW stream in sub-blocks.
	introducerTrailer   = 0x3B // End of stream.

	labelPlainText      = 0x01 // Plain text extension (skipped).
	labelGraphicControl = 0xF9 // Graphic control extension (skipped).
	labelComment        = 0xFE // Comment extension (skipped).
	labelApplication    = 0xFF // Application extension (skipped).

	signatureLen       = 6   // "GIF87a" or "GIF89a".
	screenDescLen      = 7   // le u16 width, le u16 height, flags, background index, aspect.
	imageDescLen       = 9   // le u16 left, top, width, height, flags.
	ColorTableCapacity = 768 // 3 bytes RGB x up to 256 entries.
)

// LZW constants. The code space is capped at 12 bits; table capacity is an
// invariant of the format, not a tunable.
const (
	MaxCodes        = 4096 // Code table and reversal stack capacity (12-bit code space).
	maxCodeWidth    = 12   // Codes never grow past 12 bits.
	minLiteralWidth = 2    // Smallest valid literal code width.
	maxLiteralWidth = 8    // Largest valid literal code width.
)

// Recognized signature version strings.
var signatures = [2]string{"GIF87a", "GIF89a"}
