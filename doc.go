/*
Package gif implements an incremental, suspendable GIF decoder that turns a
container byte stream into a flat sequence of color-table indices.

Container: 6-byte signature (GIF87a or GIF89a); 7-byte screen descriptor
(le u16 width/height, packed flags, background index, aspect byte);
optional 3*2^(n+1)-byte global color table; then blocks tagged 0x21
(extension), 0x2C (image descriptor) or 0x3B (trailer). Extension and
image payloads are framed as length-prefixed sub-blocks terminated by a
zero-length sub-block. Image data is GIF-variant LZW: LSB-first codes
growing from literalWidth+1 up to 12 bits over a prefix-chain table.

The decoder never blocks on I/O. Decode consumes whatever the source
buffer holds and returns either nil (trailer reached), a suspension
(ErrShortRead: append input and call again; ErrShortWrite: free output
space and call again) or a fatal error. Resumption re-enters the exact
saved step, and the output is byte-for-byte identical no matter how the
caller fragments the input or the output space. Decoded output is raw
indices: palette expansion and de-interlacing are the caller's concern,
and a per-image local color table is refused with a dedicated error.

Use DecodeAll(data) for whole-in-memory streams.
Use Decoder with Init and repeated Decode calls for streaming input.
Use LZWDecoder directly to decompress a bare GIF-LZW code stream.
Use IsSuspension / IsFatal to branch on the three outcome classes.

# Examples

Decode an in-memory GIF to color-table indices:

	indices, err := gif.DecodeAll(data)
	if err != nil {
		return err
	}

Stream with caller-owned buffers, feeding input as it arrives:

	var d gif.Decoder
	d.Init()
	src := &gif.Buffer{Data: make([]byte, 512)}
	dst := &gif.Buffer{Data: make([]byte, 4096)}
	for {
		err := d.Decode(dst, src)
		if err == nil {
			break // trailer reached; dst.Data[:dst.WritePos] holds the indices
		}
		switch {
		case errors.Is(err, gif.ErrShortRead):
			src.Compact()
			n, rerr := conn.Read(src.Writable())
			src.WritePos += n
			if rerr == io.EOF {
				src.Closed = true
			}
		case errors.Is(err, gif.ErrShortWrite):
			flush(dst.Data[:dst.WritePos])
			dst.WritePos = 0
			dst.ReadPos = 0
		default:
			return err // fatal: decoder is pinned until Init
		}
	}
*/
package gif
