package gif

import (
	"fmt"
	"testing"
)

func benchGIF(b *testing.B, n int) []byte {
	b.Helper()
	pixels := make([]byte, n)
	for i := range pixels {
		pixels[i] = byte((i / 7) % 256)
	}
	return buildGIF(b, 256, n/256, pixels, 8)
}

func BenchmarkDecodeAll(b *testing.B) {
	data := benchGIF(b, 64*1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DecodeAll(data)
	}
}

func BenchmarkDecodeChunked(b *testing.B) {
	data := benchGIF(b, 64*1024)
	chunks := []int{1, 16, 256, 4096}
	for _, chunk := range chunks {
		chunk := chunk
		b.Run(fmt.Sprintf("Chunk=%d", chunk), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var d Decoder
				d.Init()
				src := &Buffer{Data: data}
				dst := &Buffer{Data: make([]byte, 64*1024+16)}
				for {
					err := d.Decode(dst, src)
					if err == nil {
						break
					}
					if err == ErrShortRead {
						src.WritePos += chunk
						if src.WritePos > len(data) {
							src.WritePos = len(data)
						}
						continue
					}
					b.Fatal(err)
				}
			}
		})
	}
}
