// Package wire encodes frames for the ws2811 display daemon and carries them
// over UDP.
//
// A frame is 3*N bytes, R,G,B per pixel in physical strip order, with no
// header or checksum. The datagram boundary is the frame boundary. A 3-byte
// datagram is a uniform fill the receiver repeats across every pixel.
package wire

import (
	"errors"
	"fmt"

	"github.com/coreman2200/matrixcast/internal/render"
)

// Port is the daemon's UDP port.
const Port = 1337

// BytesPerPixel is the size of one pixel on the wire.
const BytesPerPixel = 3

var ErrFrameSize = errors.New("wire: bad frame size")

// Encode packs px into R,G,B triples in buffer order.
func Encode(px []render.Color) []byte {
	out := make([]byte, len(px)*BytesPerPixel)
	for i, c := range px {
		out[i*3+0] = c.R
		out[i*3+1] = c.G
		out[i*3+2] = c.B
	}
	return out
}

// Fill is the minimal uniform payload: a single triple.
func Fill(c render.Color) []byte {
	return []byte{c.R, c.G, c.B}
}

// Uniform is c repeated n times. A uniform frame looks the same in any
// wiring order, so no serpentine correction applies.
func Uniform(c render.Color, n int) []byte {
	out := make([]byte, n*BytesPerPixel)
	for i := 0; i < n; i++ {
		out[i*3+0] = c.R
		out[i*3+1] = c.G
		out[i*3+2] = c.B
	}
	return out
}

// Expand validates a received payload against a strip of n pixels and
// returns a full 3*n frame. Only the 3-byte fill and the exact 3*n frame are
// accepted.
func Expand(payload []byte, n int) ([]byte, error) {
	switch len(payload) {
	case n * BytesPerPixel:
		return payload, nil
	case BytesPerPixel:
		return Uniform(render.Color{R: payload[0], G: payload[1], B: payload[2]}, n), nil
	}
	return nil, fmt.Errorf("%w: got %d bytes, want %d or %d", ErrFrameSize, len(payload), BytesPerPixel, n*BytesPerPixel)
}

// Decode splits a full frame back into pixels.
func Decode(frame []byte) ([]render.Color, error) {
	if len(frame)%BytesPerPixel != 0 {
		return nil, fmt.Errorf("%w: %d is not a multiple of %d", ErrFrameSize, len(frame), BytesPerPixel)
	}
	out := make([]render.Color, len(frame)/BytesPerPixel)
	for i := range out {
		out[i] = render.Color{R: frame[i*3+0], G: frame[i*3+1], B: frame[i*3+2]}
	}
	return out, nil
}
