package wire

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/matrixcast/internal/layout"
	"github.com/coreman2200/matrixcast/internal/render"
)

func TestEncodeLength(t *testing.T) {
	dim := layout.Dim{X: 5, Y: 3}
	b := Encode(render.Compose(dim))
	assert.Len(t, b, 3*dim.Count())
	assert.Len(t, Fill(render.Color{R: 1, G: 2, B: 3}), 3)
	assert.Len(t, Uniform(render.Color{R: 1}, 7), 21)
}

func TestEncodeLinearStrip(t *testing.T) {
	dim := layout.Dim{X: 4, Y: 1}
	px := render.Compose(dim, render.Layer{Mask: render.MaskOf(1, 0, 1, 0), Color: render.Color{R: 255}})
	assert.Equal(t, []byte{
		0xFF, 0x00, 0x00,
		0x00, 0x00, 0x00,
		0xFF, 0x00, 0x00,
		0x00, 0x00, 0x00,
	}, Encode(px))
}

func TestEncodeAllZeroSerpentine(t *testing.T) {
	dim := layout.Dim{X: 2, Y: 2}
	px := render.Compose(dim, render.Layer{Mask: render.MaskOf(0, 0, 0, 0), Color: render.Color{G: 3}})
	assert.Equal(t, make([]byte, 12), Encode(px))
}

func TestUniform(t *testing.T) {
	assert.Equal(t, []byte{9, 8, 7, 9, 8, 7}, Uniform(render.Color{R: 9, G: 8, B: 7}, 2))
	assert.Empty(t, Uniform(render.Color{R: 9}, 0))
}

func TestExpand(t *testing.T) {
	full := []byte{1, 2, 3, 4, 5, 6}
	got, err := Expand(full, 2)
	require.NoError(t, err)
	assert.Equal(t, full, got)

	got, err = Expand([]byte{7, 8, 9}, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{7, 8, 9, 7, 8, 9, 7, 8, 9}, got)

	for _, n := range []int{0, 1, 2, 4, 5, 7, 12} {
		_, err = Expand(make([]byte, n), 3)
		assert.True(t, errors.Is(err, ErrFrameSize), "len=%d", n)
	}
}

func TestDecode(t *testing.T) {
	px, err := Decode([]byte{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []render.Color{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}}, px)

	_, err = Decode([]byte{1, 2})
	assert.ErrorIs(t, err, ErrFrameSize)
}

func TestSenderDeliversOneDatagram(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()

	port := pc.LocalAddr().(*net.UDPAddr).Port
	s, err := Dial("127.0.0.1", port)
	require.NoError(t, err)
	defer s.Close()

	frame := Encode([]render.Color{{R: 0xFF}, {G: 0x10}, {B: 0x01}})
	require.NoError(t, s.Write(frame))

	require.NoError(t, pc.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 64)
	n, _, err := pc.ReadFrom(buf)
	require.NoError(t, err)
	assert.Equal(t, frame, buf[:n])
}

func TestSenderClosed(t *testing.T) {
	s, err := Dial("127.0.0.1", Port)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.Error(t, s.Write([]byte{1, 2, 3}))
	assert.NoError(t, s.Close())
}
