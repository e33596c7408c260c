package pixbuf

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allValues fills a 16x16 buffer with every intensity 0..255 once.
func allValues() *Buffer {
	b := NewBuffer(16, 16)
	for i := range b.Pix {
		b.Pix[i] = byte(i)
	}
	return b
}

func TestInvert(t *testing.T) {
	in := allValues()
	out := Invert(in)

	require.Equal(t, in.Width, out.Width)
	require.Equal(t, in.Height, out.Height)
	assert.NotSame(t, &in.Pix[0], &out.Pix[0], "inversion must produce an independent buffer")

	for i := range in.Pix {
		assert.Equal(t, 255-in.Pix[i], out.Pix[i], "pixel %d", i)
	}
}

func TestInvertTwiceIsIdentity(t *testing.T) {
	in := allValues()
	out := Invert(Invert(in))

	assert.Equal(t, in.Pix, out.Pix)
}

func TestInvertLeavesInputUntouched(t *testing.T) {
	in := allValues()
	want := make([]byte, len(in.Pix))
	copy(want, in.Pix)

	Invert(in)
	assert.Equal(t, want, in.Pix)
}

func TestFromImagePreservesIntensities(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 16, 16))
	for i := range src.Pix {
		src.Pix[i] = byte(i)
	}

	buf := FromImage(src)
	require.Equal(t, 16, buf.Width)
	require.Equal(t, 16, buf.Height)
	assert.Equal(t, src.Pix, buf.Pix)
}
