package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanesNV21Unpadded(t *testing.T) {
	data := make([]byte, 4*2*3/2)
	planes := planesNV21(data, 4, 2)
	require.Len(t, planes, 2)

	assert.Equal(t, 4, planes[0].Stride)
	assert.Len(t, planes[0].Data, 8)
	assert.Len(t, planes[1].Data, 4)
}

func TestPlanesNV21PaddedStride(t *testing.T) {
	// 4x2 frame delivered with rows padded to 8 bytes.
	data := make([]byte, 8*2*3/2)
	planes := planesNV21(data, 4, 2)
	require.Len(t, planes, 2)

	assert.Equal(t, 8, planes[0].Stride)
	assert.Len(t, planes[0].Data, 16)
}
