package barcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNamesRoundTrip(t *testing.T) {
	for f, name := range formatNames {
		assert.Equal(t, name, f.String())

		parsed, ok := ParseFormat(name)
		require.True(t, ok, name)
		assert.Equal(t, f, parsed)
	}
}

func TestParseFormatUnknown(t *testing.T) {
	_, ok := ParseFormat("QR CODE")
	assert.False(t, ok)

	_, ok = ParseFormat("")
	assert.False(t, ok)
}

func TestParseFormatList(t *testing.T) {
	formats, err := ParseFormatList("QR_CODE, EAN_13")
	require.NoError(t, err)
	assert.Equal(t, []Format{FormatQRCode, FormatEAN13}, formats)

	formats, err = ParseFormatList("")
	require.NoError(t, err)
	assert.Empty(t, formats)

	_, err = ParseFormatList("QR_CODE,BOGUS")
	assert.Error(t, err)
}

func TestFormatListOrderIndependent(t *testing.T) {
	a := Options{Formats: []Format{FormatQRCode, FormatEAN13}}
	b := Options{Formats: []Format{FormatEAN13, FormatQRCode}}

	assert.Equal(t, "EAN_13,QR_CODE", a.FormatList())
	assert.Equal(t, a.FormatList(), b.FormatList())
}

func TestFormatListEmpty(t *testing.T) {
	assert.Equal(t, "", Options{}.FormatList())
}
