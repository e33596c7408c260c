package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ufocruz/zxing-cpp/barcode"
)

func TestLoadFileDefaults(t *testing.T) {
	conf := LoadFile(filepath.Join(t.TempDir(), "missing.json"))

	assert.Equal(t, "/dev/video0", conf.Device)
	assert.Equal(t, 10, conf.Timeout)
	assert.Equal(t, "/var/run/zxing-scan.sock", conf.Socket)
	assert.Equal(t, "/var/run/zxing-scan.pid", conf.PidFile)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"device": "/dev/video3", "timeout": 5, "formats": ["QR_CODE"], "try_invert": true}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	conf := LoadFile(path)
	assert.Equal(t, "/dev/video3", conf.Device)
	assert.Equal(t, 5, conf.Timeout)
	assert.True(t, conf.TryInvert)
	assert.Equal(t, "/var/run/zxing-scan.sock", conf.Socket)
}

func TestBarcodeOptionsSkipsUnknownFormats(t *testing.T) {
	conf := &Config{
		Formats:   []string{"QR_CODE", "NOT_A_FORMAT", "EAN_13"},
		TryHarder: true,
	}

	opts := conf.BarcodeOptions()
	assert.Equal(t, []barcode.Format{barcode.FormatQRCode, barcode.FormatEAN13}, opts.Formats)
	assert.True(t, opts.TryHarder)
	assert.False(t, opts.TryRotate)
}
