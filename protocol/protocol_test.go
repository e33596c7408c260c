package protocol

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanReqRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	err := WriteScanReq(&buf, &ScanReq{
		Device:    "/dev/video1",
		Formats:   "EAN_13,QR_CODE",
		TryHarder: true,
	})
	require.NoError(t, err)

	req, err := ReadReq(&buf)
	require.NoError(t, err)
	assert.Equal(t, ActionScan, req.Action)

	scan := ToScanReq(req)
	assert.Equal(t, "/dev/video1", scan.Device)
	assert.Equal(t, "EAN_13,QR_CODE", scan.Formats)
	assert.True(t, scan.TryHarder)
	assert.False(t, scan.TryRotate)
}

func TestSuccessResRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSuccessRes(&buf, map[string]string{
		ExtraFormat: "QR_CODE",
		ExtraText:   "hello",
		ExtraTimeMS: "12",
	})
	require.NoError(t, err)

	res, err := ReadRes(&buf)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, "QR_CODE", res.Extras[ExtraFormat])
	assert.Equal(t, "hello", res.Extras[ExtraText])
}

func TestErrorResRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	err := WriteErrorRes(&buf, errors.New("engine: boom"))
	require.NoError(t, err)

	res, err := ReadRes(&buf)
	require.NoError(t, err)
	assert.Equal(t, Status(StatusError), res.Status)
	assert.Equal(t, "engine: boom", res.Error)
}
