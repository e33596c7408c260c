// Package barcode defines the symbol formats, decode options and decode
// results shared by the reader and the native engine boundary.
package barcode

import (
	"strings"

	"github.com/pkg/errors"
)

// Format identifies a barcode symbology. The names returned by String are a
// versioned contract with the native zxing-cpp engine: the engine reports a
// decoded symbol by one of these names, so the two enumerations must stay in
// sync release for release.
type Format int

const (
	// FormatNone means no symbol was decoded.
	FormatNone Format = iota
	FormatAztec
	FormatCodabar
	FormatCode39
	FormatCode93
	FormatCode128
	FormatDataMatrix
	FormatEAN8
	FormatEAN13
	FormatITF
	FormatMaxiCode
	FormatPDF417
	FormatQRCode
	FormatRSS14
	FormatRSSExpanded
	FormatUPCA
	FormatUPCE
)

var formatNames = map[Format]string{
	FormatNone:        "NONE",
	FormatAztec:       "AZTEC",
	FormatCodabar:     "CODABAR",
	FormatCode39:      "CODE_39",
	FormatCode93:      "CODE_93",
	FormatCode128:     "CODE_128",
	FormatDataMatrix:  "DATA_MATRIX",
	FormatEAN8:        "EAN_8",
	FormatEAN13:       "EAN_13",
	FormatITF:         "ITF",
	FormatMaxiCode:    "MAXICODE",
	FormatPDF417:      "PDF_417",
	FormatQRCode:      "QR_CODE",
	FormatRSS14:       "RSS_14",
	FormatRSSExpanded: "RSS_EXPANDED",
	FormatUPCA:        "UPC_A",
	FormatUPCE:        "UPC_E",
}

var formatValues = func() map[string]Format {
	m := make(map[string]Format, len(formatNames))
	for f, name := range formatNames {
		m[name] = f
	}
	return m
}()

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseFormat maps an engine format name back to its Format value.
func ParseFormat(name string) (Format, bool) {
	f, ok := formatValues[name]
	return f, ok
}

// ParseFormatList parses a comma separated list of format names. Empty
// input yields an empty set, meaning no restriction.
func ParseFormatList(s string) ([]Format, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var formats []Format
	for _, name := range strings.Split(s, ",") {
		f, ok := ParseFormat(strings.TrimSpace(name))
		if !ok || f == FormatNone {
			return nil, errors.Errorf("unknown barcode format %q", name)
		}
		formats = append(formats, f)
	}
	return formats, nil
}
