package barcode

import (
	"sort"
	"strings"
	"time"
)

// Options configure a decode call. The zero value accepts every known
// format with minimal effort.
type Options struct {
	// Formats restricts decoding to the listed symbologies. Empty means no
	// restriction.
	Formats []Format
	// TryHarder requests a more exhaustive (and slower) search.
	TryHarder bool
	// TryRotate asks the engine to also search rotated orientations.
	TryRotate bool
}

// FormatList serializes the accepted formats as a comma joined list of
// engine names. The list is sorted so equal sets serialize identically
// regardless of the order Formats was built in. An empty set yields "".
func (o Options) FormatList() string {
	if len(o.Formats) == 0 {
		return ""
	}
	names := make([]string, 0, len(o.Formats))
	for _, f := range o.Formats {
		names = append(names, f.String())
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// Result is one decoded symbol.
type Result struct {
	Format Format
	Text   string
	// Time is the engine-reported decode duration. Diagnostic only.
	Time time.Duration
}
