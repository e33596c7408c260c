package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	zxingcpp "github.com/ufocruz/zxing-cpp"
	"github.com/ufocruz/zxing-cpp/barcode"
)

func main() {
	device := flag.String("device", "/dev/video0", "V4L2 camera device")
	formats := flag.String("formats", "", "comma separated format names, empty for any")
	timeout := flag.Duration("timeout", 10*time.Second, "give up after this long")
	harder := flag.Bool("harder", false, "spend more time per frame")
	rotate := flag.Bool("rotate", false, "also search rotated orientations")
	invert := flag.Bool("invert", false, "retry undecoded frames with inverted intensities")
	flag.Parse()

	accepted, err := barcode.ParseFormatList(*formats)
	if err != nil {
		log.Fatal(err)
	}

	res, err := zxingcpp.Scan(&zxingcpp.ScanOptions{
		Device:    *device,
		Timeout:   *timeout,
		TryInvert: *invert,
		Barcode: barcode.Options{
			Formats:   accepted,
			TryHarder: *harder,
			TryRotate: *rotate,
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s\t%s\t(%dms)\n", res.Format, res.Text, res.Time.Milliseconds())
}
