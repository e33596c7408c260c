package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/disintegration/imaging"

	zxingcpp "github.com/ufocruz/zxing-cpp"
	"github.com/ufocruz/zxing-cpp/barcode"
)

func main() {
	formats := flag.String("formats", "", "comma separated format names, empty for any")
	harder := flag.Bool("harder", true, "spend more time on the image")
	rotate := flag.Bool("rotate", true, "also search rotated orientations")
	invert := flag.Bool("invert", false, "decode the inverted image instead")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("Usage: %s [flags] <image file>", os.Args[0])
	}

	img, err := imaging.Open(flag.Arg(0), imaging.AutoOrientation(true))
	if err != nil {
		log.Fatal(err)
	}
	if *invert {
		img = imaging.Invert(img)
	}

	accepted, err := barcode.ParseFormatList(*formats)
	if err != nil {
		log.Fatal(err)
	}

	reader := zxingcpp.NewReader(barcode.Options{
		Formats:   accepted,
		TryHarder: *harder,
		TryRotate: *rotate,
	})
	res, err := reader.ReadImage(img)
	if err != nil {
		log.Fatal(err)
	}
	if res == nil {
		fmt.Println("No barcode found")
		os.Exit(1)
	}

	fmt.Printf("%s\t%s\t(%dms)\n", res.Format, res.Text, res.Time.Milliseconds())
}
