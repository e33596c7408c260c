package main

import (
	"flag"
	"fmt"
	"log"
	"net"

	"github.com/ufocruz/zxing-cpp/protocol"
)

func main() {
	device := flag.String("device", "", "override the daemon's camera device")
	formats := flag.String("formats", "", "restrict accepted formats for this scan")
	harder := flag.Bool("harder", false, "spend more time per frame")
	rotate := flag.Bool("rotate", false, "also search rotated orientations")
	flag.Parse()

	conn, err := net.Dial("unix", protocol.GetSockAddress())
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	err = protocol.WriteScanReq(conn, &protocol.ScanReq{
		Device:    *device,
		Formats:   *formats,
		TryHarder: *harder,
		TryRotate: *rotate,
	})
	if err != nil {
		log.Fatal(err)
	}

	res, err := protocol.ReadRes(conn)
	if err != nil {
		log.Fatal(err)
	}
	if res.Status != protocol.StatusSuccess {
		log.Fatalf("Scan failed: %s", res.Error)
	}

	fmt.Printf("%s\t%s\n", res.Extras[protocol.ExtraFormat], res.Extras[protocol.ExtraText])
}
