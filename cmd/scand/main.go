package main

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/pkg/errors"

	zxingcpp "github.com/ufocruz/zxing-cpp"
	"github.com/ufocruz/zxing-cpp/barcode"
	"github.com/ufocruz/zxing-cpp/config"
	"github.com/ufocruz/zxing-cpp/protocol"
)

var conf = config.Load()

func main() {
	if err := serve(); err != nil {
		slog.Error("Daemon failed", "error", err)
		os.Exit(1)
	}
}

func serve() error {
	if isAlreadyRun(conf.PidFile) {
		return errors.New("already run")
	}

	writeLockFile(conf.PidFile)
	defer os.Remove(conf.PidFile)

	os.Remove(conf.Socket)

	ln, err := net.Listen("unix", conf.Socket)
	if err != nil {
		return errors.Wrap(err, "listen error")
	}
	defer ln.Close()

	os.Chmod(conf.Socket, 0666)

	go func() {
		for {
			fd, err := ln.Accept()
			if err != nil {
				if opErr, ok := err.(*net.OpError); ok {
					if opErr.Err.Error() == "use of closed network connection" {
						return
					}
				}
				slog.Error("Accept error", "error", err)
				return
			}

			go handle(fd)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	daemon.SdNotify(false, daemon.SdNotifyReady)
	sig := <-sigc
	slog.Info("Caught signal, shutting down", "signal", sig.String())
	return nil
}

func handle(c net.Conn) {
	defer c.Close()

	for {
		req, err := protocol.ReadReq(c)
		if err != nil {
			if err.Error() != "EOF" {
				slog.Warn("Can not read request", "error", err)
			}
			return
		}

		switch req.Action {
		case protocol.ActionScan:
			res, err := runScan(protocol.ToScanReq(req))
			if err != nil {
				slog.Warn("Scan failed", "error", err)
				protocol.WriteErrorRes(c, err)
				continue
			}
			protocol.WriteSuccessRes(c, map[string]string{
				protocol.ExtraFormat: res.Format.String(),
				protocol.ExtraText:   res.Text,
				protocol.ExtraTimeMS: strconv.FormatInt(res.Time.Milliseconds(), 10),
			})
		}
	}
}

// One camera and one pixel buffer per scan, so concurrent client requests
// are serialized.
var scanMu sync.Mutex

func runScan(req *protocol.ScanReq) (*barcode.Result, error) {
	scanMu.Lock()
	defer scanMu.Unlock()

	opts := conf.BarcodeOptions()
	if req.Formats != "" {
		formats, err := barcode.ParseFormatList(req.Formats)
		if err != nil {
			return nil, err
		}
		opts.Formats = formats
	}
	if req.TryHarder {
		opts.TryHarder = true
	}
	if req.TryRotate {
		opts.TryRotate = true
	}

	device := conf.Device
	if req.Device != "" {
		device = req.Device
	}

	slog.Info("Scanning", "device", device, "formats", opts.FormatList())
	return zxingcpp.Scan(&zxingcpp.ScanOptions{
		Device:    device,
		Timeout:   time.Duration(conf.Timeout) * time.Second,
		TryInvert: conf.TryInvert,
		Barcode:   opts,
	})
}

func isAlreadyRun(path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false
	}

	pidStr, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Can not read pid file", "error", err)
		return false
	}
	pid, err := strconv.Atoi(string(pidStr))
	if err != nil {
		slog.Warn("Invalid existing pid file", "error", err)
		return false
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		slog.Warn("Can not find current process", "error", err)
		return false
	}

	return proc.Signal(syscall.Signal(0)) == nil
}

func writeLockFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(f, "%d", os.Getpid())
	return f.Close()
}
