// Package config loads the scan daemon's configuration.
package config

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/ufocruz/zxing-cpp/barcode"
)

const defaultPath = "/etc/zxing-scan/config.json"

type Config struct {
	Device    string   `json:"device"`
	Formats   []string `json:"formats"`
	TryHarder bool     `json:"try_harder"`
	TryRotate bool     `json:"try_rotate"`
	TryInvert bool     `json:"try_invert"`
	Timeout   int      `json:"timeout"`
	Socket    string   `json:"socket"`
	PidFile   string   `json:"pid_file"`
}

func Load() *Config {
	return LoadFile(defaultPath)
}

func LoadFile(path string) *Config {
	conf, err := loadFromFile(path)
	if err != nil {
		slog.Warn("Failed to load config file", "path", path, "error", err)
	}
	if conf == nil {
		conf = &Config{}
	}
	if conf.Device == "" {
		conf.Device = "/dev/video0"
	}
	if conf.Timeout == 0 {
		conf.Timeout = 10
	}
	if conf.Socket == "" {
		conf.Socket = "/var/run/zxing-scan.sock"
	}
	if conf.PidFile == "" {
		conf.PidFile = "/var/run/zxing-scan.pid"
	}

	return conf
}

func loadFromFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	config := &Config{}
	err = json.NewDecoder(file).Decode(config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// BarcodeOptions converts the configured format names into decode options.
// Unknown names are logged and skipped rather than failing the daemon.
func (c *Config) BarcodeOptions() barcode.Options {
	opts := barcode.Options{
		TryHarder: c.TryHarder,
		TryRotate: c.TryRotate,
	}
	for _, name := range c.Formats {
		f, ok := barcode.ParseFormat(name)
		if !ok || f == barcode.FormatNone {
			slog.Warn("Ignoring unknown barcode format", "format", name)
			continue
		}
		opts.Formats = append(opts.Formats, f)
	}
	return opts
}
