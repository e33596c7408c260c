// Package protocol is the JSON request/response contract spoken over the
// scan daemon's unix socket.
package protocol

import (
	"encoding/json"
	"io"
)

func GetSockAddress() string {
	return "/var/run/zxing-scan.sock"
}

func GetLockFile() string {
	return "/var/run/zxing-scan.pid"
}

type Action string

const (
	ActionScan Action = "SCAN"
)

type Req struct {
	Action Action            `json:"action"`
	Params map[string]string `json:"params"`
}

// ScanReq are the per-request overrides a client may send; empty fields
// fall back to the daemon's configuration.
type ScanReq struct {
	Device    string
	Formats   string
	TryHarder bool
	TryRotate bool
}

type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusError          = "ERROR"
)

type Res struct {
	Status Status            `json:"status"`
	Error  string            `json:"error"`
	Extras map[string]string `json:"extras"`
}

// Extras keys set on a successful scan response.
const (
	ExtraFormat = "format"
	ExtraText   = "text"
	ExtraTimeMS = "time_ms"
)

func ReadReq(r io.Reader) (*Req, error) {
	var req Req
	err := json.NewDecoder(r).Decode(&req)
	return &req, err
}

func ReadRes(r io.Reader) (*Res, error) {
	var res Res
	err := json.NewDecoder(r).Decode(&res)
	return &res, err
}

func ToScanReq(req *Req) *ScanReq {
	return &ScanReq{
		Device:    req.Params["device"],
		Formats:   req.Params["formats"],
		TryHarder: req.Params["try_harder"] == "1",
		TryRotate: req.Params["try_rotate"] == "1",
	}
}

func WriteScanReq(w io.Writer, scan *ScanReq) error {
	params := map[string]string{
		"device":  scan.Device,
		"formats": scan.Formats,
	}
	if scan.TryHarder {
		params["try_harder"] = "1"
	}
	if scan.TryRotate {
		params["try_rotate"] = "1"
	}
	req := Req{
		Action: ActionScan,
		Params: params,
	}
	return json.NewEncoder(w).Encode(&req)
}

func WriteSuccessRes(w io.Writer, extras map[string]string) error {
	res := Res{
		Status: StatusSuccess,
		Extras: extras,
	}
	return json.NewEncoder(w).Encode(&res)
}

func WriteErrorRes(w io.Writer, err error) error {
	res := Res{
		Status: StatusError,
		Error:  err.Error(),
	}
	return json.NewEncoder(w).Encode(&res)
}
