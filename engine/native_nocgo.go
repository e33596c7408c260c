//go:build !cgo

package engine

// Native is the no-cgo placeholder for the zxing-cpp wrapper. Builds without
// cgo cannot reach the native engine, so every call reports that as a raw
// engine failure.
func Native(req *Request, out *Payload) string {
	return "engine unavailable: built without cgo"
}
