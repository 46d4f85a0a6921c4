// Package frame decodes inbound video frame payloads into rasters suitable
// for hand detection.
package frame

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"gocv.io/x/gocv"
)

// DecodeError indicates a malformed frame payload or unreadable image data.
type DecodeError struct {
	Stage string // "payload", "base64" or "image"
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode frame: %s: %v", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode turns a data-URI style payload ("<metadata>,<base64>") into an RGB
// raster. Everything up to and including the first comma is discarded; the
// remainder must be standard base64 holding a compressed still image (JPEG,
// PNG, ...). The caller owns the returned Mat and must Close it.
//
// gocv decodes to OpenCV's native BGR channel ordering; the hand landmark
// estimator consumes RGB, so the channels are swapped before returning.
func Decode(payload string) (*gocv.Mat, error) {
	_, encoded, found := strings.Cut(payload, ",")
	if !found {
		return nil, &DecodeError{Stage: "payload", Err: errors.New("missing comma separator")}
	}
	if encoded == "" {
		return nil, &DecodeError{Stage: "payload", Err: errors.New("empty image payload")}
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, &DecodeError{Stage: "base64", Err: err}
	}

	bgr, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, &DecodeError{Stage: "image", Err: err}
	}
	if bgr.Empty() {
		bgr.Close()
		return nil, &DecodeError{Stage: "image", Err: errors.New("no decodable image data")}
	}
	defer bgr.Close()

	rgb := gocv.NewMat()
	gocv.CvtColor(bgr, &rgb, gocv.ColorBGRToRGB)

	return &rgb, nil
}
