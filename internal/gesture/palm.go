// Package gesture decides whether detected hand landmarks show an open palm
// facing the camera.
package gesture

import "github.com/ayusman/mudra/internal/detector"

// PalmOpen reports whether the first detected hand is an open palm facing the
// camera. No hand means false. Only the first hand counts; any further hands
// the estimator reports are ignored.
//
// The check is a coarse proxy: thumb, index and pinky tips all above the
// wrist in image coordinates (Y grows downward). It does not compute the palm
// normal, so a hand rotated sideways or a palm facing away with fingers
// raised can still pass. Known approximation, kept as-is.
func PalmOpen(hands []detector.HandLandmarks) bool {
	if len(hands) == 0 {
		return false
	}

	hand := &hands[0]
	wrist := hand.Points[detector.Wrist]

	return hand.Points[detector.ThumbTip].Y < wrist.Y &&
		hand.Points[detector.IndexTip].Y < wrist.Y &&
		hand.Points[detector.PinkyTip].Y < wrist.Y
}
