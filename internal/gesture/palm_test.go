package gesture

import (
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

func TestPalmOpen(t *testing.T) {
	t.Run("no hands returns false", func(t *testing.T) {
		if PalmOpen(nil) {
			t.Error("expected false for nil hands")
		}
		if PalmOpen([]detector.HandLandmarks{}) {
			t.Error("expected false for empty hands")
		}
	})

	t.Run("open palm returns true", func(t *testing.T) {
		hands := []detector.HandLandmarks{detector.OpenPalmLandmarks()}

		if !PalmOpen(hands) {
			t.Error("expected true for open palm fixture")
		}
	})

	t.Run("fist returns false", func(t *testing.T) {
		hands := []detector.HandLandmarks{detector.FistLandmarks()}

		if PalmOpen(hands) {
			t.Error("expected false for fist fixture")
		}
	})

	t.Run("tip level with wrist is not open", func(t *testing.T) {
		hand := detector.OpenPalmLandmarks()
		hand.Points[detector.ThumbTip].Y = hand.Points[detector.Wrist].Y

		if PalmOpen([]detector.HandLandmarks{hand}) {
			t.Error("expected false when a tip is level with the wrist")
		}
	})

	t.Run("only the first hand counts", func(t *testing.T) {
		open := detector.OpenPalmLandmarks()
		fist := detector.FistLandmarks()

		if !PalmOpen([]detector.HandLandmarks{open, fist}) {
			t.Error("expected true when the first hand is open")
		}
		if PalmOpen([]detector.HandLandmarks{fist, open}) {
			t.Error("expected false when the first hand is a fist")
		}
	})

	t.Run("one lowered tip is enough to reject", func(t *testing.T) {
		tips := []int{detector.ThumbTip, detector.IndexTip, detector.PinkyTip}

		for _, tip := range tips {
			hand := detector.OpenPalmLandmarks()
			hand.Points[tip].Y = hand.Points[detector.Wrist].Y + 0.05

			if PalmOpen([]detector.HandLandmarks{hand}) {
				t.Errorf("expected false with landmark %d below the wrist", tip)
			}
		}
	})
}
