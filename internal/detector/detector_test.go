package detector

import (
	"errors"
	"sync"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxHands != 1 {
		t.Errorf("MaxHands = %d, want 1", cfg.MaxHands)
	}
	if cfg.MinConfidence != 0.7 {
		t.Errorf("MinConfidence = %f, want 0.7", cfg.MinConfidence)
	}
	if cfg.MinTrackingConf != 0.7 {
		t.Errorf("MinTrackingConf = %f, want 0.7", cfg.MinTrackingConf)
	}
}

func TestMockDetector(t *testing.T) {
	t.Run("returns empty hands by default", func(t *testing.T) {
		mock := NewMockDetector()

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if hands != nil {
			t.Errorf("expected nil hands, got %v", hands)
		}
	})

	t.Run("returns configured hands", func(t *testing.T) {
		mock := NewMockDetector()

		mock.SetHands([]HandLandmarks{
			OpenPalmLandmarks(),
			FistLandmarks(),
		})

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(hands) != 2 {
			t.Errorf("expected 2 hands, got %d", len(hands))
		}
	})

	t.Run("returns configured error", func(t *testing.T) {
		mock := NewMockDetector()

		expectedErr := errors.New("detection failed")
		mock.SetError(expectedErr)

		hands, err := mock.Detect(nil)

		if err != expectedErr {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
		if hands != nil {
			t.Errorf("expected nil hands when error is set, got %v", hands)
		}
	})

	t.Run("Close returns nil", func(t *testing.T) {
		mock := NewMockDetector()

		if err := mock.Close(); err != nil {
			t.Errorf("expected Close to return nil, got %v", err)
		}
	})

	t.Run("implements Detector interface", func(t *testing.T) {
		var _ Detector = (*MockDetector)(nil)
	})

	t.Run("safe to reconfigure during detection", func(t *testing.T) {
		mock := NewMockDetector()

		var wg sync.WaitGroup
		wg.Add(2)

		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				mock.SetHands([]HandLandmarks{OpenPalmLandmarks()})
				mock.SetHands(nil)
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if _, err := mock.Detect(nil); err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
			}
		}()

		wg.Wait()
	})
}

func TestOpenPalmLandmarks(t *testing.T) {
	landmarks := OpenPalmLandmarks()

	t.Run("has handedness and score", func(t *testing.T) {
		if landmarks.Handedness != "Right" {
			t.Errorf("expected handedness Right, got %s", landmarks.Handedness)
		}
		if landmarks.Score < 0.9 {
			t.Errorf("expected score >= 0.9, got %f", landmarks.Score)
		}
	})

	t.Run("reference tips are above the wrist", func(t *testing.T) {
		wristY := landmarks.Points[Wrist].Y

		for _, tip := range []int{ThumbTip, IndexTip, PinkyTip} {
			if landmarks.Points[tip].Y >= wristY {
				t.Errorf("landmark %d should be above the wrist (lower Y)", tip)
			}
		}
	})

	t.Run("all fingers are extended", func(t *testing.T) {
		minExtension := 0.2

		pairs := [][2]int{
			{IndexMCP, IndexTip},
			{MiddleMCP, MiddleTip},
			{RingMCP, RingTip},
			{PinkyMCP, PinkyTip},
		}
		for _, p := range pairs {
			extension := landmarks.Points[p[0]].Y - landmarks.Points[p[1]].Y
			if extension < minExtension {
				t.Errorf("finger with MCP %d not extended enough (extension: %f)", p[0], extension)
			}
		}
	})
}

func TestFistLandmarks(t *testing.T) {
	landmarks := FistLandmarks()

	t.Run("has handedness and score", func(t *testing.T) {
		if landmarks.Handedness != "Right" {
			t.Errorf("expected handedness Right, got %s", landmarks.Handedness)
		}
		if landmarks.Score < 0.9 {
			t.Errorf("expected score >= 0.9, got %f", landmarks.Score)
		}
	})

	t.Run("no reference tip is above the wrist", func(t *testing.T) {
		wristY := landmarks.Points[Wrist].Y

		for _, tip := range []int{ThumbTip, IndexTip, PinkyTip} {
			if landmarks.Points[tip].Y < wristY {
				t.Errorf("landmark %d should be at or below the wrist", tip)
			}
		}
	})

	t.Run("fingers are curled", func(t *testing.T) {
		pairs := [][2]int{
			{IndexMCP, IndexTip},
			{MiddleMCP, MiddleTip},
			{RingMCP, RingTip},
			{PinkyMCP, PinkyTip},
		}
		for _, p := range pairs {
			extension := landmarks.Points[p[0]].Y - landmarks.Points[p[1]].Y
			if extension > 0 {
				t.Errorf("finger with MCP %d appears extended, should be curled", p[0])
			}
		}
	})
}
