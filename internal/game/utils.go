package game

import (
	"fmt"
	"math"
	"time"
)

func f32(v float64) float32 { return float32(v) }

// devicePixels converts a logical window size to device pixels.
func devicePixels(width, height int, scale float64) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return int(math.Ceil(float64(width) * scale)), int(math.Ceil(float64(height) * scale))
}

// lerp blends two channel values, t in [0,1].
func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t + 0.5)
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
