// Package waveform draws the studio's cosmetic waveform. The curve is a
// sine with additive random jitter and is not derived from any audio
// input; it exists purely to suggest motion in the preview pane.
package waveform

import (
	"math"
	"math/rand"
	"strings"
)

// blocks are the vertical block characters used for the sparkline, from
// lowest to highest.
var blocks = []rune("▁▂▃▄▅▆▇█")

// jitterAmplitude is the maximum random offset added to each sample.
const jitterAmplitude = 0.25

// Samples returns n waveform values in [-1, 1]: a sine advanced by phase
// with per-sample jitter from rng.
func Samples(n int, phase float64, rng *rand.Rand) []float64 {
	out := make([]float64, n)
	for i := range out {
		base := math.Sin(float64(i)*0.35 + phase)
		jitter := (rng.Float64()*2 - 1) * jitterAmplitude
		v := base*0.75 + jitter
		if v > 1 {
			v = 1
		}
		if v < -1 {
			v = -1
		}
		out[i] = v
	}
	return out
}

// Sparkline renders samples as a single line of block characters of the
// given width, resampling as needed.
func Sparkline(samples []float64, width int) string {
	if width <= 0 || len(samples) == 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		idx := i * len(samples) / width
		// Map [-1,1] onto the block ramp.
		level := (samples[idx] + 1) / 2 * float64(len(blocks)-1)
		b.WriteRune(blocks[int(math.Round(level))])
	}
	return b.String()
}
