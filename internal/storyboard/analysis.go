// Package storyboard generates an animation storyboard from lyrics and a
// coarse description of the backing track. The analysis here is a
// best-effort heuristic, not real signal processing: tempo is estimated
// from duration, beats are distributed evenly, and the energy curve is
// flat. The output is a JSON document a downstream renderer can consume.
package storyboard

import "math"

// energyPoints is the fixed length of normalized energy curves.
const energyPoints = 200

// Analysis is a coarse description of a music track.
type Analysis struct {
	Tempo    float64   `json:"tempo"`
	Beats    []float64 `json:"beats"`
	Energy   []float64 `json:"energy"`
	Duration float64   `json:"duration"`
	Genre    string    `json:"genre_hint"`
}

// Estimate builds a fallback analysis from a duration alone.
// Tempo is derived from duration and clamped to [72, 140] BPM, defaulting
// to 96 when the duration is unknown.
func Estimate(duration float64) Analysis {
	tempo := 96.0
	if duration > 0 {
		tempo = math.Max(72.0, math.Min(140.0, 240.0/duration))
	}

	energy := make([]float64, energyPoints)
	for i := range energy {
		energy[i] = 0.5
	}

	return Analysis{
		Tempo:    tempo,
		Beats:    DistributeBeats(duration, tempo),
		Energy:   energy,
		Duration: duration,
		Genre:    GenreFromTempo(tempo),
	}
}

// DistributeBeats places beats at even intervals for the given tempo.
func DistributeBeats(duration, tempo float64) []float64 {
	if duration <= 0 || tempo <= 0 {
		return nil
	}
	interval := 60.0 / tempo
	count := int(duration / interval)
	if count < 1 {
		count = 1
	}
	beats := make([]float64, count)
	for i := range beats {
		beats[i] = math.Round(float64(i)*interval*100) / 100
	}
	return beats
}

// NormalizeCurve rescales values into [0,1] and downsamples to the fixed
// curve length. An empty input yields a flat 0.5 curve.
func NormalizeCurve(values []float64) []float64 {
	out := make([]float64, energyPoints)
	if len(values) == 0 {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	span := maxVal - minVal + 1e-9

	step := float64(len(values)) / energyPoints
	if step < 1 {
		step = 1
	}
	for i := range out {
		idx := int(float64(i) * step)
		if idx >= len(values) {
			idx = len(values) - 1
		}
		out[i] = (values[idx] - minVal) / span
	}
	return out
}

// GenreFromTempo maps a tempo to a coarse genre hint.
func GenreFromTempo(tempo float64) string {
	switch {
	case tempo > 130:
		return "electronic"
	case tempo > 110:
		return "pop"
	case tempo > 90:
		return "rnb"
	default:
		return "ballad"
	}
}
