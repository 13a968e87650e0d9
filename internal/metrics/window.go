// Package metrics aggregates per-generation training statistics.
package metrics

import "time"

// Window accumulates evaluation stats across generations.
type Window struct {
	generations int
	samples     int
	train       time.Duration
	accuracy    float64
	lastAcc     float64
	lastErr     float64
}

// Record adds one generation's measurements to the window.
func (w *Window) Record(samples int, trainTime time.Duration, accuracy, meanSqErr float64) {
	w.generations++
	w.samples += samples
	w.train += trainTime
	w.accuracy += accuracy
	w.lastAcc = accuracy
	w.lastErr = meanSqErr
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{
		LastAccuracy: w.lastAcc,
		LastError:    w.lastErr,
	}
	if w.train > 0 {
		snap.SamplesPerSec = float64(w.samples) / w.train.Seconds()
	}
	if w.generations > 0 {
		snap.AvgTrainMS = (w.train.Seconds() * 1000) / float64(w.generations)
		snap.AvgAccuracy = w.accuracy / float64(w.generations)
	}

	*w = Window{}
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	SamplesPerSec float64
	AvgTrainMS    float64
	AvgAccuracy   float64
	LastAccuracy  float64
	LastError     float64
}
