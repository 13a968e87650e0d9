package nn

// TrainingBatch is one training sample: an input vector and the output the
// network is expected to produce for it. Train consumes a slice of these
// and averages their gradients into a single update.
type TrainingBatch struct {
	Input    []float32
	Expected []float32
}
