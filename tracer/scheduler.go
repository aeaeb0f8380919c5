package tracer

import "math"

// The BlockScheduler interface is implemented by all block scheduling
// algorithms.
type BlockScheduler interface {
	// Split a frame into blocks of variable height and assign them to
	// the pool of tracers using feedback collected from previous frames.
	//
	// This function returns the block height assignment for each tracer
	// in the input list.
	Schedule(tracers []Tracer, frameH uint32) []uint32
}

// The perfect scheduler assumes that the volume of tracing work between
// two subsequent frames is approximately the same: each tracer's share
// of the next frame is proportional to its measured row throughput in
// the previous one.
type perfectScheduler struct {
	blockAssignment []uint32
}

// Create a new perfect scheduler instance.
func NewPerfectScheduler() BlockScheduler {
	return &perfectScheduler{}
}

func (sch *perfectScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	var total float64

	// First frame, or the tracer pool changed: distribute rows by the
	// static speed estimates.
	if len(sch.blockAssignment) != len(tracers) {
		sch.blockAssignment = make([]uint32, len(tracers))

		for _, tr := range tracers {
			total += float64(tr.SpeedEstimate())
		}
		scaler := float64(frameH) / total

		var scheduledRows uint32
		for idx, tr := range tracers {
			sch.blockAssignment[idx] = uint32(math.Max(1.0, math.Floor(float64(tr.SpeedEstimate())*scaler)))
			scheduledRows += sch.blockAssignment[idx]
		}
		sch.blockAssignment[0] += frameH - scheduledRows

		return sch.blockAssignment
	}

	// Use last frame statistics.
	for _, tr := range tracers {
		stats := tr.Stats()
		if stats.BlockTime == 0 {
			total += 1.0
			continue
		}
		total += float64(stats.BlockH) / float64(stats.BlockTime)
	}

	scaler := float64(frameH) / total
	var scheduledRows uint32
	for idx, tr := range tracers {
		stats := tr.Stats()
		throughput := 1.0
		if stats.BlockTime != 0 {
			throughput = float64(stats.BlockH) / float64(stats.BlockTime)
		}
		sch.blockAssignment[idx] = uint32(math.Max(1.0, math.Floor(throughput*scaler)))
		scheduledRows += sch.blockAssignment[idx]
	}

	// In case rows don't add up to the frame height append the missing
	// ones to the first tracer.
	sch.blockAssignment[0] += frameH - scheduledRows

	return sch.blockAssignment
}
