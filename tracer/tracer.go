package tracer

import (
	"github.com/otmanesabir/OpenRT/scene"
)

// BlockRequest is a unit of work processed by a tracer: a horizontal
// band of the output frame.
type BlockRequest struct {
	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// A channel to signal on block completion with the number of completed rows.
	DoneChan chan<- uint32

	// A channel to signal if an error occurs.
	ErrChan chan<- error
}

// Stats reports per-tracer statistics for the last rendered frame.
type Stats struct {
	// The rendered block height.
	BlockH uint32

	// The time for rendering this block (in nanoseconds).
	BlockTime int64
}

// Tracer renders blocks of a frame by intersecting camera rays with a
// scene. Implementations own their work queue; Enqueue returns once the
// request is queued and waits only while that queue is full.
type Tracer interface {
	// Get tracer id.
	Id() string

	// Shutdown and cleanup tracer.
	Close()

	// Get the tracer's computation speed estimate relative to its
	// siblings.
	SpeedEstimate() float32

	// Setup points the tracer at a scene and an output frame buffer
	// (RGBA, 4 bytes per pixel).
	Setup(sc *scene.Scene, frameW, frameH uint32, frameBuffer []uint8) error

	// Enqueue block request.
	Enqueue(BlockRequest)

	// Retrieve last frame statistics.
	Stats() *Stats
}
