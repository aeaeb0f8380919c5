package cpu

import (
	"fmt"
	"time"

	"github.com/otmanesabir/OpenRT/log"
	"github.com/otmanesabir/OpenRT/scene"
	"github.com/otmanesabir/OpenRT/tracer"
)

var logger = log.New("cpu tracer")

const queueDepth = 4

// Tracer renders frame blocks on a single goroutine. A renderer attaches
// one instance per hardware thread and lets the block scheduler balance
// rows between them.
type Tracer struct {
	id string

	sc          *scene.Scene
	frameW      uint32
	frameH      uint32
	frameBuffer []uint8

	queue     chan tracer.BlockRequest
	closeChan chan struct{}

	stats tracer.Stats
}

// NewTracer creates a cpu tracer and starts its worker goroutine.
func NewTracer(index int) *Tracer {
	tr := &Tracer{
		id:        fmt.Sprintf("cpu-%d", index),
		queue:     make(chan tracer.BlockRequest, queueDepth),
		closeChan: make(chan struct{}),
	}
	go tr.drainQueue()
	return tr
}

// Id returns the tracer id.
func (tr *Tracer) Id() string {
	return tr.id
}

// Close shuts down the worker goroutine. Pending block requests are
// discarded.
func (tr *Tracer) Close() {
	close(tr.closeChan)
}

// SpeedEstimate returns 1; all cpu workers are assumed equally fast
// until frame statistics say otherwise.
func (tr *Tracer) SpeedEstimate() float32 {
	return 1.0
}

// Setup points the tracer at a scene and an output frame buffer.
func (tr *Tracer) Setup(sc *scene.Scene, frameW, frameH uint32, frameBuffer []uint8) error {
	if sc == nil {
		return fmt.Errorf("%s: no scene defined", tr.id)
	}
	if sc.Camera == nil {
		return fmt.Errorf("%s: no camera defined", tr.id)
	}
	if uint32(len(frameBuffer)) != frameW*frameH*4 {
		return fmt.Errorf("%s: frame buffer size mismatch", tr.id)
	}
	tr.sc = sc
	tr.frameW = frameW
	tr.frameH = frameH
	tr.frameBuffer = frameBuffer
	return nil
}

// Enqueue adds a block request to the tracer's work queue.
func (tr *Tracer) Enqueue(req tracer.BlockRequest) {
	select {
	case tr.queue <- req:
	case <-tr.closeChan:
		logger.Warningf("%s: dropping block request; tracer is closed", tr.id)
	}
}

// Stats retrieves statistics for the last rendered block.
func (tr *Tracer) Stats() *tracer.Stats {
	return &tr.stats
}

func (tr *Tracer) drainQueue() {
	for {
		select {
		case req := <-tr.queue:
			tr.renderBlock(req)
		case <-tr.closeChan:
			return
		}
	}
}

func (tr *Tracer) renderBlock(req tracer.BlockRequest) {
	if tr.sc == nil {
		req.ErrChan <- fmt.Errorf("%s: block request before setup", tr.id)
		return
	}

	start := time.Now()
	cam := tr.sc.Camera
	for y := req.BlockY; y < req.BlockY+req.BlockH; y++ {
		row := y * tr.frameW * 4
		for x := uint32(0); x < tr.frameW; x++ {
			ray := cam.PrimaryRay(x, y, tr.frameW, tr.frameH)
			tr.sc.TraceNearest(&ray)
			color := tr.sc.Shade(&ray)

			off := row + x*4
			tr.frameBuffer[off] = clampByte(color[0])
			tr.frameBuffer[off+1] = clampByte(color[1])
			tr.frameBuffer[off+2] = clampByte(color[2])
			tr.frameBuffer[off+3] = 255
		}
	}

	tr.stats.BlockH = req.BlockH
	tr.stats.BlockTime = time.Since(start).Nanoseconds()
	req.DoneChan <- req.BlockH
}

func clampByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255.0)
}
