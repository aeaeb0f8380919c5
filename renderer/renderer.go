package renderer

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/otmanesabir/OpenRT/log"
	"github.com/otmanesabir/OpenRT/scene"
	"github.com/otmanesabir/OpenRT/tracer"
	"github.com/otmanesabir/OpenRT/tracer/cpu"
)

var logger = log.New("renderer")

type Renderer interface {
	// Render frame.
	Render() error

	// Shutdown renderer and any attached tracers.
	Close()

	// Get render statistics.
	Stats() FrameStats

	// FrameBuffer returns the RGBA pixels of the last rendered frame.
	FrameBuffer() []uint8

	// SaveFrame encodes the last rendered frame to a PNG file. Paths
	// without a .png extension fail with ErrUnsupportedFormat.
	SaveFrame(path string) error
}

type blockRenderer struct {
	options Options

	sc      *scene.Scene
	tracers []tracer.Tracer

	scheduler   tracer.BlockScheduler
	frameBuffer []uint8

	// Last frame statistics.
	stats FrameStats

	closed bool
}

// NewDefault creates a renderer backed by one cpu tracer per worker. A
// zero worker count attaches one tracer per logical cpu.
func NewDefault(sc *scene.Scene, options Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if options.FrameW == 0 || options.FrameH == 0 {
		return nil, ErrInvalidFrameDims
	}
	if options.Workers <= 0 {
		options.Workers = runtime.NumCPU()
	}

	r := &blockRenderer{
		options:     options,
		sc:          sc,
		scheduler:   tracer.NewPerfectScheduler(),
		frameBuffer: make([]uint8, options.FrameW*options.FrameH*4),
	}

	sc.Camera.SetupFrame(options.FrameW, options.FrameH)

	for i := 0; i < options.Workers; i++ {
		tr := cpu.NewTracer(i)
		if err := tr.Setup(sc, options.FrameW, options.FrameH, r.frameBuffer); err != nil {
			r.Close()
			return nil, err
		}
		r.tracers = append(r.tracers, tr)
	}
	if len(r.tracers) == 0 {
		return nil, ErrNoTracers
	}

	logger.Noticef("rendering %dx%d frame with %d tracers", options.FrameW, options.FrameH, len(r.tracers))
	return r, nil
}

// Render traces one full frame into the frame buffer.
func (r *blockRenderer) Render() error {
	if r.closed {
		return ErrAlreadyClosed
	}

	start := time.Now()
	blockHeights := r.scheduler.Schedule(r.tracers, r.options.FrameH)

	doneChan := make(chan uint32, len(r.tracers))
	errChan := make(chan error, len(r.tracers))

	var blockY uint32
	for idx, tr := range r.tracers {
		if blockHeights[idx] == 0 {
			continue
		}
		tr.Enqueue(tracer.BlockRequest{
			BlockY:   blockY,
			BlockH:   blockHeights[idx],
			DoneChan: doneChan,
			ErrChan:  errChan,
		})
		blockY += blockHeights[idx]
	}

	var doneRows uint32
	for doneRows < r.options.FrameH {
		select {
		case rows := <-doneChan:
			doneRows += rows
		case err := <-errChan:
			return err
		}
	}

	r.collectStats(blockHeights, time.Since(start))
	return nil
}

func (r *blockRenderer) collectStats(blockHeights []uint32, total time.Duration) {
	r.stats = FrameStats{
		Tracers:    make([]TracerStat, len(r.tracers)),
		RenderTime: total,
	}
	for idx, tr := range r.tracers {
		stats := tr.Stats()
		r.stats.Tracers[idx] = TracerStat{
			Id:           tr.Id(),
			IsPrimary:    idx == 0,
			BlockH:       blockHeights[idx],
			FramePercent: 100 * float32(blockHeights[idx]) / float32(r.options.FrameH),
			RenderTime:   time.Duration(stats.BlockTime),
		}
	}
}

// Close shuts down the attached tracers.
func (r *blockRenderer) Close() {
	if r.closed {
		return
	}
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.closed = true
}

// Stats returns statistics for the last rendered frame.
func (r *blockRenderer) Stats() FrameStats {
	return r.stats
}

// FrameBuffer returns the RGBA pixels of the last rendered frame.
func (r *blockRenderer) FrameBuffer() []uint8 {
	return r.frameBuffer
}

// SaveFrame writes the frame buffer to disk. Only png output is
// supported.
func (r *blockRenderer) SaveFrame(path string) error {
	if strings.ToLower(filepath.Ext(path)) != ".png" {
		return ErrUnsupportedFormat
	}

	img := image.NewRGBA(image.Rect(0, 0, int(r.options.FrameW), int(r.options.FrameH)))
	copy(img.Pix, r.frameBuffer)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
