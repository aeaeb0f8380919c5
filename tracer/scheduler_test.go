package tracer

import (
	"testing"

	"github.com/otmanesabir/OpenRT/scene"
)

type fakeTracer struct {
	id    string
	speed float32
	stats Stats
}

func (tr *fakeTracer) Id() string            { return tr.id }
func (tr *fakeTracer) Close()                {}
func (tr *fakeTracer) SpeedEstimate() float32 { return tr.speed }
func (tr *fakeTracer) Enqueue(BlockRequest)  {}
func (tr *fakeTracer) Stats() *Stats         { return &tr.stats }

func (tr *fakeTracer) Setup(sc *scene.Scene, frameW, frameH uint32, frameBuffer []uint8) error {
	return nil
}

func sumRows(rows []uint32) uint32 {
	var total uint32
	for _, r := range rows {
		total += r
	}
	return total
}

func TestPerfectSchedulerInitialAssignment(t *testing.T) {
	type spec struct {
		speed1   float32
		speed2   float32
		frameH   uint32
		expRows1 uint32
		expRows2 uint32
	}
	specs := []spec{
		{1, 2, 9, 3, 6},
		{2, 1, 9, 6, 3},
		{1, 1000, 10, 1, 9},
	}

	for idx, sp := range specs {
		sch := NewPerfectScheduler()
		tracers := []Tracer{
			&fakeTracer{id: "tracer-0", speed: sp.speed1},
			&fakeTracer{id: "tracer-1", speed: sp.speed2},
		}

		rows := sch.Schedule(tracers, sp.frameH)
		if len(rows) != len(tracers) {
			t.Fatalf("spec %d: expected %d assignments; got %d", idx, len(tracers), len(rows))
		}
		if got := sumRows(rows); got != sp.frameH {
			t.Fatalf("spec %d: expected the assigned rows to sum to %d; got %d", idx, sp.frameH, got)
		}
		if rows[0] != sp.expRows1 || rows[1] != sp.expRows2 {
			t.Fatalf("spec %d: expected assignment [%d, %d]; got %v", idx, sp.expRows1, sp.expRows2, rows)
		}
	}
}

func TestPerfectSchedulerFeedback(t *testing.T) {
	sch := NewPerfectScheduler()
	fast := &fakeTracer{id: "tracer-0", speed: 1}
	slow := &fakeTracer{id: "tracer-1", speed: 1}
	tracers := []Tracer{fast, slow}

	rows := sch.Schedule(tracers, 100)
	if rows[0] != 50 || rows[1] != 50 {
		t.Fatalf("expected equal speed estimates to split the frame evenly; got %v", rows)
	}

	// The first tracer rendered its block four times faster than the
	// second one; the next frame should shift rows towards it.
	fast.stats = Stats{BlockH: 50, BlockTime: 10}
	slow.stats = Stats{BlockH: 50, BlockTime: 40}

	rows = sch.Schedule(tracers, 100)
	if got := sumRows(rows); got != 100 {
		t.Fatalf("expected the assigned rows to sum to 100; got %d", got)
	}
	if rows[0] != 80 || rows[1] != 20 {
		t.Fatalf("expected a 4:1 row split; got %v", rows)
	}
}

func TestPerfectSchedulerPoolChange(t *testing.T) {
	sch := NewPerfectScheduler()
	first := &fakeTracer{id: "tracer-0", speed: 1, stats: Stats{BlockH: 100, BlockTime: 5}}
	tracers := []Tracer{first}

	rows := sch.Schedule(tracers, 100)
	if rows[0] != 100 {
		t.Fatalf("expected a single tracer to receive the full frame; got %v", rows)
	}

	// Growing the pool resets the assignment to the static estimates
	// even though the first tracer already reported statistics.
	tracers = append(tracers, &fakeTracer{id: "tracer-1", speed: 1})
	rows = sch.Schedule(tracers, 100)
	if len(rows) != 2 {
		t.Fatalf("expected assignments for both tracers; got %v", rows)
	}
	if rows[0] != 50 || rows[1] != 50 {
		t.Fatalf("expected the grown pool to fall back to the speed estimates; got %v", rows)
	}
}

func TestPerfectSchedulerMinimumShare(t *testing.T) {
	sch := NewPerfectScheduler()
	fast := &fakeTracer{id: "tracer-0", speed: 1}
	slow := &fakeTracer{id: "tracer-1", speed: 1}
	tracers := []Tracer{fast, slow}
	sch.Schedule(tracers, 100)

	// Even a tracer that crawled through its block keeps at least one
	// row so its throughput can be re-measured next frame.
	fast.stats = Stats{BlockH: 50, BlockTime: 1}
	slow.stats = Stats{BlockH: 50, BlockTime: 100000}

	rows := sch.Schedule(tracers, 100)
	if rows[1] == 0 {
		t.Fatalf("expected the slow tracer to keep at least one row; got %v", rows)
	}
	if got := sumRows(rows); got != 100 {
		t.Fatalf("expected the assigned rows to sum to 100; got %d", got)
	}
}
