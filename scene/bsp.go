package scene

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/otmanesabir/OpenRT/log"
)

var bspLogger = log.New("bsp")

// BSPTree is a per-solid spatial index over a primitive list. Unlike a
// plain nearest-hit accelerator it also answers furthest-hit queries,
// which the CSG composite needs to recover the exit point of a solid
// along a ray.
//
// Primitives that straddle a split plane are referenced from both
// children; a per-primitive mailbox stamped with the ray counter keeps a
// single traversal from testing such primitives twice.
type BSPTree struct {
	prims  []Primitive
	bounds []BoundingBox
	root   *bspNode

	maxDepth int
	minPrims int

	mailbox []uint32
}

type bspNode struct {
	box   BoundingBox
	left  *bspNode
	right *bspNode

	// Indices into BSPTree.prims; nil for internal nodes.
	items []int32
}

type bspStats struct {
	nodes    int
	leafs    int
	maxDepth int
}

// BuildBSP partitions the primitive list into an axis-aligned BSP tree.
// Recursion stops at maxDepth or when a node holds minPrims or fewer
// primitives. Building over an empty list is a caller bug.
func BuildBSP(prims []Primitive, maxDepth, minPrims int) *BSPTree {
	if len(prims) == 0 {
		panic("scene: cannot build a BSP tree over an empty primitive list")
	}
	if minPrims < 1 {
		minPrims = 1
	}

	t := &BSPTree{
		prims:    prims,
		bounds:   make([]BoundingBox, len(prims)),
		maxDepth: maxDepth,
		minPrims: minPrims,
		mailbox:  make([]uint32, len(prims)),
	}
	for i, prim := range prims {
		t.bounds[i] = prim.Bounds()
	}

	items := make([]int32, len(prims))
	for i := range items {
		items[i] = int32(i)
	}

	start := time.Now()
	var stats bspStats
	t.root = t.partition(items, 0, &stats)
	bspLogger.Debugf(
		"BSP tree build time: %d ms, prims: %d, maxDepth: %d, nodes: %d, leafs: %d",
		time.Since(start).Nanoseconds()/1e6,
		len(prims), stats.maxDepth, stats.nodes, stats.leafs,
	)
	return t
}

// Bounds returns the bound of the whole tree.
func (t *BSPTree) Bounds() BoundingBox {
	return t.root.box
}

func (t *BSPTree) partition(items []int32, depth int, stats *bspStats) *bspNode {
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	node := &bspNode{box: NewBoundingBox()}
	for _, idx := range items {
		node.box.ExtendBox(t.bounds[idx])
	}

	if len(items) <= t.minPrims || depth >= t.maxDepth {
		return t.leaf(node, items, stats)
	}

	axis := node.box.LongestAxis()
	split := t.medianCenter(items, axis)

	var left, right []int32
	for _, idx := range items {
		b := t.bounds[idx]
		if b.Min[axis] <= split {
			left = append(left, idx)
		}
		if b.Max[axis] >= split {
			right = append(right, idx)
		}
	}

	// A split that sends every primitive to both sides, or leaves one side
	// empty, makes no progress.
	if len(left) == len(items) && len(right) == len(items) {
		return t.leaf(node, items, stats)
	}
	if len(left) == 0 || len(right) == 0 {
		return t.leaf(node, items, stats)
	}

	stats.nodes++
	node.left = t.partition(left, depth+1, stats)
	node.right = t.partition(right, depth+1, stats)
	return node
}

func (t *BSPTree) leaf(node *bspNode, items []int32, stats *bspStats) *bspNode {
	node.items = items
	stats.leafs++
	return node
}

// medianCenter returns the median of the primitive bound centers along
// the given axis.
func (t *BSPTree) medianCenter(items []int32, axis int) float32 {
	centers := make([]float32, len(items))
	for i, idx := range items {
		centers[i] = t.bounds[idx].Center()[axis]
	}
	sort.Slice(centers, func(i, j int) bool { return centers[i] < centers[j] })
	return centers[len(centers)/2]
}

// visited stamps the mailbox slot for the primitive and reports whether
// this ray already tested it.
func (t *BSPTree) visited(idx int32, counter uint32) bool {
	if atomic.LoadUint32(&t.mailbox[idx]) == counter {
		return true
	}
	atomic.StoreUint32(&t.mailbox[idx], counter)
	return false
}

// IntersectNearest finds the closest hit along the ray. On a hit the ray
// is updated and true is returned; on a miss the ray is left untouched.
func (t *BSPTree) IntersectNearest(ray *Ray) bool {
	return t.nearestNode(t.root, ray)
}

func (t *BSPTree) nearestNode(node *bspNode, ray *Ray) bool {
	t0, _, ok := node.box.IntersectRange(ray)
	if !ok || t0 > ray.T {
		return false
	}

	if node.items != nil {
		found := false
		for _, idx := range node.items {
			if t.visited(idx, ray.Counter) {
				continue
			}
			if t.prims[idx].IntersectNearest(ray) {
				found = true
			}
		}
		return found
	}

	// Front-to-back: descending into the nearer child first lets its
	// hits shrink ray.T and prune the farther child.
	first, second := node.left, node.right
	if nodeEntryDist(second, ray) < nodeEntryDist(first, ray) {
		first, second = second, first
	}
	found := t.nearestNode(first, ray)
	if t.nearestNode(second, ray) {
		found = true
	}
	return found
}

// IntersectFurthest finds the most distant hit along the ray. On a hit
// the ray is updated and true is returned; on a miss the ray is left
// untouched. The incoming ray's T is only consulted when Hit is set, in
// which case only strictly farther hits are committed.
func (t *BSPTree) IntersectFurthest(ray *Ray) bool {
	return t.furthestNode(t.root, ray)
}

func (t *BSPTree) furthestNode(node *bspNode, ray *Ray) bool {
	_, t1, ok := node.box.IntersectRange(ray)
	if !ok {
		return false
	}
	if ray.Hit != nil && t1 < ray.T {
		return false
	}

	if node.items != nil {
		found := false
		for _, idx := range node.items {
			if t.visited(idx, ray.Counter) {
				continue
			}
			if t.prims[idx].IntersectFurthest(ray) {
				found = true
			}
		}
		return found
	}

	// Back-to-front: the farther child is visited first so its hits
	// grow ray.T and prune the nearer child.
	first, second := node.left, node.right
	if nodeExitDist(second, ray) > nodeExitDist(first, ray) {
		first, second = second, first
	}
	found := t.furthestNode(first, ray)
	if t.furthestNode(second, ray) {
		found = true
	}
	return found
}

func nodeEntryDist(node *bspNode, ray *Ray) float32 {
	t0, _, ok := node.box.IntersectRange(ray)
	if !ok {
		return float32(1e30)
	}
	return t0
}

func nodeExitDist(node *bspNode, ray *Ray) float32 {
	_, t1, ok := node.box.IntersectRange(ray)
	if !ok {
		return float32(-1e30)
	}
	return t1
}
