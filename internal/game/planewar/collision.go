package planewar

import (
	"github.com/Dhaizei/trae-solo-plane-war/internal/core"
)

// spatialCellSize is the broad-phase grid cell size in screen cells.
// Enemies are at most a few cells wide, so each occupies one or two buckets.
const spatialCellSize = 8

// SpatialHash is a broad-phase index over enemy bounding boxes. It is
// rebuilt once per tick and queried once per bullet, replacing the
// bullets×enemies pairwise scan with a handful of bucket lookups.
type SpatialHash struct {
	cellSize int
	buckets  map[[2]int][]*Enemy
}

// NewSpatialHash creates a hash with the given grid cell size.
func NewSpatialHash(cellSize int) *SpatialHash {
	if cellSize < 1 {
		cellSize = spatialCellSize
	}
	return &SpatialHash{
		cellSize: cellSize,
		buckets:  make(map[[2]int][]*Enemy),
	}
}

// Rebuild reindexes all live enemies.
func (h *SpatialHash) Rebuild(enemies []*Enemy) {
	for k := range h.buckets {
		delete(h.buckets, k)
	}
	for _, e := range enemies {
		if !e.alive {
			continue
		}
		h.insert(e)
	}
}

// insert registers an enemy in every bucket its bounds overlap.
func (h *SpatialHash) insert(e *Enemy) {
	minX, minY, maxX, maxY := h.cellRange(e.Bounds())
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			key := [2]int{cx, cy}
			h.buckets[key] = append(h.buckets[key], e)
		}
	}
}

// cellRange returns the inclusive bucket coordinate range covering r.
func (h *SpatialHash) cellRange(r core.Rect) (minX, minY, maxX, maxY int) {
	minX = floorDiv(r.X, h.cellSize)
	minY = floorDiv(r.Y, h.cellSize)
	maxX = floorDiv(r.Right()-1, h.cellSize)
	maxY = floorDiv(r.Bottom()-1, h.cellSize)
	return
}

// FirstHit returns the live enemy with the lowest insertion index whose
// bounds intersect r, or nil. Selecting by insertion index keeps the
// first-match-wins rule independent of bucket iteration order, so results
// stay deterministic and identical to a naive slice scan.
func (h *SpatialHash) FirstHit(r core.Rect) *Enemy {
	minX, minY, maxX, maxY := h.cellRange(r)

	var best *Enemy
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			for _, e := range h.buckets[[2]int{cx, cy}] {
				if !e.alive || !e.Bounds().Intersects(r) {
					continue
				}
				if best == nil || e.idx < best.idx {
					best = e
				}
			}
		}
	}
	return best
}

// firstHitNaive is the reference implementation of FirstHit: a linear scan
// in insertion order. Kept for equivalence tests and benchmarks.
func firstHitNaive(enemies []*Enemy, r core.Rect) *Enemy {
	for _, e := range enemies {
		if e.alive && e.Bounds().Intersects(r) {
			return e
		}
	}
	return nil
}

// floorDiv divides rounding toward negative infinity, so enemies above the
// top edge (negative y) land in stable buckets.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
