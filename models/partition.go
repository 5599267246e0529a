package models

import (
	"sync"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/yggdrasil/stats"
	"github.com/aukilabs/yggdrasil/tpntree"
	"github.com/google/uuid"
)

// Bucket is a partition tree node holding a bag of points.
type Bucket = tpntree.Tree[[]Point]

// Partition hosts one spatial partition tree. The tree itself performs no
// locking, the partition serializes all access to it.
type Partition struct {
	ID         string
	Span       float64
	Dimensions int
	Capacity   int

	mutex      sync.RWMutex
	tree       *Bucket
	pointCount int
}

// NewPartition creates a partition over a tree centered at the origin with
// the given uniform span. Capacity is the number of points a leaf absorbs
// before it divides on the next insert.
func NewPartition(span float64, dimensions, capacity int) (*Partition, error) {
	if dimensions < 1 {
		return nil, errors.New("partition needs at least one dimension").
			WithTag("dimensions", dimensions)
	}
	if span <= 0 {
		return nil, errors.New("partition span must be positive").
			WithTag("span", span)
	}
	if capacity < 1 {
		capacity = 1
	}

	return &Partition{
		ID:         uuid.NewString(),
		Span:       span,
		Dimensions: dimensions,
		Capacity:   capacity,
		tree:       tpntree.Root[[]Point](span, dimensions),
	}, nil
}

// Insert adds the point to the bucket spanning its position, dividing full
// buckets on the way down.
func (p *Partition) Insert(pt Point) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	err := tpntree.InsertByCoordinates(p.tree, pt, p.divisionCondition)
	if err != nil {
		instrumentInsertError(errors.Type(err))
		return err
	}

	p.pointCount++
	instrumentCountPoint(p.Dimensions)
	return nil
}

func (p *Partition) divisionCondition(t *Bucket) bool {
	d := t.Data()
	return d != nil && len(*d) >= p.Capacity
}

// Locate returns a snapshot of the deepest region spanning the given
// position.
func (p *Partition) Locate(position []float64) (Region, error) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	node, err := tpntree.FindByPoint(p.tree, position)
	if err != nil {
		return Region{}, err
	}
	return regionFromBucket(node), nil
}

// Adjacent returns the 2*N same-sized lattice neighbors of the partition
// root region, axis-major, above before below.
func (p *Partition) Adjacent() []Region {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	trees := p.tree.AdjacentTrees()
	regions := make([]Region, len(trees))
	for i, t := range trees {
		regions[i] = regionFromBucket(t)
	}
	return regions
}

// DebugInfo reports the partition shape: node and leaf counts, depth,
// per-level occupancy and the leaf load spread.
func (p *Partition) DebugInfo() DebugInfo {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	info := DebugInfo{
		ID:         p.ID,
		Span:       p.Span,
		Dimensions: p.Dimensions,
		Capacity:   p.Capacity,
		PointCount: p.pointCount,
		Levels:     stats.Occupancy(p.tree),
	}

	it := p.tree.IterBreadthFirst()
	for node, ok := it.Next(); ok; node, ok = it.Next() {
		info.NodeCount++
		if node.IsLeaf() {
			info.LeafCount++
		}
		if node.Level() > info.MaxLevel {
			info.MaxLevel = node.Level()
		}
	}

	info.LeafLoadVariance = stats.LeafLoadVariance(p.tree)
	return info
}

// Region is a read-only snapshot of one tree node.
type Region struct {
	Coordinates []float64 `json:"coordinates"`
	Span        []float64 `json:"span"`
	Level       int       `json:"level"`
	Leaf        bool      `json:"leaf"`
	Points      []Point   `json:"points,omitempty"`
}

func regionFromBucket(t *Bucket) Region {
	region := Region{
		Coordinates: append([]float64(nil), t.Coordinates()...),
		Span:        append([]float64(nil), t.Span()...),
		Level:       t.Level(),
		Leaf:        t.IsLeaf(),
	}
	if d := t.Data(); d != nil {
		region.Points = append([]Point(nil), *d...)
	}
	return region
}

// DebugInfo summarizes a partition tree, in the spirit of a spatial debug
// report.
type DebugInfo struct {
	ID               string                 `json:"id"`
	Span             float64                `json:"span"`
	Dimensions       int                    `json:"dimensions"`
	Capacity         int                    `json:"capacity"`
	PointCount       int                    `json:"point_count"`
	NodeCount        int                    `json:"node_count"`
	LeafCount        int                    `json:"leaf_count"`
	MaxLevel         int                    `json:"max_level"`
	LeafLoadVariance float64                `json:"leaf_load_variance"`
	Levels           []stats.LevelOccupancy `json:"levels"`
}
