package index

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/kgantsov/ravl/pkg/errors"
	"github.com/kgantsov/ravl/pkg/metrics"
	"github.com/kgantsov/ravl/pkg/ravl"
)

type Entry struct {
	Key    int32
	Value  any
	Height int
	Size   int
	Rank   int
}

type Stats struct {
	Size      int
	Height    int
	InsertRPS float64
	DeleteRPS float64
	ReadRPS   float64
}

// Index is a rank-aware key/value index backed by a RAVL tree. It records
// operation metrics for every call.
type Index struct {
	tree    *ravl.Tree
	metrics *metrics.PrometheusMetrics
	stats   *metrics.OperationStats
}

func NewIndex(registry prometheus.Registerer, windowSize int) *Index {
	return &Index{
		tree:    ravl.NewTree(),
		metrics: metrics.NewPrometheusMetrics(registry, "ravl", "index"),
		stats:   metrics.NewOperationStats(windowSize),
	}
}

// StartStats runs the request rate window until Close is called.
func (idx *Index) StartStats() {
	go idx.stats.Start()
}

func (idx *Index) observe(operation, result string) {
	idx.metrics.OperationsTotal.WithLabelValues(operation, result).Inc()
}

func (idx *Index) refreshShape() {
	idx.metrics.Keys.Set(float64(idx.tree.Len()))
	idx.metrics.Height.Set(float64(idx.tree.Height()))
}

// Insert stores value under key and reports whether the key is new.
func (idx *Index) Insert(key int32, value any) bool {
	added := idx.tree.Insert(key, value)
	idx.stats.IncrementInsert()
	idx.refreshShape()

	if added {
		idx.observe("insert", "added")
	} else {
		idx.observe("insert", "updated")
	}
	log.Debug().Int32("key", key).Bool("added", added).Msg("Inserted key")

	return added
}

// Delete removes key and returns the value it held.
func (idx *Index) Delete(key int32) (any, error) {
	value, ok := idx.tree.Delete(key)
	idx.stats.IncrementDelete()
	if !ok {
		idx.observe("delete", "miss")
		return nil, errors.ErrKeyNotFound
	}
	idx.refreshShape()
	idx.observe("delete", "hit")
	log.Debug().Int32("key", key).Msg("Deleted key")

	return value, nil
}

func (idx *Index) Search(key int32) (*Entry, error) {
	idx.stats.IncrementRead()

	info, ok := idx.tree.Lookup(key)
	if !ok {
		idx.observe("search", "miss")
		return nil, errors.ErrKeyNotFound
	}
	idx.observe("search", "hit")

	return &Entry{
		Key:    info.Key,
		Value:  info.Value,
		Height: info.Height,
		Size:   info.Size,
		Rank:   info.Rank,
	}, nil
}

func (idx *Index) Rank(key int32) (int, error) {
	idx.stats.IncrementRead()

	r := idx.tree.Rank(key)
	if r == ravl.NotIn {
		idx.observe("rank", "miss")
		return ravl.NotIn, errors.ErrKeyNotFound
	}
	idx.observe("rank", "hit")

	return r, nil
}

func (idx *Index) FindRank(r int) (*Entry, error) {
	idx.stats.IncrementRead()

	info, ok := idx.tree.LookupRank(r)
	if !ok {
		idx.observe("find_rank", "miss")
		return nil, errors.ErrRankOutOfRange
	}
	idx.observe("find_rank", "hit")

	return &Entry{
		Key:    info.Key,
		Value:  info.Value,
		Height: info.Height,
		Size:   info.Size,
		Rank:   info.Rank,
	}, nil
}

func (idx *Index) Keys() []int32 {
	idx.stats.IncrementRead()
	return idx.tree.Keys()
}

func (idx *Index) Stats() Stats {
	rps := idx.stats.GetRPS()
	return Stats{
		Size:      idx.tree.Len(),
		Height:    idx.tree.Height(),
		InsertRPS: rps.InsertRPS,
		DeleteRPS: rps.DeleteRPS,
		ReadRPS:   rps.ReadRPS,
	}
}

func (idx *Index) Print(w io.Writer) error {
	return idx.tree.Print(w)
}

// Close tears the tree down and stops the rate window. Stored values are
// dropped; callers that own resources in them should Delete those keys first.
func (idx *Index) Close() {
	released := 0
	idx.tree.Clear(func(*ravl.Node) { released++ })
	idx.stats.Stop()
	idx.refreshShape()

	log.Debug().Int("nodes", released).Msg("Index closed")
}
