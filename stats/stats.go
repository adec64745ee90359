package stats

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	Inverse      = "inverse"
	Direct       = "direct"
	Line         = "line"
	Arc          = "arc"
	Intersection = "intersection"
	Track        = "track"
	Errors       = "errors"
)

var operations = []string{Inverse, Direct, Line, Arc, Intersection, Track, Errors}

// Stats counts served operations.
type Stats struct {
	counts map[string]*uint64
}

func New() *Stats {
	s := &Stats{counts: make(map[string]*uint64, len(operations))}
	for _, op := range operations {
		s.counts[op] = new(uint64)
	}
	return s
}

func (s *Stats) Inc(op string) {
	if c, found := s.counts[op]; found {
		atomic.AddUint64(c, 1)
	}
}

func (s *Stats) Get(op string) uint64 {
	if c, found := s.counts[op]; found {
		return atomic.LoadUint64(c)
	}
	return 0
}

func (s *Stats) Snapshot() map[string]uint64 {
	snapshot := make(map[string]uint64, len(s.counts))
	for op, c := range s.counts {
		snapshot[op] = atomic.LoadUint64(c)
	}
	return snapshot
}

// Report formats the counters sorted by operation name.
func (s *Stats) Report() string {
	snapshot := s.Snapshot()
	ops := make([]string, 0, len(snapshot))
	for op := range snapshot {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	parts := make([]string, 0, len(ops))
	for _, op := range ops {
		parts = append(parts, fmt.Sprintf("%s=%d", op, snapshot[op]))
	}
	return "geofun " + strings.Join(parts, " ")
}

// Register exposes one counter per operation on r.
func (s *Stats) Register(r prometheus.Registerer) error {
	for _, op := range operations {
		c := s.counts[op]
		err := r.Register(prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace:   "geofun",
			Name:        "operations_total",
			Help:        "Number of geographic operations served.",
			ConstLabels: prometheus.Labels{"operation": op},
		}, func() float64 {
			return float64(atomic.LoadUint64(c))
		}))
		if err != nil {
			return err
		}
	}
	return nil
}
