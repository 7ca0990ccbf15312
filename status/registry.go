package status

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers during construction; Update loops write directly to atomics
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count()
}

// Dump renders all metrics as sorted "key=value" pairs on one line
func (r *Registry) Dump() string {
	pairs := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		pairs = append(pairs, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		pairs = append(pairs, fmt.Sprintf("%s=%t", key, v.Load()))
	})
	sort.Strings(pairs)
	return strings.Join(pairs, " ")
}
