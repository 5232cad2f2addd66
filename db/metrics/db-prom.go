package metrics

import (
	"database/sql"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/relkit/sqlfault"
)

var errorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "sqlfault_errors_total",
		Help: "Database errors by taxonomy class.",
	},
	[]string{"dialect", "class"},
)

// ObserveError counts a classified error under its taxonomy class name.
// Unclassified errors are counted too, so gaps in dialect coverage show up.
func ObserveError(dialect string, err error) {
	if err == nil {
		return
	}
	name := "unclassified"
	if class := sqlfault.ClassOf(err); class != nil {
		name = class.Name()
	}
	errorsTotal.WithLabelValues(dialect, name).Inc()
}

func cachedDbStats(db *sql.DB, ttl time.Duration) func() *sql.DBStats {
	m := &sync.Mutex{}
	var stats *sql.DBStats
	var nextUpdate time.Time
	return func() *sql.DBStats {
		m.Lock()
		defer m.Unlock()
		now := time.Now()
		if stats == nil || now.After(nextUpdate) {
			s := db.Stats()
			stats = &s
			nextUpdate = now.Add(ttl)
		}
		return stats
	}
}

// MonitorPool exports pool gauges for a database handle. The stats snapshot
// is cached for ttl so scrapes don't hammer the pool mutex.
func MonitorPool(db *sql.DB, labels map[string]string, ttl time.Duration) {
	cachedStats := cachedDbStats(db, ttl)
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name:        "dbpool_open_connections",
			Help:        "Established connections, both in use and idle.",
			ConstLabels: labels,
		},
		func() float64 { return float64(cachedStats().OpenConnections) },
	)
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name:        "dbpool_in_use",
			Help:        "Connections currently in use.",
			ConstLabels: labels,
		},
		func() float64 { return float64(cachedStats().InUse) },
	)
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name:        "dbpool_idle",
			Help:        "Idle connections.",
			ConstLabels: labels,
		},
		func() float64 { return float64(cachedStats().Idle) },
	)
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name:        "dbpool_wait_count",
			Help:        "Total number of connections waited for.",
			ConstLabels: labels,
		},
		func() float64 { return float64(cachedStats().WaitCount) },
	)
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name:        "dbpool_wait_duration_seconds",
			Help:        "Total time blocked waiting for a new connection.",
			ConstLabels: labels,
		},
		func() float64 { return cachedStats().WaitDuration.Seconds() },
	)
}
