package report

import (
	"github.com/gostonefire/hashsimulator/internal/model"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics - Holds the simulation results as Prometheus gauges in a private registry, so they can be written
// to a textfile picked up by the node exporter textfile collector
type Metrics struct {
	registry   *prometheus.Registry
	keys       prometheus.Gauge
	tableSize  prometheus.Gauge
	collisions *prometheus.GaugeVec
	probes     *prometheus.GaugeVec
}

// NewMetrics - Returns a pointer to a new Metrics with all gauges registered
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	return &Metrics{
		registry: reg,
		keys: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "hashsim_keys",
			Help: "Number of keys inserted in each simulation run.",
		}),
		tableSize: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "hashsim_table_size",
			Help: "Number of slots in the simulated hash table.",
		}),
		collisions: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "hashsim_collisions",
			Help: "Number of keys whose initial slot was occupied by another key.",
		}, []string{"algorithm"}),
		probes: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "hashsim_probes",
			Help: "Total number of linear probing steps.",
		}, []string{"algorithm"}),
	}
}

// Observe - Sets the gauges from one set of simulation runs
func (M *Metrics) Observe(keys int, tableSize int64, results []model.RunResult) {
	M.keys.Set(float64(keys))
	M.tableSize.Set(float64(tableSize))
	for _, r := range results {
		M.collisions.WithLabelValues(r.Algorithm).Set(float64(r.Collisions))
		M.probes.WithLabelValues(r.Algorithm).Set(float64(r.Probes))
	}
}

// WriteToTextfile - Writes all gauges in the Prometheus text format to the file name
func (M *Metrics) WriteToTextfile(name string) (err error) {
	err = prometheus.WriteToTextfile(name, M.registry)
	if err != nil {
		err = errors.Wrapf(err, "error while writing metrics to %s", name)
	}

	return
}
