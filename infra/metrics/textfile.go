package metrics

import "github.com/prometheus/client_golang/prometheus"

// WriteTextfile writes every metric of g to path in the Prometheus text
// format, for pickup by a node exporter textfile collector. A nil gatherer
// uses the default registry.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return prometheus.WriteToTextfile(path, g)
}
