package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func SetupPrometheus() *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	// Add Go module build info, so the textfile shows which binary produced it.
	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
	)

	return promRegistry
}

// WriteTextfile writes all gathered metrics to path in the text exposition
// format, to be picked up by the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
