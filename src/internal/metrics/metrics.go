// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package metrics exposes parser statistics as Prometheus metrics.
package metrics

import (
	"github.com/H0llyW00dzZ/buffered-iterator/src/recordio"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bufiter"

// StatsSource is satisfied by both parsers.
type StatsSource interface {
	Stats() recordio.Stats
}

// ParserCollector reports the counters of one parser. Values are read at
// scrape time.
type ParserCollector struct {
	parser StatsSource

	records     *prometheus.Desc
	bytes       *prometheus.Desc
	allocations *prometheus.Desc
	reuses      *prometheus.Desc
	capacity    *prometheus.Desc
}

// NewParserCollector returns a collector labelled parser=name. Collectors
// registered together need distinct names.
func NewParserCollector(name string, parser StatsSource) *ParserCollector {
	labels := prometheus.Labels{"parser": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "parser", metric), help, nil, labels)
	}

	return &ParserCollector{
		parser:      parser,
		records:     desc("records_total", "Records returned by the parser."),
		bytes:       desc("payload_bytes_total", "Payload bytes returned by the parser."),
		allocations: desc("allocations_total", "Backing regions obtained by the parser."),
		reuses:      desc("reuses_total", "Records read into an existing buffer in place."),
		capacity:    desc("buffer_capacity_bytes", "Capacity of the parser's current buffer."),
	}
}

// Describe implements [prometheus.Collector].
func (c *ParserCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.records
	ch <- c.bytes
	ch <- c.allocations
	ch <- c.reuses
	ch <- c.capacity
}

// Collect implements [prometheus.Collector].
func (c *ParserCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.parser.Stats()
	ch <- prometheus.MustNewConstMetric(c.records, prometheus.CounterValue, float64(s.Records))
	ch <- prometheus.MustNewConstMetric(c.bytes, prometheus.CounterValue, float64(s.Bytes))
	ch <- prometheus.MustNewConstMetric(c.allocations, prometheus.CounterValue, float64(s.Allocations))
	ch <- prometheus.MustNewConstMetric(c.reuses, prometheus.CounterValue, float64(s.Reuses))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity))
}

// WriteTextfile writes the current values of collectors to path in the
// Prometheus text format, for the node exporter's textfile collector.
func WriteTextfile(path string, collectors ...prometheus.Collector) error {
	reg := prometheus.NewRegistry()
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return prometheus.WriteToTextfile(path, reg)
}
