// Package metrics exposes Prometheus counters for the catalog service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreReads counts record-store loads per collection key.
	StoreReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_store_reads_total",
		Help: "Record store reads by collection key.",
	}, []string{"key"})

	// StoreWrites counts record-store overwrites per collection key.
	StoreWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_store_writes_total",
		Help: "Record store writes by collection key.",
	}, []string{"key"})

	// Descriptions counts description-assist calls by outcome
	// (ok, empty, error, unconfigured).
	Descriptions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_descriptions_total",
		Help: "Description generation attempts by outcome.",
	}, []string{"outcome"})
)
