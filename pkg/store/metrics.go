package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Package-level Prometheus collectors, registered once against the
// default registerer. Reading them never affects store semantics or
// Count(); they exist purely for observability of structural behavior.
var (
	quadsAddedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trismem_quads_added_total",
		Help: "Total number of triples that were newly added to a store.",
	})
	quadsRemovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trismem_quads_removed_total",
		Help: "Total number of triples that were removed from a store.",
	})
	duplicateAddTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trismem_duplicate_add_total",
		Help: "Total number of Add calls that were no-ops because the triple was already present.",
	})
	absentRemoveTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trismem_absent_remove_total",
		Help: "Total number of Remove calls that were no-ops because the triple was not present.",
	})
	bunchPromotionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trismem_bunch_promotions_total",
		Help: "Total number of array-form bunches promoted to hashed form.",
	})
	concurrentModificationTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trismem_concurrent_modification_total",
		Help: "Total number of concurrent-modification faults raised by iterators.",
	})
)
