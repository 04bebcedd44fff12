// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package availabilitydistribution

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "gossamer_parachain_availability_distribution"

const (
	reportOutcomeReordered      = "reordered"
	reportOutcomeSessionMissing = "session_not_cached"
	reportOutcomeGroupMissing   = "group_not_found"
)

var (
	sessionIndexCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "session_index_cache_hits_total",
		Help:      "number of session index lookups answered from the cache",
	})
	sessionIndexCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "session_index_cache_misses_total",
		Help:      "number of session index lookups queried from the runtime",
	})
	sessionInfoCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "session_info_cache_hits_total",
		Help:      "number of session info lookups answered from the cache",
	})
	sessionInfoCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "session_info_cache_misses_total",
		Help:      "number of session info lookups queried from the runtime",
	})
	nonValidatorSessions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "non_validator_sessions_total",
		Help:      "number of fetched sessions in which this node is not a validator",
	})
	badValidatorReports = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "bad_validator_reports_total",
		Help:      "number of bad validator reports by outcome",
	}, []string{"outcome"})
)
