// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package metrics exposes prometheus metrics for the runtime modules.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "kp"

// Prometheus records dispatch outcomes and power totals.
type Prometheus struct {
	dispatches   *prometheus.CounterVec
	totalPower   prometheus.Gauge
	boardEntries *prometheus.GaugeVec
	burnt        prometheus.Counter
}

// New creates the metrics and registers them with the registerer.
// Metrics already registered are reused silently.
func New(registerer prometheus.Registerer) (metrics *Prometheus, err error) {
	metrics = &Prometheus{
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatches_total",
			Help:      "number of dispatched calls by call name and result",
		}, []string{"call", "result"}),
		totalPower: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "total_power",
			Help:      "sum of the power of all accounts",
		}),
		boardEntries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "leaderboard_entries",
			Help:      "number of entries of the last updated leaderboard of an app",
		}, []string{"app"}),
		burnt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redeem_burnt_units_total",
			Help:      "number of currency units burnt by confirmed redemptions and exchanges",
		}),
	}

	collectorsToRegister := map[string]prometheus.Collector{
		"dispatches counter":   metrics.dispatches,
		"total power gauge":    metrics.totalPower,
		"leaderboard gauge":    metrics.boardEntries,
		"redeem burnt counter": metrics.burnt,
	}

	for collectorName, collectorToRegister := range collectorsToRegister {
		err = registerer.Register(collectorToRegister)
		if err != nil && !errors.As(err, &prometheus.AlreadyRegisteredError{}) {
			return nil, fmt.Errorf("cannot register %s: %w", collectorName, err)
		}
	}

	return metrics, nil
}

// Dispatched counts a dispatched call and its result.
func (p *Prometheus) Dispatched(call string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	p.dispatches.WithLabelValues(call, result).Inc()
}

// SetTotalPower sets the total power gauge.
func (p *Prometheus) SetTotalPower(power uint64) {
	p.totalPower.Set(float64(power))
}

// SetLeaderBoardEntries sets the number of entries of an app leaderboard.
func (p *Prometheus) SetLeaderBoardEntries(app string, entries int) {
	p.boardEntries.WithLabelValues(app).Set(float64(entries))
}

// AddBurnt adds burnt currency units, truncated to float64 precision.
func (p *Prometheus) AddBurnt(units float64) {
	p.burnt.Add(units)
}
