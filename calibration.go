package braket

import (
	"sort"
	"strings"
)

// PairMetrics maps a calibration metric name to its measured value.
// Fidelity metrics are reported in [0, 1].
type PairMetrics map[string]float64

// CalibrationTable maps qubit pair keys to the metrics the provider reported
// for that pair.
type CalibrationTable map[string]PairMetrics

// Pairs returns the table's pair keys in sorted order. Scans over the table
// use this order so results are stable across runs.
func (t CalibrationTable) Pairs() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FidelityMetric returns the metric key providers use for a gate's two-qubit
// fidelity, e.g. "fCZ" for the CZ gate.
func FidelityMetric(gate string) string {
	return "f" + strings.ToUpper(gate)
}

// GateSet is the ordered list of gate names a device reports as native
type GateSet []string

// Supports reports whether the gate is in the set, ignoring case. Providers
// are not consistent about casing gate names.
func (gs GateSet) Supports(gate string) bool {
	for _, g := range gs {
		if strings.EqualFold(g, gate) {
			return true
		}
	}
	return false
}
