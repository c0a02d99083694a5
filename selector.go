package braket

// BestPair is the outcome of a calibration scan: the qubit pair with the
// highest reported fidelity for a gate, and that fidelity.
type BestPair struct {
	Pair     QubitPair
	Fidelity float64
}

// FindBestPair returns the qubit pair with the highest reported fidelity for
// the given two-qubit gate. The gate must belong to the device's native gate
// set; the comparison ignores case. Calibration entries are scanned in sorted
// key order, so a fidelity tie resolves to the lexically smallest pair key.
//
// It is a pure function of its arguments and never touches a live device
// connection.
func FindBestPair(gate string, gates GateSet, calibration CalibrationTable) (BestPair, error) {
	if gate == "" {
		return BestPair{}, InvalidInputErr{Reason: "gate name is empty"}
	}
	if !gates.Supports(gate) {
		return BestPair{}, UnsupportedGateErr{Gate: gate, Valid: gates}
	}

	metric := FidelityMetric(gate)

	var bestKey string
	var bestFidelity float64
	for _, id := range calibration.Pairs() {
		f, ok := calibration[id][metric]
		if ok && f > bestFidelity {
			bestFidelity = f
			bestKey = id
		}
	}
	if bestKey == "" {
		return BestPair{}, NoCalibrationDataErr{Gate: gate}
	}

	pair, err := ParseQubitPair(bestKey)
	if err != nil {
		return BestPair{}, err
	}
	return BestPair{Pair: pair, Fidelity: bestFidelity}, nil
}
