package braket

import (
	"fmt"
	"strconv"
	"strings"
)

// PairSeparator joins the two qubit indices in a calibration table key
const PairSeparator = "-"

// QubitPair holds two physical qubit indices as they appear in a calibration
// table key, e.g. "73-74".
type QubitPair struct {
	A int
	B int
}

// ParseQubitPair parses a calibration table key of the form "<a>-<b>".
// Both indices may have any number of digits.
func ParseQubitPair(id string) (QubitPair, error) {
	first, second, found := strings.Cut(id, PairSeparator)
	if !found {
		return QubitPair{}, InvalidInputErr{Reason: fmt.Sprintf("qubit pair %q is missing the %q separator", id, PairSeparator)}
	}

	a, err := strconv.Atoi(first)
	if err != nil || a < 0 {
		return QubitPair{}, InvalidInputErr{Reason: fmt.Sprintf("qubit pair %q has a bad first index %q", id, first)}
	}

	b, err := strconv.Atoi(second)
	if err != nil || b < 0 {
		return QubitPair{}, InvalidInputErr{Reason: fmt.Sprintf("qubit pair %q has a bad second index %q", id, second)}
	}

	return QubitPair{A: a, B: b}, nil
}

func (p QubitPair) String() string {
	return strconv.Itoa(p.A) + PairSeparator + strconv.Itoa(p.B)
}
