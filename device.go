package braket

const (
	// DeviceTypeQPU marks hardware devices
	DeviceTypeQPU = "QPU"
	// DeviceTypeSimulator marks managed simulators
	DeviceTypeSimulator = "SIMULATOR"
	// DeviceStatusOnline is the status of a device accepting work
	DeviceStatusOnline = "ONLINE"

	// SpecsOneQubit keys the per-qubit metrics in a provider's specs
	SpecsOneQubit = "1Q"
	// SpecsTwoQubit keys the per-pair metrics in a provider's specs
	SpecsTwoQubit = "2Q"
)

// Paradigm describes the gate-model capabilities a device advertises.
type Paradigm struct {
	QubitCount    int64   `json:"qubitCount,omitempty"`
	NativeGateSet GateSet `json:"nativeGateSet,omitempty"`
	Connectivity  struct {
		FullyConnected bool                `json:"fullyConnected,omitempty"`
		Graph          map[string][]string `json:"connectivityGraph,omitempty"`
	} `json:"connectivity,omitempty"`
}

// DeviceProperties represents a device as returned by the device service,
// including the provider's calibration specs.
type DeviceProperties struct {
	Arn          string                      `json:"deviceArn,omitempty"`
	Name         string                      `json:"deviceName,omitempty"`
	ProviderName string                      `json:"providerName,omitempty"`
	Type         string                      `json:"deviceType,omitempty"`
	Status       string                      `json:"deviceStatus,omitempty"`
	Paradigm     Paradigm                    `json:"paradigm,omitempty"`
	Specs        map[string]CalibrationTable `json:"specs,omitempty"`
	UpdatedAt    string                      `json:"updatedAt,omitempty"`
}

// TwoQubit returns the provider's pair calibration table. It is nil when the
// device published no pair specs.
func (d *DeviceProperties) TwoQubit() CalibrationTable {
	return d.Specs[SpecsTwoQubit]
}

// BestPair returns the best calibrated qubit pair on this device for the
// given native two-qubit gate.
func (d *DeviceProperties) BestPair(gate string) (BestPair, error) {
	return FindBestPair(gate, d.Paradigm.NativeGateSet, d.TwoQubit())
}

// Devices is an alias for a map of device ARN to device properties
type Devices map[string]*DeviceProperties

// QPUs returns all the hardware devices out of this set of devices
func (ds Devices) QPUs() (qpus []*DeviceProperties) {
	for _, d := range ds {
		if d.Type == DeviceTypeQPU {
			qpus = append(qpus, d)
		}
	}
	return qpus
}
