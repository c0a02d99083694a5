package braket

import (
	"fmt"
	"strings"
)

// ApiErr carries the user and developer facing messages for a device service
// failure.
type ApiErr struct {
	usrMsg, devMsg string
}

func (e ApiErr) Error() string { return fmt.Sprintf("usr_msg: %s\ndev_msg: %s", e.usrMsg, e.devMsg) }

// CredentialsErr represents missing or rejected service credentials
type CredentialsErr struct{ ApiErr }

func NewCredentialsErr(usrMsg, devMsg string) error {
	return CredentialsErr{ApiErr{usrMsg, devMsg}}
}

// UnknownDeviceErr represents a device ARN the service does not know about
type UnknownDeviceErr struct {
	Arn string
}

func (e UnknownDeviceErr) Error() string {
	return fmt.Sprintf("could not find device %q. Please use client.AvailableDevices to see options", e.Arn)
}

// InvalidInputErr reports an argument that cannot name a gate or qubit pair.
type InvalidInputErr struct {
	Reason string
}

func (e InvalidInputErr) Error() string { return "invalid input: " + e.Reason }

// UnsupportedGateErr reports a gate outside the device's native two-qubit
// gate set. Valid holds the set the device advertised.
type UnsupportedGateErr struct {
	Gate  string
	Valid GateSet
}

func (e UnsupportedGateErr) Error() string {
	return fmt.Sprintf("gate %q is not in the native gate set. Valid gates are: %s", e.Gate, strings.Join(e.Valid, ", "))
}

// NoCalibrationDataErr reports a calibration table with no entry for the
// requested gate.
type NoCalibrationDataErr struct {
	Gate string
}

func (e NoCalibrationDataErr) Error() string {
	return fmt.Sprintf("no calibration entry reports a fidelity for gate %q", e.Gate)
}
