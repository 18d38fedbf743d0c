package tensor

// Device identifies the execution locus a tensor is bound to.
// A tensor is created on exactly one device and stays there until
// explicitly relocated with IntToDevice.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	Gorgonia
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case Gorgonia:
		return "Gorgonia"
	default:
		return "Unknown"
	}
}
