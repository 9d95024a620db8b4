package transcriber

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// Capability describes the compute available for transcription.
type Capability struct {
	HasCUDA     bool
	AvailableGB float64
	CPUs        int
}

// Settings is the resolved transcription configuration.
type Settings struct {
	Model    string
	Threads  int
	UseGPU   bool
	BeamSize int
}

// ResolveSettings maps a capability descriptor to transcription
// settings. Pure function: an explicit model override always wins, the
// rest favors faster and lower-memory settings on constrained
// hardware.
func ResolveSettings(c Capability, override string) Settings {
	s := Settings{
		Threads:  c.CPUs,
		BeamSize: 5,
	}

	switch {
	case c.HasCUDA:
		s.Model = "medium"
		s.UseGPU = true
	case c.AvailableGB >= 4:
		s.Model = "small"
	default:
		s.Model = "base"
		s.BeamSize = 2
	}

	if override != "" && override != "auto" {
		s.Model = override
	}

	if s.Threads <= 0 {
		s.Threads = 4
	}

	return s
}

// Detector probes the machine for an accelerator and free memory.
// OS dependencies are injectable for tests.
type Detector struct {
	lookPath func(string) (string, error)
	readFile func(string) ([]byte, error)
	numCPU   func() int
}

// NewDetector builds a detector using real OS dependencies.
func NewDetector() *Detector {
	return &Detector{
		lookPath: exec.LookPath,
		readFile: os.ReadFile,
		numCPU:   runtime.NumCPU,
	}
}

// NewDetectorForTests creates a detector with injectable dependencies.
func NewDetectorForTests(
	lookPath func(string) (string, error),
	readFile func(string) ([]byte, error),
	numCPU func() int,
) *Detector {
	return &Detector{lookPath: lookPath, readFile: readFile, numCPU: numCPU}
}

// Detect probes for a CUDA accelerator and available memory.
func (d *Detector) Detect() Capability {
	cap := Capability{CPUs: d.numCPU()}

	if _, err := d.lookPath("nvidia-smi"); err == nil {
		cap.HasCUDA = true
	}

	cap.AvailableGB = d.availableMemoryGB()
	return cap
}

// availableMemoryGB reads MemAvailable from /proc/meminfo. Returns 4.0
// when the value cannot be read so the defaults stay usable off Linux.
func (d *Detector) availableMemoryGB() float64 {
	data, err := d.readFile("/proc/meminfo")
	if err != nil {
		return 4.0
	}

	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "MemAvailable:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			break
		}
		kb, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			break
		}
		return kb / (1024 * 1024)
	}

	return 4.0
}
