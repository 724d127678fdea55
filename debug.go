package qrng

import (
	"encoding/hex"
	"fmt"
	"os"
)

// debugEnabled controls whether debug tracing is enabled via the QRNG_DEBUG env var.
var debugEnabled = os.Getenv("QRNG_DEBUG") == "1"

// traceLog outputs a debug message if tracing is enabled.
func traceLog(format string, args ...interface{}) {
	if debugEnabled {
		fmt.Fprintf(os.Stderr, "[qrng] "+format+"\n", args...)
	}
}

// traceBytes outputs bytes in hex format with a descriptive name.
func traceBytes(name string, data []byte) {
	if debugEnabled {
		fmt.Fprintf(os.Stderr, "[qrng] %s (%d bytes): %s\n", name, len(data), hex.EncodeToString(data))
	}
}

// traceLanes outputs a named [numQubits]uint64 lane array.
func traceLanes(name string, lanes [numQubits]uint64) {
	if debugEnabled {
		fmt.Fprintf(os.Stderr, "[qrng] %s:\n", name)
		for i, v := range lanes {
			fmt.Fprintf(os.Stderr, "[qrng]   lane[%d] = 0x%016x\n", i, v)
		}
	}
}

// traceQuantumState outputs a named [numQubits]float64 lane array.
func traceQuantumState(name string, lanes [numQubits]float64) {
	if debugEnabled {
		fmt.Fprintf(os.Stderr, "[qrng] %s:\n", name)
		for i, v := range lanes {
			fmt.Fprintf(os.Stderr, "[qrng]   q[%d] = %e\n", i, v)
		}
	}
}
