package utils

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// SystemMetrics holds CPU and Memory usage statistics for the process.
type SystemMetrics struct {
	CPU    MetricValue `json:"cpu"`
	Memory MetricValue `json:"memory"`
}

// MetricValue represents a single metric with average value.
type MetricValue struct {
	Avg float64 `json:"avg"`
}

// ToMap converts SystemMetrics to a map[string]interface{} for reporting.
func (s SystemMetrics) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"cpu": map[string]interface{}{
			"avg": s.CPU.Avg,
		},
		"memory": map[string]interface{}{
			"avg": s.Memory.Avg,
		},
	}
}

// GetMetrics returns current CPU and Memory usage for the current process.
func GetMetrics() SystemMetrics {
	cpu, mem := getPIDStats(os.Getpid())
	return SystemMetrics{
		CPU:    MetricValue{Avg: cpu},
		Memory: MetricValue{Avg: mem},
	}
}

// getPIDStats returns CPU percentage and memory (MB) for a specific PID.
func getPIDStats(pid int) (cpu float64, memMB float64) {
	cmd := exec.Command("ps", "-p", strconv.Itoa(pid), "-o", "%cpu,rss", "--no-headers")
	output, err := cmd.Output()
	if err != nil {
		return 0, 0
	}

	fields := strings.Fields(string(output))
	if len(fields) >= 2 {
		cpu, _ = strconv.ParseFloat(fields[0], 64)
		memKB, _ := strconv.ParseFloat(fields[1], 64)
		memMB = memKB / 1024.0
	}

	return cpu, memMB
}
