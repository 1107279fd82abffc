// Package deps reports the availability of external binaries webpify shells
// out to. A missing encoder is surfaced once at startup as a fatal
// configuration error instead of failing every file in the batch.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency webpify relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Requirements returns the external binaries needed for a conversion run.
// binary overrides the cwebp command when non-empty.
func Requirements(binary string) []Requirement {
	cmd := strings.TrimSpace(binary)
	if cmd == "" {
		cmd = "cwebp"
	}
	return []Requirement{
		{
			Name:        "cwebp",
			Command:     cmd,
			Description: "libwebp encoder used for PNG/JPEG to WebP conversion",
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// Ensure returns an error when any required binary is unavailable.
func Ensure(binary string) error {
	for _, status := range CheckBinaries(Requirements(binary)) {
		if !status.Available {
			return fmt.Errorf("%s unavailable: %s (install libwebp or set encoder.cwebp_binary)", status.Name, status.Detail)
		}
	}
	return nil
}
