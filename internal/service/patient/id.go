package patient

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Patient ids are human-readable, one sequence per registration year:
// PAT<year><seq:04d>, e.g. PAT20260007. The sequence is computed from the
// maximum existing id under the year prefix and never reused.

// IDPrefix returns the patient id prefix for the given time, e.g. "PAT2026".
func IDPrefix(now time.Time) string {
	return fmt.Sprintf("PAT%d", now.Year())
}

// NextID computes the next patient id under prefix. lastID is the current
// maximum id carrying that prefix, or empty when no patient has been
// registered under it yet.
func NextID(prefix, lastID string) (string, error) {
	seq := 1
	if lastID != "" {
		rest, ok := strings.CutPrefix(lastID, prefix)
		if !ok {
			return "", fmt.Errorf("%w: %q does not carry prefix %q", ErrInvalidPatientID, lastID, prefix)
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidPatientID, lastID)
		}
		seq = n + 1
	}
	return fmt.Sprintf("%s%04d", prefix, seq), nil
}
