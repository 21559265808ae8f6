package timing

import (
	"strings"

	"github.com/bgricker/citrend/internal/provider"
)

// Platform bookkeeping steps that never carry user-meaningful timing.
var noiseNames = map[string]struct{}{
	"Set up job":   {},
	"Complete job": {},
}

var noisePrefixes = []string{"Post ", "Run actions/"}

// IsNoise reports whether a step name is runner-internal bookkeeping.
// Matching is case-sensitive. Extra prefixes extend the built-in set.
func IsNoise(name string, extraPrefixes ...string) bool {
	if _, ok := noiseNames[name]; ok {
		return true
	}
	for _, prefix := range noisePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	for _, prefix := range extraPrefixes {
		if prefix != "" && strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// VisibleNames returns the user-meaningful step names in encounter order,
// deduplicated, with bookkeeping steps dropped.
func VisibleNames(steps []provider.Step, extraPrefixes ...string) []string {
	seen := make(map[string]struct{}, len(steps))
	names := make([]string, 0, len(steps))
	for _, step := range steps {
		if IsNoise(step.Name, extraPrefixes...) {
			continue
		}
		if _, ok := seen[step.Name]; ok {
			continue
		}
		seen[step.Name] = struct{}{}
		names = append(names, step.Name)
	}
	return names
}
