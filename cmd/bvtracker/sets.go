package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mauv0809/bvtracker/internal/scoring"
)

// parseSets turns "21-14" style flags into set entries. Either side may be
// left blank ("21-") to mirror a half-filled form.
func parseSets(values []string) ([]scoring.SetEntry, error) {
	sets := make([]scoring.SetEntry, 0, len(values))
	for _, v := range values {
		us, them, ok := strings.Cut(strings.TrimSpace(v), "-")
		if !ok {
			return nil, fmt.Errorf("invalid set %q, expected form 21-14", v)
		}
		var entry scoring.SetEntry
		for i, side := range []string{us, them} {
			side = strings.TrimSpace(side)
			if side == "" {
				continue
			}
			n, err := strconv.Atoi(side)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid set %q: %q is not a score", v, side)
			}
			entry[i] = &n
		}
		sets = append(sets, entry)
	}
	return sets, nil
}
