package consolidate

import (
	"github.com/stepmap/stepmap/pkg/upgrade"
)

// filterRange keeps the steps whose version interval is fully contained in
// the requested window. This is an inclusive-subset test, not an overlap
// test: a step introduced before the window or still applicable after it is
// excluded. A window with from > to filters to empty.
func filterRange(steps []upgrade.Step, from, to float64) []upgrade.Step {
	filtered := make([]upgrade.Step, 0, len(steps))
	for _, step := range steps {
		if step.From >= from && step.To <= to {
			filtered = append(filtered, step)
		}
	}
	return filtered
}
