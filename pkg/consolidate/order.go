package consolidate

import (
	"sort"

	"github.com/stepmap/stepmap/pkg/upgrade"
)

// order sorts steps for display: step type priority first, then starting
// version, then ending version. The sort is stable so equal-key steps keep
// their relative input order and repeated runs produce identical sequences.
func order(steps []upgrade.Step) []upgrade.Step {
	sort.SliceStable(steps, func(i, j int) bool {
		a, b := steps[i], steps[j]
		if pa, pb := a.Type.Priority(), b.Type.Priority(); pa != pb {
			return pa < pb
		}
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})
	return steps
}
