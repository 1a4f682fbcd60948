package consolidate

import (
	"sort"

	"github.com/stepmap/stepmap/pkg/upgrade"
)

// consolidateFiles merges steps that edit the same file. Several steps
// touching one config file across incremental versions should read as one
// coherent set of edits, not a repeated checklist. Steps without an affected
// file pass through unchanged after the file-grouped results.
func consolidateFiles(steps []upgrade.Step) []upgrade.Step {
	groups := make(map[string][]upgrade.Step)
	fileOrder := make([]string, 0, len(steps))
	passThrough := make([]upgrade.Step, 0, len(steps))

	for _, step := range steps {
		if step.AffectedFile == "" {
			passThrough = append(passThrough, step)
			continue
		}
		if _, ok := groups[step.AffectedFile]; !ok {
			fileOrder = append(fileOrder, step.AffectedFile)
		}
		groups[step.AffectedFile] = append(groups[step.AffectedFile], step)
	}

	consolidated := make([]upgrade.Step, 0, len(steps))
	for _, file := range fileOrder {
		group := groups[file]
		if len(group) == 1 {
			consolidated = append(consolidated, group[0])
			continue
		}
		consolidated = append(consolidated, mergeFileGroup(file, group))
	}
	return append(consolidated, passThrough...)
}

// mergeFileGroup combines two or more steps editing the same file into one.
// The merged step spans the earliest From to the latest To of the group,
// carries the most important step type seen, and rebuilds the description
// outline with the union of every member's sections.
func mergeFileGroup(file string, group []upgrade.Step) upgrade.Step {
	sorted := make([]upgrade.Step, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].From < sorted[j].From })
	first, last := sorted[0], sorted[len(sorted)-1]

	// Distinct base instructions decide the wording: one base means the
	// members were version-shifted repeats of the same edit.
	bases := make(map[string]bool, len(sorted))
	for _, step := range sorted {
		bases[stripVersions(step.Instruction)] = true
	}
	instruction := "Update " + file + " configuration"
	if len(bases) > 1 {
		instruction = "Update " + file + " with multiple configuration changes"
	}

	descriptions := make([]string, 0, len(sorted))
	for _, step := range sorted {
		descriptions = append(descriptions, step.DetailedDescription)
	}

	return upgrade.Step{
		Instruction:         instruction,
		DetailedDescription: mergeOutlines(descriptions),
		From:                first.From,
		To:                  last.To,
		Type:                mergedType(sorted),
		AffectedFile:        file,
	}
}

// mergedType picks the most important step type across the group, using the
// shared priority table. Unknown types rank below all known ones. A group
// with no typed member defaults to configuration.
func mergedType(group []upgrade.Step) upgrade.StepType {
	merged := upgrade.StepTypeConfiguration
	best := upgrade.UnknownTypePriority + 1
	for _, step := range group {
		if step.Type == "" {
			continue
		}
		if p := step.Type.Priority(); p < best {
			best = p
			merged = step.Type
		}
	}
	return merged
}
