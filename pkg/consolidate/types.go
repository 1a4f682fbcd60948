package consolidate

import (
	"crypto/sha256"
	"strings"

	"github.com/stepmap/stepmap/pkg/upgrade"
)

// consolidatableTypes are the step types that stage two groups and merges.
// Everything else, including unclassified steps, passes through unchanged.
var consolidatableTypes = map[upgrade.StepType]bool{
	upgrade.StepTypePackageUpdate: true,
	upgrade.StepTypeDependencies:  true,
	upgrade.StepTypeConfiguration: true,
}

// consolidateTypes merges same-type steps. Package bumps across many
// intermediate versions are noise to the reader, so the whole package-update
// group collapses into one step aimed at the requested target version.
// Dependency and configuration instructions are often subtly different per
// version, so those groups only lose literal duplicates. Consolidated groups
// come first, pass-through steps follow in their original relative order.
func consolidateTypes(steps []upgrade.Step, target float64) []upgrade.Step {
	groups := make(map[upgrade.StepType][]upgrade.Step)
	passThrough := make([]upgrade.Step, 0, len(steps))
	for _, step := range steps {
		if consolidatableTypes[step.Type] {
			groups[step.Type] = append(groups[step.Type], step)
		} else {
			passThrough = append(passThrough, step)
		}
	}

	consolidated := make([]upgrade.Step, 0, len(steps))
	if merged, ok := mergePackageUpdates(groups[upgrade.StepTypePackageUpdate], target); ok {
		consolidated = append(consolidated, merged)
	}
	consolidated = append(consolidated, dedupeInstructions(groups[upgrade.StepTypeDependencies])...)
	consolidated = append(consolidated, dedupeInstructions(groups[upgrade.StepTypeConfiguration])...)
	return append(consolidated, passThrough...)
}

// mergePackageUpdates collapses a package-update group into a single step.
// The first group member serves as the template: its instruction loses any
// trailing "to X.Y" phrase and bare version tokens before "to {target}" is
// appended, and every version reference in its description is rewritten to
// the target version. The merged step spans min(From) of the group up to the
// requested target, not the max To seen in the data.
func mergePackageUpdates(group []upgrade.Step, target float64) (upgrade.Step, bool) {
	if len(group) == 0 {
		return upgrade.Step{}, false
	}

	template := group[0]
	minFrom := template.From
	for _, step := range group[1:] {
		if step.From < minFrom {
			minFrom = step.From
		}
	}

	targetText := formatVersion(target)
	instruction := trailingToVersion.ReplaceAllString(template.Instruction, "")
	instruction = versionToken.ReplaceAllString(instruction, "")
	instruction = strings.TrimSpace(instruction) + " to " + targetText

	return upgrade.Step{
		Instruction:         instruction,
		DetailedDescription: rewriteVersions(template.DetailedDescription, targetText),
		From:                minFrom,
		To:                  target,
		Type:                upgrade.StepTypePackageUpdate,
	}, true
}

// dedupeInstructions drops steps whose instruction text is identical after
// trimming and lowercasing. First occurrence wins and relative order is
// preserved.
func dedupeInstructions(group []upgrade.Step) []upgrade.Step {
	seen := make(map[[sha256.Size]byte]bool, len(group))
	kept := make([]upgrade.Step, 0, len(group))
	for _, step := range group {
		normalized := strings.ToLower(strings.TrimSpace(step.Instruction))
		digest := sha256.Sum256([]byte(normalized))
		if seen[digest] {
			continue
		}
		seen[digest] = true
		kept = append(kept, step)
	}
	return kept
}
