// Package upgrade defines the domain types for framework upgrade catalogs:
// upgrade steps, step classifications, and framework identifiers.
package upgrade

// Step is one unit of upgrade guidance tied to a version range.
// A step is introduced at From and remains applicable up through To.
// Steps are value records: consolidation produces new steps and never
// mutates its inputs.
type Step struct {
	// Instruction is the short imperative text shown as a title.
	Instruction string `json:"instruction" yaml:"instruction"`

	// DetailedDescription is long-form text structured as an informal
	// outline: optional bold section headers followed by free-text lines,
	// and optional fenced code blocks.
	DetailedDescription string `json:"detailedDescription,omitempty" yaml:"detailedDescription,omitempty"`

	// From and To are the numeric version bounds, From <= To by convention.
	From float64 `json:"from" yaml:"from"`
	To   float64 `json:"to" yaml:"to"`

	// Type is an optional classification tag. Empty means unclassified.
	Type StepType `json:"stepType,omitempty" yaml:"stepType,omitempty"`

	// AffectedFile names the artifact or config file the step edits.
	// Empty means the step is not tied to a single file.
	AffectedFile string `json:"affectedFile,omitempty" yaml:"affectedFile,omitempty"`
}

// StepType classifies an upgrade step for grouping and sort priority.
type StepType string

// Known step types.
const (
	StepTypePackageUpdate StepType = "package-update"
	StepTypeDependencies  StepType = "dependencies"
	StepTypeConfiguration StepType = "configuration"
	StepTypeCodeUpdate    StepType = "code-update"
	StepTypeTesting       StepType = "testing"
	StepTypeDeployment    StepType = "deployment"
)

// UnknownTypePriority ranks unknown or absent step types after all known types.
const UnknownTypePriority = 10

// stepTypePriorities is the single source of truth for display and sort
// ordering of step types. Adding a new type is a one-line change here.
var stepTypePriorities = map[StepType]int{
	StepTypePackageUpdate: 1,
	StepTypeDependencies:  2,
	StepTypeConfiguration: 3,
	StepTypeCodeUpdate:    4,
	StepTypeTesting:       5,
	StepTypeDeployment:    6,
}

// Priority returns the sort priority of the step type. Lower values sort
// first. Unknown and absent types return UnknownTypePriority.
func (t StepType) Priority() int {
	if p, ok := stepTypePriorities[t]; ok {
		return p
	}
	return UnknownTypePriority
}

// Known reports whether the step type is one of the known classifications.
func (t StepType) Known() bool {
	_, ok := stepTypePriorities[t]
	return ok
}

// String returns the string representation of a StepType.
func (t StepType) String() string {
	return string(t)
}
