package upgrade

// Catalog provides read access to the upgrade steps of supported frameworks.
// Implementations own the step data; callers treat the returned slices as
// read-only inputs.
type Catalog interface {
	// Steps returns the full ordered step list for a framework, or an empty
	// slice for frameworks the catalog does not carry.
	Steps(framework Framework) []Step

	// Frameworks returns the frameworks the catalog has steps for.
	Frameworks() []Framework
}
