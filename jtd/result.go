package jtd

// ErrorPair is an RFC 8927 validation error: an (instancePath,
// schemaPath) pair, both RFC 6901 JSON Pointers (spec.md §6.1).
type ErrorPair struct {
	InstancePath string `json:"instancePath"`
	SchemaPath   string `json:"schemaPath"`
}

// Result is the outcome of a single Validate call. Valid iff Errors is
// empty; errors are accumulated, never short-circuited at the
// top-level contract (spec.md §6.1, §8.1).
type Result struct {
	Errors []ErrorPair
}

// Valid reports whether validation produced no errors.
func (r *Result) Valid() bool { return len(r.Errors) == 0 }
