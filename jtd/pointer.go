package jtd

import "github.com/kaptinlin/jsonpointer"

// pair builds an ErrorPair from instance/schema token slices, encoding
// each as an RFC 6901 JSON Pointer via the same escaping the teacher
// uses for pattern-location reporting (schema.go).
func pair(instanceTokens, schemaTokens []string) ErrorPair {
	return ErrorPair{
		InstancePath: jsonpointer.Format(instanceTokens...),
		SchemaPath:   jsonpointer.Format(schemaTokens...),
	}
}

// appendTok returns a new token slice with more appended, never
// mutating tokens (frames on the work stack must not alias each
// other's path slices).
func appendTok(tokens []string, more ...string) []string {
	out := make([]string, 0, len(tokens)+len(more))
	out = append(out, tokens...)
	out = append(out, more...)
	return out
}
