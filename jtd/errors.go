package jtd

import (
	"errors"
	"fmt"

	"github.com/kaptinlin/go-i18n"

	"github.com/kaptinlin/jtdpath/internal/messages"
)

// Sentinel errors identifying each well-formedness rule a CompileError
// can report. Compare against these with errors.Is, never by matching
// on CompileError.Error()'s text.
var (
	ErrRootNotObject                = errors.New("jtd: schema must be a JSON object")
	ErrUnknownKey                   = errors.New("jtd: unknown schema keyword")
	ErrMultipleForms                = errors.New("jtd: schema node mixes incompatible form keywords")
	ErrDefinitionsRootOnly          = errors.New("jtd: definitions may only appear at the schema root")
	ErrNullableType                 = errors.New("jtd: nullable must be a boolean")
	ErrRefType                      = errors.New("jtd: ref must name a string")
	ErrRefUnresolved                = errors.New("jtd: ref does not resolve to a definition")
	ErrPureRefCycle                 = errors.New("jtd: ref chain never reaches a concrete form")
	ErrInvalidType                  = errors.New("jtd: unsupported type keyword")
	ErrEnumEmpty                    = errors.New("jtd: enum must be a non-empty array of strings")
	ErrEnumDuplicate                = errors.New("jtd: enum values must be unique")
	ErrEnumElementType              = errors.New("jtd: enum values must be strings")
	ErrPropertiesNotObject          = errors.New("jtd: properties/optionalProperties must be objects")
	ErrPropertiesOverlap            = errors.New("jtd: properties and optionalProperties share a key")
	ErrAdditionalPropertiesType     = errors.New("jtd: additionalProperties must be a boolean")
	ErrDiscriminatorTagType         = errors.New("jtd: discriminator must name a string tag")
	ErrDiscriminatorMappingMissing  = errors.New("jtd: discriminator requires a mapping object")
	ErrDiscriminatorMappingType     = errors.New("jtd: mapping must be an object")
	ErrDiscriminatorVariantForm     = errors.New("jtd: discriminator mapping values must be properties schemas")
	ErrDiscriminatorVariantNullable = errors.New("jtd: discriminator mapping values must not be nullable")
	ErrDiscriminatorTagConflict     = errors.New("jtd: discriminator tag must not also be a property key")
)

var errCodes = map[error]string{
	ErrRootNotObject:                "jtd.root_not_object",
	ErrUnknownKey:                   "jtd.unknown_key",
	ErrMultipleForms:                "jtd.multiple_forms",
	ErrDefinitionsRootOnly:          "jtd.definitions_root_only",
	ErrNullableType:                 "jtd.nullable_type",
	ErrRefType:                      "jtd.ref_type",
	ErrRefUnresolved:                "jtd.ref_unresolved",
	ErrPureRefCycle:                 "jtd.pure_ref_cycle",
	ErrInvalidType:                  "jtd.invalid_type",
	ErrEnumEmpty:                    "jtd.enum_empty",
	ErrEnumDuplicate:                "jtd.enum_duplicate",
	ErrEnumElementType:              "jtd.enum_element_type",
	ErrPropertiesNotObject:          "jtd.properties_not_object",
	ErrPropertiesOverlap:            "jtd.properties_overlap",
	ErrAdditionalPropertiesType:     "jtd.additional_properties_type",
	ErrDiscriminatorTagType:         "jtd.discriminator_tag_type",
	ErrDiscriminatorMappingMissing:  "jtd.discriminator_mapping_missing",
	ErrDiscriminatorMappingType:     "jtd.discriminator_mapping_type",
	ErrDiscriminatorVariantForm:     "jtd.discriminator_variant_form",
	ErrDiscriminatorVariantNullable: "jtd.discriminator_variant_nullable",
	ErrDiscriminatorTagConflict:     "jtd.discriminator_tag_conflict",
}

// CompileError reports a single violated well-formedness rule, naming
// the offending key or token. The compiler never returns a partial AST:
// the first CompileError encountered is terminal.
type CompileError struct {
	Rule error
	Key  string
}

func compileErr(rule error, key string) *CompileError {
	return &CompileError{Rule: rule, Key: key}
}

func (e *CompileError) Error() string {
	code, ok := errCodes[e.Rule]
	if !ok {
		if e.Key == "" {
			return e.Rule.Error()
		}
		return fmt.Sprintf("%s: %q", e.Rule.Error(), e.Key)
	}
	return messages.Localize(nil, code, e.Rule.Error()+": {key}", map[string]any{"key": e.Key})
}

func (e *CompileError) Unwrap() error { return e.Rule }

// Localize renders the error using the provided localizer, falling
// back to Error() when localizer is nil.
func (e *CompileError) Localize(localizer *i18n.Localizer) string {
	code, ok := errCodes[e.Rule]
	if !ok {
		return e.Error()
	}
	return messages.Localize(localizer, code, e.Rule.Error()+": {key}", map[string]any{"key": e.Key})
}
