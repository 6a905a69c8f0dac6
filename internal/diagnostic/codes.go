package diagnostic

// Codes emitted while loading and validating specifications.
const (
	CodeParseError       = "parse_error"
	CodeUnknownKey       = "unknown_key"
	CodeMissingField     = "missing_field"
	CodeInvalidType      = "invalid_type"
	CodeInvalidRange     = "invalid_range"
	CodeInvalidValue     = "invalid_value"
	CodeUnknownTrait     = "unknown_trait"
	CodeUnknownKind      = "unknown_collection"
	CodeUnionTarget      = "union_target"
	CodeDuplicateType    = "duplicate_type"
	CodeDuplicateTarget  = "duplicate_target"
	CodeDuplicateKind    = "duplicate_collection"
	CodeNoShapes         = "no_shapes"
	CodeUnsupportedVer   = "unsupported_version"
	CodeGenerationFailed = "generation_failed"
	CodeDefaultArity     = "default_arity"
)
