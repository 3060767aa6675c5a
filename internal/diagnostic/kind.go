// Package diagnostic implements the append-only sink and the structured
// diagnostic kinds the validator emits. No diagnostic kind is
// fatal at this layer; the driver (out of scope) decides whether any
// non-warning diagnostic blocks codegen.
package diagnostic

// Kind classifies a diagnostic.
type Kind string

const (
	UnresolvedReference              Kind = "unresolved_reference"
	IllegalAccess                     Kind = "illegal_access"
	ReferenceExpected                 Kind = "reference_expected"
	CannotAssignToConstant            Kind = "cannot_assign_to_constant"
	InvalidAssignment                 Kind = "invalid_assignment"
	IncompatibleTypeSize               Kind = "incompatible_type_size"
	ImplicitDowncast                   Kind = "implicit_downcast"
	InvalidOperation                   Kind = "invalid_operation"
	InvalidArgumentType                Kind = "invalid_argument_type"
	InvalidParameterType               Kind = "invalid_parameter_type"
	MissingInoutParameter              Kind = "missing_inout_parameter"
	LiteralExpected                    Kind = "literal_expected"
	LiteralOutOfRange                  Kind = "literal_out_of_range"
	IncompatibleLiteralCast            Kind = "incompatible_literal_cast"
	IncompatibleDirectAccess           Kind = "incompatible_directaccess"
	IncompatibleDirectAccessRange      Kind = "incompatible_directaccess_range"
	IncompatibleDirectAccessVariable   Kind = "incompatible_directaccess_variable"
	IncompatibleArrayAccessVariable    Kind = "incompatible_array_access_variable"
	IncompatibleArrayAccessType        Kind = "incompatible_array_access_type"
	IncompatibleArrayAccessRange       Kind = "incompatible_array_access_range"
	MissingCompareFunction             Kind = "missing_compare_function"
	InvalidCaseCondition                Kind = "invalid_case_condition"
	NonConstantCaseCondition            Kind = "non_constant_case_condition"
	DuplicateCaseCondition               Kind = "duplicate_case_condition"
	CaseConditionOutsideCaseStatement    Kind = "case_condition_used_outside_case_statement"
	UnresolvedGenericType                Kind = "unresolved_generic_type"
	InvalidTypeNature                    Kind = "invalid_type_nature"
	SyntaxError                          Kind = "syntax_error"
)
