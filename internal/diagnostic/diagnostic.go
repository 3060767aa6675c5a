package diagnostic

import (
	"fmt"
	"strings"

	"github.com/stvalidate/stvalidate/internal/source"
)

// Diagnostic is a single structured rule violation. message_args are kept as
// a slice of pre-formatted strings rather than interface{} so Diagnostic
// stays trivially comparable in tests (go-snaps snapshots it by value).
type Diagnostic struct {
	Kind    Kind
	Primary source.Range
	Args    []string
}

// Message renders the diagnostic's English text. Rendering is otherwise the
// display layer's job (out of scope) but a default message keeps the CLI
// demo and test failures readable without a separate renderer package.
func (d Diagnostic) Message() string {
	a := d.Args
	get := func(i int) string {
		if i < len(a) {
			return a[i]
		}
		return ""
	}
	switch d.Kind {
	case UnresolvedReference:
		return fmt.Sprintf("Could not resolve reference to %s", get(0))
	case IllegalAccess:
		return fmt.Sprintf("Illegal access to private member %s", get(0))
	case ReferenceExpected:
		return "Reference expected"
	case CannotAssignToConstant:
		return fmt.Sprintf("Cannot assign to CONSTANT %s", get(0))
	case InvalidAssignment:
		return fmt.Sprintf("Invalid assignment: cannot assign %s to %s", get(0), get(1))
	case IncompatibleTypeSize:
		return fmt.Sprintf("The type %s (%s bits) is too small to %s pointer", get(0), get(1), get(2))
	case ImplicitDowncast:
		return fmt.Sprintf("Implicit downcast from %s to %s", get(1), get(0))
	case InvalidOperation:
		return get(0)
	case InvalidArgumentType:
		return fmt.Sprintf("Expected a reference for parameter %s (%s)", get(0), get(1))
	case InvalidParameterType:
		return "Cannot mix implicit and explicit call parameters"
	case MissingInoutParameter:
		return fmt.Sprintf("Missing inout parameter %s", get(0))
	case LiteralExpected:
		return "Literal or reference expected after type prefix"
	case LiteralOutOfRange:
		return fmt.Sprintf("Literal %s is out of range for type %s", get(0), get(1))
	case IncompatibleLiteralCast:
		return fmt.Sprintf("Literal %s is not compatible with type %s", get(1), get(0))
	case IncompatibleDirectAccess:
		return fmt.Sprintf("Invalid direct access %s (%s bits)", get(0), get(1))
	case IncompatibleDirectAccessRange:
		return fmt.Sprintf("Direct access %s out of range %s for type %s", get(0), get(2), get(1))
	case IncompatibleDirectAccessVariable:
		return fmt.Sprintf("Direct access index must be an integer, got %s", get(0))
	case IncompatibleArrayAccessVariable:
		return fmt.Sprintf("Cannot index into non-array type %s", get(0))
	case IncompatibleArrayAccessType:
		return fmt.Sprintf("Array index must be an integer, got %s", get(0))
	case IncompatibleArrayAccessRange:
		return fmt.Sprintf("Array index out of range %s", get(0))
	case MissingCompareFunction:
		return fmt.Sprintf("Missing compare function %s for type %s", get(0), get(1))
	case InvalidCaseCondition:
		return "Invalid case condition"
	case NonConstantCaseCondition:
		return fmt.Sprintf("Case condition is not constant: %s", get(0))
	case DuplicateCaseCondition:
		return fmt.Sprintf("Duplicate case condition %s", get(0))
	case CaseConditionOutsideCaseStatement:
		return "CASE condition used outside of a CASE statement"
	case UnresolvedGenericType:
		return fmt.Sprintf("Could not resolve generic type %s (%s)", get(0), get(1))
	case InvalidTypeNature:
		return fmt.Sprintf("Type %s does not satisfy nature %s", get(0), get(1))
	case SyntaxError:
		return get(0)
	default:
		return string(d.Kind)
	}
}

// Format renders the diagnostic as a `file:line:col` header followed by the
// message, with the source line and a caret when source text is supplied.
func (d Diagnostic) Format(color bool, source_ string, file string) string {
	var sb strings.Builder
	line, col, sourceLine := locate(source_, d.Primary.Start)

	if file != "" {
		if line > 0 {
			sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", file, line, col))
		} else {
			sb.WriteString(fmt.Sprintf("Error in %s (offset %d:%d)\n", file, d.Primary.Start, d.Primary.End))
		}
	} else {
		if line > 0 {
			sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", line, col))
		} else {
			sb.WriteString(fmt.Sprintf("Error at offset %d:%d\n", d.Primary.Start, d.Primary.End))
		}
	}

	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message())
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

// locate resolves a byte offset into source_ to a 1-indexed (line, column)
// pair and the text of that line, mirroring the teacher's getSourceLine
// except keyed by byte offset rather than a lexer-supplied line number --
// this package has no lexer and only ever sees offsets (source.Range).
// Returns line 0 when source_ is empty or offset is out of range, which
// Format treats as "no source context available".
func locate(source_ string, offset int) (line, col int, sourceLine string) {
	if source_ == "" || offset < 0 || offset > len(source_) {
		return 0, 0, ""
	}
	head := source_[:offset]
	line = 1 + strings.Count(head, "\n")
	col = offset - strings.LastIndex(head, "\n")

	lines := strings.Split(source_, "\n")
	if line-1 < len(lines) {
		sourceLine = lines[line-1]
	}
	return line, col, sourceLine
}
