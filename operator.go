package filterdsl

import "strings"

// Marker is the reserved prefix that distinguishes an operator key from a
// field name in a raw filter expression.
const Marker = "$"

// Operator identifies a filter comparison operator.
type Operator string

const (
	// OpEq matches documents where the field equals the value exactly.
	OpEq Operator = "eq"
	// OpNe excludes documents where the field equals the value exactly.
	OpNe Operator = "ne"
	// OpIn matches documents where the field equals any of the listed values.
	OpIn Operator = "in"
	// OpNin excludes documents where the field equals any of the listed values.
	OpNin Operator = "nin"
	// OpGt matches documents where the field is strictly greater than the value.
	OpGt Operator = "gt"
	// OpGte matches documents where the field is greater than or equal to the value.
	OpGte Operator = "gte"
	// OpLt matches documents where the field is strictly less than the value.
	OpLt Operator = "lt"
	// OpLte matches documents where the field is less than or equal to the value.
	OpLte Operator = "lte"
)

// operatorOrder fixes the clause emission order across translate calls. Range
// operators come last so merged range clauses land after term clauses.
var operatorOrder = [...]Operator{OpEq, OpNe, OpIn, OpNin, OpGt, OpGte, OpLt, OpLte}

// IsValid reports whether o is one of the eight recognized operators.
func (o Operator) IsValid() bool {
	switch o {
	case OpEq, OpNe, OpIn, OpNin, OpGt, OpGte, OpLt, OpLte:
		return true
	default:
		return false
	}
}

// IsRange reports whether o contributes to a range clause.
func (o Operator) IsRange() bool {
	switch o {
	case OpGt, OpGte, OpLt, OpLte:
		return true
	default:
		return false
	}
}

func (o Operator) String() string { return string(o) }

// splitKey classifies a raw expression key. Keys carrying the marker name an
// operator; bare keys are equality shorthand for the named field.
func splitKey(key string) (op Operator, field string, isOp bool) {
	if strings.HasPrefix(key, Marker) {
		return Operator(strings.TrimPrefix(key, Marker)), "", true
	}
	return OpEq, key, false
}
