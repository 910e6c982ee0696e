package lexer

// Precedence is the binding strength of a binary or ternary operator.
// Higher binds tighter.
//
// From lowest to highest:
//
//	assignment  = += -= *= /= %= &= |= ^= <<= >>= >>>=
//	conditional ?:
//	logical or  ||
//	logical and &&
//	bitwise or  |
//	bitwise xor ^
//	bitwise and &
//	equality    == !=
//	relational  < <= > >=
//	shift       << >> >>>
//	additive    + -
//	multiplicative * / %
//	unary       ! ~ ++ --
type Precedence int

const (
	PrecNone Precedence = iota
	PrecAssignment
	PrecConditional
	PrecLogicalOr
	PrecLogicalAnd
	PrecBitOr
	PrecBitXor
	PrecBitAnd
	PrecEquality
	PrecRelational
	PrecShift
	PrecAdditive
	PrecMultiplicative
	PrecUnary
)

// Precedence returns the level the operator binds at. Operators that are
// only ever prefix or postfix report PrecUnary; ':' belongs to '?' and
// reports PrecNone.
func (op Operator) Precedence() Precedence {
	switch op {
	case OpAssignment,
		OpAddAssignment,
		OpSubtractAssignment,
		OpMultiplyAssignment,
		OpDivideAssignment,
		OpModuloAssignment,
		OpAndAssignment,
		OpOrAssignment,
		OpXorAssignment,
		OpLeftShiftAssignment,
		OpRightShiftAssignment,
		OpUnsignedRightShiftAssignment:
		return PrecAssignment
	case OpQuestionMark:
		return PrecConditional
	case OpLogicalOr:
		return PrecLogicalOr
	case OpLogicalAnd:
		return PrecLogicalAnd
	case OpOr:
		return PrecBitOr
	case OpXor:
		return PrecBitXor
	case OpAnd:
		return PrecBitAnd
	case OpEqual, OpNotEqual:
		return PrecEquality
	case OpLess, OpLessOrEqual, OpGreater, OpGreaterOrEqual:
		return PrecRelational
	case OpLeftShift, OpRightShift, OpUnsignedRightShift:
		return PrecShift
	case OpAdd, OpSubtract:
		return PrecAdditive
	case OpMultiply, OpDivide, OpModulo:
		return PrecMultiplicative
	case OpNot, OpBitwiseNeg, OpIncrement, OpDecrement:
		return PrecUnary
	default:
		return PrecNone
	}
}

// IsAssignment reports whether the operator stores into its left operand.
func (op Operator) IsAssignment() bool {
	return op.Precedence() == PrecAssignment
}

// IsRightAssociative reports whether a chain of the operator groups to the
// right, as in a = b = c.
func (op Operator) IsRightAssociative() bool {
	p := op.Precedence()
	return p == PrecAssignment || p == PrecConditional
}
