package source

// Operand is one side of a binary expression. Compound is set when the
// operand is itself a binary expression.
type Operand struct {
	Range

	Compound bool
}

// IsOperatorSelected reports whether sel targets the operator between left
// and right. That holds when sel sits between the operands without touching
// either, or when sel spans exactly from left's start to right's end and
// neither operand is compound.
func IsOperatorSelected(left, right Operand, sel Range) bool {
	if left.End() <= sel.Offset && sel.End() <= right.Offset {
		return true
	}

	if sel.Offset == left.Offset && sel.End() == right.End() {
		return !left.Compound && !right.Compound
	}

	return false
}
