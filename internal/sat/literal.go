package sat

import "fmt"

// Var identifies a Boolean variable by its dense internal index in [0, n).
type Var int32

// Literal represents a variable paired with a polarity. The encoding keeps
// both polarities of a variable adjacent (lit = 2*var + sign) so that
// negation is a single bit toggle and literals can index arrays directly.
type Literal int32

// PositiveLiteral returns the positive literal of variable v.
func PositiveLiteral(v Var) Literal {
	return Literal(v) * 2
}

// NegativeLiteral returns the negative literal of variable v.
func NegativeLiteral(v Var) Literal {
	return Literal(v)*2 + 1
}

// FromSigned converts a DIMACS-style signed integer (1-based, negative for
// negation) into a Literal over the 0-based internal variable numbering.
// FromSigned panics if given 0; callers must filter clause terminators
// before reaching it.
func FromSigned(x int) Literal {
	if x == 0 {
		panic("sat: literal 0 does not denote a variable")
	}
	if x < 0 {
		return NegativeLiteral(Var(-x - 1))
	}
	return PositiveLiteral(Var(x - 1))
}

// Var returns the ID of the literal's variable.
func (l Literal) Var() Var {
	return Var(l >> 1)
}

// IsPositive returns true if and only if the literal represents the value of
// its Boolean variable (i.e. not its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the complementary literal.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

// Signed renders the literal back into DIMACS 1-based signed form.
func (l Literal) Signed() int {
	n := int(l.Var()) + 1
	if !l.IsPositive() {
		n = -n
	}
	return n
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.Var())
	}
	return fmt.Sprintf("!%d", l.Var())
}
