package sat

import (
	"math/rand"
	"testing"
)

func lits(xs ...int) []int { return xs }

func mustAdd(t *testing.T, s *Solver, clause []int) {
	t.Helper()
	if _, err := s.AddClauseInts(clause); err != nil {
		t.Fatalf("AddClauseInts(%v) returned error: %v", clause, err)
	}
}

func TestSolveEmptyFormula(t *testing.T) {
	s := New(0)
	if got := s.Solve(); got != Satisfiable {
		t.Fatalf("Solve() on the empty formula = %v, want Satisfiable", got)
	}
	if len(s.Models) != 1 || len(s.Models[0]) != 0 {
		t.Fatalf("expected a single empty model, got %v", s.Models)
	}
}

func TestSolveSimpleForcedModel(t *testing.T) {
	// n=2, {(1,-2), (-1,2), (1)} forces x1=true, which in turn forces x2=true.
	s := New(2)
	mustAdd(t, s, lits(1, -2))
	mustAdd(t, s, lits(-1, 2))
	mustAdd(t, s, lits(1))

	if got := s.Solve(); got != Satisfiable {
		t.Fatalf("Solve() = %v, want Satisfiable", got)
	}
	model := s.Models[len(s.Models)-1]
	if !model[0] || !model[1] {
		t.Errorf("model = %v, want [true true]", model)
	}
}

func TestSolveUnitConflict(t *testing.T) {
	s := New(1)
	mustAdd(t, s, lits(1))
	mustAdd(t, s, lits(-1))

	if got := s.Solve(); got != Unsatisfiable {
		t.Fatalf("Solve() = %v, want Unsatisfiable", got)
	}
}

func TestSolveEquivalenceChainIsUnsat(t *testing.T) {
	// x1 <-> x2 <-> x3, plus "not all false" and "not all true": since the
	// three variables are forced equal, one of those two clauses must fail.
	s := New(3)
	mustAdd(t, s, lits(1, 2, 3))
	mustAdd(t, s, lits(-1, -2, -3))
	mustAdd(t, s, lits(1, -2))
	mustAdd(t, s, lits(-1, 2))
	mustAdd(t, s, lits(2, -3))
	mustAdd(t, s, lits(-2, 3))

	if got := s.Solve(); got != Unsatisfiable {
		t.Fatalf("Solve() = %v, want Unsatisfiable", got)
	}
}

// pigeonholeClauses returns the standard encoding of "p pigeons into h
// holes", which is unsatisfiable whenever p > h.
func pigeonholeClauses(p, h int) (nVars int, clauses [][]int) {
	v := func(pigeon, hole int) int { return pigeon*h + hole + 1 }
	nVars = p * h

	for i := 0; i < p; i++ {
		c := make([]int, h)
		for j := 0; j < h; j++ {
			c[j] = v(i, j)
		}
		clauses = append(clauses, c)
	}
	for j := 0; j < h; j++ {
		for i := 0; i < p; i++ {
			for k := i + 1; k < p; k++ {
				clauses = append(clauses, []int{-v(i, j), -v(k, j)})
			}
		}
	}
	return nVars, clauses
}

func TestSolvePigeonhole(t *testing.T) {
	nVars, clauses := pigeonholeClauses(3, 2)
	s := New(nVars)
	for _, c := range clauses {
		mustAdd(t, s, c)
	}

	if got := s.Solve(); got != Unsatisfiable {
		t.Fatalf("Solve() on pigeonhole(3,2) = %v, want Unsatisfiable", got)
	}
}

func TestSolveIdempotentClauseAddition(t *testing.T) {
	run := func() Status {
		s := New(3)
		mustAdd(t, s, lits(1, 2, 3))
		mustAdd(t, s, lits(-1, -2))
		mustAdd(t, s, lits(-2, -3))
		return s.Solve()
	}
	first := run()

	s := New(3)
	clause := lits(1, 2, 3)
	mustAdd(t, s, clause)
	mustAdd(t, s, clause) // same clause twice
	mustAdd(t, s, lits(-1, -2))
	mustAdd(t, s, lits(-2, -3))

	if got := s.Solve(); got != first {
		t.Errorf("re-adding a clause changed the outcome: got %v, want %v", got, first)
	}
}

func TestCancelUntilZeroIsIdempotent(t *testing.T) {
	s := New(3)
	s.newDecisionLevel()
	s.enqueue(PositiveLiteral(0), noClause)
	s.newDecisionLevel()
	s.enqueue(PositiveLiteral(1), noClause)

	s.cancelUntil(0)
	if s.decisionLevel() != 0 {
		t.Fatalf("decisionLevel() = %d after cancelUntil(0), want 0", s.decisionLevel())
	}
	for v := Var(0); v < 3; v++ {
		if s.VarValue(v) != Unknown {
			t.Errorf("VarValue(%d) = %v after cancelUntil(0), want Unknown", v, s.VarValue(v))
		}
	}

	s.cancelUntil(0) // calling it again must be a no-op
	if s.decisionLevel() != 0 || len(s.trail) != 0 {
		t.Errorf("second cancelUntil(0) changed state: level=%d trail=%v", s.decisionLevel(), s.trail)
	}
}

// satisfies reports whether model (1-based, model[v-1] for variable v)
// satisfies every clause in cnf (DIMACS signed-int form).
func satisfies(model []bool, cnf [][]int) bool {
	for _, clause := range cnf {
		ok := false
		for _, lit := range clause {
			v := lit
			if v < 0 {
				v = -v
			}
			val := model[v-1]
			if lit < 0 {
				val = !val
			}
			if val {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// bruteForceSat exhaustively checks satisfiability for small instances, used
// to cross-check the solver's UNSAT/SAT verdicts without any external
// reference solver.
func bruteForceSat(nVars int, cnf [][]int) bool {
	for assignment := 0; assignment < 1<<uint(nVars); assignment++ {
		model := make([]bool, nVars)
		for v := 0; v < nVars; v++ {
			model[v] = assignment&(1<<uint(v)) != 0
		}
		if satisfies(model, cnf) {
			return true
		}
	}
	return false
}

// randomCNF generates a random k-SAT instance over nVars variables with the
// given clause count, deterministically seeded for test reproducibility.
func randomCNF(rng *rand.Rand, nVars, nClauses, k int) [][]int {
	cnf := make([][]int, nClauses)
	for i := range cnf {
		clause := make([]int, k)
		for j := range clause {
			v := rng.Intn(nVars) + 1
			if rng.Intn(2) == 0 {
				v = -v
			}
			clause[j] = v
		}
		cnf[i] = clause
	}
	return cnf
}

// TestSolveRandomInstancesAgainstBruteForce is the soundness/completeness
// check of testable properties 5 and 6: every SAT verdict's model is checked
// against the input clauses directly, and every verdict (SAT or UNSAT) is
// cross-checked against an exhaustive search over the small variable space.
func TestSolveRandomInstancesAgainstBruteForce(t *testing.T) {
	const nVars = 12
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 40; trial++ {
		cnf := randomCNF(rng, nVars, 50, 3)

		s := New(nVars)
		for _, c := range cnf {
			mustAdd(t, s, c)
		}
		got := s.Solve()

		want := bruteForceSat(nVars, cnf)
		switch got {
		case Satisfiable:
			if !want {
				t.Fatalf("trial %d: solver said SAT but brute force found no model; cnf=%v", trial, cnf)
			}
			model := s.Models[len(s.Models)-1]
			if !satisfies(model, cnf) {
				t.Fatalf("trial %d: model %v does not satisfy cnf %v", trial, model, cnf)
			}
		case Unsatisfiable:
			if want {
				t.Fatalf("trial %d: solver said UNSAT but brute force found a model; cnf=%v", trial, cnf)
			}
		}
	}
}

func TestSolveAllModelsOfSmallInstance(t *testing.T) {
	// x1 XOR x2 has exactly two models: (T,F) and (F,T).
	s := New(2)
	mustAdd(t, s, lits(1, 2))
	mustAdd(t, s, lits(-1, -2))

	var models [][]bool
	for s.Solve() == Satisfiable {
		model := s.Models[len(s.Models)-1]
		blocking := make([]int, len(model))
		for i, b := range model {
			if b {
				blocking[i] = -(i + 1)
			} else {
				blocking[i] = i + 1
			}
		}
		models = append(models, append([]bool(nil), model...))
		mustAdd(t, s, blocking)
	}

	if len(models) != 2 {
		t.Fatalf("found %d models, want 2: %v", len(models), models)
	}
}
