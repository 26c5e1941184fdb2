package sat

// Simplify removes clauses already satisfied by the root-level assignment
// from both the original and learnt databases. It is a housekeeping
// extension beyond the minimal core (clauses never need to be touched again
// for correctness), run by the search driver whenever it returns to decision
// level 0.
func (s *Solver) Simplify() {
	if s.decisionLevel() != 0 {
		invariantViolation("Simplify called at decision level %d", s.decisionLevel())
	}
	s.simplifySet(&s.constraints)
	s.simplifySet(&s.learnts)
}

func (s *Solver) simplifySet(handles *[]ClauseHandle) {
	hs := *handles
	kept := hs[:0]
	for _, h := range hs {
		rec := s.clauses.Get(h)
		if s.clauseSatisfied(rec) {
			s.deleteClause(h)
			continue
		}
		kept = append(kept, h)
	}
	*handles = kept
}

func (s *Solver) clauseSatisfied(rec *clauseRecord) bool {
	for _, l := range rec.lits {
		if s.value(l) == True {
			return true
		}
	}
	return false
}
