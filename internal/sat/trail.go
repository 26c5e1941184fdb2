package sat

// value returns the current lifted value of a literal, derived from the
// per-variable value array (§3: value[v] is the only stored polarity; a
// literal's value follows from whether it agrees with the variable's
// assigned polarity).
func (s *Solver) value(l Literal) LBool {
	v := s.assign[l.Var()]
	if v == Unknown {
		return Unknown
	}
	if l.IsPositive() {
		return v
	}
	return v.Opposite()
}

// decisionLevel returns the number of non-root decision levels currently
// open.
func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// newDecisionLevel records the current trail length as the start of the next
// decision level.
func (s *Solver) newDecisionLevel() {
	s.trailLim = append(s.trailLim, len(s.trail))
}

// enqueue implements §4.2's enqueue(l, reason). It assumes value(l) != False;
// callers (BCP, clause installation, decisions) are responsible for having
// ruled that out, or for treating a false return as the conflict signal.
func (s *Solver) enqueue(l Literal, reason ClauseHandle) bool {
	switch s.value(l) {
	case False:
		return false // conflicting assignment
	case True:
		return true // already assigned, nothing to do
	default:
		v := l.Var()
		if l.IsPositive() {
			s.assign[v] = True
		} else {
			s.assign[v] = False
		}
		s.level[v] = int32(s.decisionLevel())
		s.reason[v] = reason
		s.trail = append(s.trail, l)
		return true
	}
}

// cancelUntil implements §4.2's cancel_until(d): pop every trail entry whose
// level exceeds d, reset it to Undef, and reinsert its variable into the
// VSIDS order with its last polarity saved as the phase. Fails fast if asked
// to cancel to a level above the current one.
func (s *Solver) cancelUntil(d int) {
	if d > s.decisionLevel() {
		invariantViolation("cancelUntil(%d) called above current level %d", d, s.decisionLevel())
	}
	for s.decisionLevel() > d {
		start := s.trailLim[len(s.trailLim)-1]
		for i := len(s.trail) - 1; i >= start; i-- {
			v := s.trail[i].Var()
			last := s.assign[v]
			s.assign[v] = Unknown
			s.reason[v] = noClause
			s.level[v] = -1
			s.order.reinsert(v, last)
		}
		s.trail = s.trail[:start]
		s.trailLim = s.trailLim[:len(s.trailLim)-1]
	}
	s.qhead = len(s.trail)
}
