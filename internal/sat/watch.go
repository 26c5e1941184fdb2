package sat

// watchEntry is one entry of a per-literal watch list: the clause watching
// that literal, plus a blocker literal (another literal of the clause) that
// lets BCP skip loading the clause entirely when the blocker is already
// True.
type watchEntry struct {
	clause  ClauseHandle
	blocker Literal
}

// watch registers c to be woken up when watchLit is assigned True (i.e. when
// its negation becomes False). guard is the blocker stored alongside it.
func (s *Solver) watch(c ClauseHandle, watchLit, guard Literal) {
	s.watches[watchLit] = append(s.watches[watchLit], watchEntry{clause: c, blocker: guard})
}

// unwatch detaches c from watchLit's list. Only used when a clause is
// deleted (by reduceDB or Simplify), which is outside the minimal core's
// required operations but keeps the clause databases bounded the way the
// wider search driver does.
func (s *Solver) unwatch(c ClauseHandle, watchLit Literal) {
	ws := s.watches[watchLit]
	j := 0
	for i := range ws {
		if ws[i].clause != c {
			ws[j] = ws[i]
			j++
		}
	}
	s.watches[watchLit] = ws[:j]
}

// propagate is the BCP engine of §4.4. It drains the propagation queue (the
// trail suffix starting at qhead) and returns the handle of a violated
// clause, or noClause once the queue is empty with no conflict.
func (s *Solver) propagate() ClauseHandle {
	for s.qhead < len(s.trail) {
		p := s.trail[s.qhead]
		s.qhead++
		s.Stats.Propagations++

		falseLit := p.Opposite() // the watched literal that just became False

		ws := s.watches[p]
		s.tmpWatchers = append(s.tmpWatchers[:0], ws...)
		s.watches[p] = s.watches[p][:0]

		for i := 0; i < len(s.tmpWatchers); i++ {
			w := s.tmpWatchers[i]

			if s.value(w.blocker) == True {
				s.watches[p] = append(s.watches[p], w)
				continue
			}

			rec := s.clauses.Get(w.clause)
			if rec.lits[0] == falseLit {
				rec.lits[0], rec.lits[1] = rec.lits[1], rec.lits[0]
			}

			if s.value(rec.lits[0]) == True {
				s.watches[p] = append(s.watches[p], watchEntry{clause: w.clause, blocker: rec.lits[0]})
				continue
			}

			replaced := false
			for k := 2; k < len(rec.lits); k++ {
				if s.value(rec.lits[k]) != False {
					rec.lits[1], rec.lits[k] = rec.lits[k], rec.lits[1]
					s.watch(w.clause, rec.lits[1].Opposite(), rec.lits[0])
					replaced = true
					break
				}
			}
			if replaced {
				continue
			}

			// No replacement: the clause is unit (or violated) with
			// rec.lits[0] as the sole non-false literal.
			if s.value(rec.lits[0]) == False {
				s.watches[p] = append(s.watches[p], w)
				s.watches[p] = append(s.watches[p], s.tmpWatchers[i+1:]...)
				s.qhead = len(s.trail)
				return w.clause
			}

			s.watches[p] = append(s.watches[p], w)
			s.enqueue(rec.lits[0], w.clause)
		}
	}

	return noClause
}
