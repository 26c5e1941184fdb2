package sat

// ClauseHandle is a stable identifier by which the trail's reason field and
// the watch lists refer to a clause living in the solver's clause arena.
// Handles remain valid for the lifetime of the solver and are never reused:
// a clause removed by reduceDB or Simplify keeps its arena slot, with its
// literals cleared (see noClause below for the "no reason" sentinel).
type ClauseHandle int32

// noClause marks the absence of an antecedent: the literal is a decision or
// a root-level fact, not implied by propagation.
const noClause ClauseHandle = -1

// clauseRecord is one entry of the clause arena. Clauses live contiguously
// in clauseDB.clauses and are addressed by their index (the ClauseHandle),
// which avoids a pointer graph between clauses, watch lists, and reasons.
type clauseRecord struct {
	lits []Literal

	learnt   bool
	activity float64

	// deleted marks a clause removed by reduceDB (learnt clauses) or by
	// Simplify (original or learnt clauses). Its watches have already been
	// detached; the slot is never reused, as the arena is not compacted.
	deleted bool
}

// clauseDB is the arena backing both original and learnt clauses.
type clauseDB struct {
	clauses []clauseRecord
}

func (db *clauseDB) alloc(lits []Literal, learnt bool) ClauseHandle {
	h := ClauseHandle(len(db.clauses))
	db.clauses = append(db.clauses, clauseRecord{
		lits:   append([]Literal(nil), lits...),
		learnt: learnt,
	})
	return h
}

// Get returns the mutable clause record for h. BCP relies on being able to
// reorder a clause's literals (to maintain the two-watched-literal slots) in
// place.
func (db *clauseDB) Get(h ClauseHandle) *clauseRecord {
	return &db.clauses[h]
}

// Lits returns the literals of h for read-only access (conflict analysis,
// model verification, printing).
func (db *clauseDB) Lits(h ClauseHandle) []Literal {
	return db.clauses[h].lits
}

// addOriginal implements clause database §4.3's add_original: it removes
// duplicate literals, discards the clause if it is a tautology, and handles
// the empty/unit special cases before falling back to allocating a genuine
// (>=2 literal) clause with slots 0 and 1 watched.
//
// The returned handle is noClause whenever no searchable clause was stored
// (unit, tautology, or a clause already satisfied at the root level); ok is
// false only when adding the clause makes the formula unconditionally UNSAT.
func (s *Solver) addOriginal(lits []Literal) (ClauseHandle, bool) {
	n := len(lits)
	s.seenLit.Clear()

	for i := n - 1; i >= 0; i-- {
		l := lits[i]

		if s.seenLit.Contains(int(l.Opposite())) {
			return noClause, true // tautology: some variable appears both ways
		}
		if s.seenLit.Contains(int(l)) {
			n--
			lits[i], lits[n] = lits[n], lits[i]
			continue
		}
		s.seenLit.Add(int(l))

		switch s.value(l) {
		case True:
			return noClause, true // already satisfied at the root level
		case False:
			n--
			lits[i], lits[n] = lits[n], lits[i]
		}
	}
	lits = lits[:n]

	switch len(lits) {
	case 0:
		return noClause, false
	case 1:
		return noClause, s.enqueue(lits[0], noClause)
	default:
		h := s.clauses.alloc(lits, false)
		rec := s.clauses.Get(h)
		s.watch(h, rec.lits[0].Opposite(), rec.lits[1])
		s.watch(h, rec.lits[1].Opposite(), rec.lits[0])
		s.constraints = append(s.constraints, h)
		return h, true
	}
}

// addLearned implements §4.3's add_learned: the asserting literal occupies
// slot 0, and the remaining literal with the highest decision level (the
// backjump witness) is swapped into slot 1 so that, once the driver backjumps
// to that level, the clause is unit with slot 0 as the sole non-false
// literal.
func (s *Solver) addLearned(lits []Literal) ClauseHandle {
	if len(lits) == 1 {
		return noClause
	}

	maxLevel, at := -1, 1
	for i := 1; i < len(lits); i++ {
		if lv := int(s.level[lits[i].Var()]); lv > maxLevel {
			maxLevel = lv
			at = i
		}
	}
	lits[1], lits[at] = lits[at], lits[1]

	h := s.clauses.alloc(lits, true)
	rec := s.clauses.Get(h)
	s.watch(h, rec.lits[0].Opposite(), rec.lits[1])
	s.watch(h, rec.lits[1].Opposite(), rec.lits[0])
	s.learnts = append(s.learnts, h)
	return h
}

// locked reports whether c is the reason some variable was propagated, which
// makes it unsafe for reduceDB to remove.
func (db *clauseDB) locked(s *Solver, h ClauseHandle) bool {
	rec := db.Get(h)
	r := s.reason[rec.lits[0].Var()]
	return r == h
}
