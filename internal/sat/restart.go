package sat

// luby generates the Luby restart sequence 1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1,
// 1, 2, 4, 8, ... one term at a time.
type luby struct {
	exp   uint
	turns uint64
}

func (l *luby) next() uint64 {
	res := uint64(1) << l.exp
	if res&l.turns == 0 {
		l.exp = 0
		l.turns++
	} else {
		l.exp++
	}
	return res
}

// restartPolicy implements §4.7: a Luby-sequence generator scaled by a base
// conflict budget, tracking conflicts observed since the last restart.
type restartPolicy struct {
	base      uint64
	gen       luby
	budget    uint64
	conflicts uint64
}

func newRestartPolicy(base uint64) *restartPolicy {
	rp := &restartPolicy{base: base}
	rp.budget = rp.base * rp.gen.next()
	return rp
}

func (rp *restartPolicy) registerConflict() {
	rp.conflicts++
}

// due reports whether the conflict budget for the current Luby term has been
// exceeded.
func (rp *restartPolicy) due() bool {
	return rp.conflicts > rp.budget
}

// advance moves to the next Luby term and resets the conflict counter. Must
// be called whenever due triggers a restart.
func (rp *restartPolicy) advance() {
	rp.conflicts = 0
	rp.budget = rp.base * rp.gen.next()
}
