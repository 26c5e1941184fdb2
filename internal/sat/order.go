package sat

import "github.com/rhartert/yagh"

// varOrder is the VSIDS decision heuristic of §4.6: a binary heap keyed by
// activity (via yagh, which also breaks ties by insertion/variable index)
// with lazy decay through a scaling bumpInc, plus a per-variable saved
// phase used for branching polarity.
type varOrder struct {
	heap *yagh.IntMap[float64]

	activity []float64
	bumpInc  float64
	decay    float64

	phase []LBool
}

func newVarOrder(decay float64) *varOrder {
	return &varOrder{
		heap:    yagh.New[float64](0),
		bumpInc: 1,
		decay:   decay,
	}
}

// addVar registers a freshly declared variable with zero activity and an
// initial phase of False, as mandated by §4.6.
func (vo *varOrder) addVar() {
	v := len(vo.activity)
	vo.activity = append(vo.activity, 0)
	vo.phase = append(vo.phase, False)
	vo.heap.GrowBy(1)
	vo.heap.Put(v, 0)
}

// bump implements VSIDS's bump(v): activity[v] += bumpInc, reheapifying v if
// it is currently a live candidate.
func (vo *varOrder) bump(v Var) {
	i := int(v)
	vo.activity[i] += vo.bumpInc
	if vo.heap.Contains(i) {
		vo.heap.Put(i, -vo.activity[i])
	}
	if vo.activity[i] > 1e100 {
		vo.rescale()
	}
}

// decayActivity implements VSIDS's decay(): bumpInc /= alpha, equivalent to
// scaling every activity by alpha without touching them individually.
func (vo *varOrder) decayActivity() {
	vo.bumpInc /= vo.decay
	if vo.bumpInc > 1e100 {
		vo.rescale()
	}
}

func (vo *varOrder) rescale() {
	vo.bumpInc *= 1e-100
	for i, a := range vo.activity {
		scaled := a * 1e-100
		vo.activity[i] = scaled
		if vo.heap.Contains(i) {
			vo.heap.Put(i, -scaled)
		}
	}
}

// reinsert puts v back among the live candidates after it is unassigned
// (e.g. by cancelUntil), saving last as its branching phase.
func (vo *varOrder) reinsert(v Var, last LBool) {
	i := int(v)
	if last != Unknown {
		vo.phase[i] = last
	}
	vo.heap.Put(i, -vo.activity[i])
}

// pickBranch implements pick_branch(): pop the max-activity unassigned
// variable and return the literal matching its saved phase. ok is false once
// every variable is assigned, meaning the formula is satisfied.
func (s *Solver) pickBranch() (Literal, bool) {
	for {
		item, ok := s.order.heap.Pop()
		if !ok {
			return 0, false
		}
		v := Var(item.Elem)
		if s.assign[v] != Unknown {
			continue // stale heap entry: already assigned
		}
		if s.order.phase[v] == True {
			return PositiveLiteral(v), true
		}
		return NegativeLiteral(v), true
	}
}

func (s *Solver) decayVarActivity() {
	s.order.decayActivity()
}
