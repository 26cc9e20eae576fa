package order

import (
	"sync"

	"github.com/zetaprover/zeta/core/symbol"
	"github.com/zetaprover/zeta/core/term"
)

// KBO is a Knuth-Bendix ordering: weight first, precedence and
// argument comparison to break weight ties, with the mandatory
// variable-occurrence side condition (SPEC_FULL.md §4.F).
type KBO struct {
	prec      *Precedence
	varWeight int

	mu      sync.RWMutex
	weights map[symbol.Tag]int
}

// NewKBO returns a KBO ordering over prec, with every symbol defaulting
// to weight 1 and every variable weighing 1.
func NewKBO(prec *Precedence) *KBO {
	return &KBO{prec: prec, varWeight: 1, weights: make(map[symbol.Tag]int)}
}

// SetWeight overrides sym's weight (default 1).
func (k *KBO) SetWeight(sym *symbol.Symbol, w int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.weights[sym.Tag()] = w
}

func (k *KBO) weightOf(sym *symbol.Symbol) int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if w, ok := k.weights[sym.Tag()]; ok {
		return w
	}
	return 1
}

// Compare implements the standard KBO decision procedure: weight
// dominance gated by the variable-occurrence condition, falling back
// to precedence and then recursive argument comparison on a tie.
func (k *KBO) Compare(s, t *term.Term) Cmp {
	if s == t {
		return Equal
	}
	ws, varsS := k.weigh(s)
	wt, varsT := k.weigh(t)
	sSupT := multisetGE(varsS, varsT)
	tSupS := multisetGE(varsT, varsS)

	switch {
	case ws > wt:
		if sSupT {
			return Greater
		}
		return Incomparable
	case wt > ws:
		if tSupS {
			return Less
		}
		return Incomparable
	default:
		if !sSupT || !tSupS {
			return Incomparable
		}
		return k.tieBreak(s, t)
	}
}

func (k *KBO) tieBreak(s, t *term.Term) Cmp {
	sVar := s.Shape() == term.FreeVar || s.Shape() == term.BoundVar
	tVar := t.Shape() == term.FreeVar || t.Shape() == term.BoundVar
	if sVar && tVar {
		return Equal
	}
	if sVar != tVar {
		return Incomparable
	}
	headS := headSymbol(s)
	headT := headSymbol(t)
	if headS == nil || headT == nil {
		return Incomparable
	}
	switch k.prec.Compare(headS, headT) {
	case Greater:
		return Greater
	case Less:
		return Less
	case Equal:
		return k.compareArgs(s, t, headS)
	default:
		return Incomparable
	}
}

func (k *KBO) compareArgs(s, t *term.Term, head *symbol.Symbol) Cmp {
	as, ts := argsOf(s), argsOf(t)
	if len(as) != len(ts) {
		return Incomparable
	}
	if len(as) == 0 {
		return Equal
	}
	switch k.prec.StatusOf(head) {
	case Multiset:
		return multisetCompare(k, as, ts)
	default:
		return lexCompare(k, as, ts)
	}
}

func lexCompare(k *KBO, as, bs []*term.Term) Cmp {
	for i := range as {
		if as[i] == bs[i] {
			continue
		}
		return k.Compare(as[i], bs[i])
	}
	return Equal
}

// multisetCompare implements the Dershowitz-Manna multiset extension:
// cancel pairwise-identical elements, then require every surviving
// element on the losing side to be strictly dominated by some
// surviving element on the winning side.
func multisetCompare(k *KBO, as, bs []*term.Term) Cmp {
	aRem := append([]*term.Term(nil), as...)
	bRem := append([]*term.Term(nil), bs...)
	for i := 0; i < len(aRem); {
		matched := -1
		for j, b := range bRem {
			if aRem[i] == b {
				matched = j
				break
			}
		}
		if matched >= 0 {
			aRem = append(aRem[:i], aRem[i+1:]...)
			bRem = append(bRem[:matched], bRem[matched+1:]...)
			continue
		}
		i++
	}
	if len(aRem) == 0 && len(bRem) == 0 {
		return Equal
	}
	if len(aRem) == 0 {
		return Less
	}
	if len(bRem) == 0 {
		return Greater
	}
	if dominatesAll(k, aRem, bRem) {
		return Greater
	}
	if dominatesAll(k, bRem, aRem) {
		return Less
	}
	return Incomparable
}

// comparer is the shared capability KBO and RPO both offer, so the
// multiset-dominance check below is written once and reused by rpo.go.
type comparer interface {
	Compare(a, b *term.Term) Cmp
}

func dominatesAll(c comparer, winners, losers []*term.Term) bool {
	for _, y := range losers {
		dominated := false
		for _, x := range winners {
			if c.Compare(x, y) == Greater {
				dominated = true
				break
			}
		}
		if !dominated {
			return false
		}
	}
	return true
}

func headSymbol(t *term.Term) *symbol.Symbol {
	switch t.Shape() {
	case term.Const:
		return t.Symbol()
	case term.App:
		if t.Head().Shape() == term.Const {
			return t.Head().Symbol()
		}
		return nil
	default:
		return nil
	}
}

func argsOf(t *term.Term) []*term.Term {
	if t.Shape() == term.App {
		return t.Args()
	}
	return nil
}

// weigh returns t's KBO weight and the multiset of variables occurring
// in it, keyed by free-variable id (non-negative) or by -(index+1) for
// a bound variable under the binder it is local to.
func (k *KBO) weigh(t *term.Term) (int, map[int]int) {
	vars := make(map[int]int)
	w := k.weighInto(t, vars)
	return w, vars
}

func (k *KBO) weighInto(t *term.Term, vars map[int]int) int {
	switch t.Shape() {
	case term.BoundVar:
		vars[-(t.Index()+1)]++
		return k.varWeight
	case term.FreeVar:
		vars[t.VarID()]++
		return k.varWeight
	case term.Const:
		return k.weightOf(t.Symbol())
	case term.App:
		w := 0
		if t.Head().Shape() == term.Const {
			w += k.weightOf(t.Head().Symbol())
		} else {
			w += k.weighInto(t.Head(), vars)
		}
		for _, a := range t.Args() {
			w += k.weighInto(a, vars)
		}
		return w
	case term.Lambda:
		return k.weighInto(t.Body(), vars)
	}
	return 0
}

func multisetGE(a, b map[int]int) bool {
	for k, v := range b {
		if a[k] < v {
			return false
		}
	}
	return true
}
