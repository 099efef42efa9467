package tuner

import (
	"math/rand"
	"sort"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// MaxRefinementDepth and MinTrialsPerPass resolve Open Question (c): how
// deep refinement goes and how many trials a pass must generate before
// scoring.
const (
	MaxRefinementDepth = 4
	MinTrialsPerPass   = 8
)

// Trial is one sampled hyper-parameter configuration, addressed by a
// generated ID so a caller can report its score asynchronously.
type Trial struct {
	ID     string
	Values map[string]float64
	Depth  int
	Score  float64
	scored bool
}

// Tuner generates trial configurations from a ParameterSpace: a grid
// pass first, then greedy local refinement around the top-scoring
// trials, halving each axis's span per Open Question (c), until no axis
// can be refined further or MaxRefinementDepth is reached.
type Tuner struct {
	Space ParameterSpace

	rng     *rand.Rand
	pending []*Trial
	all     []*Trial
	byID    map[string]*Trial
	top     *lru.Cache[string, *Trial]
}

// New constructs a Tuner over space, seeding its RNG deterministically
// so runs are reproducible given the same seed.
func New(space ParameterSpace, seed int64) *Tuner {
	cache, _ := lru.New[string, *Trial](MinTrialsPerPass)
	return &Tuner{
		Space: space,
		rng:   rand.New(rand.NewSource(seed)),
		byID:  map[string]*Trial{},
		top:   cache,
	}
}

func (t *Tuner) gridPass() {
	perAxis := gridSizePerAxis(len(t.Space.Axes))
	grids := make([][]float64, len(t.Space.Axes))
	for i, a := range t.Space.Axes {
		grids[i] = a.grid(perAxis)
	}

	combos := cartesian(grids)
	for _, vals := range combos {
		values := map[string]float64{}
		for i, a := range t.Space.Axes {
			values[a.Name] = vals[i]
		}
		t.enqueue(values, 0)
	}
}

// gridSizePerAxis picks a per-axis sample count so the full grid has at
// least MinTrialsPerPass points without exploding combinatorially for
// many axes.
func gridSizePerAxis(numAxes int) int {
	if numAxes <= 0 {
		return 0
	}
	n := 2
	for pow(n, numAxes) < MinTrialsPerPass {
		n++
	}
	return n
}

func pow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}

func cartesian(axes [][]float64) [][]float64 {
	if len(axes) == 0 {
		return nil
	}
	combos := [][]float64{{}}
	for _, vals := range axes {
		var next [][]float64
		for _, combo := range combos {
			for _, v := range vals {
				c := append(append([]float64{}, combo...), v)
				next = append(next, c)
			}
		}
		combos = next
	}
	return combos
}

func (t *Tuner) enqueue(values map[string]float64, depth int) {
	trial := &Trial{ID: uuid.NewString(), Values: values, Depth: depth}
	t.pending = append(t.pending, trial)
	t.byID[trial.ID] = trial
	t.all = append(t.all, trial)
}

// Get returns the next trial configuration to evaluate, generating a
// grid pass on the first call and a refinement pass once the queue and
// every prior trial have been scored.
func (t *Tuner) Get() *Trial {
	if len(t.all) == 0 {
		t.gridPass()
	}
	if len(t.pending) == 0 {
		t.refine()
	}
	if len(t.pending) == 0 {
		return nil
	}
	trial := t.pending[0]
	t.pending = t.pending[1:]
	return trial
}

// Score attaches a score to the trial with the given id, lower is
// better.
func (t *Tuner) Score(id string, score float64) {
	trial, ok := t.byID[id]
	if !ok {
		return
	}
	trial.Score = score
	trial.scored = true
	t.top.Add(id, trial)
}

func (t *Tuner) allScored() bool {
	for _, trial := range t.all {
		if !trial.scored {
			return false
		}
	}
	return len(t.all) > 0
}

// refine picks the top-scored trials and generates neighbours around
// each by halving every non-finite axis's span, stopping once
// MaxRefinementDepth is reached.
func (t *Tuner) refine() {
	if !t.allScored() {
		return
	}

	sorted := append([]*Trial(nil), t.all...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Score < sorted[j].Score })

	k := MinTrialsPerPass / 2
	if k > len(sorted) {
		k = len(sorted)
	}

	generated := false
	for _, best := range sorted[:k] {
		if best.Depth >= MaxRefinementDepth {
			continue
		}
		space := narrowedSpace(t.Space, best.Values)
		perAxis := 2
		grids := make([][]float64, len(space.Axes))
		anyNonFinite := false
		for i, a := range space.Axes {
			grids[i] = a.grid(perAxis)
			if a.Kind != Finite {
				anyNonFinite = true
			}
		}
		if !anyNonFinite {
			continue
		}
		for _, combo := range cartesian(grids) {
			values := map[string]float64{}
			for i, a := range space.Axes {
				values[a.Name] = combo[i]
			}
			t.enqueue(values, best.Depth+1)
			generated = true
		}
	}
	_ = generated
}

func narrowedSpace(space ParameterSpace, center map[string]float64) ParameterSpace {
	axes := make([]Axis, len(space.Axes))
	for i, a := range space.Axes {
		axes[i] = a.narrowed(center[a.Name])
	}
	return ParameterSpace{Axes: axes}
}

// Optimum returns the best-scored trial so far, or nil if none has been
// scored.
func (t *Tuner) Optimum() *Trial {
	var best *Trial
	for _, trial := range t.all {
		if !trial.scored {
			continue
		}
		if best == nil || trial.Score < best.Score {
			best = trial
		}
	}
	return best
}
