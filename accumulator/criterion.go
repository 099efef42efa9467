package accumulator

// accState is the per-worker running sum that Accumulate folds into and
// that workers merge additively after the ThreadPool barrier, grounded
// on original_source/src/nanocv/criteria/avg_criterion.h's
// (count, value, vgrad) accumulators plus the L2/variance extensions in
// avg_l2_criterion.cpp / avg_var_criterion.cpp.
type accState struct {
	count    int
	value    float64
	errSum   float64
	vgrad    []float64
	value2   float64
	vgrad2   []float64
}

func newAccState(psize int) accState {
	return accState{vgrad: make([]float64, psize), vgrad2: make([]float64, psize)}
}

func (a *accState) accumulate(value, errVal float64, vgrad []float64) {
	a.count++
	a.value += value
	a.errSum += errVal
	a.value2 += value * value
	for i, g := range vgrad {
		a.vgrad[i] += g
		a.vgrad2[i] += value * g
	}
}

func (a *accState) merge(other accState) {
	a.count += other.count
	a.value += other.value
	a.errSum += other.errSum
	a.value2 += other.value2
	for i := range a.vgrad {
		a.vgrad[i] += other.vgrad[i]
		a.vgrad2[i] += other.vgrad2[i]
	}
}

// Criterion combines the aggregated per-sample state into the scalar
// value, gradient, and user-facing error the Accumulator exposes as a
// Function, optionally adding a regularizer over params.
type Criterion interface {
	Value(acc accState, params []float64) float64
	VGrad(acc accState, params []float64) []float64
	Error(acc accState) float64
}

// CriterionAverage is the unregularized sample mean.
type CriterionAverage struct{}

func (CriterionAverage) Value(acc accState, params []float64) float64 {
	return acc.value / float64(acc.count)
}

func (CriterionAverage) VGrad(acc accState, params []float64) []float64 {
	g := make([]float64, len(acc.vgrad))
	for i, v := range acc.vgrad {
		g[i] = v / float64(acc.count)
	}
	return g
}

func (CriterionAverage) Error(acc accState) float64 {
	return acc.errSum / float64(acc.count)
}

// CriterionL2 adds 0.5*Lambda*||params||²/psize to the mean loss,
// grounded on avg_l2_criterion_t.
type CriterionL2 struct {
	Lambda float64
}

func (c CriterionL2) Value(acc accState, params []float64) float64 {
	norm2 := 0.0
	for _, p := range params {
		norm2 += p * p
	}
	return CriterionAverage{}.Value(acc, params) + 0.5*c.Lambda*norm2/float64(len(params))
}

func (c CriterionL2) VGrad(acc accState, params []float64) []float64 {
	g := CriterionAverage{}.VGrad(acc, params)
	n := float64(len(params))
	for i, p := range params {
		g[i] += c.Lambda * p / n
	}
	return g
}

func (c CriterionL2) Error(acc accState) float64 {
	return CriterionAverage{}.Error(acc)
}

// CriterionVariance penalizes the in-batch variance of the per-sample
// loss, grounded on avg_var_criterion_t: value += Lambda*(n*Σv²-(Σv)²)/n²,
// vgrad += 2*Lambda*(n*Σ(v·∇v)-(Σv)(Σ∇v))/n².
type CriterionVariance struct {
	Lambda float64
}

func (c CriterionVariance) Value(acc accState, params []float64) float64 {
	n := float64(acc.count)
	return CriterionAverage{}.Value(acc, params) +
		c.Lambda*(n*acc.value2-acc.value*acc.value)/(n*n)
}

func (c CriterionVariance) VGrad(acc accState, params []float64) []float64 {
	g := CriterionAverage{}.VGrad(acc, params)
	n := float64(acc.count)
	for i := range g {
		g[i] += 2 * c.Lambda * (n*acc.vgrad2[i] - acc.value*acc.vgrad[i]) / (n * n)
	}
	return g
}

func (c CriterionVariance) Error(acc accState) float64 {
	return CriterionAverage{}.Error(acc)
}
