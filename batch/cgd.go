package batch

import (
	"math"

	"github.com/go-nanocv/nanocv/objective"
	"gonum.org/v1/gonum/mat"
)

// BetaVariant names one of the nine CGD β-policies of spec.md §4.4's
// table. Modeling CGD as a single implementation parameterised by a
// β-function value (rather than nine templated subclasses, as the
// original C++ does with solver_cgd.h) is the SPEC_FULL.md §9
// REDESIGN for "deep inheritance in the solver hierarchy."
type BetaVariant string

const (
	HS   BetaVariant = "HS"
	FR   BetaVariant = "FR"
	PRPP BetaVariant = "PRP+"
	CD   BetaVariant = "CD"
	LS   BetaVariant = "LS"
	DY   BetaVariant = "DY"
	DYHS BetaVariant = "DYHS"
	DYCD BetaVariant = "DYCD"
	N    BetaVariant = "N"
)

// CGD is the nonlinear conjugate-gradient Direction: d = −g + β·d_prev,
// β=0 on the first iteration or whenever the orthogonality restart
// fires. Per spec.md Open Question (b), the restart is applied
// uniformly to every variant, not just some.
type CGD struct {
	Variant   BetaVariant
	Orthotest float64 // default 0.1
}

func (c CGD) orthotest() float64 {
	if c.Orthotest <= 0 {
		return 0.1
	}
	return c.Orthotest
}

func (c CGD) Next(k int, prev, curr *objective.State) *objective.State {
	next := curr.Clone()

	if k == 0 || prev == nil {
		next.D.ScaleVec(-1, &curr.G)
		return next
	}

	beta := c.beta(&prev.D, &prev.G, &curr.G)

	// Orthogonality restart: forces β=0 when consecutive gradients are
	// no longer sufficiently orthogonal, a sign the CG memory has gone
	// stale.
	gg := mat.Dot(&curr.G, &curr.G)
	if gg > 0 {
		if math.Abs(mat.Dot(&prev.G, &curr.G))/gg > c.orthotest() {
			beta = 0
		}
	}

	var d mat.VecDense
	d.ScaleVec(beta, &prev.D)
	d.SubVec(&d, &curr.G)
	next.D.CloneFromVec(&d)
	return next
}

func (c CGD) beta(dp, gp, g *mat.VecDense) float64 {
	switch c.Variant {
	case HS, "":
		return betaHS(dp, gp, g)
	case FR:
		return betaFR(gp, g)
	case PRPP:
		return math.Max(0, betaPRP(gp, g))
	case CD:
		return betaCD(dp, gp, g)
	case LS:
		return betaLS(dp, gp, g)
	case DY:
		return betaDY(dp, gp, g)
	case DYHS:
		return math.Max(0, math.Min(betaDY(dp, gp, g), betaHS(dp, gp, g)))
	case DYCD:
		return betaDYCD(dp, gp, g)
	case N:
		return betaN(dp, gp, g)
	default:
		return betaHS(dp, gp, g)
	}
}

func diffVec(g, gp *mat.VecDense) *mat.VecDense {
	var y mat.VecDense
	y.SubVec(g, gp)
	return &y
}

// betaHS: g·(g−g_prev) / d_prev·(g−g_prev)
func betaHS(dp, gp, g *mat.VecDense) float64 {
	y := diffVec(g, gp)
	denom := mat.Dot(dp, y)
	if denom == 0 {
		return 0
	}
	return mat.Dot(g, y) / denom
}

// betaFR: ‖g‖² / ‖g_prev‖²
func betaFR(gp, g *mat.VecDense) float64 {
	denom := mat.Dot(gp, gp)
	if denom == 0 {
		return 0
	}
	return mat.Dot(g, g) / denom
}

// betaPRP: g·(g−g_prev) / ‖g_prev‖²  (unclamped; PRP+ clamps to >= 0)
func betaPRP(gp, g *mat.VecDense) float64 {
	y := diffVec(g, gp)
	denom := mat.Dot(gp, gp)
	if denom == 0 {
		return 0
	}
	return mat.Dot(g, y) / denom
}

// betaCD: −‖g‖² / (d_prev·g_prev)
func betaCD(dp, gp, g *mat.VecDense) float64 {
	denom := mat.Dot(dp, gp)
	if denom == 0 {
		return 0
	}
	return -mat.Dot(g, g) / denom
}

// betaLS: −g·(g−g_prev) / (d_prev·g_prev)
func betaLS(dp, gp, g *mat.VecDense) float64 {
	y := diffVec(g, gp)
	denom := mat.Dot(dp, gp)
	if denom == 0 {
		return 0
	}
	return -mat.Dot(g, y) / denom
}

// betaDY: ‖g‖² / d_prev·(g−g_prev)
func betaDY(dp, gp, g *mat.VecDense) float64 {
	y := diffVec(g, gp)
	denom := mat.Dot(dp, y)
	if denom == 0 {
		return 0
	}
	return mat.Dot(g, g) / denom
}

// betaDYCD: ‖g‖² / max(d_prev·(g−g_prev), −d_prev·g_prev)
func betaDYCD(dp, gp, g *mat.VecDense) float64 {
	y := diffVec(g, gp)
	denom := math.Max(mat.Dot(dp, y), -mat.Dot(dp, gp))
	if denom == 0 {
		return 0
	}
	return mat.Dot(g, g) / denom
}

// betaN: the Hager-Zhang CGD variant,
// max(η, (y − 2·d_prev·‖y‖²/(d_prev·y))·g / (d_prev·y)),
// η = −1/(‖d_prev‖·min(0.01, ‖g_prev‖)).
func betaN(dp, gp, g *mat.VecDense) float64 {
	y := diffVec(g, gp)
	dpY := mat.Dot(dp, y)
	if dpY == 0 {
		return 0
	}
	yy := mat.Dot(y, y)

	var w mat.VecDense
	w.ScaleVec(2*yy/dpY, dp)
	w.SubVec(y, &w)

	beta := mat.Dot(&w, g) / dpY

	dpNorm := math.Sqrt(mat.Dot(dp, dp))
	gpNorm := math.Sqrt(mat.Dot(gp, gp))
	eta := -1.0
	denomEta := dpNorm * math.Min(0.01, gpNorm)
	if denomEta != 0 {
		eta = -1 / denomEta
	}

	return math.Max(eta, beta)
}
