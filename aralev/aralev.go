// SPDX-License-Identifier: MIT

package aralev

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/montanaflynn/stats"
)

// InfiniteKappa stands in for an unbounded precision estimate.
const InfiniteKappa = 1e10

const (
	// Convergence tolerances of the fixed-point iterations.
	thetaTol = 1e-6 * degree
	kappaTol = 1e-6

	// Minimum rounds before a convergence test is honoured.
	interiorWarmup = 10
	edgeWarmup     = 4

	// Robustness probe: 16 points on an ellipse of these half-axes.
	probePoints = 16
	probeTheta  = 0.01 * degree
	probeKappa  = 0.001
)

// Result is the maximum-likelihood estimate for a set of inclinations.
type Result struct {
	// MeanInc is the estimated mean inclination.
	MeanInc s1.Angle
	// Kappa is the estimated precision; -1 for a single inclination and
	// InfiniteKappa when all inclinations are equal.
	Kappa float64
	// Theta63 is the angular standard deviation.
	Theta63 s1.Angle
	// Alpha95 is the 95% confidence limit of MeanInc.
	Alpha95 s1.Angle
	// Status carries numerical warnings; zero when clean.
	Status Status
	// N is the number of inclinations.
	N int
}

// candidate is one local maximum of the likelihood.
type candidate struct {
	theta, kappa float64
	logL         float64
	converged    bool
}

// Calculate estimates mean inclination and precision from incs (degrees).
// Implementation:
//   - Stage 1: Fast paths. One inclination: Status ConvergenceProblem,
//     κ = −1, θ63 and α95 at their full-sphere limits. All equal: κ =
//     InfiniteKappa, θ63 = α95 = 0.
//   - Stage 2: Seed (θ, κ) from the arithmetic mean and inverse sample
//     variance of the co-inclinations θᵢ = 90° − Iᵢ.
//   - Stage 3: Solve the interior, the θ=0 and θ=180° edges, and take the
//     κ=0 edge in closed form; keep the highest likelihood.
//   - Stage 4: Probe 16 points around the winner; flag RobustnessProblem if
//     any is higher.
//   - Stage 5: θ63 and α95 from κ (Kono 1980).
//
// Errors:
//   - ErrEmptyInput if incs is empty.
//   - ErrInclinationRange if any value (after the single-value fast path)
//     is outside [-90, 90] or NaN.
//
// Complexity:
//   - Time O(maxIterations·N), Space O(N).
func Calculate(incs []float64, opts ...Option) (Result, error) {
	n := len(incs)
	if n == 0 {
		return Result{}, aralevErrorf(opCalculate, ErrEmptyInput)
	}
	if n == 1 {
		return Result{
			MeanInc: s1.Angle(incs[0]) * s1.Degree,
			Kappa:   -1,
			Theta63: Theta63Max,
			Alpha95: Alpha95Max,
			Status:  ConvergenceProblem,
			N:       1,
		}, nil
	}
	if err := validateRange(incs); err != nil {
		return Result{}, aralevErrorf(opCalculate, err)
	}
	if allEqual(incs) {
		return Result{MeanInc: s1.Angle(incs[0]) * s1.Degree, Kappa: InfiniteKappa, N: n}, nil
	}
	o := gatherOptions(opts...)

	th := coInclinations(incs)
	theta0, kappa0 := arithmeticSeed(th)
	c := 0.0
	for _, t := range th {
		c += math.Cos(t)
	}
	c /= float64(n)

	interior := solveInterior(th, theta0, kappa0, o.maxIterations)
	north := solveEdge(th, 0, c, kappa0, o.maxIterations)
	south := solveEdge(th, math.Pi, -c, kappa0, o.maxIterations)
	flat := candidate{theta: math.Pi / 2, kappa: 0, converged: true}
	flat.logL = logLikelihood(th, flat.theta, flat.kappa)

	best := interior
	var status Status
	if !interior.converged {
		status = ConvergenceProblem
	}
	for _, cand := range []candidate{north, south, flat} {
		if cand.logL > best.logL {
			best = cand
			status = 0
			if !cand.converged {
				status = ConvergenceProblem
			}
		}
	}
	if !robust(th, best) {
		status |= RobustnessProblem
	}

	return Result{
		MeanInc: s1.Angle(math.Pi/2 - best.theta),
		Kappa:   best.kappa,
		Theta63: theta63(best.kappa),
		Alpha95: alpha95(n, best.kappa),
		Status:  status,
		N:       n,
	}, nil
}

// solveInterior alternates the θ and κ stationarity conditions starting
// from (theta, kappa).
func solveInterior(th []float64, theta, kappa float64, maxIter int) candidate {
	n := float64(len(th))
	prevT, prevK := theta, kappa
	converged := false
	for j := 0; j < maxIter; j++ {
		s, c := besselSums(th, theta, kappa)
		theta = clamp(math.Atan2(s, c), thetaMin, thetaMax)

		s, c = besselSums(th, theta, kappa)
		x := n*coth(kappa) - math.Cos(theta)*c - math.Sin(theta)*s
		kappa = InfiniteKappa
		if x/n > 1e-10 {
			kappa = n / x
		}
		kappa = math.Max(kappa, 1e-6)

		dt := math.Abs(theta - prevT)
		dk := math.Abs((kappa - prevK) / kappa)
		prevT, prevK = theta, kappa
		if j > interiorWarmup && dt < thetaTol && dk < kappaTol {
			converged = true
			break
		}
	}

	return candidate{theta: theta, kappa: kappa, logL: logLikelihood(th, theta, kappa), converged: converged}
}

// solveEdge finds κ on the edge θ = theta by the fixed point
// κ = 1/(coth κ − c), where c is the signed mean cosine for that edge.
func solveEdge(th []float64, theta, c, seed float64, maxIter int) candidate {
	kappa := seed
	if 1-c > 1e-10 {
		kappa = 1 / (1 - c)
	}
	prev := kappa
	converged := false
	for j := 0; j < maxIter; j++ {
		x := coth(kappa) - c
		kappa = InfiniteKappa
		if x > 1e-10 {
			kappa = 1 / x
		}
		dk := math.Abs((kappa - prev) / kappa)
		prev = kappa
		if j > edgeWarmup && dk < kappaTol {
			converged = true
			break
		}
	}

	return candidate{theta: theta, kappa: kappa, logL: logLikelihood(th, theta, kappa), converged: converged}
}

// robust reports whether no probe point around best has a higher likelihood.
func robust(th []float64, best candidate) bool {
	for j := 0; j < probePoints; j++ {
		s, c := math.Sincos(2 * math.Pi * float64(j) / probePoints)
		theta := best.theta + probeTheta*c
		kappa := best.kappa * (1 + probeKappa*s)
		if theta < 0 || theta > math.Pi {
			continue
		}
		if logLikelihood(th, theta, kappa) > best.logL {
			return false
		}
	}

	return true
}

// arithmeticSeed returns the mean co-inclination and the inverse sample
// variance (radians) of th, or InfiniteKappa when the variance vanishes.
func arithmeticSeed(th []float64) (theta, kappa float64) {
	theta, _ = stats.Mean(th)
	v, _ := stats.SampleVariance(th)
	kappa = InfiniteKappa
	if v > 1e-10 {
		kappa = 1 / v
	}

	return theta, kappa
}

func coInclinations(incs []float64) []float64 {
	th := make([]float64, len(incs))
	for i, inc := range incs {
		th[i] = (90 - inc) * degree
	}

	return th
}

func validateRange(incs []float64) error {
	for _, inc := range incs {
		if !(inc >= -90 && inc <= 90) {
			return ErrInclinationRange
		}
	}

	return nil
}

func allEqual(incs []float64) bool {
	for _, inc := range incs[1:] {
		if inc != incs[0] {
			return false
		}
	}

	return true
}
