package ml

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

const machineEps = 2.220446049250313e-16

// fitLinear fits ordinary least squares with an intercept term via the
// SVD pseudo-inverse. The design matrix is rank deficient by
// construction (broadcast profile columns are constant), so singular
// values below a numpy-style tolerance are dropped and the minimum
// norm solution is returned.
func fitLinear(x [][]float64, y []float64) (intercept float64, coefs []float64, err error) {
	rows := len(x)
	cols := len(FeatureNames) + 1

	a := mat.NewDense(rows, cols, nil)
	for i, row := range x {
		a.Set(i, 0, 1)
		for j, v := range row {
			a.Set(i, j+1, v)
		}
	}

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return 0, nil, errors.New("ml: svd factorization failed")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	maxDim := rows
	if cols > maxDim {
		maxDim = cols
	}
	tol := float64(maxDim) * machineEps * s[0]

	// beta = V * pinv(S) * U^T * y
	c := make([]float64, len(s))
	for j := range s {
		if s[j] <= tol {
			continue
		}
		dot := 0.0
		for i := 0; i < rows; i++ {
			dot += u.At(i, j) * y[i]
		}
		c[j] = dot / s[j]
	}

	beta := make([]float64, cols)
	for i := 0; i < cols; i++ {
		for j := range s {
			beta[i] += v.At(i, j) * c[j]
		}
	}

	return beta[0], beta[1:], nil
}

func predictLinear(intercept float64, coefs []float64, row []float64) float64 {
	out := intercept
	for j, c := range coefs {
		out += c * row[j]
	}
	return out
}
