// Package contrast: built-in scheme implementations.
// Each scheme is a stateless value; all state lives in the level sequence
// it is applied to.

package contrast

// Treatment is dummy (treatment) coding, the package default.
// Reduced rank: base level = first observed level; column j (for level
// j+1, 0-indexed) is the indicator of that level, so the base level row
// is all zeros. Full rank: identity (one indicator per level).
type Treatment struct{}

// Name implements Scheme.
func (Treatment) Name() string { return "treatment" }

// Code implements Scheme.
// Complexity: O(k²) time and memory for the k×k' basis.
func (Treatment) Code(levels []string, fullRank bool) (Coding, error) {
	if err := checkLevels(levels); err != nil {
		return Coding{}, err
	}
	if fullRank {
		return identityCoding("treatment", levels), nil
	}
	k := len(levels)
	rows := make([][]float64, k)
	for i := range rows {
		rows[i] = make([]float64, k-1)
		if i > 0 {
			rows[i][i-1] = 1
		}
	}

	return Coding{Scheme: "treatment", Names: append([]string(nil), levels[1:]...), Rows: rows}, nil
}

// Deviation is sum-to-zero (deviation) coding.
// Reduced rank: levels 2..k get indicator columns, the base (first) level
// row is all −1, so each coefficient contrasts a level against the grand
// mean. Full rank: identity.
type Deviation struct{}

// Name implements Scheme.
func (Deviation) Name() string { return "sum" }

// Code implements Scheme.
func (Deviation) Code(levels []string, fullRank bool) (Coding, error) {
	if err := checkLevels(levels); err != nil {
		return Coding{}, err
	}
	if fullRank {
		return identityCoding("sum", levels), nil
	}
	k := len(levels)
	rows := make([][]float64, k)
	for i := range rows {
		rows[i] = make([]float64, k-1)
		if i == 0 {
			for j := range rows[i] {
				rows[i][j] = -1
			}
		} else {
			rows[i][i-1] = 1
		}
	}

	return Coding{Scheme: "sum", Names: append([]string(nil), levels[1:]...), Rows: rows}, nil
}

// Helmert is Helmert coding.
// Reduced rank: column j contrasts level j+1 against all earlier levels —
// rows with level index < j get −1, the level-j row gets j, later rows 0.
// Full rank: identity.
type Helmert struct{}

// Name implements Scheme.
func (Helmert) Name() string { return "helmert" }

// Code implements Scheme.
func (Helmert) Code(levels []string, fullRank bool) (Coding, error) {
	if err := checkLevels(levels); err != nil {
		return Coding{}, err
	}
	if fullRank {
		return identityCoding("helmert", levels), nil
	}
	k := len(levels)
	rows := make([][]float64, k)
	for i := range rows {
		rows[i] = make([]float64, k-1)
	}
	for j := 1; j < k; j++ {
		for i := 0; i < j; i++ {
			rows[i][j-1] = -1
		}
		rows[j][j-1] = float64(j)
	}

	return Coding{Scheme: "helmert", Names: append([]string(nil), levels[1:]...), Rows: rows}, nil
}

// FullDummy is full-rank dummy coding: one indicator column per level
// regardless of the requested rank. Use it as a per-variable override
// when cell-means columns are wanted even next to an intercept.
type FullDummy struct{}

// Name implements Scheme.
func (FullDummy) Name() string { return "full" }

// Code implements Scheme. The fullRank flag is ignored: this scheme is
// full rank by definition.
func (FullDummy) Code(levels []string, _ bool) (Coding, error) {
	if err := checkLevels(levels); err != nil {
		return Coding{}, err
	}

	return identityCoding("full", levels), nil
}
