// Package contrast: Scheme contract, Coding value and the open registry.

package contrast

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for the contrast package.
var (
	// ErrTooFewLevels is returned when a coding is requested for fewer than
	// two levels; a one-level factor has no contrast basis.
	ErrTooFewLevels = errors.New("contrast: need at least 2 levels")

	// ErrUnknownScheme is returned by Lookup for an unregistered name.
	ErrUnknownScheme = errors.New("contrast: unknown scheme")

	// ErrSchemeExists is returned by Register when the name is taken.
	ErrSchemeExists = errors.New("contrast: scheme already registered")
)

// Coding is the materialized result of applying a scheme to a level
// sequence: one basis row per level, one name per generated column.
// Rows is k×k' (k levels, k' columns); Names has length k'.
type Coding struct {
	// Scheme is the name of the scheme that produced this coding.
	Scheme string
	// FullRank records whether k' == k (true) or k' == k−1 (false).
	FullRank bool
	// Names labels each generated column with the level it represents.
	Names []string
	// Rows holds the k×k' basis: Rows[i] is the coded row for level i.
	Rows [][]float64
}

// Cols returns k', the number of generated columns.
func (c Coding) Cols() int {
	if len(c.Rows) == 0 {
		return 0
	}

	return len(c.Rows[0])
}

// Scheme is the pure strategy contract for contrast coding. Code must be
// deterministic: identical level sequences produce identical codings.
// fullRank selects the k-column variant (identity basis) over the
// reduced k−1-column basis; rank is the resolver's decision, never the
// scheme's.
type Scheme interface {
	// Name returns the registry name of the scheme.
	Name() string
	// Code maps an ordered level sequence to its basis matrix.
	Code(levels []string, fullRank bool) (Coding, error)
}

// ---------- registry ----------

var (
	regMu   sync.RWMutex
	schemes = make(map[string]Scheme)
)

// Register adds a scheme to the registry under its own name.
// Returns ErrSchemeExists if the name is already taken.
func Register(s Scheme) error {
	regMu.Lock()
	defer regMu.Unlock()
	if _, dup := schemes[s.Name()]; dup {
		return fmt.Errorf("%q: %w", s.Name(), ErrSchemeExists)
	}
	schemes[s.Name()] = s

	return nil
}

// Lookup retrieves a registered scheme by name.
func Lookup(name string) (Scheme, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	s, ok := schemes[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownScheme)
	}

	return s, nil
}

// Default returns the default scheme: treatment (dummy) coding.
func Default() Scheme { return Treatment{} }

func init() {
	// Built-ins; names are stable public API.
	for _, s := range []Scheme{Treatment{}, Deviation{}, Helmert{}, FullDummy{}} {
		if err := Register(s); err != nil {
			panic(err) // duplicate built-in name is a programmer error
		}
	}
}

// identityCoding is the shared full-rank answer: one indicator column per
// level, in level order.
func identityCoding(scheme string, levels []string) Coding {
	k := len(levels)
	rows := make([][]float64, k)
	for i := range rows {
		rows[i] = make([]float64, k)
		rows[i][i] = 1
	}
	names := make([]string, k)
	copy(names, levels)

	return Coding{Scheme: scheme, FullRank: true, Names: names, Rows: rows}
}

// checkLevels validates the shared k>=2 precondition.
func checkLevels(levels []string) error {
	if len(levels) < 2 {
		return fmt.Errorf("%d level(s): %w", len(levels), ErrTooFewLevels)
	}

	return nil
}
