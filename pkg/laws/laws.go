package laws

import (
	"fmt"
	"math/rand"

	"github.com/okutsen/lawcheck/pkg/optional"
	"github.com/okutsen/lawcheck/pkg/result"
)

// Law is one algebraic law. Check generates an input from rng within the
// Config bounds, evaluates both sides of the law and compares them.
type Law struct {
	Name  string
	Check func(rng *rand.Rand, cfg Config) Outcome
}

// Outcome is the scored result of a single trial. Input, Left and Right are
// rendered for diagnostics; they are only meaningful when OK is false.
type Outcome struct {
	OK    bool
	Input string
	Left  string
	Right string
}

func pass() Outcome {
	return Outcome{OK: true}
}

func score(ok bool, input, left, right string) Outcome {
	if ok {
		return pass()
	}
	return Outcome{Input: input, Left: left, Right: right}
}

// AllLaws returns the full catalogue: functor identity and composition for
// sequences, optionals and results, and the three monad laws for optionals
// and results.
func AllLaws() []Law {
	return []Law{
		{Name: "sequence functor identity", Check: seqFunctorIdentity},
		{Name: "sequence functor composition", Check: seqFunctorComposition},
		{Name: "optional functor identity", Check: optionalFunctorIdentity},
		{Name: "optional functor composition", Check: optionalFunctorComposition},
		{Name: "optional monad left identity", Check: optionalLeftIdentity},
		{Name: "optional monad right identity", Check: optionalRightIdentity},
		{Name: "optional monad associativity", Check: optionalAssociativity},
		{Name: "result functor identity", Check: resultFunctorIdentity},
		{Name: "result functor composition", Check: resultFunctorComposition},
		{Name: "result monad left identity", Check: resultLeftIdentity},
		{Name: "result monad right identity", Check: resultRightIdentity},
		{Name: "result monad associativity", Check: resultAssociativity},
	}
}

// generators

func genInt(rng *rand.Rand, cfg Config) int {
	return cfg.IntMin + rng.Intn(cfg.IntMax-cfg.IntMin+1)
}

func genInts(rng *rand.Rand, cfg Config) []int {
	n := cfg.SeqLenMin + rng.Intn(cfg.SeqLenMax-cfg.SeqLenMin+1)
	xs := make([]int, n)
	for i := range xs {
		xs[i] = genInt(rng, cfg)
	}
	return xs
}

func genOptional(rng *rand.Rand, cfg Config) optional.Optional[int] {
	if rng.Intn(4) == 0 {
		return optional.None[int]()
	}
	return optional.Some(genInt(rng, cfg))
}

var errPool = []string{"boom", "timeout", "missing"}

func genResult(rng *rand.Rand, cfg Config) result.Result[int, string] {
	if rng.Intn(4) == 0 {
		return result.Err[int](errPool[rng.Intn(len(errPool))])
	}
	return result.Ok[int, string](genInt(rng, cfg))
}

func pick[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.Intn(len(pool))]
}

// pickTwo draws two distinct entries from pool.
func pickTwo[T any](rng *rand.Rand, pool []T) (T, T) {
	i := rng.Intn(len(pool))
	j := rng.Intn(len(pool) - 1)
	if j >= i {
		j++
	}
	return pool[i], pool[j]
}

// eager slice map; sequences only participate in the law suite, there is no
// exported collections API.
func mapInts(xs []int, f func(int) int) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sequence functor laws

func seqFunctorIdentity(rng *rand.Rand, cfg Config) Outcome {
	xs := genInts(rng, cfg)
	left := mapInts(xs, func(x int) int { return x })
	return score(equalInts(left, xs),
		fmt.Sprintf("%v", xs), fmt.Sprintf("%v", left), fmt.Sprintf("%v", xs))
}

func seqFunctorComposition(rng *rand.Rand, cfg Config) Outcome {
	xs := genInts(rng, cfg)
	f, g := pickTwo(rng, Catalogue())
	left := mapInts(mapInts(xs, f.Apply), g.Apply)
	right := mapInts(xs, func(x int) int { return g.Apply(f.Apply(x)) })
	return score(equalInts(left, right),
		fmt.Sprintf("%v with f=%s g=%s", xs, f.Name, g.Name),
		fmt.Sprintf("%v", left), fmt.Sprintf("%v", right))
}

// optional laws

func optionalFunctorIdentity(rng *rand.Rand, cfg Config) Outcome {
	o := genOptional(rng, cfg)
	left := optional.Map(o, func(x int) int { return x })
	return score(optional.Equal(left, o), o.String(), left.String(), o.String())
}

func optionalFunctorComposition(rng *rand.Rand, cfg Config) Outcome {
	o := genOptional(rng, cfg)
	f, g := pickTwo(rng, Catalogue())
	left := optional.Map(optional.Map(o, f.Apply), g.Apply)
	right := optional.Map(o, func(x int) int { return g.Apply(f.Apply(x)) })
	return score(optional.Equal(left, right),
		fmt.Sprintf("%s with f=%s g=%s", o, f.Name, g.Name),
		left.String(), right.String())
}

func optionalLeftIdentity(rng *rand.Rand, cfg Config) Outcome {
	a := genInt(rng, cfg)
	f := pick(rng, OptionalCatalogue())
	left := optional.FlatMap(optional.Some(a), f.Apply)
	right := f.Apply(a)
	return score(optional.Equal(left, right),
		fmt.Sprintf("%d with f=%s", a, f.Name), left.String(), right.String())
}

func optionalRightIdentity(rng *rand.Rand, cfg Config) Outcome {
	m := genOptional(rng, cfg)
	left := optional.FlatMap(m, optional.Some[int])
	return score(optional.Equal(left, m), m.String(), left.String(), m.String())
}

func optionalAssociativity(rng *rand.Rand, cfg Config) Outcome {
	m := genOptional(rng, cfg)
	f, g := pickTwo(rng, OptionalCatalogue())
	left := optional.FlatMap(optional.FlatMap(m, f.Apply), g.Apply)
	right := optional.FlatMap(m, func(x int) optional.Optional[int] {
		return optional.FlatMap(f.Apply(x), g.Apply)
	})
	return score(optional.Equal(left, right),
		fmt.Sprintf("%s with f=%s g=%s", m, f.Name, g.Name),
		left.String(), right.String())
}

// result laws

func resultFunctorIdentity(rng *rand.Rand, cfg Config) Outcome {
	r := genResult(rng, cfg)
	left := result.Map(r, func(x int) int { return x })
	return score(result.Equal(left, r), r.String(), left.String(), r.String())
}

func resultFunctorComposition(rng *rand.Rand, cfg Config) Outcome {
	r := genResult(rng, cfg)
	f, g := pickTwo(rng, Catalogue())
	left := result.Map(result.Map(r, f.Apply), g.Apply)
	right := result.Map(r, func(x int) int { return g.Apply(f.Apply(x)) })
	return score(result.Equal(left, right),
		fmt.Sprintf("%s with f=%s g=%s", r, f.Name, g.Name),
		left.String(), right.String())
}

func resultLeftIdentity(rng *rand.Rand, cfg Config) Outcome {
	a := genInt(rng, cfg)
	f := pick(rng, ResultCatalogue())
	left := result.FlatMap(result.Ok[int, string](a), f.Apply)
	right := f.Apply(a)
	return score(result.Equal(left, right),
		fmt.Sprintf("%d with f=%s", a, f.Name), left.String(), right.String())
}

func resultRightIdentity(rng *rand.Rand, cfg Config) Outcome {
	m := genResult(rng, cfg)
	left := result.FlatMap(m, result.Ok[int, string])
	return score(result.Equal(left, m), m.String(), left.String(), m.String())
}

func resultAssociativity(rng *rand.Rand, cfg Config) Outcome {
	m := genResult(rng, cfg)
	f, g := pickTwo(rng, ResultCatalogue())
	left := result.FlatMap(result.FlatMap(m, f.Apply), g.Apply)
	right := result.FlatMap(m, func(x int) result.Result[int, string] {
		return result.FlatMap(f.Apply(x), g.Apply)
	})
	return score(result.Equal(left, right),
		fmt.Sprintf("%s with f=%s g=%s", m, f.Name, g.Name),
		left.String(), right.String())
}
