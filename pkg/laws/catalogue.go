package laws

import (
	"github.com/okutsen/lawcheck/pkg/optional"
	"github.com/okutsen/lawcheck/pkg/result"
)

// Fn is a named pure int function. The catalogues below are fixed,
// enumerable pools; laws are instantiated by sampling from them, never by
// generating code or reflecting over callables.
type Fn struct {
	Name  string
	Apply func(int) int
}

// OptionalFn is a named pure function into the optional container, used to
// instantiate the optional monad laws.
type OptionalFn struct {
	Name  string
	Apply func(int) optional.Optional[int]
}

// ResultFn is a named pure function into the result container, used to
// instantiate the result monad laws. The error channel is a plain string so
// both sides of a law compare with result.Equal.
type ResultFn struct {
	Name  string
	Apply func(int) result.Result[int, string]
}

func Catalogue() []Fn {
	return []Fn{
		{Name: "identity", Apply: func(x int) int { return x }},
		{Name: "double", Apply: func(x int) int { return x * 2 }},
		{Name: "increment", Apply: func(x int) int { return x + 1 }},
		{Name: "negate", Apply: func(x int) int { return -x }},
		{Name: "square", Apply: func(x int) int { return x * x }},
	}
}

func OptionalCatalogue() []OptionalFn {
	return []OptionalFn{
		{Name: "halfIfEven", Apply: func(x int) optional.Optional[int] {
			if x%2 == 0 {
				return optional.Some(x / 2)
			}
			return optional.None[int]()
		}},
		{Name: "somePlusThree", Apply: func(x int) optional.Optional[int] {
			return optional.Some(x + 3)
		}},
		{Name: "noneIfNegative", Apply: func(x int) optional.Optional[int] {
			if x < 0 {
				return optional.None[int]()
			}
			return optional.Some(x)
		}},
	}
}

func ResultCatalogue() []ResultFn {
	return []ResultFn{
		{Name: "halfIfEven", Apply: func(x int) result.Result[int, string] {
			if x%2 == 0 {
				return result.Ok[int, string](x / 2)
			}
			return result.Err[int]("odd")
		}},
		{Name: "okPlusThree", Apply: func(x int) result.Result[int, string] {
			return result.Ok[int, string](x + 3)
		}},
		{Name: "errIfNegative", Apply: func(x int) result.Result[int, string] {
			if x < 0 {
				return result.Err[int]("negative")
			}
			return result.Ok[int, string](x)
		}},
	}
}
