/*
Package maybe provides an optional-value type. A Maybe is the result of an
observation which may come up empty, such as asking an empty list for its
first element. It replaces error returns for operations where absence is
an ordinary outcome, not a failure.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe holds either a value of type T (Just) or nothing. The zero value
// is Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing is the absent value for type T.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust is true if m carries a value.
func (m Maybe[T]) IsJust() bool {
	return m.tag
}

// WithDefault unwraps m, substituting def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a present value; Nothing stays Nothing.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Map applies f to a present value, possibly changing the value's type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if x.tag {
		return Just(f(x.value))
	}
	return Nothing[S]()
}

// AndThen chains a computation which itself may come up empty.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if x.tag {
		return f(x.value)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Match lets clients distinguish the two cases of a Maybe in a
// switch-statement:
//
//     var v int
//     switch m := x.Match(); m {
//     case m.Just(&v):
//         …  // v holds the value
//     case m.Nothing():
//         …
//     }
//
func (m Maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// Matcher is returned by Match; clients will not implement it.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m Maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
