/*
Package cons implements an immutable singly linked list, the classic
cons-cell sequence of functional programming languages.

Every “modification” of a list (prepending, mapping, filtering, …)
creates a new list, leaving the original unmodified. Operations which
return a suffix of their input (Tail, Drop, DropWhile) share that suffix
with the input rather than copying it; this is transparent to clients
because a list is never mutated after construction.

Lists are inherently concurrency-safe.

Stack safety

FoldLeft and every operation derived from it (Reverse, Len, Sum) run in
constant stack space and handle lists of any length. FoldRight and the
operations derived from it (Append, Map, FlatMap, Concat) recurse on the
structure of the list; their stack usage grows with list length.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cons

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adt.cons'.
func tracer() tracing.Trace {
	return tracing.Select("adt.cons")
}
