package cons_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/adt/cons"
)

func TestListConstruct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt.cons")
	defer teardown()
	//
	l := cons.ListOf(1, 2, 3, 4, 5)
	if l.Len() != 5 {
		t.Logf("l = %v", l)
		t.Errorf("expected list of 5 elements to have length 5, has %d", l.Len())
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, l.Slice()); diff != "" {
		t.Errorf("constructed list does not preserve input order (-want +got):\n%s", diff)
	}
	empty := cons.ListOf[int]()
	if !empty.IsEmpty() || empty.Len() != 0 {
		t.Error("expected construction from no elements to yield the empty list, doesn't")
	}
}

func TestListZeroValueIsEmpty(t *testing.T) {
	var l cons.List[string]
	if !l.IsEmpty() {
		t.Error("expected zero-value list to be empty, isn't")
	}
	l = l.Cons("hello")
	if l.IsEmpty() || l.Len() != 1 {
		t.Errorf("expected Cons on zero value to yield 1-element list, got %v", l)
	}
}

func TestListHead(t *testing.T) {
	l := cons.ListOf(7, 8, 9)
	var v int
	switch m := l.Head().Match(); m {
	case m.Just(&v):
		t.Logf("head = %d", v)
	case m.Nothing():
		t.Error("expected non-empty list to have a head, hasn't")
	}
	if v != 7 {
		t.Errorf("expected head to be 7, is %d", v)
	}
	if cons.Empty[int]().Head().IsJust() {
		t.Error("expected head of empty list to be Nothing, isn't")
	}
}

func TestListTailSharesSuffix(t *testing.T) {
	l := cons.ListOf(1, 2, 3)
	tail := l.Tail()
	if diff := cmp.Diff([]int{2, 3}, tail.Slice()); diff != "" {
		t.Errorf("tail of (1 2 3) wrong (-want +got):\n%s", diff)
	}
	// the original must be unaffected
	if diff := cmp.Diff([]int{1, 2, 3}, l.Slice()); diff != "" {
		t.Errorf("input list mutated by Tail (-want +got):\n%s", diff)
	}
	if !cons.Empty[int]().Tail().IsEmpty() {
		t.Error("expected tail of empty list to be the empty list, isn't")
	}
}

func TestListSetHead(t *testing.T) {
	l := cons.ListOf(1, 2, 3)
	m := l.SetHead(9)
	if diff := cmp.Diff([]int{9, 2, 3}, m.Slice()); diff != "" {
		t.Errorf("SetHead(9) wrong (-want +got):\n%s", diff)
	}
	if l.Head().WithDefault(0) != 1 {
		t.Error("expected input list to keep its head after SetHead, didn't")
	}
	if !cons.Empty[int]().SetHead(9).IsEmpty() {
		t.Error("expected SetHead on empty list to return the empty list, doesn't")
	}
}

func TestListDrop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt.cons")
	defer teardown()
	//
	l := cons.ListOf(1, 2, 3, 4, 5)
	if diff := cmp.Diff([]int{3, 4, 5}, l.Drop(2).Slice()); diff != "" {
		t.Errorf("Drop(2) wrong (-want +got):\n%s", diff)
	}
	if !l.Drop(99).IsEmpty() {
		t.Error("expected over-dropping to yield the empty list, doesn't")
	}
	if diff := cmp.Diff(l.Slice(), l.Drop(0).Slice()); diff != "" {
		t.Errorf("Drop(0) changed the list (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(l.Slice(), l.Drop(-1).Slice()); diff != "" {
		t.Errorf("negative drop count changed the list (-want +got):\n%s", diff)
	}
}

func TestListDropWhile(t *testing.T) {
	l := cons.ListOf(1, 2, 3, 4, 5)
	rest := l.DropWhile(func(x int) bool { return x < 4 })
	if diff := cmp.Diff([]int{4, 5}, rest.Slice()); diff != "" {
		t.Errorf("DropWhile(x < 4) wrong (-want +got):\n%s", diff)
	}
	all := l.DropWhile(func(x int) bool { return true })
	if !all.IsEmpty() {
		t.Error("expected DropWhile(true) to exhaust the list, doesn't")
	}
}

func TestListTake(t *testing.T) {
	l := cons.ListOf(1, 2, 3, 4, 5)
	if diff := cmp.Diff([]int{1, 2}, l.Take(2).Slice()); diff != "" {
		t.Errorf("Take(2) wrong (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(l.Slice(), l.Take(99).Slice()); diff != "" {
		t.Errorf("over-taking should yield whole list (-want +got):\n%s", diff)
	}
	if !l.Take(0).IsEmpty() {
		t.Error("expected Take(0) to be empty, isn't")
	}
	prefix := l.TakeWhile(func(x int) bool { return x < 4 })
	if diff := cmp.Diff([]int{1, 2, 3}, prefix.Slice()); diff != "" {
		t.Errorf("TakeWhile(x < 4) wrong (-want +got):\n%s", diff)
	}
}

func TestListInit(t *testing.T) {
	l := cons.ListOf(1, 2, 3, 4)
	if diff := cmp.Diff([]int{1, 2, 3}, l.Init().Slice()); diff != "" {
		t.Errorf("Init wrong (-want +got):\n%s", diff)
	}
	if !cons.ListOf(1).Init().IsEmpty() {
		t.Error("expected init of single-element list to be empty, isn't")
	}
	if !cons.Empty[int]().Init().IsEmpty() {
		t.Error("expected init of empty list to be empty, isn't")
	}
}

func TestListReverse(t *testing.T) {
	l := cons.ListOf(1, 2, 3, 4, 5)
	if diff := cmp.Diff([]int{5, 4, 3, 2, 1}, l.Reverse().Slice()); diff != "" {
		t.Errorf("Reverse wrong (-want +got):\n%s", diff)
	}
	if !cons.Equal(l, l.Reverse().Reverse()) {
		t.Error("expected reverse to be an involution, isn't")
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, l.Slice()); diff != "" {
		t.Errorf("input list mutated by Reverse (-want +got):\n%s", diff)
	}
}

func TestListFilter(t *testing.T) {
	l := cons.ListOf(1, 2, 3, 4, 5, 6)
	even := l.Filter(func(x int) bool { return x%2 == 0 })
	if diff := cmp.Diff([]int{2, 4, 6}, even.Slice()); diff != "" {
		t.Errorf("Filter(even) wrong (-want +got):\n%s", diff)
	}
}

func TestListAppend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt.cons")
	defer teardown()
	//
	l1 := cons.ListOf(1, 2, 3)
	l2 := cons.ListOf(4, 5)
	app := l1.Append(l2)
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, app.Slice()); diff != "" {
		t.Errorf("Append wrong (-want +got):\n%s", diff)
	}
	if app.Len() != l1.Len()+l2.Len() {
		t.Error("expected append length to be the sum of input lengths, isn't")
	}
	if diff := cmp.Diff(l2.Slice(), cons.Empty[int]().Append(l2).Slice()); diff != "" {
		t.Errorf("append onto empty list wrong (-want +got):\n%s", diff)
	}
}

func TestListString(t *testing.T) {
	l := cons.ListOf(1, 2, 3)
	if l.String() != "(1 2 3)" {
		t.Errorf(`expected list to print as "(1 2 3)", prints as %q`, l.String())
	}
	if cons.Empty[int]().String() != "()" {
		t.Errorf(`expected empty list to print as "()", prints as %q`, cons.Empty[int]().String())
	}
}

func TestListSampleScenario(t *testing.T) {
	l := cons.ListOf(1, 2, 3, 4, 5)
	if cons.Sum(l) != 15 {
		t.Errorf("expected sum of (1 2 3 4 5) to be 15, is %d", cons.Sum(l))
	}
	if l.Len() != 5 {
		t.Errorf("expected length of (1 2 3 4 5) to be 5, is %d", l.Len())
	}
	if !cons.Equal(l.Reverse(), cons.ListOf(5, 4, 3, 2, 1)) {
		t.Errorf("expected reverse of (1 2 3 4 5) to be (5 4 3 2 1), is %v", l.Reverse())
	}
}
