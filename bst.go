package bst

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

const (
	InOrder Order = iota
	PreOrder
	PostOrder
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

type (
	// CompareFunc returns 0 if a==b, <0 if a<b, >0 if a>b.
	CompareFunc[T any] func(a, b T) int

	// Callback is called for every visited value; returning false stops the walk.
	Callback[T any] func(value T) bool

	// Order selects the depth-first visiting order of Walk.
	Order int

	traverseAction int

	options struct {
		logger zerolog.Logger
	}

	tree[T any] struct {
		size    int
		root    *node[T]
		compare CompareFunc[T]
		logger  zerolog.Logger
	}

	// each node exclusively owns its children, there are no parent links
	node[T any] struct {
		value T
		left  *node[T]
		right *node[T]
	}
)

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value}
}

func (o Order) String() string {
	switch o {
	case InOrder:
		return "InOrder"
	case PreOrder:
		return "PreOrder"
	case PostOrder:
		return "PostOrder"
	}
	return "Order(unknown)"
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// duplicate copies value through Cloner when T implements it.
func duplicate[T any](value T) T {
	if c, ok := any(value).(Cloner[T]); ok {
		return c.Clone()
	}
	return value
}
