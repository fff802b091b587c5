package bst

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

// Tree is an unbalanced binary search tree holding unique values.
//
// Traversals return the values in a fresh slice, which is empty but never nil
// for an empty tree. When T is a pointer, slice or
// map type the elements still alias the tree's storage, so they must not be
// modified while the tree is in use. A Tree is not safe for concurrent use.
type Tree[T any] interface {
	IsEmpty() bool
	Size() int
	Insert(value T) bool
	Search(value T) bool
	Delete(value T) bool
	Min() (T, bool)
	Max() (T, bool)
	Height() int
	InOrder() []T
	PreOrder() []T
	PostOrder() []T
	Walk(order Order, fn Callback[T])
	Root() Node[T]
	Clone() Tree[T]
	String() string
}

// Node is a read-only view of one tree node. Left and Right return nil when
// the child is absent.
type Node[T any] interface {
	Value() T
	Left() Node[T]
	Right() Node[T]
}

// Cloner is implemented by values that need a deep copy when the tree
// duplicates them during deletion.
type Cloner[T any] interface {
	Clone() T
}

type Option func(o *options)

// WithLogger sets the logger used for debug events. The default discards them.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New returns an empty tree ordered by the natural order of T.
func New[T constraints.Ordered](opts ...Option) Tree[T] {
	return NewFunc[T](compareOrdered[T], opts...)
}

// NewFunc returns an empty tree ordered by cmp.
func NewFunc[T any](cmp CompareFunc[T], opts ...Option) Tree[T] {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &tree[T]{
		compare: cmp,
		logger:  o.logger,
	}
}
