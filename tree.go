package bst

import (
	"fmt"
	"strings"
)

func (t *tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

func (t *tree[T]) Size() int {
	if t.IsEmpty() {
		return 0
	}
	return t.size
}

// Insert adds value and reports whether a new node was attached. A value
// equal to one already present is ignored and the stored value is kept.
func (t *tree[T]) Insert(value T) bool {
	inserted := t.recursiveInsert(&t.root, value)
	if inserted {
		t.size++
	} else {
		t.logger.Debug().Interface("value", value).Msg("duplicate value ignored")
	}
	return inserted
}

func (t *tree[T]) recursiveInsert(curNode **node[T], value T) bool {
	curr := *curNode
	if curr == nil {
		replaceRef(curNode, newNode(value))
		return true
	}

	switch c := t.compare(value, curr.value); {
	case c < 0:
		return t.recursiveInsert(&curr.left, value)
	case c > 0:
		return t.recursiveInsert(&curr.right, value)
	}
	return false
}

func (t *tree[T]) Search(value T) bool {
	return t.find(value) != nil
}

func (t *tree[T]) find(value T) *node[T] {
	if t.IsEmpty() {
		return nil
	}
	curr := t.root
	for curr != nil {
		c := t.compare(value, curr.value)
		if c == 0 {
			return curr
		}
		if c < 0 {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}
	return nil
}

// Delete removes value and reports whether it was present. A node with two
// children takes the value of its in-order successor, which is then removed
// from the right subtree.
func (t *tree[T]) Delete(value T) bool {
	if t.IsEmpty() {
		return false
	}
	deleted := t.recursiveDelete(&t.root, value)
	if deleted {
		t.size--
	} else {
		t.logger.Debug().Interface("value", value).Msg("value to delete not found")
	}
	return deleted
}

func (t *tree[T]) recursiveDelete(curNode **node[T], value T) bool {
	curr := *curNode
	if curr == nil {
		return false
	}

	c := t.compare(value, curr.value)
	if c < 0 {
		return t.recursiveDelete(&curr.left, value)
	}
	if c > 0 {
		return t.recursiveDelete(&curr.right, value)
	}

	if curr.left == nil {
		replaceRef(curNode, curr.right)
		return true
	}
	if curr.right == nil {
		replaceRef(curNode, curr.left)
		return true
	}

	// the successor has no left child, so removing it below cannot
	// come back to this case
	successor := curr.right.minimum()
	t.logger.Debug().
		Interface("value", value).
		Interface("successor", successor.value).
		Msg("promoting in-order successor")
	curr.value = duplicate(successor.value)
	return t.recursiveDelete(&curr.right, curr.value)
}

func (t *tree[T]) Min() (T, bool) {
	var zero T
	if t.IsEmpty() {
		return zero, false
	}
	return t.root.minimum().value, true
}

func (t *tree[T]) Max() (T, bool) {
	var zero T
	if t.IsEmpty() {
		return zero, false
	}
	return t.root.maximum().value, true
}

func (t *tree[T]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	return t.root.height()
}

// InOrder returns the values in ascending order.
func (t *tree[T]) InOrder() []T {
	return t.collect(InOrder)
}

// PreOrder returns the values root first, the order that rebuilds the same
// shape when inserted into an empty tree.
func (t *tree[T]) PreOrder() []T {
	return t.collect(PreOrder)
}

// PostOrder returns the values children first.
func (t *tree[T]) PostOrder() []T {
	return t.collect(PostOrder)
}

func (t *tree[T]) collect(order Order) []T {
	values := make([]T, 0, t.Size())
	t.Walk(order, func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// Walk visits every value depth-first in the given order until fn returns
// false. The tree must not be modified from fn.
func (t *tree[T]) Walk(order Order, fn Callback[T]) {
	if t.IsEmpty() {
		return
	}
	t.root.walk(order, fn)
}

func (t *tree[T]) Root() Node[T] {
	if t.IsEmpty() {
		return nil
	}
	return t.root
}

func (t *tree[T]) Clone() Tree[T] {
	return &tree[T]{
		size:    t.Size(),
		root:    t.root.clone(),
		compare: t.compare,
		logger:  t.logger,
	}
}

func (t *tree[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	t.Walk(InOrder, func(v T) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, v)
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
