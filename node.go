package bst

func (n *node[T]) Value() T {
	return n.value
}

func (n *node[T]) Left() Node[T] {
	if n.left == nil {
		return nil
	}
	return n.left
}

func (n *node[T]) Right() Node[T] {
	if n.right == nil {
		return nil
	}
	return n.right
}

// find the left-most node under n
func (n *node[T]) minimum() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[T]) maximum() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// height counts node levels, an absent node has height 0
func (n *node[T]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

func (n *node[T]) clone() *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		value: duplicate(n.value),
		left:  n.left.clone(),
		right: n.right.clone(),
	}
}

func (n *node[T]) walk(order Order, fn Callback[T]) traverseAction {
	if n == nil {
		return traverseContinue
	}

	if order == PreOrder && !fn(n.value) {
		return traverseStop
	}
	if n.left.walk(order, fn) == traverseStop {
		return traverseStop
	}
	if order == InOrder && !fn(n.value) {
		return traverseStop
	}
	if n.right.walk(order, fn) == traverseStop {
		return traverseStop
	}
	if order == PostOrder && !fn(n.value) {
		return traverseStop
	}
	return traverseContinue
}

// modify the slot the node hangs from, ** means ref to pointer
func replaceRef[T any](slot **node[T], n *node[T]) {
	*slot = n
}
