package tpntree

// IterDepthFirst returns a depth-first iterator over the subtree rooted at
// t, starting with t itself.
//
// On every step one node is popped off a stack, its children are pushed in
// enumeration order and the popped node is yielded. Because the stack is
// last-in-first-out the most recently enumerated child is visited before its
// earlier enumerated siblings. This exact order is part of the contract.
func (t *Tree[T]) IterDepthFirst() *DepthFirstIterator[T] {
	return &DepthFirstIterator[T]{stack: []*Tree[T]{t}}
}

// DepthFirstIterator is a read-only depth-first view over existing nodes.
// The tree must not be divided while the iterator is in use.
type DepthFirstIterator[T any] struct {
	stack []*Tree[T]
}

// Next yields the next node, or false when the traversal is done.
func (it *DepthFirstIterator[T]) Next() (*Tree[T], bool) {
	if len(it.stack) == 0 {
		return nil, false
	}

	tree := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]

	for i := range tree.children {
		it.stack = append(it.stack, &tree.children[i])
	}
	return tree, true
}

// IterBreadthFirst returns a breadth-first iterator over the subtree rooted
// at t, starting with t itself. All nodes at depth d are yielded before any
// node at depth d+1, children in enumeration order.
func (t *Tree[T]) IterBreadthFirst() *BreadthFirstIterator[T] {
	return &BreadthFirstIterator[T]{queue: []*Tree[T]{t}}
}

// BreadthFirstIterator is a read-only level-order view over existing nodes.
// The tree must not be divided while the iterator is in use.
type BreadthFirstIterator[T any] struct {
	queue []*Tree[T]
}

// Next yields the next node, or false when the traversal is done.
func (it *BreadthFirstIterator[T]) Next() (*Tree[T], bool) {
	if len(it.queue) == 0 {
		return nil, false
	}

	tree := it.queue[0]
	it.queue = it.queue[1:]

	for i := range tree.children {
		it.queue = append(it.queue, &tree.children[i])
	}
	return tree, true
}
