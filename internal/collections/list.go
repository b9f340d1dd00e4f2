// README: Generic ordered doubly-linked list used by parks and movement logs.
package collections

import "iter"

// List keeps elements in insertion order unless SortedInsert is used.
// The zero value is not usable; call New.
type List[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

type node[T comparable] struct {
	prev *node[T]
	next *node[T]
	val  T
}

func New[T comparable]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) Len() int {
	return l.size
}

// Front returns the first element, false when the list is empty.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.val, true
}

// Append inserts v at the tail.
func (l *List[T]) Append(v T) {
	n := &node[T]{val: v, prev: l.tail}
	if l.head == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// SortedInsert places v immediately before the first element that compares
// greater, so elements comparing equal keep their insertion order.
func (l *List[T]) SortedInsert(v T, cmp func(a, b T) int) {
	n := &node[T]{val: v}
	for cur := l.head; cur != nil; cur = cur.next {
		if cmp(v, cur.val) < 0 {
			n.next = cur
			n.prev = cur.prev
			if cur.prev != nil {
				cur.prev.next = n
			} else {
				l.head = n
			}
			cur.prev = n
			l.size++
			return
		}
	}
	l.Append(v)
}

// Remove unlinks the node holding exactly v (identity match).
// Reports whether a node was removed.
func (l *List[T]) Remove(v T) bool {
	cur := l.head
	for cur != nil && cur.val != v {
		cur = cur.next
	}
	if cur == nil {
		return false
	}
	if cur.prev != nil {
		cur.prev.next = cur.next
	} else {
		l.head = cur.next
	}
	if cur.next != nil {
		cur.next.prev = cur.prev
	} else {
		l.tail = cur.prev
	}
	l.size--
	return true
}

// All iterates front to back. The successor is captured before each yield,
// so the caller may remove the element it just visited.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := l.head
		for cur != nil {
			next := cur.next
			if !yield(cur.val) {
				return
			}
			cur = next
		}
	}
}
