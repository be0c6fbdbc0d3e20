package cursorkit

import "iter"

// List is a doubly linked list that hands out cursors over its nodes.
//
// Its cursors use the node pointer as their place,
// so equality means "the same node" even when two nodes hold equal values.
// The zero List is an empty list ready for use.
type List[E any] struct {
	head   *ListNode[E]
	tail   *ListNode[E]
	length int
}

// ListNode is a single place within a List.
// Cursors over a List advance node by node and dereference to the node's value.
type ListNode[E any] struct {
	value E
	prev  *ListNode[E]
	next  *ListNode[E]
}

// Append adds values to the back of the list.
func (l *List[E]) Append(vs ...E) {
	for _, v := range vs {
		n := &ListNode[E]{value: v, prev: l.tail}
		if l.tail != nil {
			l.tail.next = n
		} else {
			l.head = n
		}
		l.tail = n
		l.length++
	}
}

// Prepend adds values to the front of the list, keeping their order.
func (l *List[E]) Prepend(vs ...E) {
	for i := len(vs) - 1; 0 <= i; i-- {
		n := &ListNode[E]{value: vs[i], next: l.head}
		if l.head != nil {
			l.head.prev = n
		} else {
			l.tail = n
		}
		l.head = n
		l.length++
	}
}

// Len tells how many values the list holds.
func (l *List[E]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Begin returns a cursor standing on the first node of the list.
func (l *List[E]) Begin() Cursor[*ListNode[E], E] {
	return nodeCursor(l.first(), func(n *ListNode[E]) *ListNode[E] { return n.next })
}

// End returns the cursor that a forward traversal reaches after the last node.
func (l *List[E]) End() Cursor[*ListNode[E], E] { return Cursor[*ListNode[E], E]{} }

// RBegin returns a cursor standing on the last node of the list.
func (l *List[E]) RBegin() Cursor[*ListNode[E], E] {
	return nodeCursor(l.last(), func(n *ListNode[E]) *ListNode[E] { return n.prev })
}

// REnd returns the cursor that a backwards traversal reaches after the first node.
func (l *List[E]) REnd() Cursor[*ListNode[E], E] { return Cursor[*ListNode[E], E]{} }

// Iter returns an iterator over the values of the list, front to back.
func (l *List[E]) Iter() iter.Seq[E] {
	return Values[*ListNode[E], E](l)
}

func (l *List[E]) first() *ListNode[E] {
	if l == nil {
		return nil
	}
	return l.head
}

func (l *List[E]) last() *ListNode[E] {
	if l == nil {
		return nil
	}
	return l.tail
}

func nodeCursor[E any](start *ListNode[E], step func(*ListNode[E]) *ListNode[E]) Cursor[*ListNode[E], E] {
	var pos Position[*ListNode[E]]
	if start != nil {
		pos = At(start)
	}
	return New(
		pos,
		AdvanceFunc[*ListNode[E]](func(p *Position[*ListNode[E]]) {
			n, ok := p.Lookup()
			if !ok {
				return
			}
			if next := step(n); next != nil {
				p.Set(next)
			} else {
				p.Unset()
			}
		}),
		func(n *ListNode[E]) E { return n.value },
		EqualAddresses[ListNode[E]](),
	)
}
