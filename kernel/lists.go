package kernel

// unlink removes t from a doubly linked list whose head/tail are held by
// the caller, using only t's own links — no search required, matching
// spec.md §4.2's remove_ready contract ("unlinks without search; links
// known").
func unlink(head, tail **TCB, t *TCB) {
	if t.prev != nil {
		t.prev.next = t.next
	} else {
		*head = t.next
	}
	if t.next != nil {
		t.next.prev = t.prev
	} else {
		*tail = t.prev
	}
	t.prev, t.next = nil, nil
}

// insertReady walks from the ready head to the first task of lower
// priority (higher numeric value) and links t before it, keeping the
// ready list in strictly ascending priority order.
func (k *Kernel) insertReady(t *TCB) {
	t.list = listReady

	if k.readyHead == nil {
		t.prev, t.next = nil, nil
		k.readyHead, k.readyTail = t, t
		return
	}

	node := k.readyHead
	for node != nil && node.priority < t.priority {
		node = node.next
	}

	if node == nil {
		t.prev, t.next = k.readyTail, nil
		k.readyTail.next = t
		k.readyTail = t
		return
	}

	t.next = node
	t.prev = node.prev
	if node.prev != nil {
		node.prev.next = t
	} else {
		k.readyHead = t
	}
	node.prev = t
}

// removeReady unlinks t from the ready list. The idle task may never be
// removed; spec.md §4.2 calls this an error.
func (k *Kernel) removeReady(t *TCB) {
	if t == k.idle {
		k.reportInvariantBreach("removeReady: idle task may never leave the ready list")
		return
	}
	unlink(&k.readyHead, &k.readyTail, t)
	t.list = listNone
}

// insertDelayed inserts t, delta-encoding absolute delay into the
// existing chain: walk while the next node's own delta is still covered
// by the remaining delay, subtracting as we go; the node-nil check comes
// before any dereference of delayTicks, which is the fix open question 2
// in spec.md §9 calls for. t's stored delta becomes whatever delay is
// left over, and the node it displaces (if any) has that same amount
// subtracted from its own delta so it still represents time relative to
// its new predecessor.
func (k *Kernel) insertDelayed(t *TCB, absolute uint32) {
	t.list = listDelayed

	remaining := absolute
	var prev *TCB
	node := k.delayedHead
	for node != nil && node.delayTicks <= remaining {
		remaining -= node.delayTicks
		prev = node
		node = node.next
	}

	t.delayTicks = remaining
	t.prev, t.next = prev, node

	if prev != nil {
		prev.next = t
	} else {
		k.delayedHead = t
	}

	if node != nil {
		node.delayTicks -= remaining
		node.prev = t
	} else {
		k.delayedTail = t
	}
}

// popExpiredDelayed moves every delayed-list head whose delta has reached
// zero onto the ready list, in head order, repeating until the new head
// has a nonzero delta or the list empties.
func (k *Kernel) popExpiredDelayed() {
	for k.delayedHead != nil && k.delayedHead.delayTicks == 0 {
		t := k.delayedHead
		unlink(&k.delayedHead, &k.delayedTail, t)
		t.list = listNone
		k.insertReady(t)
	}
}

// tickDelayed decrements the delayed list's head delta by one tick and
// promotes every entry that has now expired.
func (k *Kernel) tickDelayed() {
	if k.delayedHead != nil {
		k.delayedHead.delayTicks--
	}
	k.popExpiredDelayed()
}

// insertPending inserts t into a priority-ordered pending list addressed
// by head, walking until a strictly lower-priority (higher numeric)
// node is found and linking t before it, or appending at the tail.
func insertPending(head **TCB, t *TCB) {
	t.list = listPending

	if *head == nil || t.priority < (*head).priority {
		t.next = *head
		t.prev = nil
		if *head != nil {
			(*head).prev = t
		}
		*head = t
		return
	}

	node := *head
	for node.next != nil && node.next.priority < t.priority {
		node = node.next
	}
	t.next = node.next
	t.prev = node
	if node.next != nil {
		node.next.prev = t
	}
	node.next = t
}

// removePendingHead pops and returns the highest-priority waiter, or nil
// if the list is empty. The nil check on the new head happens before any
// dereference, which is the fix open question 3 in spec.md §9 calls for
// (the single-waiter case must not dereference a nil successor).
func removePendingHead(head **TCB) *TCB {
	t := *head
	if t == nil {
		return nil
	}
	*head = t.next
	if *head != nil {
		(*head).prev = nil
	}
	t.prev, t.next = nil, nil
	t.list = listNone
	return t
}
