package user

import "container/heap"

// ArrivalQueue holds users that have not appeared yet. Pop always returns
// the user with the earliest StartTime, ties broken on the lower ID.
type ArrivalQueue struct {
	pq arrivalHeap
}

func NewArrivalQueue(users []*User) *ArrivalQueue {
	q := &ArrivalQueue{pq: make(arrivalHeap, len(users))}
	copy(q.pq, users)
	heap.Init(&q.pq)
	return q
}

func (q *ArrivalQueue) Push(u *User) {
	heap.Push(&q.pq, u)
}

// Peek returns the next user due, or nil when the queue is empty.
func (q *ArrivalQueue) Peek() *User {
	if len(q.pq) == 0 {
		return nil
	}
	return q.pq[0]
}

func (q *ArrivalQueue) Pop() *User {
	if len(q.pq) == 0 {
		return nil
	}
	return heap.Pop(&q.pq).(*User)
}

func (q *ArrivalQueue) IsEmpty() bool {
	return len(q.pq) == 0
}

func (q *ArrivalQueue) Size() int {
	return len(q.pq)
}

// PopDue pops every user whose StartTime is at or before now.
func (q *ArrivalQueue) PopDue(now int) []*User {
	var due []*User
	for !q.IsEmpty() && q.Peek().StartTime <= now {
		due = append(due, q.Pop())
	}
	return due
}

type arrivalHeap []*User

func (h arrivalHeap) Len() int { return len(h) }

func (h arrivalHeap) Less(i, j int) bool {
	if h[i].StartTime != h[j].StartTime {
		return h[i].StartTime < h[j].StartTime
	}
	return h[i].ID < h[j].ID
}

func (h arrivalHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *arrivalHeap) Push(x any) {
	*h = append(*h, x.(*User))
}

func (h *arrivalHeap) Pop() any {
	idx := len(*h) - 1
	res := (*h)[idx]
	(*h)[idx] = nil
	*h = (*h)[0:idx]
	return res
}
