package common

import "container/heap"

type NodeQueueIndex interface {
	SetIndex(index int)
	GetIndex() int
}

type NodeQueue[T any] interface {
	Peek() T         //查看堆顶，不会移除元素
	Poll() T         //从堆顶弹出一个元素
	Update(any) bool //更新元素
	Offer(T)         //插入一个元素
	Reset()
	Empty() bool
	Len() int
}

// 优先级队列
type nodeQueue[T any] struct {
	data []T
	less func(t1, t2 T) bool
}

func NewNodeQueue[T any](less func(t1, t2 T) bool) NodeQueue[T] {
	q := &nodeQueue[T]{less: less}
	heap.Init(q)
	return q
}

func (q *nodeQueue[T]) Reset() {
	q.data = q.data[:0]
}

func (q *nodeQueue[T]) Peek() T {
	return q.data[0]
}

func (q *nodeQueue[T]) Poll() T { return heap.Pop(q).(T) }

// Update restores heap order after the priority of value changed.
func (q *nodeQueue[T]) Update(value any) bool {
	if v, ok := value.(NodeQueueIndex); ok {
		idx := v.GetIndex()
		if idx < 0 || idx >= len(q.data) {
			return false
		}
		heap.Fix(q, idx)
		return true
	}
	return false
}

func (q *nodeQueue[T]) Offer(value T) { heap.Push(q, value) }

func (q *nodeQueue[T]) Push(x any) {
	q.data = append(q.data, x.(T))
	if v, ok := x.(NodeQueueIndex); ok {
		v.SetIndex(len(q.data) - 1)
	}
}

func (q *nodeQueue[T]) Pop() (res any) {
	n := len(q.data)
	res = q.data[n-1]
	var zero T
	q.data[n-1] = zero
	q.data = q.data[:n-1]
	if v, ok := res.(NodeQueueIndex); ok {
		v.SetIndex(-1)
	}
	return res
}

func (q *nodeQueue[T]) Len() int {
	return len(q.data)
}

func (q *nodeQueue[T]) Empty() bool {
	return q.Len() == 0
}

func (q *nodeQueue[T]) Less(i, j int) bool { return q.less(q.data[i], q.data[j]) }

func (q *nodeQueue[T]) Swap(i, j int) {
	var vi any = q.data[i]
	var vj any = q.data[j]
	if v, ok := vi.(NodeQueueIndex); ok {
		v.SetIndex(j)
	}
	if v, ok := vj.(NodeQueueIndex); ok {
		v.SetIndex(i)
	}
	q.data[i], q.data[j] = q.data[j], q.data[i]
}
