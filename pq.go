package gridpath

import "container/heap"

// priorityQueueItem is one frontier entry; a cell may own several.
type priorityQueueItem struct {
	Cell         Cell
	Priority     float64
	Sequence     uint64
	IndexInQueue int
}

// priorityQueue implements heap.Interface, ordering items by priority, then by
// insertion sequence.
type priorityQueue []*priorityQueueItem

func (queue priorityQueue) Len() int { return len(queue) }
func (queue priorityQueue) Less(i, j int) bool {
	if queue[i].Priority != queue[j].Priority {
		return queue[i].Priority < queue[j].Priority
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue priorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *priorityQueue) Push(x any) {
	item := x.(*priorityQueueItem)
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *priorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

// Frontier is the open set of a search: a min-priority queue with a
// first-inserted-wins tie-break plus a membership set.
//
// A cell may have several entries in the queue after its cost improves.
// PopMin drops the cell from the membership set on every pop, so callers
// discard stale entries for cells they have already expanded.
type Frontier struct {
	queue   priorityQueue
	members map[Cell]struct{}
	nextSeq uint64
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	f := &Frontier{
		queue:   make(priorityQueue, 0),
		members: make(map[Cell]struct{}),
	}
	heap.Init(&f.queue)
	return f
}

// Push enqueues cell with the given priority key.
func (f *Frontier) Push(cell Cell, priority float64) {
	heap.Push(&f.queue, &priorityQueueItem{Cell: cell, Priority: priority, Sequence: f.nextSeq})
	f.nextSeq++
	f.members[cell] = struct{}{}
}

// PopMin removes and returns the lowest-ordered cell.
func (f *Frontier) PopMin() (Cell, error) {
	if f.queue.Len() == 0 {
		return Cell{}, ErrFrontierEmpty
	}
	item := heap.Pop(&f.queue).(*priorityQueueItem)
	delete(f.members, item.Cell)
	return item.Cell, nil
}

// Contains reports whether cell is currently enqueued and not yet popped.
func (f *Frontier) Contains(cell Cell) bool {
	_, ok := f.members[cell]
	return ok
}

// IsEmpty reports whether no entries remain, stale ones included.
func (f *Frontier) IsEmpty() bool { return f.queue.Len() == 0 }

// Len returns the number of queued entries, stale ones included.
func (f *Frontier) Len() int { return f.queue.Len() }
