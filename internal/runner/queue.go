package runner

// ObstacleQueue holds spawned obstacles the player has not passed yet, in
// spawn order. The head is always the oldest pending obstacle.
type ObstacleQueue struct {
	items []*Obstacle
}

// Push appends an obstacle at the tail.
func (q *ObstacleQueue) Push(o *Obstacle) {
	q.items = append(q.items, o)
}

// Peek returns the head without removing it.
func (q *ObstacleQueue) Peek() (*Obstacle, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	return q.items[0], true
}

// Pop removes and returns the head. It is a no-op on an empty queue.
func (q *ObstacleQueue) Pop() (*Obstacle, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	head := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return head, true
}

// Len returns the number of pending obstacles.
func (q *ObstacleQueue) Len() int {
	return len(q.items)
}

// SpawnOrders returns the spawn order of every pending obstacle, head first.
func (q *ObstacleQueue) SpawnOrders() []int {
	orders := make([]int, len(q.items))
	for i, o := range q.items {
		orders[i] = o.SpawnOrder
	}
	return orders
}

func (q *ObstacleQueue) reset() {
	q.items = nil
}
