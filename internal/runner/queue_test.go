package runner

import "testing"

func TestObstacleQueueFIFO(t *testing.T) {
	var q ObstacleQueue

	if _, ok := q.Pop(); ok {
		t.Error("Pop on empty queue should report false")
	}
	if _, ok := q.Peek(); ok {
		t.Error("Peek on empty queue should report false")
	}

	for i := 1; i <= 3; i++ {
		q.Push(&Obstacle{SpawnOrder: i})
	}

	head, _ := q.Peek()
	if head.SpawnOrder != 1 {
		t.Errorf("head = %d, expected 1", head.SpawnOrder)
	}

	var popped []int
	for q.Len() > 0 {
		o, _ := q.Pop()
		popped = append(popped, o.SpawnOrder)
	}
	if len(popped) != 3 || popped[0] != 1 || popped[1] != 2 || popped[2] != 3 {
		t.Errorf("popped %v, expected [1 2 3]", popped)
	}
}
