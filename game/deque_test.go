package game

import (
	"testing"

	"github.com/lixenwraith/snake/vmath"
)

func seg(x, y int) BodySegment {
	return BodySegment{Location: vmath.Vec2{X: x, Y: y}}
}

func TestSegmentRingPushFrontOrder(t *testing.T) {
	var r segmentRing
	r.pushFront(seg(1, 0))
	r.pushFront(seg(2, 0))
	r.pushFront(seg(3, 0))

	if r.len() != 3 {
		t.Fatalf("len = %d, want 3", r.len())
	}
	// Most recently pushed segment is at the front.
	want := []int{3, 2, 1}
	for i, x := range want {
		if got := r.at(i).Location.X; got != x {
			t.Errorf("at(%d).X = %d, want %d", i, got, x)
		}
	}
}

func TestSegmentRingPopBack(t *testing.T) {
	var r segmentRing
	r.pushFront(seg(1, 0))
	r.pushFront(seg(2, 0))

	back := r.popBack()
	if back.Location.X != 1 {
		t.Errorf("popBack().X = %d, want 1", back.Location.X)
	}
	if r.len() != 1 {
		t.Errorf("len after pop = %d, want 1", r.len())
	}
	if r.at(0).Location.X != 2 {
		t.Errorf("remaining front X = %d, want 2", r.at(0).Location.X)
	}
}

func TestSegmentRingRotation(t *testing.T) {
	// The per-tick shift: pop the tail, move it, push it at the front.
	var r segmentRing
	for i := 1; i <= 4; i++ {
		r.pushFront(seg(i, 0))
	}

	tail := r.popBack()
	tail.Location = vmath.Vec2{X: 5, Y: 0}
	r.pushFront(tail)

	want := []int{5, 4, 3, 2}
	for i, x := range want {
		if got := r.at(i).Location.X; got != x {
			t.Errorf("at(%d).X = %d, want %d", i, got, x)
		}
	}
}

func TestSegmentRingGrowsPastInitialCapacity(t *testing.T) {
	var r segmentRing
	const total = 100
	for i := 0; i < total; i++ {
		r.pushFront(seg(i, 0))
	}

	if r.len() != total {
		t.Fatalf("len = %d, want %d", r.len(), total)
	}
	for i := 0; i < total; i++ {
		if got := r.at(i).Location.X; got != total-1-i {
			t.Fatalf("at(%d).X = %d, want %d", i, got, total-1-i)
		}
	}
}
