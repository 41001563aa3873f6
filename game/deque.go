package game

// segmentRing is a ring-buffer deque of body segments with O(1) pushFront
// and popBack, sized for the follow-the-leader shift the snake performs
// every tick.
type segmentRing struct {
	segs []BodySegment
	head int // index of the front segment
	n    int
}

func (r *segmentRing) len() int {
	return r.n
}

// at returns the segment i positions behind the front.
func (r *segmentRing) at(i int) BodySegment {
	return r.segs[(r.head+i)%len(r.segs)]
}

func (r *segmentRing) pushFront(seg BodySegment) {
	if r.n == len(r.segs) {
		r.grow()
	}
	r.head = (r.head - 1 + len(r.segs)) % len(r.segs)
	r.segs[r.head] = seg
	r.n++
}

// popBack removes and returns the rearmost segment. The caller checks len.
func (r *segmentRing) popBack() BodySegment {
	seg := r.segs[(r.head+r.n-1)%len(r.segs)]
	r.n--
	return seg
}

// grow doubles the backing array, re-packing the ring from index 0.
func (r *segmentRing) grow() {
	size := len(r.segs) * 2
	if size == 0 {
		size = 8
	}
	segs := make([]BodySegment, size)
	for i := 0; i < r.n; i++ {
		segs[i] = r.at(i)
	}
	r.segs = segs
	r.head = 0
}
