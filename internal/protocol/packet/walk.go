package packet

// Walk visits p and every descendant breadth first. The walk stops early
// when fn returns false.
func Walk(p *Packet, fn func(*Packet) bool) {
	if p == nil {
		return
	}
	queue := []*Packet{p}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if !fn(next) {
			return
		}
		queue = append(queue, next.Children...)
	}
}

// VersionSum adds the version of every packet in the tree.
func VersionSum(p *Packet) uint64 {
	var sum uint64
	Walk(p, func(n *Packet) bool {
		sum += uint64(n.Version)
		return true
	})
	return sum
}

// Count is the number of packets in the tree.
func Count(p *Packet) int {
	n := 0
	Walk(p, func(*Packet) bool {
		n++
		return true
	})
	return n
}
