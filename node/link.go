package node

import "fmt"

// Link is one worker's end of the halo channel it shares with a row-adjacent
// neighbour. The message-passing runtime supplies it: over the wire it is a
// pair of RPC mailboxes, in process it is a pair of buffered channels. Every
// row is tagged with the turn it belongs to, which is what lets a receiver
// prove it never computes a generation from a stale ghost row.
type Link interface {
	Send(turn int, row []uint8) error
	Recv(turn int) ([]uint8, error)
}

type haloMsg struct {
	turn int
	row  []uint8
}

type pipeEnd struct {
	out chan<- haloMsg
	in  <-chan haloMsg
}

func (e *pipeEnd) Send(turn int, row []uint8) error {
	e.out <- haloMsg{turn, append([]uint8(nil), row...)}
	return nil
}

func (e *pipeEnd) Recv(turn int) ([]uint8, error) {
	m, ok := <-e.in
	if !ok {
		return nil, fmt.Errorf("halo channel closed at turn %d", turn)
	}
	if m.turn != turn {
		return nil, fmt.Errorf("stale halo row: got turn %d, want turn %d", m.turn, turn)
	}
	return m.row, nil
}

// Pipe returns both ends of an in-process halo channel. The mailboxes hold a
// single row each, so a neighbour can run at most one exchange ahead before
// its next send blocks - the same pairwise back-pressure the wire transport
// provides.
func Pipe() (Link, Link) {
	a := make(chan haloMsg, 1)
	b := make(chan haloMsg, 1)
	return &pipeEnd{out: a, in: b}, &pipeEnd{out: b, in: a}
}

// Connect wires a slice of nodes, ordered by rank, into a chain of
// in-process halo channels. Used by the controller's local mode and by the
// mesh tests.
func Connect(nodes []*Node) {
	for i := 0; i < len(nodes)-1; i++ {
		below, above := Pipe()
		nodes[i].Below = below
		nodes[i+1].Above = above
	}
}
