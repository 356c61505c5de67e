// Package comm provides an in-process communicator for engines whose ranks
// run as goroutines of one process.
package comm

import (
	"context"
	"encoding/binary"

	"go.trai.ch/zerr"
)

const mailboxDepth = 64

// Group connects size in-process ranks with pairwise FIFO mailboxes.
type Group struct {
	size  int
	boxes [][]chan []byte // boxes[from][to]
}

// NewGroup returns a group of size ranks. Sizes below one are raised to one.
func NewGroup(size int) *Group {
	size = max(size, 1)
	boxes := make([][]chan []byte, size)
	for from := range boxes {
		boxes[from] = make([]chan []byte, size)
		for to := range boxes[from] {
			boxes[from][to] = make(chan []byte, mailboxDepth)
		}
	}
	return &Group{size: size, boxes: boxes}
}

// Size returns the number of ranks.
func (g *Group) Size() int { return g.size }

// Rank returns the endpoint of rank r.
func (g *Group) Rank(r int) *Endpoint {
	return &Endpoint{group: g, rank: r}
}

// Endpoint is one rank's view of a Group.
type Endpoint struct {
	group *Group
	rank  int
}

// Rank returns the rank of this endpoint.
func (e *Endpoint) Rank() int { return e.rank }

// Size returns the number of ranks.
func (e *Endpoint) Size() int { return e.group.size }

// Send delivers a copy of payload to rank to.
func (e *Endpoint) Send(ctx context.Context, to int, payload []byte) error {
	if to < 0 || to >= e.group.size {
		return zerr.With(zerr.New("rank out of range"), "rank", to)
	}
	msg := append([]byte(nil), payload...)
	select {
	case e.group.boxes[e.rank][to] <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Recv waits for the next payload from rank from.
func (e *Endpoint) Recv(ctx context.Context, from int) ([]byte, error) {
	if from < 0 || from >= e.group.size {
		return nil, zerr.With(zerr.New("rank out of range"), "rank", from)
	}
	select {
	case msg := <-e.group.boxes[from][e.rank]:
		return msg, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// AllGather returns every rank's payload, indexed by rank.
func (e *Endpoint) AllGather(ctx context.Context, payload []byte) ([][]byte, error) {
	for to := range e.group.size {
		if to == e.rank {
			continue
		}
		if err := e.Send(ctx, to, payload); err != nil {
			return nil, err
		}
	}

	out := make([][]byte, e.group.size)
	out[e.rank] = append([]byte(nil), payload...)
	for from := range e.group.size {
		if from == e.rank {
			continue
		}
		msg, err := e.Recv(ctx, from)
		if err != nil {
			return nil, err
		}
		out[from] = msg
	}
	return out, nil
}

// SumInt64 returns the element-wise sum of values over all ranks. Every
// rank must contribute the same number of values.
func (e *Endpoint) SumInt64(ctx context.Context, values []int64) ([]int64, error) {
	buf := make([]byte, 0, 8*len(values))
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
	}

	all, err := e.AllGather(ctx, buf)
	if err != nil {
		return nil, err
	}

	sum := make([]int64, len(values))
	for rank, payload := range all {
		if len(payload) != len(buf) {
			return nil, zerr.With(zerr.New("reduction length mismatch"), "rank", rank)
		}
		for i := range sum {
			sum[i] += int64(binary.LittleEndian.Uint64(payload[8*i:]))
		}
	}
	return sum, nil
}
