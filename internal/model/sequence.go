package model

import "sync/atomic"

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// Sequence hands out account numbers.
type Sequence interface {
	Next() int64
}

// Counter is a Sequence safe for concurrent use. The first call to Next
// returns the start value.
type Counter struct {
	next atomic.Int64
}

func NewCounter(start int64) *Counter {
	c := &Counter{}
	c.next.Store(start)
	return c
}

func (c *Counter) Next() int64 {
	return c.next.Add(1) - 1
}
