package cassels

import (
	"Cassels/results"
)

// Sink receives survivors. results.Writer is the usual implementation.
type Sink interface {
	Emit(results.Record) error
	Flush() error
}

// Collector forwards survivors from the workers of one batch to a sink. Only
// the collector touches the sink, so the sink needs no locking.
type Collector struct {
	sink  Sink
	count int
}

func NewCollector(sink Sink) *Collector {
	return &Collector{sink: sink}
}

// Drain forwards records until found is closed. It stops at the first sink
// error; the caller is then responsible for releasing the senders.
func (c *Collector) Drain(found <-chan results.Record) error {
	for r := range found {
		if err := c.sink.Emit(r); err != nil {
			return err
		}
		c.count++
	}
	return nil
}

// Count returns the number of records forwarded.
func (c *Collector) Count() int {
	return c.count
}
