package capture

import (
	"errors"
	"io"

	"github.com/timzifer/siggen/acquisition"
)

// Fanout delivers every packet to all sinks in order.
type Fanout []acquisition.Sink

// Send forwards p to every sink and joins their errors.
func (f Fanout) Send(p acquisition.Packet) error {
	var errs []error
	for _, sink := range f {
		if err := sink.Send(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every sink that implements io.Closer.
func (f Fanout) Close() error {
	var errs []error
	for _, sink := range f {
		if c, ok := sink.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
