//go:build !linux

package input

import "context"

// Reader is unavailable off Linux.
type Reader struct{}

func Open(path string, grab bool, mapper *Mapper, sink Sink) (*Reader, error) {
	return nil, ErrUnsupported
}

func (r *Reader) Run(ctx context.Context) error {
	return ErrUnsupported
}

func (r *Reader) Close() error {
	return nil
}
