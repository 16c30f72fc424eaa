//go:build linux

package input

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/signalframe/pkg/signalframe/internal"
)

// Reader pumps key events from an evdev device into a Sink.
type Reader struct {
	dev    *evdev.InputDevice
	path   string
	mapper *Mapper
	sink   Sink
	log    *slog.Logger
}

// Open opens the evdev device at path. With grab set the device is taken
// exclusively so other consumers stop seeing its events.
func Open(path string, grab bool, mapper *Mapper, sink Sink) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", path, err)
	}
	if grab {
		if err := dev.Grab(); err != nil {
			dev.Close()
			return nil, fmt.Errorf("input: grab %s: %w", path, err)
		}
	}

	log := internal.GetInternalLogger().With("device", path)
	if name, err := dev.Name(); err == nil {
		log.Debug("input device opened", "name", name)
	}
	return &Reader{dev: dev, path: path, mapper: mapper, sink: sink, log: log}, nil
}

// Run reads events until ctx is done or the device fails. Cancelling ctx
// closes the device.
func (r *Reader) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		r.dev.Close()
	})
	defer stop()

	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, os.ErrClosed) {
				return nil
			}
			return fmt.Errorf("input: read %s: %w", r.path, err)
		}
		if ev.Type != evdev.EV_KEY {
			continue
		}

		at := time.Unix(int64(ev.Time.Sec), int64(ev.Time.Usec)*1000)
		id, vb, ok := r.mapper.Translate(uint16(ev.Code), ev.Value, at)
		if !ok {
			continue
		}
		r.log.Debug("button", "button", vb.GetName(), "signal", id.String())
		if err := r.sink.EmitSignal(id, nil); err != nil {
			r.log.Warn("button dropped", "button", vb.GetName(), "error", err)
		}
	}
}

// Close releases the device.
func (r *Reader) Close() error {
	return r.dev.Close()
}
