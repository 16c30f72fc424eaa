package router

import "log/slog"

// Snapshot captures a view as it was pushed.
type Snapshot struct {
	Seq       uint64 // Monotonic push counter, starting at 1
	ID        ViewID
	Name      string
	WasActive bool   // Active flag before the push
	Previous  ViewID // Top beneath at push time, InvalidView if the stack was empty
	Depth     int    // Stack depth after the push
}

// Diagnostics keeps the most recent pushes in a fixed ring for post-mortem
// inspection. Routing never reads it. Once full, the oldest snapshot is
// overwritten.
type Diagnostics struct {
	slots []Snapshot
	seq   uint64
}

func newDiagnostics(size int) *Diagnostics {
	if size <= 0 {
		size = 1
	}
	return &Diagnostics{slots: make([]Snapshot, size)}
}

func (d *Diagnostics) record(s Snapshot) {
	d.seq++
	s.Seq = d.seq
	d.slots[(d.seq-1)%uint64(len(d.slots))] = s
}

// Cap returns the number of slots.
func (d *Diagnostics) Cap() int {
	return len(d.slots)
}

// Len returns the number of recorded snapshots still held.
func (d *Diagnostics) Len() int {
	if d.seq < uint64(len(d.slots)) {
		return int(d.seq)
	}
	return len(d.slots)
}

// Total returns the number of pushes ever recorded.
func (d *Diagnostics) Total() uint64 {
	return d.seq
}

// Entries returns the held snapshots, oldest first.
func (d *Diagnostics) Entries() []Snapshot {
	n := d.Len()
	out := make([]Snapshot, 0, n)
	first := d.seq - uint64(n)
	for i := uint64(0); i < uint64(n); i++ {
		out = append(out, d.slots[(first+i)%uint64(len(d.slots))])
	}
	return out
}

// Dump writes every held snapshot to log at debug level.
func (d *Diagnostics) Dump(log *slog.Logger) {
	for _, s := range d.Entries() {
		log.Debug("opened view",
			"seq", s.Seq,
			"view", s.Name,
			"was_active", s.WasActive,
			"previous", int(s.Previous),
			"depth", s.Depth,
		)
	}
}

func (d *Diagnostics) reset() {
	clear(d.slots)
	d.seq = 0
}
