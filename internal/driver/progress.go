package driver

// Status is the lifecycle step of one file in a tokenize run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusCached
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusWorking:
		return "working"
	case StatusDone:
		return "done"
	case StatusCached:
		return "cached"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Final reports whether no further events follow for the file.
func (s Status) Final() bool {
	return s == StatusDone || s == StatusCached || s == StatusFailed
}

// Event describes a progress change for one file.
type Event struct {
	File   string
	Status Status
	Tokens int
	Errors int
}

// ProgressSink receives events from parallel workers; implementations must
// be goroutine-safe.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel. Sends block, so the reader
// must keep draining until the run returns.
type ChannelSink struct {
	C chan<- Event
}

func (s ChannelSink) OnEvent(ev Event) {
	if s.C != nil {
		s.C <- ev
	}
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(ev Event) { f(ev) }
