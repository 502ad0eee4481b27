package trace

import (
	"bufio"
	"io"
	"sync"
	"time"
)

// StreamTracer writes each event as it arrives. Output is buffered; Flush
// pushes it to the underlying writer and syncs files.
type StreamTracer struct {
	mu     sync.Mutex
	dst    io.Writer
	bw     *bufio.Writer
	level  Level
	format Format
	origin time.Time
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	if format == FormatAuto {
		format = FormatText
	}
	return &StreamTracer{
		dst:    w,
		bw:     bufio.NewWriter(w),
		level:  level,
		format: format,
		origin: time.Now(),
	}
}

func (t *StreamTracer) Emit(ev *Event) {
	if ev == nil || !t.level.ShouldEmit(ev.Scope) {
		return
	}
	if ev.Seq == 0 {
		ev.Seq = NextSeq()
	}
	var data []byte
	if t.format == FormatNDJSON {
		data = formatNDJSON(ev)
	} else {
		data = formatText(ev, t.origin)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// ошибки записи трассы не должны ронять лексинг
	_, _ = t.bw.Write(data)
}

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.bw.Flush(); err != nil {
		return err
	}
	if s, ok := t.dst.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

// Close flushes and closes the writer if it is an io.Closer.
func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if c, ok := t.dst.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (t *StreamTracer) Level() Level  { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
