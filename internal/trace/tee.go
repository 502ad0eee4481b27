package trace

import "errors"

// teeTracer отдаёт каждое событие всем вложенным трейсерам.
type teeTracer struct {
	level Level
	sinks []Tracer
}

// Tee fans events out to every sink.
func Tee(level Level, sinks ...Tracer) Tracer {
	return &teeTracer{level: level, sinks: sinks}
}

func (t *teeTracer) Emit(ev *Event) {
	if ev == nil {
		return
	}
	if ev.Seq == 0 {
		ev.Seq = NextSeq()
	}
	for _, s := range t.sinks {
		s.Emit(ev)
	}
}

func (t *teeTracer) Flush() error {
	var errs []error
	for _, s := range t.sinks {
		errs = append(errs, s.Flush())
	}
	return errors.Join(errs...)
}

func (t *teeTracer) Close() error {
	var errs []error
	for _, s := range t.sinks {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}

func (t *teeTracer) Level() Level  { return t.level }
func (t *teeTracer) Enabled() bool { return t.level > LevelOff }
