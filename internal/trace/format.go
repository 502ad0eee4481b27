package trace

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format represents the output format for trace events.
type Format uint8

const (
	FormatAuto   Format = iota // pick by output path
	FormatText                 // human-readable text
	FormatNDJSON               // newline-delimited JSON
)

// ParseFormat converts a string to Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	default:
		return FormatAuto, fmt.Errorf("invalid trace format: %q (expected: auto|text|ndjson)", s)
	}
}

// FormatEvent formats an event according to the specified format.
func FormatEvent(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		return formatNDJSON(ev)
	}
	return formatText(ev, time.Time{})
}

type jsonEvent struct {
	Time     string            `json:"time"`
	Seq      uint64            `json:"seq"`
	Kind     string            `json:"kind"`
	Scope    string            `json:"scope"`
	SpanID   uint64            `json:"span_id,omitempty"`
	ParentID uint64            `json:"parent_id,omitempty"`
	GID      uint64            `json:"gid,omitempty"`
	Name     string            `json:"name"`
	Detail   string            `json:"detail,omitempty"`
	DurMS    float64           `json:"dur_ms,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
}

func formatNDJSON(ev *Event) []byte {
	je := jsonEvent{
		Time:     ev.Time.Format(time.RFC3339Nano),
		Seq:      ev.Seq,
		Kind:     ev.Kind.String(),
		Scope:    ev.Scope.String(),
		SpanID:   ev.SpanID,
		ParentID: ev.ParentID,
		GID:      ev.GID,
		Name:     ev.Name,
		Detail:   ev.Detail,
		DurMS:    millis(ev.Dur),
	}
	if len(ev.Fields) > 0 {
		je.Fields = make(map[string]string, len(ev.Fields))
		for _, f := range ev.Fields {
			je.Fields[f.Key] = f.Value
		}
	}
	data, err := json.Marshal(je)
	if err != nil {
		return nil
	}
	return append(data, '\n')
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

var kindGlyphs = [...]string{
	KindSpanBegin: "→ ",
	KindSpanEnd:   "← ",
	KindPoint:     "• ",
}

// formatText: [elapsed] →/←/• name (detail) {k=v, ...} +dur
// Elapsed is measured from origin; a zero origin prints the sequence number.
func formatText(ev *Event, origin time.Time) []byte {
	var sb strings.Builder

	if origin.IsZero() {
		fmt.Fprintf(&sb, "[#%06d] ", ev.Seq)
	} else {
		fmt.Fprintf(&sb, "[%9.3fms] ", millis(ev.Time.Sub(origin)))
	}
	if ev.ParentID > 0 {
		sb.WriteString("  ")
	}
	if int(ev.Kind) < len(kindGlyphs) {
		sb.WriteString(kindGlyphs[ev.Kind])
	}
	sb.WriteString(ev.Name)
	if ev.Detail != "" {
		fmt.Fprintf(&sb, " (%s)", ev.Detail)
	}
	if len(ev.Fields) > 0 {
		sb.WriteString(" {")
		for i, f := range ev.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Key)
			sb.WriteByte('=')
			sb.WriteString(f.Value)
		}
		sb.WriteByte('}')
	}
	if ev.Kind == KindSpanEnd {
		fmt.Fprintf(&sb, " +%.3fms", millis(ev.Dur))
	}
	sb.WriteByte('\n')
	return []byte(sb.String())
}
