package trace

import (
	"strconv"
	"time"
)

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
)

var kindNames = [...]string{
	KindSpanBegin: "begin",
	KindSpanEnd:   "end",
	KindPoint:     "point",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event; smaller is coarser.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // one CLI command
	ScopePass                    // lex pass over a file or a directory
	ScopeFile                    // a single file inside a directory run
	ScopeDetail                  // cache hits, writes
)

var scopeNames = [...]string{
	ScopeDriver: "driver",
	ScopePass:   "pass",
	ScopeFile:   "file",
	ScopeDetail: "detail",
}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

// Field is one key/value annotation. Order of fields is kept in output.
type Field struct {
	Key   string
	Value string
}

func Str(key, value string) Field { return Field{Key: key, Value: value} }

func Int(key string, n int) Field { return Field{Key: key, Value: strconv.Itoa(n)} }

// Event is a single trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // монотонный, общий для всех трейсеров
	Kind     Kind
	Scope    Scope
	SpanID   uint64 // 0 для точечных событий
	ParentID uint64
	GID      uint64
	Name     string // "tokenize", "lex", "file:src/a.ly"
	Detail   string
	Dur      time.Duration // только у KindSpanEnd
	Fields   []Field
}
