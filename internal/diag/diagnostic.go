package diag

import (
	"fmt"

	"layec/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is immutable once it has been added to a Bag.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// Format renders the canonical one-line form
// "<name>:<line>:<col>: <severity>: <message>".
func (d Diagnostic) Format(sourceName string) string {
	return fmt.Sprintf("%s:%d:%d: %s: %s",
		sourceName, d.Primary.Start.Line, d.Primary.Start.Col, d.Severity, d.Message)
}
