// Package diag defines the diagnostic model shared by the lexer, the driver
// and the renderers.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// # Emitting diagnostics
//
// Producers talk to a Reporter rather than to storage. ReportError,
// ReportWarning and ReportInfo return a ReportBuilder; chain WithNote and
// finish with Emit. BagReporter collects into a Bag.
//
// A Bag is append-only: no deduplication, no limit, no reordering. Nothing
// in this package aborts on an error severity; deciding what to do with
// errors is the caller's business.
//
// # Scope
//
// Package diag does not perform any formatting beyond the canonical
// one-line form, IO, or CLI integration. Rendering lives in internal/diagfmt.
package diag
