package lexer

import (
	"layec/internal/diag"
	"layec/internal/source"
)

func (lx *Lexer) reporter() diag.Reporter {
	if lx.opts.Reporter == nil {
		return diag.NopReporter{}
	}
	return lx.opts.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(lx.reporter(), code, sp, msg).Emit()
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	diag.ReportWarning(lx.reporter(), code, sp, msg).Emit()
}

func (lx *Lexer) infoLex(code diag.Code, sp source.Span, msg string) {
	diag.ReportInfo(lx.reporter(), code, sp, msg).Emit()
}
