package lexer

import (
	"brainrot/internal/diag"
	"brainrot/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter получает диагностики о нераспознанных символах.
	// Может быть nil, тогда ошибки игнорируем (но продолжаем лексить).
	Reporter diag.Reporter
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	diag.ReportWarning(lx.opts.Reporter, code, sp, msg).Emit()
}
