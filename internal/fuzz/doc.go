// Package fuzztests houses Go fuzz harnesses for the Laye lexer. They feed
// arbitrary bytes through a FileSet and the lexer in both stepping modes and
// check that lexing always terminates with well-formed spans.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/diag, internal/token.
package fuzztests
