package lexer

import (
	"fmt"

	"layec/internal/buffer"
	"layec/internal/source"
	"layec/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
	done   bool         // EOF уже выдан
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file, opts.Stepping),
		opts:   opts,
	}
}

// Next возвращает следующий токен с уже собранными Leading/Trailing.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if lx.done || lx.cursor.EOF() {
		lx.done = true
		return token.NewPunct(token.EOF, lx.emptySpan())
	}

	before := lx.cursor.Off
	tok := lx.readToken()
	if lx.cursor.Off == before {
		panic(fmt.Errorf("lexer: no progress at offset %d in %s", before, lx.file.Name()))
	}
	if tok.Kind == token.EOF {
		lx.done = true
	}
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Cursor exposes the current cursor state, mostly for tests.
func (lx *Lexer) Cursor() Cursor { return lx.cursor }

func (lx *Lexer) emptySpan() source.Span {
	return source.PointSpan(lx.file.ID, lx.cursor.Location())
}

// readToken: leading trivia, сам токен, trailing trivia до конца строки.
func (lx *Lexer) readToken() token.Token {
	if lx.cursor.EOF() {
		panic(fmt.Errorf("lexer: readToken called at EOF in %s", lx.file.Name()))
	}

	leading := lx.scanTrivia(false)
	start := lx.cursor.Location()

	// только trivia до конца файла
	if lx.cursor.EOF() {
		lx.cursor.Advance()
		tok := token.NewPunct(token.EOF, lx.cursor.SpanFrom(start))
		tok.Leading = leading
		return tok
	}

	r := lx.cursor.Rune()
	var tok token.Token
	switch {
	case isIdentPart(r):
		tok = lx.scanIdentOrNumber(start)
	case r == '"':
		tok = lx.scanString(start)
	default:
		var ok bool
		if tok, ok = lx.scanOperatorOrPunct(start); !ok {
			tok = lx.scanUnknown(start)
		}
	}

	tok.Leading = leading
	tok.Trailing = lx.scanTrivia(true)
	return tok
}

// Tokenize lexes the whole file. The result always ends with exactly one EOF
// token. An invalid file yields nil and no diagnostics.
func Tokenize(file *source.File, opts Options) []token.Token {
	if file == nil || !file.Valid() {
		return nil
	}
	lx := New(file, opts)
	out := buffer.NewList[token.Token](len(file.Content)/4 + 1)
	for {
		tok := lx.Next()
		out.Append(tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return out.Finalize()
}
