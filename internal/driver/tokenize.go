package driver

import (
	"context"

	"layec/internal/diag"
	"layec/internal/lexer"
	"layec/internal/source"
	"layec/internal/token"
	"layec/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	Cached  bool
}

// Tokenize загружает один файл и лексит его. Нечитаемый файл не ошибка:
// результат пустой, а в Bag лежит IOLoadFileError. Ошибка возвращается
// только при отмене ctx.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	span, ctx := trace.Start(ctx, trace.ScopePass, "lex")
	defer span.End(path)

	fs := source.NewFileSet()
	file := loadFile(fs, path, opts)
	res := lexFile(ctx, fs, file, opts)
	span.Annotate(trace.Int("tokens", len(res.Tokens)))
	return res, nil
}

// TokenizeSource lexes an already loaded file, e.g. stdin.
func TokenizeSource(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	return lexFile(ctx, fs, file, opts)
}

func loadFile(fs *source.FileSet, path string, opts Options) *source.File {
	idx := beginPhase(opts, "load")
	file := fs.Open(path)
	endPhase(opts, idx, path)
	return file
}

// lexFile: кэш -> лексер -> кэш. Shared by Tokenize and TokenizeDir workers.
func lexFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	log := opts.logger()
	res := &TokenizeResult{FileSet: fs, File: file, Bag: diag.NewBag()}

	if !file.Valid() {
		log.Warn("cannot read source", "path", file.Name(), "err", file.Err)
		res.Bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: file.ID},
			"failed to load file: "+errString(file.Err)))
		return res
	}

	key := KeyFor(file, opts.Stepping)
	if opts.Cache != nil {
		entry, ok, err := opts.Cache.Get(key, file.ID)
		switch {
		case err != nil:
			log.Warn("token cache read failed", "path", file.Name(), "err", err)
		case ok:
			trace.Mark(ctx, trace.ScopeDetail, "cache-hit", file.Name())
			res.Tokens = entry.Tokens
			for _, d := range entry.Diagnostics {
				res.Bag.Add(d)
			}
			res.Cached = true
			return res
		}
	}

	idx := beginPhase(opts, "lex")
	res.Tokens = lexer.Tokenize(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: res.Bag},
		Stepping: opts.Stepping,
	})
	endPhase(opts, idx, file.Name())
	log.Debug("lexed", "path", file.Name(), "tokens", len(res.Tokens), "diagnostics", res.Bag.Len())

	if opts.Cache != nil {
		err := opts.Cache.Put(key, &CachedTokens{
			Path:        file.Name(),
			Tokens:      res.Tokens,
			Diagnostics: res.Bag.Items(),
		})
		if err != nil {
			log.Warn("token cache write failed", "path", file.Name(), "err", err)
		} else {
			trace.Mark(ctx, trace.ScopeDetail, "cache-put", file.Name())
		}
	}
	return res
}

func errString(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
