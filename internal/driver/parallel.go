package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"layec/internal/diag"
	"layec/internal/source"
	"layec/internal/token"
	"layec/internal/trace"
)

// SourceExt is the extension TokenizeDir looks for.
const SourceExt = ".ly"

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string        // путь к файлу, как его нашёл обход
	FileID source.FileID // ID файла в FileSet
	Tokens []token.Token
	Bag    *diag.Bag
	Cached bool
}

// ListSourceFiles возвращает отсортированный список всех *.ly файлов в директории
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// скрытые каталоги (.git, .cache) не обходим
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все *.ly файлы в директории параллельно.
// Results follow the sorted file order regardless of completion order.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	span, ctx := trace.Start(ctx, trace.ScopePass, "lex-dir")
	defer span.End(dir)
	span.Annotate(trace.Int("files", len(files)))

	// Предзагружаем все файлы последовательно: FileSet не потокобезопасен
	loadIdx := beginPhase(opts, "load")
	loaded := make([]*source.File, len(files))
	for i, path := range files {
		loaded[i] = fileSet.Open(path)
		opts.emit(Event{File: path, Status: StatusQueued})
	}
	endPhase(opts, loadIdx, strconv.Itoa(len(files))+" files")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	workerOpts := opts
	workerOpts.Timer = nil

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]TokenizeDirResult, len(files))

	lexIdx := beginPhase(opts, "lex")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			opts.emit(Event{File: path, Status: StatusWorking})

			fileSpan, fctx := trace.Start(gctx, trace.ScopeFile, "file:"+path)
			res := lexFile(fctx, fileSet, loaded[i], workerOpts)
			fileSpan.Annotate(trace.Int("tokens", len(res.Tokens))).End("")

			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: res.File.ID,
				Tokens: res.Tokens,
				Bag:    res.Bag,
				Cached: res.Cached,
			}

			status := StatusDone
			switch {
			case !res.File.Valid():
				status = StatusFailed
			case res.Cached:
				status = StatusCached
			}
			opts.emit(Event{File: path, Status: status, Tokens: len(res.Tokens), Errors: res.Bag.Count(diag.SevError)})
			return nil
		})
	}
	err = g.Wait()
	endPhase(opts, lexIdx, fmt.Sprintf("%d jobs", jobs))
	if err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func beginPhase(opts Options, name string) int {
	if opts.Timer == nil {
		return -1
	}
	return opts.Timer.Begin(name)
}

func endPhase(opts Options, idx int, note string) {
	if opts.Timer != nil {
		opts.Timer.End(idx, note)
	}
}
