package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
)

// Adapter loads raw catalogs keyed by language.
type Adapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves catalogs from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single catalog file from disk.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns an adapter for one file. A nil parser is chosen from
// the file extension.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil {
		parser = NewParserForFile(path)
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	if a.parser == nil {
		return nil, fmt.Errorf("%w: unsupported file %q", ErrFailedToParseFile, a.path)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	return parseContent(ctx, a.parser, a.path, content)
}

// FSAdapter loads every supported catalog file of a directory in an fs.FS,
// such as an embed.FS. Files are read in name order and merged key by key,
// so later files override leaves of earlier ones.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter returns an adapter for dir inside fsys. With a nil parser each
// file gets a parser matching its extension.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// NewDirectoryAdapter returns an FSAdapter reading a directory on disk.
func NewDirectoryAdapter(parser Parser, dir string) *FSAdapter {
	return NewFSAdapter(parser, os.DirFS(filepath.Clean(dir)), ".")
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		parser := a.parser
		if parser == nil {
			parser = NewParserForFile(entry.Name())
		}
		if parser == nil || !parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		catalogs, err := parseContent(ctx, parser, name, content)
		if err != nil {
			return nil, err
		}
		for lang, messages := range catalogs {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(messages))
			}
			merge(all[lang], messages)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoCatalogFiles, a.dir)
	}

	return all, nil
}

func parseContent(ctx context.Context, parser Parser, name string, content []byte) (map[string]map[string]any, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %q is empty", ErrFailedToParseFile, name)
	}

	catalogs, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w: %q", ErrFailedToParseFile, name), err)
	}
	if catalogs == nil {
		return nil, fmt.Errorf("%w: %q has no catalogs", ErrFailedToParseFile, name)
	}

	return catalogs, nil
}

// merge copies src into dst, descending into maps present on both sides.
func merge(dst, src map[string]any) {
	for k, v := range src {
		sub, ok := v.(map[string]any)
		if !ok {
			dst[k] = v
			continue
		}
		existing, ok := dst[k].(map[string]any)
		if !ok {
			existing = make(map[string]any, len(sub))
			dst[k] = existing
		}
		merge(existing, sub)
	}
}
