package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// TranslationAdapter defines how translations are loaded. The result maps a
// language code to its (possibly nested) messages.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// Parser decodes the content of one translation file. The top-level keys of
// a file are language codes.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether files with ext are handled.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// YAMLParser implements Parser for YAML files.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return splitLanguages(data)
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser implements Parser for JSON files.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return splitLanguages(data)
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// ParserForFile picks a parser by file extension, or returns nil.
func ParserForFile(name string) Parser {
	ext := filepath.Ext(name)
	for _, p := range []Parser{NewYAMLParser(), NewJSONParser()} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

func splitLanguages(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		messages, ok := asStringMap(val)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidTranslations, lang, val)
		}
		result[lang] = messages
	}
	if len(result) == 0 {
		return nil, ErrNoTranslationFound
	}
	return result, nil
}

// MapAdapter uses an in-memory map as the translation source.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single translation file from disk.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// NewFileAdapterFor picks the parser from the extension of path.
func NewFileAdapterFor(path string) (*FileAdapter, error) {
	parser := ParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	return NewFileAdapter(parser, path), nil
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a == nil {
		return nil, ErrInvalidAdapterConfig
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	translations, err := a.parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", a.path, err))
	}
	return translations, nil
}

// FSAdapter loads every supported file of one directory in a file system,
// merging the languages they define. Later files (in lexical order) win on
// conflicting top-level keys.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewEmbeddedFsAdapter reads dir from fsys, typically an embed.FS.
// Returns nil if parser or fsys is nil or dir is empty.
func NewEmbeddedFsAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil || dir == "" {
		return nil
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// NewDirectoryAdapter reads a directory on disk.
// Returns nil if parser is nil or path is empty.
func NewDirectoryAdapter(parser Parser, dir string) *FSAdapter {
	if parser == nil || dir == "" {
		return nil
	}
	return &FSAdapter{parser: parser, fsys: os.DirFS(dir), dir: "."}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a == nil {
		return nil, ErrInvalidAdapterConfig
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
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
		translations, err := a.parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
		}

		for lang, messages := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			maps.Copy(all[lang], messages)
		}
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFound, a.dir)
	}
	return all, nil
}

// MultiAdapter layers several adapters. Messages of later adapters override
// those of earlier ones key by key, so a partial catalog can patch a complete
// one.
type MultiAdapter struct {
	adapters []TranslationAdapter
}

// NewMultiAdapter skips nil adapters.
func NewMultiAdapter(adapters ...TranslationAdapter) *MultiAdapter {
	m := &MultiAdapter{}
	for _, a := range adapters {
		if a != nil {
			m.adapters = append(m.adapters, a)
		}
	}
	return m
}

func (m *MultiAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if m == nil || len(m.adapters) == 0 {
		return nil, ErrInvalidAdapterConfig
	}

	all := make(map[string]map[string]any)
	for _, a := range m.adapters {
		translations, err := a.Load(ctx)
		if err != nil {
			return nil, err
		}
		for lang, messages := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			mergeMessages(all[lang], messages)
		}
	}
	return all, nil
}

func mergeMessages(dst, src map[string]any) {
	for k, v := range src {
		sv, srcIsMap := asStringMap(v)
		dv, dstIsMap := asStringMap(dst[k])
		if srcIsMap && dstIsMap {
			merged := make(map[string]any, len(dv))
			maps.Copy(merged, dv)
			mergeMessages(merged, sv)
			dst[k] = merged
			continue
		}
		dst[k] = v
	}
}
