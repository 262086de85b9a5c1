package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// LoadFS reads every JSON and YAML file in dir of fsys and merges them.
// Keys of later files override earlier ones for the same language; files
// are visited in lexical order. Other files are skipped.
func LoadFS(ctx context.Context, fsys fs.FS, dir string) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrParsingCancelled, err)
		}
		if entry.IsDir() {
			continue
		}
		parser := ParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		name := path.Join(dir, entry.Name())
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		parsed, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for lang, translations := range parsed {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(translations))
			}
			maps.Copy(all[lang], translations)
		}
	}

	if len(all) == 0 {
		return nil, ErrNoTranslations
	}
	return all, nil
}
