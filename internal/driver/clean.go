package driver

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"

	"iomode/internal/indent"
	"iomode/internal/source"
)

// CleanOptions configures whitespace cleanup.
type CleanOptions struct {
	// Reindent applies the one-step nudge heuristic to every line.
	Reindent bool
	// TabWidth is the indentation step used when Reindent is set.
	TabWidth int
	// Check reports changes without writing files.
	Check bool
	// Stdout returns cleaned content in the results instead of rewriting
	// files.
	Stdout bool
	// Jobs bounds cleanup parallelism; <= 0 means NumCPU.
	Jobs int
	// Cache consults the disk cache before cleaning.
	Cache *DiskCache
}

// CleanResult captures the outcome for a single file.
type CleanResult struct {
	Path    string
	Changed bool
	Err     error
	Cleaned []byte
}

// CleanPaths strips trailing whitespace and guarantees a final newline for
// every *.io file under paths, in parallel. Unless Check or Stdout is set,
// changed files are rewritten in place.
func CleanPaths(ctx context.Context, paths []string, opts CleanOptions) ([]CleanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := listIoFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("clean: no source files found")
	}

	results := make([]CleanResult, len(files))
	err = forEachFile(ctx, files, opts.Jobs, func(_ context.Context, i int, path string) error {
		results[i] = cleanSingleFile(path, opts)
		return nil
	})
	return results, err
}

func cleanSingleFile(path string, opts CleanOptions) CleanResult {
	res := CleanResult{Path: path}

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		res.Err = err
		return res
	}
	f := fs.Get(fileID)

	cleaned, hit := cacheLookup(opts.Cache, f.Hash, opts)
	if !hit {
		cleaned = CleanBytes(f.Content, opts)
		cacheStore(opts.Cache, f.Hash, opts, cleaned)
	}

	res.Changed = !bytes.Equal(cleaned, f.Content)
	if opts.Stdout {
		res.Cleaned = cleaned
		return res
	}
	if opts.Check || !res.Changed {
		return res
	}

	if err := os.WriteFile(path, cleaned, 0o644); err != nil {
		res.Err = fmt.Errorf("clean: %s: %w", path, err)
	}
	return res
}

// CleanBytes performs the cleanup on in-memory content: trailing space/tab
// runs are stripped from every line, the file ends with exactly one newline,
// and with Reindent set each line is re-estimated against the lines above
// it.
func CleanBytes(content []byte, opts CleanOptions) []byte {
	if len(content) == 0 {
		return content
	}

	tabWidth := opts.TabWidth
	if tabWidth < 1 {
		tabWidth = 2
	}

	lines := splitLines(content)
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = trimTrailingWS(line)
		if opts.Reindent && !indent.IsBlank(line) {
			cols := indent.EstimateContext(append(cleaned, line), tabWidth)
			line = indent.Apply(line, cols)
		}
		cleaned = append(cleaned, line)
	}

	// drop blank tail lines, then terminate with one newline
	for len(cleaned) > 0 && cleaned[len(cleaned)-1] == "" {
		cleaned = cleaned[:len(cleaned)-1]
	}
	if len(cleaned) == 0 {
		return []byte{}
	}

	var out bytes.Buffer
	out.Grow(len(content) + 1)
	for _, line := range cleaned {
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.Bytes()
}

func splitLines(content []byte) []string {
	parts := bytes.Split(content, []byte("\n"))
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = string(p)
	}
	return lines
}

func trimTrailingWS(line string) string {
	end := len(line)
	for end > 0 && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}
	return line[:end]
}

func cacheKey(contentHash [32]byte, opts CleanOptions) Digest {
	// ключ учитывает опции: один и тот же файл с другим tab_width — другая
	// запись
	h := sha256.New()
	h.Write(contentHash[:])
	fmt.Fprintf(h, "reindent=%t;tab=%d", opts.Reindent, opts.TabWidth)
	var key Digest
	copy(key[:], h.Sum(nil))
	return key
}

func cacheLookup(c *DiskCache, contentHash [32]byte, opts CleanOptions) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	var payload CleanPayload
	ok, err := c.Get(cacheKey(contentHash, opts), &payload)
	if err != nil || !ok {
		return nil, false
	}
	return payload.Cleaned, true
}

func cacheStore(c *DiskCache, contentHash [32]byte, opts CleanOptions, cleaned []byte) {
	if c == nil {
		return
	}
	// ошибка кеша не мешает чистке
	_ = c.Put(cacheKey(contentHash, opts), &CleanPayload{
		Schema:  cleanCacheSchemaVersion,
		Cleaned: cleaned,
	})
}
