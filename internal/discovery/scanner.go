// Package discovery scans the games folder and produces metadata for
// every game source file it finds. One malformed file never aborts a
// scan: it becomes an error entry and the scan continues with the
// remaining files.
package discovery

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gameverse/internal/metadata"
)

// ScanError records a single file that could not be analyzed.
type ScanError struct {
	File string
	Err  error
}

func (e ScanError) Error() string {
	return fmt.Sprintf("discovery: %s: %v", e.File, e.Err)
}

// Result aggregates one full scan: the discovered games in directory
// order plus per-file analysis errors.
type Result struct {
	Games  []metadata.GameMetadata
	Errors []ScanError
}

// Scanner discovers games under a single folder. Two layouts are
// recognized: a bare <id>.go file, or an <id>/main.go directory for
// games that need their own package.
type Scanner struct {
	gamesDir string
	logger   *log.Logger
}

// NewScanner creates a scanner for the given games folder.
func NewScanner(gamesDir string, logger *log.Logger) *Scanner {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Scanner{gamesDir: gamesDir, logger: logger}
}

// Scan walks the games folder once and analyzes every candidate file.
// A missing folder yields an empty result, not an error.
func (s *Scanner) Scan() (Result, error) {
	var res Result

	entries, err := os.ReadDir(s.gamesDir)
	if os.IsNotExist(err) {
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("discovery: cannot read %s: %w", s.gamesDir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}

		var id, rel string
		switch {
		case entry.IsDir():
			id = name
			rel = filepath.ToSlash(filepath.Join(name, "main.go"))
			if _, err := os.Stat(filepath.Join(s.gamesDir, name, "main.go")); err != nil {
				continue
			}
		case strings.HasSuffix(name, ".go"):
			id = strings.TrimSuffix(name, ".go")
			rel = name
		default:
			continue
		}

		game, err := s.analyze(id, rel)
		if err != nil {
			s.logger.Warn("skipping unanalyzable game", "file", rel, "error", err)
			res.Errors = append(res.Errors, ScanError{File: rel, Err: err})
			continue
		}
		res.Games = append(res.Games, game)
	}

	return res, nil
}

// analyze reads one game file, checks that it parses as Go source
// (parse only, never build or run), and extracts its metadata from
// the raw text.
func (s *Scanner) analyze(id, rel string) (metadata.GameMetadata, error) {
	full := filepath.Join(s.gamesDir, filepath.FromSlash(rel))

	data, err := os.ReadFile(full)
	if err != nil {
		return metadata.GameMetadata{}, err
	}

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, rel, data, parser.ParseComments); err != nil {
		return metadata.GameMetadata{}, err
	}

	return metadata.Extract(id, rel, string(data)), nil
}
