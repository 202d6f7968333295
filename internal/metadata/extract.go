package metadata

import (
	"path"
	"strings"
)

// titleScanLines bounds the comment scan in ExtractTitle.
// descScanLines bounds the comment scan in ExtractDescription.
const (
	titleScanLines = 20
	descScanLines  = 30
)

// Extract produces metadata for a single game source file. The id is
// the filename stem (or directory name for directory-based games) and
// file is the path relative to the games folder. Extraction never
// fails: every heuristic has a default.
func Extract(id, file, src string) GameMetadata {
	return GameMetadata{
		ID:                id,
		Title:             ExtractTitle(src, id),
		File:              file,
		Description:       ExtractDescription(src),
		Category:          DetectCategory(src),
		Difficulty:        DefaultDifficulty,
		EstimatedPlaytime: DefaultPlaytime,
		Multiplayer:       DetectMultiplayer(src),
		Requirements:      ExtractRequirements(src),
		Version:           DefaultVersion,
		Author:            DefaultAuthor,
		Tags:              GenerateTags(src),
		Thumbnail:         path.Join("assets", "thumbnails", id+".png"),
	}
}

// ExtractTitle finds a display title. Precedence, first match wins:
//  1. a comment in the first 20 lines containing "title" or "name"
//     with a ":" or "-" separator
//  2. the first line of the leading documentation block
//  3. the filename stem converted to title case
func ExtractTitle(src, id string) string {
	lines := strings.Split(src, "\n")
	limit := titleScanLines
	if len(lines) < limit {
		limit = len(lines)
	}

	for _, line := range lines[:limit] {
		body, ok := commentBody(line)
		if !ok {
			continue
		}
		lower := strings.ToLower(body)
		if !strings.Contains(lower, "title") && !strings.Contains(lower, "name") {
			continue
		}
		if i := strings.Index(body, ":"); i >= 0 {
			return strings.TrimSpace(body[i+1:])
		}
		if i := strings.Index(body, "-"); i >= 0 {
			return strings.TrimSpace(body[i+1:])
		}
	}

	if block := docBlock(src); len(block) > 0 {
		return block[0]
	}

	return TitleFromID(id)
}

// ExtractDescription finds a description. Precedence:
//  1. the leading documentation block, lines after the first joined
//     with single spaces
//  2. an early comment containing "description" or "about" with a ":"
//  3. a fixed default
func ExtractDescription(src string) string {
	if block := docBlock(src); len(block) > 1 {
		return strings.Join(block[1:], " ")
	}

	lines := strings.Split(src, "\n")
	limit := descScanLines
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		body, ok := commentBody(line)
		if !ok {
			continue
		}
		lower := strings.ToLower(body)
		if strings.Contains(lower, "description") || strings.Contains(lower, "about") {
			if i := strings.Index(body, ":"); i >= 0 {
				return strings.TrimSpace(body[i+1:])
			}
		}
	}

	return DefaultDescription
}

// DetectCategory classifies the source by its first matching keyword
// set, in the fixed priority order of categoryKeywords. Falls back to
// arcade when nothing matches.
func DetectCategory(src string) Category {
	lower := strings.ToLower(src)
	for _, ck := range categoryKeywords {
		if containsAny(lower, ck.Words) {
			return ck.Category
		}
	}
	return CategoryArcade
}

// DetectMultiplayer reports whether any multiplayer keyword occurs in
// the source.
func DetectMultiplayer(src string) bool {
	return containsAny(strings.ToLower(src), multiplayerKeywords)
}

// ExtractRequirements collects third-party import paths by textual
// inspection of import statements. Standard-library imports are
// recognized by the missing dot in the first path segment and
// excluded. The Bubble Tea default is always present.
func ExtractRequirements(src string) []string {
	seen := map[string]bool{DefaultRequirement: true}
	reqs := []string{DefaultRequirement}

	inBlock := false
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "import ("):
			inBlock = true
			continue
		case inBlock && line == ")":
			inBlock = false
			continue
		case !inBlock && !strings.HasPrefix(line, "import "):
			continue
		}

		p := quotedPath(line)
		if p == "" || seen[p] {
			continue
		}
		first := p
		if i := strings.Index(first, "/"); i >= 0 {
			first = first[:i]
		}
		if !strings.Contains(first, ".") {
			// No dot in the first segment: standard library.
			continue
		}
		seen[p] = true
		reqs = append(reqs, p)
	}

	return reqs
}

// GenerateTags runs the independent tag keyword tests and truncates
// the result to five tags.
func GenerateTags(src string) []string {
	lower := strings.ToLower(src)
	var tags []string
	for _, tk := range tagKeywords {
		if containsAny(lower, tk.Words) {
			tags = append(tags, tk.Tag)
		}
		if len(tags) == maxTags {
			break
		}
	}
	return tags
}

// commentBody returns the text of a line comment, stripped of the
// marker and surrounding whitespace. Both Go and shell-style markers
// are recognized so the extractor keeps working on script games.
func commentBody(line string) (string, bool) {
	line = strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(line, "//"):
		return strings.TrimSpace(strings.TrimPrefix(line, "//")), true
	case strings.HasPrefix(line, "#"):
		return strings.TrimSpace(strings.TrimPrefix(line, "#")), true
	}
	return "", false
}

// docBlock returns the leading documentation block: the contiguous run
// of comment lines (or a single /* */ block) before the first
// non-comment line. Blank interior lines are kept out, empty result
// means there is no block.
func docBlock(src string) []string {
	lines := strings.Split(src, "\n")
	var block []string
	inStar := false

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if inStar {
			end := strings.Index(line, "*/")
			if end >= 0 {
				if text := strings.TrimSpace(line[:end]); text != "" {
					block = append(block, text)
				}
				return block
			}
			if text := strings.TrimSpace(strings.TrimPrefix(line, "*")); text != "" {
				block = append(block, text)
			}
			continue
		}

		if line == "" {
			if len(block) > 0 {
				return block
			}
			continue
		}

		if strings.HasPrefix(line, "/*") {
			inStar = true
			rest := strings.TrimPrefix(line, "/*")
			if end := strings.Index(rest, "*/"); end >= 0 {
				if text := strings.TrimSpace(rest[:end]); text != "" {
					block = append(block, text)
				}
				return block
			}
			if text := strings.TrimSpace(rest); text != "" {
				block = append(block, text)
			}
			continue
		}

		if body, ok := commentBody(line); ok {
			if body != "" {
				block = append(block, body)
			}
			continue
		}

		// First non-comment line ends the block.
		return block
	}

	return block
}

// quotedPath extracts the import path between double quotes, if any.
func quotedPath(line string) string {
	start := strings.Index(line, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(line[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return line[start+1 : start+1+end]
}
