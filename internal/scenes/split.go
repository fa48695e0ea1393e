package scenes

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"slugline/internal/patterns"
)

// ErrNoScenes reports a document with no recognizable scene heading.
var ErrNoScenes = errors.New("no scene headings found")

// Block is one scene's slice of the document. Header is the heading line;
// Text is the full block including the heading. Blocks are immutable once
// returned by Split.
type Block struct {
	Number int
	Header string
	Text   string
}

// SecondLine returns the first line after the heading, or "".
func (b Block) SecondLine() string {
	lines := strings.Split(b.Text, "\n")
	if len(lines) < 2 {
		return ""
	}
	return strings.TrimSpace(lines[1])
}

// Splitter cuts documents into scene blocks.
type Splitter struct {
	lib *patterns.Library
}

// NewSplitter returns a splitter over the given pattern library.
func NewSplitter(lib *patterns.Library) *Splitter {
	return &Splitter{lib: lib}
}

// Split returns the document's scene blocks sorted ascending by scene
// number. Text before the first heading is discarded. Duplicate numbers
// keep their document order relative to each other. Returns ErrNoScenes
// when no heading matches.
func (s *Splitter) Split(text string) ([]Block, error) {
	marks := s.lib.SceneMarker.FindAllStringSubmatchIndex(text, -1)
	if len(marks) == 0 {
		return nil, ErrNoScenes
	}

	blocks := make([]Block, 0, len(marks))
	for i, mark := range marks {
		number, err := strconv.Atoi(text[mark[2]:mark[3]])
		if err != nil {
			continue
		}
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		raw := strings.TrimRight(text[mark[0]:end], " \t\n")
		header := raw
		if idx := strings.IndexByte(raw, '\n'); idx >= 0 {
			header = raw[:idx]
		}
		blocks = append(blocks, Block{
			Number: number,
			Header: strings.TrimSpace(header),
			Text:   raw,
		})
	}
	if len(blocks) == 0 {
		return nil, ErrNoScenes
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Number < blocks[j].Number
	})
	return blocks, nil
}
