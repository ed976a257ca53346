package strategy

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vim-fall/fall.vim/errs"
	"github.com/vim-fall/fall.vim/item"
)

// TextPreview is a Previewer for items whose Value is a filesystem path.
// When the item's Detail is a non-empty string, that string itself is the
// preview (split on newlines, not capped, and the file is not read);
// otherwise it reads the file's lines (capped at MaxLines). Either way it
// guesses a filetype hint from Value's extension, for a host to feed to a
// syntax highlighter.
type TextPreview struct {
	MaxLines int
}

// NewTextPreview creates a TextPreview capped at maxLines (<=0 means a
// default of 500).
func NewTextPreview(maxLines int) TextPreview {
	if maxLines <= 0 {
		maxLines = 500
	}
	return TextPreview{MaxLines: maxLines}
}

func (t TextPreview) Preview(ctx context.Context, it item.Item) (*item.PreviewPayload, error) {
	if detail, ok := it.Detail.(string); ok && detail != "" {
		return &item.PreviewPayload{Lines: strings.Split(detail, "\n"), Filetype: filetype(it.Value)}, nil
	}

	f, err := os.Open(it.Value)
	if err != nil {
		return nil, fmt.Errorf("textpreview: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() && len(lines) < t.MaxLines {
		select {
		case <-ctx.Done():
			return nil, errs.Cancelled
		default:
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("textpreview: %w", err)
	}
	return &item.PreviewPayload{Lines: lines, Filetype: filetype(it.Value)}, nil
}

func filetype(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return ext
}
