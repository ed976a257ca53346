package strategy

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/vim-fall/fall.vim/errs"
	"github.com/vim-fall/fall.vim/item"
)

// FixedSource is a Source over an in-memory, already-known list of
// values; useful for the session picker and other host-constructed lists
// that aren't streamed from disk or a process.
type FixedSource struct {
	Values []string
}

// NewFixedSource creates a Source that yields values, in order.
func NewFixedSource(values []string) FixedSource {
	return FixedSource{Values: values}
}

func (s FixedSource) Collect(ctx context.Context, out chan<- item.Item) error {
	defer close(out)
	for _, v := range s.Values {
		select {
		case out <- item.Item{Value: v}:
		case <-ctx.Done():
			return errs.Cancelled
		}
	}
	return nil
}

// WalkSource is a Source that streams every regular file path under Root,
// honoring ctx cancellation between entries so a large tree doesn't block
// shutdown.
type WalkSource struct {
	Root string
}

// NewWalkSource creates a Source that walks root.
func NewWalkSource(root string) WalkSource {
	return WalkSource{Root: root}
}

var errWalkCancelled = errors.New("strategy: walk cancelled")

func (s WalkSource) Collect(ctx context.Context, out chan<- item.Item) error {
	defer close(out)
	err := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return errWalkCancelled
		default:
		}
		if d.IsDir() {
			return nil
		}
		select {
		case out <- item.Item{Value: path, Detail: path}:
		case <-ctx.Done():
			return errWalkCancelled
		}
		return nil
	})
	if errors.Is(err, errWalkCancelled) {
		return errs.Cancelled
	}
	return err
}
