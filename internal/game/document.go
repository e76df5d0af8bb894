package game

import (
	"path/filepath"

	"github.com/ncruces/zenity"
)

type pickResult struct {
	path string
	err  error
}

// documentPicker runs the native file dialog off the game loop and hands
// the result back through poll, so the loop never blocks on it.
type documentPicker struct {
	pending chan pickResult
	chosen  string
}

func (d *documentPicker) open() {
	if d.pending != nil {
		return
	}
	ch := make(chan pickResult, 1)
	d.pending = ch
	go func() {
		path, err := zenity.SelectFile(
			zenity.Title("Open Document"),
			zenity.FileFilters{{
				Name:     "Documents",
				Patterns: []string{"*.pdf", "*.txt", "*.md"},
			}},
		)
		ch <- pickResult{path: path, err: err}
	}()
}

func (d *documentPicker) poll() (pickResult, bool) {
	if d.pending == nil {
		return pickResult{}, false
	}
	select {
	case res := <-d.pending:
		d.pending = nil
		if res.err == nil {
			d.chosen = res.path
		}
		return res, true
	default:
		return pickResult{}, false
	}
}

func (d *documentPicker) name() string {
	if d.chosen == "" {
		return ""
	}
	return filepath.Base(d.chosen)
}
