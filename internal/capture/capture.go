// Package capture saves rendered frames as PNG files.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ncruces/zenity"
)

// SavePNG encodes img to path, adding a .png extension when missing.
func SavePNG(path string, img image.Image) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		path += ".png"
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create screenshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("encode screenshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close screenshot: %w", err)
	}
	return path, nil
}

// DefaultName is the suggested file name for a screenshot taken at t.
func DefaultName(t time.Time) string {
	return "brain-" + t.Format("20060102-150405") + ".png"
}

// Prompt asks where to save img and writes it. It blocks on the native
// dialog; a cancelled dialog returns "" and no error.
func Prompt(img image.Image) (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename(DefaultName(time.Now())),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return SavePNG(path, img)
}

// Request tracks one in-flight screenshot at a time.
type Request struct {
	pending bool
	busy    bool
	done    chan result
}

type result struct {
	path string
	err  error
}

// Ask marks the next frame for capture unless one is still being saved.
func (r *Request) Ask() {
	if !r.busy {
		r.pending = true
	}
}

// Pending reports whether the next frame should be grabbed.
func (r *Request) Pending() bool { return r.pending }

// Start hands the grabbed frame to save on its own goroutine.
func (r *Request) Start(img image.Image, save func(image.Image) (string, error)) {
	r.pending = false
	r.busy = true
	if r.done == nil {
		r.done = make(chan result, 1)
	}
	go func() {
		path, err := save(img)
		r.done <- result{path: path, err: err}
	}()
}

// Poll reports whether a save has finished and, if so, its outcome.
func (r *Request) Poll() (path string, finished bool, err error) {
	if !r.busy {
		return "", false, nil
	}
	select {
	case res := <-r.done:
		r.busy = false
		return res.path, true, res.err
	default:
		return "", false, nil
	}
}
