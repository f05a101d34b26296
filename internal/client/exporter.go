package client

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/ziadkadry99/brandcraft/internal/brand"
	"github.com/ziadkadry99/brandcraft/internal/export"
	"github.com/ziadkadry99/brandcraft/internal/schedule"
)

const (
	CopyAllLabel    = "Copy All"
	CopiedLabel     = "Copied!"
	CopyRevertDelay = 2000 * time.Millisecond
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Downloader saves exported content under name.
type Downloader interface {
	Download(name, mimeType string, content []byte) error
}

// DirDownloader writes downloads into a directory.
type DirDownloader struct {
	Dir string

	// Saved is the path of the most recent download.
	Saved string
}

func (d *DirDownloader) Download(name, mimeType string, content []byte) error {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating download directory: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	d.Saved = path
	return nil
}

// Exporter implements the Copy All and Download actions over a Session.
type Exporter struct {
	session   *Session
	clipboard Clipboard
	download  Downloader
	clock     schedule.Clock

	mu     sync.Mutex
	label  string
	gen    int
	revert schedule.Task
}

// NewExporter wires an Exporter.
func NewExporter(session *Session, cb Clipboard, dl Downloader, clock schedule.Clock) *Exporter {
	return &Exporter{
		session:   session,
		clipboard: cb,
		download:  dl,
		clock:     clock,
		label:     CopyAllLabel,
	}
}

// Label is the current text of the Copy All button.
func (e *Exporter) Label() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.label
}

// CopyAll writes the current result to the clipboard. It reports false and
// does nothing when no generation has succeeded yet.
func (e *Exporter) CopyAll() (bool, error) {
	res := e.session.Last()
	if res == nil {
		return false, nil
	}
	if err := e.clipboard.WriteAll(export.CopyText(res)); err != nil {
		return false, fmt.Errorf("copying to clipboard: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.label = CopiedLabel
	e.gen++
	gen := e.gen
	if e.revert != nil {
		e.revert.Stop()
	}
	e.revert = e.clock.AfterFunc(CopyRevertDelay, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if gen == e.gen {
			e.label = CopyAllLabel
		}
	})
	return true, nil
}

// DownloadAll saves the current result as a text document headed by the
// idea and style currently in form. It reports false and does nothing when
// no generation has succeeded yet.
func (e *Exporter) DownloadAll(form brand.Request) (bool, error) {
	res := e.session.Last()
	if res == nil {
		return false, nil
	}
	text := export.DownloadText(form.Idea, form.Style, res)
	if err := e.download.Download(export.Filename, export.MIMEType, []byte(text)); err != nil {
		return false, err
	}
	return true, nil
}

// Close cancels a pending label revert.
func (e *Exporter) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.revert != nil {
		e.revert.Stop()
		e.revert = nil
	}
}
