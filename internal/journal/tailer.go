// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package journal

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// JOURNAL TAILER
// =============================================================================

// Tailer follows the newest Journal.*.log file in a directory, delivering
// complete lines in the order they are appended. When the game starts a new
// journal file the tailer rotates to it and reads it from the beginning.
//
// Change detection uses fsnotify when available and falls back to polling
// when the platform cannot provide a watcher.
type Tailer struct {
	dir      string
	replay   bool
	interval time.Duration

	lines chan []byte

	mu      sync.Mutex
	file    *os.File
	path    string
	pending []byte

	ctx     context.Context
	cancel  context.CancelFunc
	watcher *fsnotify.Watcher
}

// NewTailer creates a tailer for the given journal directory. When replay is
// true the newest existing journal file is read from its start, recovering
// events from earlier in the current session; otherwise only lines appended
// after Start are delivered.
func NewTailer(dir string, replay bool, pollInterval time.Duration) *Tailer {
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Tailer{
		dir:      dir,
		replay:   replay,
		interval: pollInterval,
		lines:    make(chan []byte, 1024),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Lines returns the channel complete journal lines are delivered on. The
// channel is closed when the tailer shuts down.
func (t *Tailer) Lines() <-chan []byte {
	return t.lines
}

// Start opens the newest journal file and begins watching for appends.
// A directory with no journal files yet is fine; the tailer picks up the
// first file when it appears.
func (t *Tailer) Start() error {
	t.mu.Lock()
	if path := latestJournal(t.dir); path != "" {
		if err := t.openLocked(path, !t.replay); err != nil {
			t.mu.Unlock()
			return err
		}
	}
	t.mu.Unlock()

	if w, err := fsnotify.NewWatcher(); err == nil {
		if err := w.Add(t.dir); err == nil {
			t.watcher = w
			go t.runFsnotify()
			return nil
		}
		w.Close()
	}

	// Platform without a usable watcher; poll instead.
	go t.runPolling()
	return nil
}

// Close stops the tailer and closes the line channel.
func (t *Tailer) Close() error {
	t.cancel()
	if t.watcher != nil {
		t.watcher.Close()
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.file != nil {
		t.file.Close()
		t.file = nil
	}
	return nil
}

// =============================================================================
// EVENT LOOPS
// =============================================================================

func (t *Tailer) runFsnotify() {
	defer close(t.lines)

	// Safety net for missed notifications; some editors and network
	// filesystems do not generate write events reliably.
	ticker := time.NewTicker(10 * t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.ctx.Done():
			return

		case event, ok := <-t.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			name := filepath.Base(event.Name)
			if !isJournalFile(name) {
				continue
			}
			t.poll()

		case _, ok := <-t.watcher.Errors:
			if !ok {
				return
			}
			// Watcher errors are non-fatal; the ticker still drives reads.

		case <-ticker.C:
			t.poll()
		}
	}
}

func (t *Tailer) runPolling() {
	defer close(t.lines)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.ctx.Done():
			return
		case <-ticker.C:
			t.poll()
		}
	}
}

// poll drains the current file, then rotates to a newer journal file if one
// has appeared and drains that too.
func (t *Tailer) poll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.readAvailableLocked()

	latest := latestJournal(t.dir)
	if latest == "" || latest == t.path {
		return
	}
	if err := t.openLocked(latest, false); err != nil {
		return
	}
	t.readAvailableLocked()
}

// =============================================================================
// FILE HANDLING
// =============================================================================

// openLocked switches the tailer to the given file. Callers hold t.mu.
func (t *Tailer) openLocked(path string, seekEnd bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	if seekEnd {
		if _, err := f.Seek(0, io.SeekEnd); err != nil {
			f.Close()
			return err
		}
	}
	if t.file != nil {
		t.file.Close()
	}
	t.file = f
	t.path = path
	t.pending = nil
	return nil
}

// readAvailableLocked reads newly appended bytes and delivers every complete
// line. A trailing partial line stays buffered until its newline arrives.
// Callers hold t.mu.
func (t *Tailer) readAvailableLocked() {
	if t.file == nil {
		return
	}

	buf := make([]byte, 64*1024)
	for {
		n, err := t.file.Read(buf)
		if n > 0 {
			t.pending = append(t.pending, buf[:n]...)
		}
		if err != nil {
			break
		}
	}

	for {
		i := bytes.IndexByte(t.pending, '\n')
		if i < 0 {
			return
		}
		line := bytes.TrimSpace(t.pending[:i])
		t.pending = t.pending[i+1:]
		if len(line) == 0 {
			continue
		}
		out := make([]byte, len(line))
		copy(out, line)
		select {
		case t.lines <- out:
		case <-t.ctx.Done():
			return
		}
	}
}

// latestJournal returns the path of the newest journal file in dir, or ""
// when none exist. Journal filenames embed a timestamp, so the
// lexicographically greatest name is the newest.
func latestJournal(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if isJournalFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return filepath.Join(dir, names[len(names)-1])
}

func isJournalFile(name string) bool {
	return strings.HasPrefix(name, "Journal.") && strings.HasSuffix(name, ".log")
}
