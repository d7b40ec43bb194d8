package ai

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"careerkit/internal/errors"
)

// promptReloadDebounce collapses bursts of file events into one reload.
const promptReloadDebounce = 500 * time.Millisecond

// PromptStore loads per-tool prompt override files from a directory and
// keeps them current while the process runs. Files are named
// <slug>.system.txt or <slug>.user.txt. A nil store is valid and always
// resolves to the built-in defaults.
type PromptStore struct {
	dir     string
	logger  *errors.Logger
	watcher *fsnotify.Watcher

	mu     sync.RWMutex
	system map[string]string
	user   map[string]string
}

// NewPromptStore creates a store for the given directory. An empty
// directory path returns a nil store.
func NewPromptStore(dir string, logger *errors.Logger) (*PromptStore, error) {
	if dir == "" {
		return nil, nil
	}

	store := &PromptStore{
		dir:    dir,
		logger: logger,
		system: make(map[string]string),
		user:   make(map[string]string),
	}
	if err := store.loadAll(); err != nil {
		return nil, err
	}
	return store, nil
}

// Watch reloads prompt files when they change on disk. It blocks until the
// context is cancelled and is intended to run in its own goroutine.
func (ps *PromptStore) Watch(ctx context.Context) error {
	if ps == nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.NewIOError(errors.ErrCodeFileNotFound, "Failed to create prompt file watcher", err)
	}
	ps.watcher = watcher
	defer watcher.Close()

	if err := watcher.Add(ps.dir); err != nil {
		return errors.NewIOError(errors.ErrCodeFileNotFound, "Failed to watch prompts directory", err)
	}

	ps.logger.Info("Watching prompt directory for changes", "dir", ps.dir)

	var reloadTimer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Remove) {
				continue
			}
			if !strings.HasSuffix(event.Name, ".txt") {
				continue
			}
			// Debounce: editors emit several events per save.
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			reloadTimer = time.AfterFunc(promptReloadDebounce, func() {
				if err := ps.loadAll(); err != nil {
					ps.logger.LogError(err, "Failed to reload prompt files", "dir", ps.dir)
					return
				}
				ps.logger.Info("Prompt files reloaded", "dir", ps.dir, "trigger", event.Name)
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			ps.logger.Warn("Prompt file watcher error", "error", err.Error())
		}
	}
}

// loadAll reads every prompt file in the directory into memory.
func (ps *PromptStore) loadAll() error {
	entries, err := os.ReadDir(ps.dir)
	if err != nil {
		return errors.NewIOError(errors.ErrCodeFileNotFound, "Failed to read prompts directory", err)
	}

	system := make(map[string]string)
	user := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		slug, kind, ok := parsePromptFileName(entry.Name())
		if !ok {
			continue
		}
		content, err := os.ReadFile(filepath.Join(ps.dir, entry.Name()))
		if err != nil {
			return errors.NewIOError(errors.ErrCodeFileNotFound, "Failed to read prompt file "+entry.Name(), err)
		}
		text := strings.TrimSpace(string(content))
		if text == "" {
			continue
		}
		switch kind {
		case "system":
			system[slug] = text
		case "user":
			user[slug] = text
		}
	}

	ps.mu.Lock()
	ps.system = system
	ps.user = user
	ps.mu.Unlock()
	return nil
}

// parsePromptFileName splits "<slug>.<kind>.txt" into its parts.
func parsePromptFileName(name string) (slug, kind string, ok bool) {
	base, found := strings.CutSuffix(name, ".txt")
	if !found {
		return "", "", false
	}
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return "", "", false
	}
	slug, kind = base[:idx], base[idx+1:]
	if kind != "system" && kind != "user" {
		return "", "", false
	}
	return slug, kind, true
}

// SystemPrompt returns the loaded system prompt override for a tool, or ""
// when none exists.
func (ps *PromptStore) SystemPrompt(slug string) string {
	if ps == nil {
		return ""
	}
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.system[slug]
}

// UserPrompt returns the loaded user prompt override for a tool, or ""
// when none exists.
func (ps *PromptStore) UserPrompt(slug string) string {
	if ps == nil {
		return ""
	}
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.user[slug]
}
