package fileutils

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// NewFileWatcher creates a new fsnotify.Watcher and adds the specified directory to it.
//
// Example usage:
//
//	watch, err := NewFileWatcher(logger, dirName)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = WaitForFile(logger, watch, time.Second*5) // err is set if timeout was reached
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewFileWatcher(logger *slog.Logger, watchDir string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	err = watcher.Add(watchDir)
	if err != nil {
		watcher.Close()
		return nil, err
	}
	logger.Debug("Watching", "watchDir", watchDir)
	return watcher, nil
}

// WaitForFile waits for a file event to occur in the watcher, and then closes the watcher
func WaitForFile(logger *slog.Logger, watcher *fsnotify.Watcher, timeout time.Duration) error {
	defer watcher.Close()
	logger = logger.WithGroup("fileutils")
	logger.Debug("Waiting for file event", "timeout", timeout)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0 {
				logger.Debug("Relevant file event received", "event.Name", event.Name)
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			return fmt.Errorf("error from watcher: %w", err)
		case <-timer.C:
			return errors.New("timeout waiting for file event")
		}
	}
}
