package shell

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/zhifengzhang-sz/qi-v2-dp/internal/output"
)

// watchSpec notices writes to the loaded spec file. A derived resolver
// is terminal, so the only correct reaction is advising a restart.
// Watcher failures degrade to a notice; the session keeps running.
func (s *Session) watchSpec(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		output.PrintNotice(s.out, fmt.Sprintf("spec change watcher unavailable: %v", err))
		return nil
	}
	defer watcher.Close()

	if err := watcher.Add(s.specPath); err != nil {
		output.PrintNotice(s.out, fmt.Sprintf("cannot watch %s: %v", s.specPath, err))
		return nil
	}

	notified := false
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// One notice per session is enough.
			if !notified {
				output.PrintNotice(s.out, fmt.Sprintf(
					"note: %s changed on disk; this session keeps its loaded spec, restart qicli to pick up the change", s.specPath))
				notified = true
			}
		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
		}
	}
}
