package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	domaincfg "mindflow-backend/domain/config"
)

// runtimeOverrides is the on-disk shape of the override file. Only the
// tunable subset of the domain config is exposed.
type runtimeOverrides struct {
	AnalysisDelayMillis    *int  `json:"analysis_delay_ms"`
	EnableRemoteClassifier *bool `json:"enable_remote_classifier"`
	EnableEventPublishing  *bool `json:"enable_event_publishing"`
	MaxContentLength       *int  `json:"max_content_length"`
}

// Watcher reloads domain config overrides when the override file changes,
// so operators can tune behavior without a restart.
type Watcher struct {
	path     string
	logger   *zap.Logger
	onChange func(*domaincfg.DomainConfig)
	base     *domaincfg.DomainConfig
	watcher  *fsnotify.Watcher
}

// NewWatcher creates a watcher for the override file. onChange receives the
// merged config after every successful reload.
func NewWatcher(path string, base *domaincfg.DomainConfig, logger *zap.Logger, onChange func(*domaincfg.DomainConfig)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     path,
		logger:   logger,
		onChange: onChange,
		base:     base,
		watcher:  fsw,
	}

	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, err
	}

	// Apply the current file contents before watching for changes.
	w.reload()

	go w.run()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	raw, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Warn("reading config overrides", zap.String("path", w.path), zap.Error(err))
		return
	}

	var overrides runtimeOverrides
	if err := json.Unmarshal(raw, &overrides); err != nil {
		w.logger.Warn("parsing config overrides", zap.String("path", w.path), zap.Error(err))
		return
	}

	merged := *w.base
	if overrides.AnalysisDelayMillis != nil {
		merged.AnalysisDelay = millis(*overrides.AnalysisDelayMillis)
	}
	if overrides.EnableRemoteClassifier != nil {
		merged.EnableRemoteClassifier = *overrides.EnableRemoteClassifier
	}
	if overrides.EnableEventPublishing != nil {
		merged.EnableEventPublishing = *overrides.EnableEventPublishing
	}
	if overrides.MaxContentLength != nil {
		merged.MaxContentLength = *overrides.MaxContentLength
	}

	w.logger.Info("applied config overrides", zap.String("path", w.path))
	w.onChange(&merged)
}

func millis(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
