//go:build js

package main

import (
	"encoding/json"
	"log/slog"
	"syscall/js"
)

// localPositionStore persists the widget position to localStorage as a
// small JSON document. Storage failures (private browsing, quota) are
// swallowed; the widget keeps its in-memory position for the session.
type localPositionStore struct {
	key    string
	logger *slog.Logger
}

func newLocalPositionStore(key string, logger *slog.Logger) *localPositionStore {
	return &localPositionStore{key: key, logger: logger}
}

func (s *localPositionStore) Load() (pos Position, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("localStorage read failed", "recover", r)
			ok = false
		}
	}()
	storage := js.Global().Get("localStorage")
	if storage.IsUndefined() || storage.IsNull() {
		return Position{}, false
	}
	v := storage.Call("getItem", s.key)
	if v.IsNull() || v.IsUndefined() {
		return Position{}, false
	}
	if err := json.Unmarshal([]byte(v.String()), &pos); err != nil {
		s.logger.Warn("corrupt stored position, using default", "err", err)
		return Position{}, false
	}
	return pos, true
}

func (s *localPositionStore) Save(pos Position) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("localStorage write failed", "recover", r)
		}
	}()
	storage := js.Global().Get("localStorage")
	if storage.IsUndefined() || storage.IsNull() {
		return
	}
	b, err := json.Marshal(pos)
	if err != nil {
		return
	}
	storage.Call("setItem", s.key, string(b))
}
