package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/trezcool/gpatracker/core"
	inmemslot "github.com/trezcool/gpatracker/storage/slot/inmem"
)

// log levels
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
	LevelFatal = "fatal"
)

type Entry struct {
	Level string
	Msg   string
	Args  []interface{}
}

// Logger records log entries.
type Logger struct {
	mu      sync.Mutex
	entries []Entry
}

var _ core.Logger = (*Logger)(nil)

func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) log(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Level: level, Msg: msg, Args: args})
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.log(LevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.log(LevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.log(LevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.log(LevelError, msg, args) }
func (l *Logger) Fatal(msg string, args ...interface{}) { l.log(LevelFatal, msg, args) }

func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Count returns the number of entries logged at level.
func (l *Logger) Count(level string) int {
	var n int
	for _, e := range l.Entries() {
		if e.Level == level {
			n++
		}
	}
	return n
}

func (l *Logger) String() string {
	var s string
	for _, e := range l.Entries() {
		s += fmt.Sprintf("[%s] %s %v\n", e.Level, e.Msg, e.Args)
	}
	return s
}

// Slot is an in-memory slot whose operations can be made to fail.
type Slot struct {
	*inmemslot.Slot

	mu       sync.Mutex
	loadErr  error
	saveErr  error
	clearErr error
}

var _ core.Slot = (*Slot)(nil)

// NewSlot returns a Slot, optionally holding blob.
func NewSlot(blob ...[]byte) *Slot {
	return &Slot{Slot: inmemslot.New(blob...)}
}

func (s *Slot) FailLoad(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}

func (s *Slot) FailSave(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

func (s *Slot) FailClear(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearErr = err
}

func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	err := s.loadErr
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.Slot.Load(ctx)
}

func (s *Slot) Save(ctx context.Context, blob []byte) error {
	s.mu.Lock()
	err := s.saveErr
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.Slot.Save(ctx, blob)
}

func (s *Slot) Clear(ctx context.Context) error {
	s.mu.Lock()
	err := s.clearErr
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.Slot.Clear(ctx)
}
