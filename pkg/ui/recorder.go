package ui

import "sync"

// Level is the kind of a recorded message
type Level string

const (
	LevelInfo      Level = "info"
	LevelSuccess   Level = "success"
	LevelImportant Level = "important"
	LevelError     Level = "error"
)

// Message is a single recorded notice
type Message struct {
	Level Level
	Text  string
}

// Recorder is a Notifier that keeps every message, for tests
type Recorder struct {
	mu       sync.Mutex
	messages []Message
}

func (r *Recorder) record(level Level, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{Level: level, Text: text})
}

func (r *Recorder) Info(msg string)      { r.record(LevelInfo, msg) }
func (r *Recorder) Success(msg string)   { r.record(LevelSuccess, msg) }
func (r *Recorder) Important(msg string) { r.record(LevelImportant, msg) }
func (r *Recorder) Error(msg string)     { r.record(LevelError, msg) }

// Messages returns a copy of all recorded messages
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}

// Texts returns the text of recorded messages at the given level
func (r *Recorder) Texts(level Level) []string {
	var texts []string
	for _, m := range r.Messages() {
		if m.Level == level {
			texts = append(texts, m.Text)
		}
	}
	return texts
}
