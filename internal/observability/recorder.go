package observability

import "sync"

// Entry is one recorded log event.
type Entry struct {
	Level  string
	Msg    string
	Fields []Field
}

// Recorder is a Logger that keeps every event in memory. Tests use it to
// assert on emitted events, e.g. the retry warnings of the directory client.
// Parent and With-derived children share one mutex and one entry slice.
type Recorder struct {
	mu      *sync.Mutex
	fixed   []Field
	entries *[]Entry
}

func NewRecorder() *Recorder {
	return &Recorder{mu: &sync.Mutex{}, entries: &[]Entry{}}
}

func (r *Recorder) With(fields ...Field) Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &Recorder{
		mu:      r.mu,
		fixed:   append(append([]Field{}, r.fixed...), fields...),
		entries: r.entries,
	}
}

func (r *Recorder) record(level, msg string, fields []Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.entries = append(*r.entries, Entry{
		Level:  level,
		Msg:    msg,
		Fields: append(append([]Field{}, r.fixed...), fields...),
	})
}

func (r *Recorder) Debug(msg string, fields ...Field) { r.record("debug", msg, fields) }
func (r *Recorder) Info(msg string, fields ...Field)  { r.record("info", msg, fields) }
func (r *Recorder) Warn(msg string, fields ...Field)  { r.record("warn", msg, fields) }
func (r *Recorder) Error(msg string, fields ...Field) { r.record("error", msg, fields) }

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry{}, *r.entries...)
}

// ByLevel filters recorded entries by level.
func (r *Recorder) ByLevel(level string) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}
