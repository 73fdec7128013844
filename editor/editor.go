// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package editor is the line editor in front of the interpreter. It turns
// key presses into edits of a single input line, submissions, history
// recall and tab completion.
package editor

import (
	"strings"
	"time"
	"unicode"

	"github.com/cybrota/termfolio/completion"
	"github.com/cybrota/termfolio/shell"
)

// DefaultDoubleTabWindow is the longest gap between two Tab presses that
// still counts as a double tab.
const DefaultDoubleTabWindow = 500 * time.Millisecond

// InterruptMarker is appended to the transcript by Ctrl+C.
const InterruptMarker = "^C"

// Interpreter runs submitted lines and owns the transcript.
type Interpreter interface {
	Execute(raw string) shell.Result
	Record(res shell.Result)
	ClearScreen()
	Log() *shell.Log
	Session() shell.Session
}

// Completer proposes candidates for a partial line.
type Completer interface {
	Suggest(input, cwd string) []string
}

type Option func(*Editor)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) {
		if now != nil {
			e.now = now
		}
	}
}

func WithDoubleTabWindow(d time.Duration) Option {
	return func(e *Editor) {
		if d > 0 {
			e.window = d
		}
	}
}

// WithDeferredResults holds each result back until Flush is called with
// the sequence number of its submission.
func WithDeferredResults(on bool) Option {
	return func(e *Editor) { e.deferred = on }
}

type pending struct {
	seq int
	res shell.Result
}

// Editor is a single-threaded state machine over key presses.
type Editor struct {
	interp    Interpreter
	completer Completer
	now       func() time.Time
	window    time.Duration
	deferred  bool

	buffer  []rune
	cursor  int
	history []string
	index   int // -1 when not recalling

	lastKey   string
	lastKeyAt time.Time

	executing bool
	seq       int
	pending   *pending
}

func New(interp Interpreter, completer Completer, opts ...Option) *Editor {
	e := &Editor{
		interp:    interp,
		completer: completer,
		now:       time.Now,
		window:    DefaultDoubleTabWindow,
		index:     -1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) Buffer() string    { return string(e.buffer) }
func (e *Editor) Cursor() int       { return e.cursor }
func (e *Editor) Executing() bool   { return e.executing }
func (e *Editor) HistoryIndex() int { return e.index }

// History returns the submitted lines, oldest first.
func (e *Editor) History() []string {
	return append([]string(nil), e.history...)
}

// SetBuffer replaces the input line and moves the cursor to its end.
func (e *Editor) SetBuffer(s string) {
	e.buffer = []rune(s)
	e.cursor = len(e.buffer)
}

// HandleKey applies one key press.
func (e *Editor) HandleKey(k Key) Outcome {
	now := e.now()
	out := e.handle(k, now)
	e.lastKey, e.lastKeyAt = k.String(), now
	return out
}

func (e *Editor) handle(k Key, now time.Time) Outcome {
	if k.Ctrl {
		switch strings.ToLower(k.Name) {
		case "c":
			return e.interrupt()
		case "l", "k":
			e.interp.ClearScreen()
			return Outcome{Action: ActionClearScreen}
		case "u":
			e.SetBuffer("")
			return Outcome{Action: ActionEdit}
		case "a":
			e.cursor = 0
			return Outcome{Action: ActionEdit}
		case "e":
			e.cursor = len(e.buffer)
			return Outcome{Action: ActionEdit}
		}
		return Outcome{}
	}

	switch k.Name {
	case KeyEnter:
		return e.Submit(string(e.buffer))
	case KeyTab:
		return e.complete(now)
	case KeyUp:
		return e.recallOlder()
	case KeyDown:
		return e.recallNewer()
	case KeyLeft:
		if e.cursor > 0 {
			e.cursor--
		}
	case KeyRight:
		if e.cursor < len(e.buffer) {
			e.cursor++
		}
	case KeyHome:
		e.cursor = 0
	case KeyEnd:
		e.cursor = len(e.buffer)
	case KeyBackspace:
		if e.cursor == 0 {
			return Outcome{}
		}
		e.buffer = append(e.buffer[:e.cursor-1], e.buffer[e.cursor:]...)
		e.cursor--
	case KeyDelete:
		if e.cursor == len(e.buffer) {
			return Outcome{}
		}
		e.buffer = append(e.buffer[:e.cursor], e.buffer[e.cursor+1:]...)
	default:
		if k.Rune == 0 || !unicode.IsPrint(k.Rune) {
			return Outcome{}
		}
		e.insert(k.Rune)
	}
	return Outcome{Action: ActionEdit}
}

func (e *Editor) insert(r rune) {
	e.buffer = append(e.buffer, 0)
	copy(e.buffer[e.cursor+1:], e.buffer[e.cursor:])
	e.buffer[e.cursor] = r
	e.cursor++
}

// Submit runs line as if it had been typed and Enter pressed. The line is
// trimmed and blank lines are ignored. A result still held back from an
// earlier submission is appended first so the transcript keeps its order.
func (e *Editor) Submit(line string) Outcome {
	line = strings.TrimSpace(line)
	if line == "" {
		return Outcome{}
	}
	if e.pending != nil {
		e.Flush(e.pending.seq)
	}

	e.interp.Log().Append(shell.Entry{Kind: shell.EntryInput, Text: line})
	e.history = append(e.history, line)
	e.SetBuffer("")
	e.index = -1

	res := e.interp.Execute(line)
	e.seq++
	if !e.deferred {
		e.interp.Record(res)
		return Outcome{Action: ActionSubmit, Seq: e.seq}
	}
	e.pending = &pending{seq: e.seq, res: res}
	e.executing = true
	return Outcome{Action: ActionDeferred, Seq: e.seq}
}

// Flush appends the held back result of submission seq. It reports false
// when that result was already flushed or dropped by an interrupt.
func (e *Editor) Flush(seq int) bool {
	if e.pending == nil || e.pending.seq != seq {
		return false
	}
	e.interp.Record(e.pending.res)
	e.pending = nil
	e.executing = false
	return true
}

func (e *Editor) interrupt() Outcome {
	if !e.executing {
		return Outcome{}
	}
	e.interp.Log().Append(shell.Entry{Kind: shell.EntryError, Text: InterruptMarker})
	e.SetBuffer("")
	e.pending = nil
	e.executing = false
	return Outcome{Action: ActionInterrupt}
}

func (e *Editor) complete(now time.Time) Outcome {
	if e.completer == nil {
		return Outcome{Action: ActionComplete}
	}
	doubleTab := e.lastKey == KeyTab && now.Sub(e.lastKeyAt) <= e.window

	input := string(e.buffer)
	cands := e.completer.Suggest(input, e.interp.Session().Cwd)
	if next, ok := completion.Complete(input, cands, doubleTab); ok {
		e.SetBuffer(next)
	}
	return Outcome{Action: ActionComplete, Candidates: cands}
}

func (e *Editor) recallOlder() Outcome {
	if len(e.history) == 0 || e.index >= len(e.history)-1 {
		return Outcome{}
	}
	e.index++
	e.SetBuffer(e.history[len(e.history)-1-e.index])
	return Outcome{Action: ActionRecall}
}

func (e *Editor) recallNewer() Outcome {
	if e.index < 0 {
		return Outcome{}
	}
	e.index--
	if e.index == -1 {
		e.SetBuffer("")
	} else {
		e.SetBuffer(e.history[len(e.history)-1-e.index])
	}
	return Outcome{Action: ActionRecall}
}
