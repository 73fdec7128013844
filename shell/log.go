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


package shell

import "strings"

// EntryKind tells the display surface how to render an entry.
type EntryKind int

const (
	EntryInput EntryKind = iota
	EntryOutput
	EntryError
)

func (k EntryKind) String() string {
	switch k {
	case EntryInput:
		return "input"
	case EntryOutput:
		return "output"
	case EntryError:
		return "error"
	}
	return "unknown"
}

// Entry is one line of the transcript.
type Entry struct {
	Kind EntryKind
	Text string
}

// Log is the visible transcript. It only grows, or is reset as a whole.
type Log struct {
	entries []Entry
}

func (l *Log) Append(e Entry) {
	l.entries = append(l.entries, e)
}

// Entries returns a copy of the transcript in display order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int { return len(l.entries) }

// Last returns the most recent entry of the given kinds, or of any kind when
// none are given.
func (l *Log) Last(kinds ...EntryKind) (Entry, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if len(kinds) == 0 {
			return l.entries[i], true
		}
		for _, k := range kinds {
			if l.entries[i].Kind == k {
				return l.entries[i], true
			}
		}
	}
	return Entry{}, false
}

func (l *Log) Reset() {
	l.entries = nil
}

// String renders the transcript as plain lines, inputs prefixed with prompt.
func (l *Log) String(prompt string) string {
	var b strings.Builder
	for _, e := range l.entries {
		if e.Kind == EntryInput {
			b.WriteString(prompt)
		}
		b.WriteString(e.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
