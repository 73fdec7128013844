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

// Result is what a command produced: an output text or an error, never
// both.
type Result struct {
	Output string
	Err    error
	// Silent results are not appended to the transcript.
	Silent bool
}

// Output builds a successful result.
func Output(text string) Result {
	return Result{Output: text}
}

// Fail builds a failed result.
func Fail(err error) Result {
	return Result{Err: err}
}

func (r Result) Failed() bool { return r.Err != nil }

// Text is the user-visible text of the result.
func (r Result) Text() string {
	if r.Err != nil {
		return Message(r.Err)
	}
	return r.Output
}

// Entry converts the result into a transcript entry.
func (r Result) Entry() Entry {
	if r.Err != nil {
		return Entry{Kind: EntryError, Text: Message(r.Err)}
	}
	return Entry{Kind: EntryOutput, Text: r.Output}
}

// Patch describes the session changes a command asks for. Nil fields are
// left alone. A patch is only applied when the command succeeded.
type Patch struct {
	Cwd      *string
	View     *View
	Theme    *Theme
	ClearLog bool
}

func SetCwd(path string) *Patch { return &Patch{Cwd: &path} }
func SetView(v View) *Patch     { return &Patch{View: &v} }
func SetTheme(t Theme) *Patch   { return &Patch{Theme: &t} }

// apply copies the patch onto s.
func (p *Patch) apply(s *Session, log *Log) {
	if p == nil {
		return
	}
	if p.Cwd != nil {
		s.Cwd = *p.Cwd
	}
	if p.View != nil {
		s.View = *p.View
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.ClearLog {
		log.Reset()
	}
}
