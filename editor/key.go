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


package editor

// Names of the non-printable keys the editor understands. Printable keys
// carry their rune, and Ctrl combinations carry the lower-case letter as
// their name with Ctrl set.
const (
	KeyEnter     = "Enter"
	KeyTab       = "Tab"
	KeyUp        = "ArrowUp"
	KeyDown      = "ArrowDown"
	KeyLeft      = "ArrowLeft"
	KeyRight     = "ArrowRight"
	KeyBackspace = "Backspace"
	KeyDelete    = "Delete"
	KeyHome      = "Home"
	KeyEnd       = "End"
)

// Key is one key press. Ctrl also stands for the Meta/Cmd modifier.
type Key struct {
	Name string
	Rune rune
	Ctrl bool
}

// Named returns a key without modifiers.
func Named(name string) Key { return Key{Name: name} }

// Char returns a printable key.
func Char(r rune) Key { return Key{Name: string(r), Rune: r} }

// Ctrl returns a Ctrl combination such as Ctrl+C.
func Ctrl(letter rune) Key { return Key{Name: string(letter), Ctrl: true} }

func (k Key) String() string {
	if k.Ctrl {
		return "ctrl+" + k.Name
	}
	return k.Name
}

// Action reports what a key press did.
type Action int

const (
	ActionNone Action = iota
	ActionEdit
	ActionSubmit
	ActionDeferred
	ActionInterrupt
	ActionClearScreen
	ActionComplete
	ActionRecall
)

// Outcome is returned by HandleKey. Seq identifies a deferred result for
// Flush; Candidates holds the completion candidates of a Tab press.
type Outcome struct {
	Action     Action
	Seq        int
	Candidates []string
}
