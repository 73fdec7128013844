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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/termfolio/completion"
	"github.com/cybrota/termfolio/shell"
	"github.com/cybrota/termfolio/vfs"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fixture struct {
	in    *shell.Interpreter
	ed    *Editor
	clock *fakeClock
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	fs := vfs.Default()
	in := shell.NewInterpreter(fs)
	engine := completion.NewEngine(fs, in.Registry().Names(), shell.ViewNames(),
		completion.WithPathCommands(shell.PathCommands...),
		completion.WithViewCommand(shell.ViewCommand))
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	opts = append([]Option{WithClock(clock.Now)}, opts...)
	return &fixture{in: in, ed: New(in, engine, opts...), clock: clock}
}

func (f *fixture) typeText(s string) {
	for _, r := range s {
		f.ed.HandleKey(Char(r))
	}
}

func (f *fixture) enter(s string) Outcome {
	f.typeText(s)
	return f.ed.HandleKey(Named(KeyEnter))
}

func TestSubmitAppendsInputThenResult(t *testing.T) {
	f := newFixture(t)

	out := f.enter("pwd")
	assert.Equal(t, ActionSubmit, out.Action)
	assert.Equal(t, []shell.Entry{
		{Kind: shell.EntryInput, Text: "pwd"},
		{Kind: shell.EntryOutput, Text: "~"},
	}, f.in.Log().Entries())
	assert.Equal(t, "", f.ed.Buffer())
	assert.Equal(t, 0, f.ed.Cursor())
	assert.Equal(t, []string{"pwd"}, f.ed.History())
}

func TestBlankSubmitIsIgnored(t *testing.T) {
	f := newFixture(t)
	out := f.enter("   ")
	assert.Equal(t, ActionNone, out.Action)
	assert.Equal(t, 0, f.in.Log().Len())
	assert.Empty(t, f.ed.History())
}

func TestHistoryRecall(t *testing.T) {
	f := newFixture(t)
	f.enter("ls")
	f.enter("pwd")
	f.enter("help")

	up := Named(KeyUp)
	down := Named(KeyDown)

	f.ed.HandleKey(up)
	assert.Equal(t, "help", f.ed.Buffer())
	f.ed.HandleKey(up)
	assert.Equal(t, "pwd", f.ed.Buffer())
	f.ed.HandleKey(up)
	assert.Equal(t, "ls", f.ed.Buffer())

	out := f.ed.HandleKey(up)
	assert.Equal(t, ActionNone, out.Action)
	assert.Equal(t, "ls", f.ed.Buffer())
	assert.Equal(t, 2, f.ed.HistoryIndex())

	f.ed.HandleKey(down)
	assert.Equal(t, "pwd", f.ed.Buffer())
	f.ed.HandleKey(down)
	assert.Equal(t, "help", f.ed.Buffer())
	f.ed.HandleKey(down)
	assert.Equal(t, "", f.ed.Buffer())
	assert.Equal(t, -1, f.ed.HistoryIndex())

	out = f.ed.HandleKey(down)
	assert.Equal(t, ActionNone, out.Action)
}

func TestRecallOnEmptyHistory(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, ActionNone, f.ed.HandleKey(Named(KeyUp)).Action)
	assert.Equal(t, "", f.ed.Buffer())
}

func TestSubmitResetsRecallIndex(t *testing.T) {
	f := newFixture(t)
	f.enter("pwd")
	f.ed.HandleKey(Named(KeyUp))
	f.ed.HandleKey(Named(KeyEnter))

	assert.Equal(t, -1, f.ed.HistoryIndex())
	assert.Equal(t, []string{"pwd", "pwd"}, f.ed.History())
}

func TestClearKeepsInputHistory(t *testing.T) {
	f := newFixture(t)
	f.enter("cd projects")
	f.enter("tab about")
	f.enter("clear")

	assert.Equal(t, 0, f.in.Log().Len())
	assert.Equal(t, "~/projects", f.in.Session().Cwd)
	assert.Equal(t, shell.ViewAbout, f.in.Session().View)

	f.ed.HandleKey(Named(KeyUp))
	assert.Equal(t, "clear", f.ed.Buffer())
	f.ed.HandleKey(Named(KeyUp))
	assert.Equal(t, "tab about", f.ed.Buffer())
}

func TestClearScreenShortcut(t *testing.T) {
	for _, letter := range []rune{'l', 'k'} {
		f := newFixture(t)
		f.enter("ls")
		f.typeText("pw")

		out := f.ed.HandleKey(Ctrl(letter))
		assert.Equal(t, ActionClearScreen, out.Action)
		assert.Equal(t, 0, f.in.Log().Len())
		assert.Equal(t, "pw", f.ed.Buffer())
		assert.Equal(t, []string{"ls"}, f.ed.History())
	}
}

func TestTabCompletesCommonPrefix(t *testing.T) {
	f := newFixture(t)
	f.typeText("cl")
	out := f.ed.HandleKey(Named(KeyTab))
	assert.Equal(t, ActionComplete, out.Action)
	assert.Equal(t, "clear", f.ed.Buffer())
	assert.Equal(t, 5, f.ed.Cursor())

	f.ed.HandleKey(Ctrl('u'))
	f.typeText("ls ")
	out = f.ed.HandleKey(Named(KeyTab))
	assert.Len(t, out.Candidates, 4)
	assert.Equal(t, "ls ", f.ed.Buffer())
}

func TestDoubleTabAcceptsFirstCandidate(t *testing.T) {
	f := newFixture(t)
	f.typeText("c")

	f.ed.HandleKey(Named(KeyTab))
	assert.Equal(t, "c", f.ed.Buffer())

	f.clock.Advance(200 * time.Millisecond)
	f.ed.HandleKey(Named(KeyTab))
	assert.Equal(t, "cd", f.ed.Buffer())
}

func TestDoubleTabWindowExpires(t *testing.T) {
	f := newFixture(t)
	f.typeText("c")

	f.ed.HandleKey(Named(KeyTab))
	f.clock.Advance(501 * time.Millisecond)
	f.ed.HandleKey(Named(KeyTab))
	assert.Equal(t, "c", f.ed.Buffer())
}

func TestDoubleTabBrokenByOtherKey(t *testing.T) {
	f := newFixture(t)
	f.typeText("c")

	f.ed.HandleKey(Named(KeyTab))
	f.ed.HandleKey(Named(KeyLeft))
	f.ed.HandleKey(Named(KeyTab))
	assert.Equal(t, "c", f.ed.Buffer())
}

func TestDoubleTabCustomWindow(t *testing.T) {
	f := newFixture(t, WithDoubleTabWindow(time.Second))
	f.typeText("c")

	f.ed.HandleKey(Named(KeyTab))
	f.clock.Advance(900 * time.Millisecond)
	f.ed.HandleKey(Named(KeyTab))
	assert.Equal(t, "cd", f.ed.Buffer())
}

func TestDeferredResult(t *testing.T) {
	f := newFixture(t, WithDeferredResults(true))

	out := f.enter("pwd")
	require.Equal(t, ActionDeferred, out.Action)
	assert.True(t, f.ed.Executing())
	assert.Equal(t, []shell.Entry{{Kind: shell.EntryInput, Text: "pwd"}}, f.in.Log().Entries())

	assert.False(t, f.ed.Flush(out.Seq+1))
	assert.True(t, f.ed.Flush(out.Seq))
	assert.False(t, f.ed.Executing())
	assert.Equal(t, shell.Entry{Kind: shell.EntryOutput, Text: "~"}, f.in.Log().Entries()[1])

	assert.False(t, f.ed.Flush(out.Seq))
	assert.Equal(t, 2, f.in.Log().Len())
}

func TestDeferredResultFlushedBeforeNextSubmit(t *testing.T) {
	f := newFixture(t, WithDeferredResults(true))

	first := f.enter("pwd")
	second := f.enter("cat")

	assert.Equal(t, []shell.Entry{
		{Kind: shell.EntryInput, Text: "pwd"},
		{Kind: shell.EntryOutput, Text: "~"},
		{Kind: shell.EntryInput, Text: "cat"},
	}, f.in.Log().Entries())
	assert.False(t, f.ed.Flush(first.Seq))
	assert.True(t, f.ed.Flush(second.Seq))
	assert.Equal(t, shell.EntryError, f.in.Log().Entries()[3].Kind)
}

func TestInterruptDropsPendingResult(t *testing.T) {
	f := newFixture(t, WithDeferredResults(true))

	out := f.enter("ls")
	f.typeText("half")
	in := f.ed.HandleKey(Ctrl('c'))

	assert.Equal(t, ActionInterrupt, in.Action)
	assert.False(t, f.ed.Executing())
	assert.Equal(t, "", f.ed.Buffer())
	assert.False(t, f.ed.Flush(out.Seq))
	assert.Equal(t, []shell.Entry{
		{Kind: shell.EntryInput, Text: "ls"},
		{Kind: shell.EntryError, Text: InterruptMarker},
	}, f.in.Log().Entries())
}

func TestInterruptWhenIdleIsNoop(t *testing.T) {
	f := newFixture(t)
	f.typeText("ls")
	out := f.ed.HandleKey(Ctrl('c'))

	assert.Equal(t, ActionNone, out.Action)
	assert.Equal(t, "ls", f.ed.Buffer())
	assert.Equal(t, 0, f.in.Log().Len())
}

func TestLineEditing(t *testing.T) {
	f := newFixture(t)
	f.typeText("cat")

	f.ed.HandleKey(Named(KeyLeft))
	f.ed.HandleKey(Named(KeyBackspace))
	assert.Equal(t, "ct", f.ed.Buffer())
	assert.Equal(t, 1, f.ed.Cursor())

	f.ed.HandleKey(Char('u'))
	assert.Equal(t, "cut", f.ed.Buffer())

	f.ed.HandleKey(Named(KeyHome))
	f.ed.HandleKey(Named(KeyDelete))
	assert.Equal(t, "ut", f.ed.Buffer())
	assert.Equal(t, 0, f.ed.Cursor())
	assert.Equal(t, ActionNone, f.ed.HandleKey(Named(KeyBackspace)).Action)

	f.ed.HandleKey(Named(KeyEnd))
	assert.Equal(t, ActionNone, f.ed.HandleKey(Named(KeyDelete)).Action)
	f.ed.HandleKey(Named(KeyRight))
	assert.Equal(t, 2, f.ed.Cursor())

	f.ed.HandleKey(Ctrl('a'))
	assert.Equal(t, 0, f.ed.Cursor())
	f.ed.HandleKey(Ctrl('e'))
	assert.Equal(t, 2, f.ed.Cursor())

	f.ed.HandleKey(Ctrl('u'))
	assert.Equal(t, "", f.ed.Buffer())
}

func TestNonPrintableKeysIgnored(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, ActionNone, f.ed.HandleKey(Named("F5")).Action)
	assert.Equal(t, ActionNone, f.ed.HandleKey(Char('\x07')).Action)
	assert.Equal(t, ActionNone, f.ed.HandleKey(Ctrl('z')).Action)
	assert.Equal(t, "", f.ed.Buffer())
}

func TestScenarioCdThenPwd(t *testing.T) {
	f := newFixture(t)
	f.enter("cd projects")
	f.enter("pwd")

	last, ok := f.in.Log().Last()
	require.True(t, ok)
	assert.Equal(t, shell.Entry{Kind: shell.EntryOutput, Text: "~/projects"}, last)

	f.enter("cd doesnotexist")
	last, _ = f.in.Log().Last()
	assert.Equal(t, shell.EntryError, last.Kind)
	assert.Contains(t, last.Text, "No such directory")
	assert.Equal(t, "~/projects", f.in.Session().Cwd)
}
