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

import (
	"strings"

	"go.uber.org/zap"

	"github.com/cybrota/termfolio/vfs"
)

// Interpreter owns a session and its transcript and dispatches command
// lines against a filesystem. It is not safe for concurrent use; the host
// drives it from a single event loop.
type Interpreter struct {
	fs       *vfs.FS
	registry *Registry
	session  Session
	log      *Log
	logger   *zap.Logger
}

type Option func(*Interpreter)

func WithLogger(l *zap.Logger) Option {
	return func(in *Interpreter) {
		if l != nil {
			in.logger = l
		}
	}
}

func WithTheme(t Theme) Option {
	return func(in *Interpreter) { in.session = NewSession(t) }
}

func WithRegistry(r *Registry) Option {
	return func(in *Interpreter) {
		if r != nil {
			in.registry = r
		}
	}
}

// NewInterpreter creates an interpreter over fs with the built-in commands.
func NewInterpreter(fs *vfs.FS, opts ...Option) *Interpreter {
	if fs == nil {
		fs = vfs.Default()
	}
	in := &Interpreter{
		fs:       fs,
		registry: DefaultRegistry(),
		session:  NewSession(ThemeDark),
		log:      &Log{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

func (in *Interpreter) Session() Session    { return in.session }
func (in *Interpreter) Log() *Log           { return in.log }
func (in *Interpreter) Registry() *Registry { return in.registry }
func (in *Interpreter) FS() *vfs.FS         { return in.fs }

// Execute runs one command line. Failures of any kind come back as an
// error result; the session is only changed by successful commands.
// Execute does not append to the transcript, except that a successful
// clear resets it.
func (in *Interpreter) Execute(raw string) Result {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Result{Silent: true}
	}
	name, args := fields[0], fields[1:]

	cmd, ok := in.registry.Lookup(name)
	if !ok {
		res := Fail(unknownCommand(name))
		in.logger.Debug("unknown command", zap.String("command", name))
		return res
	}

	res, patch := in.dispatch(cmd, args)
	if res.Failed() {
		res.Output = ""
		res.Silent = false
	} else {
		patch.apply(&in.session, in.log)
	}

	in.logger.Debug("dispatch",
		zap.String("command", name),
		zap.Int("args", len(args)),
		zap.String("code", string(Code(res.Err))),
		zap.String("cwd", in.session.Cwd),
	)
	return res
}

func (in *Interpreter) dispatch(cmd Command, args []string) (res Result, patch *Patch) {
	defer func() {
		if r := recover(); r != nil {
			res, patch = Fail(handlerFailure(cmd.Name, r)), nil
			in.logger.Error("command panicked",
				zap.String("command", cmd.Name),
				zap.Any("panic", r),
			)
		}
	}()

	ctx := Context{Session: in.session, FS: in.fs, Registry: in.registry}
	return cmd.Handler(ctx, args)
}

// ClearScreen empties the transcript without going through dispatch.
func (in *Interpreter) ClearScreen() {
	if cmd, ok := in.registry.Lookup("clear"); ok {
		if res, patch := in.dispatch(cmd, nil); !res.Failed() {
			patch.apply(&in.session, in.log)
			return
		}
	}
	in.log.Reset()
}

// Run executes raw and records it in the transcript: the input first, then
// the result unless it is silent.
func (in *Interpreter) Run(raw string) Result {
	in.log.Append(Entry{Kind: EntryInput, Text: raw})
	res := in.Execute(raw)
	in.Record(res)
	return res
}

// Record appends a result to the transcript unless it is silent.
func (in *Interpreter) Record(res Result) {
	if !res.Silent {
		in.log.Append(res.Entry())
	}
}
