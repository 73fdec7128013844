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

import "github.com/jmgilman/go/errors"

// Error constructors for the failure taxonomy of the interpreter. The
// message of each is exactly the text shown to the user.

func notFound(format string, args ...any) error {
	return errors.Newf(errors.CodeNotFound, format, args...)
}

func missingOperand(msg string) error {
	return errors.New(errors.CodeInvalidInput, msg)
}

func unknownCommand(name string) error {
	err := errors.Newf(errors.CodeNotFound, "zsh: command not found: %s", name)
	return errors.WithContext(err, "command", name)
}

func handlerFailure(name string, cause any) error {
	var err error
	if e, ok := cause.(error); ok {
		err = errors.Wrapf(e, errors.CodeInternal, "Error executing command: %v", e)
	} else {
		err = errors.Newf(errors.CodeInternal, "Error executing command: %v", cause)
	}
	return errors.WithContext(err, "command", name)
}

// Message returns the user-visible text of err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var pe errors.PlatformError
	if errors.As(err, &pe) {
		return pe.Message()
	}
	return err.Error()
}

// Code returns the error code of err, or an empty code for nil.
func Code(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	return errors.GetCode(err)
}

// Failf builds a result carrying an error with the given code.
func Failf(code errors.ErrorCode, format string, args ...any) Result {
	return Fail(errors.Newf(code, format, args...))
}
