// Copyright © 2024 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package netlist

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedHeader is returned if line 1, 2, or 3 is missing tokens.
	ErrTruncatedHeader = errors.New("netlist: truncated header")
	// ErrUnknownKind is returned if a gate line names an unrecognised kind.
	ErrUnknownKind = errors.New("netlist: unknown gate kind")
	// ErrTruncatedGate is returned if a gate line has fewer tokens than its
	// declared input/output counts require.
	ErrTruncatedGate = errors.New("netlist: truncated gate line")
	// ErrNonInteger is returned if a token expected to be an integer is not.
	ErrNonInteger = errors.New("netlist: non-integer token")
)

// ParseError identifies the offending line of a malformed netlist file.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
