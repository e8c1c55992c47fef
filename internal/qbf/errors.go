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

package qbf

import "errors"

var (
	// ErrTooFewGates is returned when ℓ is smaller than the window's
	// number of designated outputs; there would be no gate left to
	// designate as an output for at least one output wire.
	ErrTooFewGates = errors.New("qbf: gate budget smaller than window output count")
	// ErrInvariant signals a selection or function variable lookup miss.
	// It should never occur if variable allocation followed the encoding
	// exactly; seeing it means the encoder's bookkeeping is inconsistent.
	ErrInvariant = errors.New("qbf: internal variable lookup miss")
)
