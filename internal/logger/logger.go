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

// Package logger holds the process-wide structured logger shared by every
// internal package. Packages below cmd/ never configure it themselves; only
// the CLI entry points call SetLogger.
package logger

import "github.com/getamis/sirius/log"

var logger = log.Discard()

// Logger returns the current process-wide logger.
func Logger() log.Logger {
	return logger
}

// SetLogger replaces the process-wide logger, e.g. with a terminal logger
// configured by a CLI entry point.
func SetLogger(l log.Logger) {
	logger = l
}
