// Copyright 2020 ConsenSys Software Inc.
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

// Package trace carries the module's ambient, purely observational
// logging: FFT/IFFT calls and FFT-based polynomial multiplication report
// their sizes through it at debug level (domain construction does not
// log, and no durations are measured), but no control-flow decision in
// fft or polynomial ever depends on it.
package trace

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	loggerInstance zerolog.Logger
	once           sync.Once
)

// Logger returns the package-wide zerolog.Logger, initializing it on
// first use with a timestamped console writer on stderr. No level is
// set on it, so the debug events of fft and polynomial are written.
func Logger() zerolog.Logger {
	once.Do(func() {
		loggerInstance = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			With().
			Timestamp().
			Logger()
	})
	return loggerInstance
}

// SetLogger overrides the package-wide logger, for callers embedding
// this module in a larger service with its own structured sink.
func SetLogger(l zerolog.Logger) {
	loggerInstance = l
	once.Do(func() {}) // ensure later Logger() calls don't clobber the override
}
