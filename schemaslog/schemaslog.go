// Copyright 2019-2026 The Guppybot Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package schemaslog logs envelope decodes with zerolog.
//
// Direct decodes log at debug level and migrated decodes at info level.
// Envelopes from a newer sender log at warn level, since they usually mean
// peers are running different releases, and every other failure logs at
// error level.
package schemaslog

import (
	"github.com/guppybot/schemas"
	"github.com/rs/zerolog"
)

// New returns an Observer that writes one log event per decode to logger.
func New(logger zerolog.Logger) schemas.Observer {
	return &observer{logger: logger}
}

type observer struct {
	logger zerolog.Logger
}

func (o *observer) ObserveDecode(event schemas.DecodeEvent) {
	code := schemas.CodeOf(event.Err)
	var logEvent *zerolog.Event
	var msg string
	switch {
	case code == schemas.CodeOK && event.Steps == 0:
		logEvent, msg = o.logger.Debug(), "decoded envelope"
	case code == schemas.CodeOK:
		logEvent, msg = o.logger.Info(), "migrated envelope"
	case code == schemas.CodeFutureSchema:
		logEvent, msg = o.logger.Warn(), "envelope from future schema"
	default:
		logEvent, msg = o.logger.Error(), "decode envelope"
	}
	logEvent = logEvent.
		Str("schema", event.Schema).
		Stringer("target", event.Target).
		Stringer("wire", event.Wire).
		Int("steps", event.Steps)
	if event.Err != nil {
		logEvent = logEvent.Str("code", code.String()).Err(event.Err)
	}
	logEvent.Msg(msg)
}
