package silo

import "github.com/sirupsen/logrus"

// log is the package-level diagnostics logger. It is used exclusively for
// debug/trace-level instrumentation of configuration loading and query
// evaluation - never for control flow, and never with component data as a
// field value (counts, flags and settings only).
var log = logrus.New().WithField("component", "silo")

func init() {
	log.Logger.SetLevel(logrus.WarnLevel)
}

// SetLogLevel adjusts the verbosity of the package logger. Tests and
// embedding applications can raise it to logrus.DebugLevel or
// logrus.TraceLevel to observe cache/group decisions.
func SetLogLevel(level logrus.Level) {
	log.Logger.SetLevel(level)
}
