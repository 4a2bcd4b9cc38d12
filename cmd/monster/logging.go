package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// logLevel is the --verbose flag's value set: trace, debug, info, warn,
// error.
type logLevel string

const (
	levelTrace logLevel = "trace"
	levelDebug logLevel = "debug"
	levelInfo  logLevel = "info"
	levelWarn  logLevel = "warn"
	levelError logLevel = "error"
)

func logLevelVariants() []string {
	return []string{string(levelTrace), string(levelDebug), string(levelInfo), string(levelWarn), string(levelError)}
}

func parseLogLevel(s string) (logrus.Level, error) {
	switch logLevel(s) {
	case levelTrace:
		return logrus.TraceLevel, nil
	case levelDebug:
		return logrus.DebugLevel, nil
	case levelInfo:
		return logrus.InfoLevel, nil
	case levelWarn:
		return logrus.WarnLevel, nil
	case levelError:
		return logrus.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("unknown log level %q (want one of %s)", s, joinStrings(logLevelVariants()))
	}
}

func joinStrings(vs []string) string {
	out := vs[0]
	for _, v := range vs[1:] {
		out += ", " + v
	}
	return out
}
