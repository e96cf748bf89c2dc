package logger

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Configure sets up the standard logrus logger. Unknown levels fall back to
// info; format is "json" or anything else for text.
func Configure(level, format string) {
	configure(log.StandardLogger(), os.Stdout, level, format)
}

func configure(l *log.Logger, out io.Writer, level, format string) {
	l.SetOutput(out)

	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		l.SetFormatter(&log.JSONFormatter{})
	} else {
		l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	if err != nil && level != "" {
		l.Warnf("[config][logger] unknown log level %q, using info", level)
	}
}
