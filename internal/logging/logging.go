package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns the logger used by the non-interactive commands. The console
// session itself talks to the user through the renderer, not the log.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}
