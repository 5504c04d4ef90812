package cli

import (
	"soilgate/internal/common"

	"github.com/sirupsen/logrus"
)

// InitLogging sets the global logrus level, unknown levels leave the
// current level untouched
func InitLogging(logLevel string) {
	switch common.LogLevel(logLevel) {
	case common.LogLevelTrace:
		logrus.SetLevel(logrus.TraceLevel)
	case common.LogLevelDebug:
		logrus.SetLevel(logrus.DebugLevel)
	case common.LogLevelInfo:
		logrus.SetLevel(logrus.InfoLevel)
	case common.LogLevelWarn:
		logrus.SetLevel(logrus.WarnLevel)
	case common.LogLevelError:
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.Warnf("unknown log level[%s], leaving level at %s", logLevel, logrus.GetLevel())
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
