package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/2beens/workouttracker/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToConsole     bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
	// Console defaults to STDERR, STDOUT belongs to the interactive session
	Console io.Writer
}

// Setup configures the global logrus logger. The returned func flushes
// buffered sentry events and closes the log file, call it before exiting.
func Setup(params LoggerSetupParams) func() {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	console := params.Console
	if console == nil {
		console = os.Stderr
	}

	closers := []func(){}
	if params.SentryEnabled {
		err := sentry.Init(sentry.ClientOptions{
			Environment:      params.Environment,
			Dsn:              params.SentryDSN,
			TracesSampleRate: 1.0,
			ServerName:       params.SentryServerName,
		})
		if err != nil {
			logrus.Errorf("sentry.Init: %s", err)
		} else {
			hook := NewSentryHook([]logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			})
			logrus.AddHook(hook)
			closers = append(closers, func() {
				sentry.Flush(2 * time.Second)
			})
			logrus.Infoln("Sentry set up successfully")
		}
	}

	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logrus.SetOutput(console)
		logrus.Debugln("writing logs only to console")
		return runAll(closers)
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		LocalTime:  true,
		Compress:   true,
	}
	closers = append(closers, func() {
		_ = lumberJackLogger.Close()
	})

	if params.LogToConsole {
		logrus.SetOutput(
			pkg.NewCombinedWriter(console, lumberJackLogger),
		)
		logrus.Debugln("writing logs to file and console")
	} else {
		logrus.SetOutput(lumberJackLogger)
	}

	return runAll(closers)
}

func runAll(fns []func()) func() {
	return func() {
		for _, fn := range fns {
			fn()
		}
	}
}

var levels = map[string]logrus.Level{
	"debug": logrus.DebugLevel,
	"error": logrus.ErrorLevel,
	"fatal": logrus.FatalLevel,
	"info":  logrus.InfoLevel,
	"trace": logrus.TraceLevel,
	"warn":  logrus.WarnLevel,
}

// GetLevel maps a level name to a logrus level, unknown names map to trace.
func GetLevel(level string) logrus.Level {
	if l, ok := levels[strings.ToLower(level)]; ok {
		return l
	}
	return logrus.TraceLevel
}

func ValidLevel(level string) bool {
	_, ok := levels[strings.ToLower(level)]
	return ok
}
