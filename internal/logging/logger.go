package logging

import (
	"io"
	"os"
	"strings"

	"github.com/2beens/fittrack/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileMaxSizeMB = 50

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger. The returned func closes the
// log file, if any; call it last on shutdown.
func Setup(params LoggerSetupParams) func() {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.SentryEnabled {
		setupSentry(params)
	}

	output, closeOutput := logOutput(params)
	logrus.SetOutput(output)
	return closeOutput
}

func setupSentry(params LoggerSetupParams) {
	err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	})
	if err != nil {
		logrus.Errorf("sentry init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry set up successfully")
}

func logOutput(params LoggerSetupParams) (io.Writer, func()) {
	noop := func() {}
	if params.LogFileName == "" {
		logrus.Println("writing logs only to STDOUT")
		return os.Stdout, noop
	}

	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}
	if err := pkg.EnsureParentDir(fileName); err != nil {
		logrus.Errorf("create logs dir for %s: %s, writing logs only to STDOUT", fileName, err)
		return os.Stdout, noop
	}

	rotated := &lumberjack.Logger{
		Filename:  fileName,
		MaxSize:   logFileMaxSizeMB,
		LocalTime: false, // rotate by UTC timestamps
		Compress:  true,
	}
	closeFile := func() {
		if err := rotated.Close(); err != nil {
			logrus.SetOutput(os.Stderr)
			logrus.Errorf("close log file %s: %s", fileName, err)
		}
	}

	if !params.LogToStdout {
		return rotated, closeFile
	}
	logrus.Println("writing logs to file and STDOUT")
	return pkg.NewCombinedWriter(os.Stdout, rotated), closeFile
}

// GetLevel parses a configured level name, falling back to info.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
