package logsvc

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/trezcool/gpatracker/core"
)

type RollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{std: std}
}

// New returns a logger printing to stdout as "<component> : msg".
// Reporting to Rollbar is enabled outside debug mode when a token is configured.
func New(conf *core.Config, component string) *RollbarLogger {
	std := log.New(os.Stdout, component+" : ", log.LstdFlags|log.Lmicroseconds)
	l := NewRollbarLogger(std, conf)
	l.Enable(!conf.Debug && conf.RollbarToken != "")
	return l
}

// Enable turns reporting to Rollbar on or off. Messages are always printed.
func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// expected fmt: msg | error, *http.Request, map[string]interface{}.
// Any other arg (a semester key, a course code...) is sent as an extra.
func (l RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	var extras map[string]interface{}
	setExtra := func(k string, v interface{}) {
		if extras == nil {
			extras = make(map[string]interface{})
		}
		extras[k] = v
	}

	newArgs := make([]interface{}, 0, len(args)+2)
	newArgs = append(newArgs, msg)
	for i, arg := range args {
		switch v := arg.(type) {
		case error, *http.Request:
			newArgs = append(newArgs, v)
		case map[string]interface{}:
			for k, val := range v {
				setExtra(k, val)
			}
		default:
			setExtra(fmt.Sprintf("arg%d", i), fmt.Sprint(v))
		}
	}
	if extras != nil {
		newArgs = append(newArgs, extras)
	}
	return newArgs
}

func (l RollbarLogger) print(msg string, args []interface{}) {
	l.std.Println(msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	rollbar.Debug(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	rollbar.Info(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	rollbar.Warning(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	rollbar.Error(l.prepare(msg, args)...)
	l.print(msg, args)
}

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	rollbar.Critical(l.prepare(msg, args)...)
	l.print(msg, args)
	rollbar.Wait()
	l.std.Fatal(msg)
}
