// Copyright (C) 2017 Google Inc.
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

package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/vkstate/core/fault"
	"github.com/google/vkstate/core/log"
)

var (
	// Name is the full name of the application
	Name string
	// ExitFuncForTesting can be set to change the behaviour when there is a command line parsing failure.
	// It defaults to os.Exit
	ExitFuncForTesting = os.Exit
	// ShortHelp should be set to add a help message to the usage text.
	ShortHelp = ""
	// ShortUsage is usage text for the additional non-flag arguments.
	ShortUsage = ""
	// UsageFooter is printed at the bottom of the usage text
	UsageFooter = ""
	// Version holds the version string for the application.
	// If not empty a command line option to report it will be added automatically.
	Version = ""
)

// ExitCode is the type for named return values from the application main entry point.
type ExitCode int

const (
	// SuccessExit is the exit code for a clean exit.
	SuccessExit = ExitCode(0)
	// FatalExit is the exit code if something logs at a fatal severity.
	FatalExit = ExitCode(1)
	// UsageExit is the exit code if the command line was not valid.
	UsageExit = ExitCode(2)
	// FailureExit is the exit code if the main task returned an error that
	// was not an ExitCode.
	FailureExit = ExitCode(3)
)

// ErrAborted is returned by tasks that stopped because the application was
// interrupted.
const ErrAborted = fault.Const("Aborted")

// Error implements error so that an ExitCode can be returned from a task.
func (c ExitCode) Error() string { return fmt.Sprintf("exit code %d", int(c)) }

// AppFlags are the flags common to all applications.
type AppFlags struct {
	Log     LogFlags
	Version bool `help:"Print the version and exit"`
}

// LogFlags control how the application logs.
type LogFlags struct {
	Level log.SeverityFlag `help:"The severity to enable logs at"`
	Style log.Style        `help:"The style of logging"`
}

func init() {
	Name = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
}

// Run performs all the work needed to start up an application.
// It parses the main command line arguments, builds a primary context that
// will be cancelled on exit or interrupt, runs the provided task and then
// flushes the log.
func Run(main func(ctx context.Context) error) {
	ExitFuncForTesting(int(run(main, os.Args[1:])))
}

func run(main func(ctx context.Context) error, args []string) (code ExitCode) {
	flags := &AppFlags{Log: LogFlags{Level: log.SeverityFlag(log.Info), Style: log.Normal}}

	handler := wrapHandler(flags.Log.Style.Handler(log.Std()))
	defer func() {
		switch cause := recover().(type) {
		case nil:
		case ExitCode:
			code = cause
		default:
			panic(cause)
		}
		handler.Close()
	}()

	ctx := log.PutHandler(context.Background(), handler)
	ctx = log.PutTag(ctx, Name)

	verbMainPrepare(flags)
	flag.CommandLine.Usage = func() { Usage(ctx, "") }
	globalVerbs.Flags.Parse(nil, args...)

	if flags.Version {
		fmt.Fprint(os.Stdout, Name, " version ", Version, "\n")
		return SuccessExit
	}

	// The style may have been changed by the flags.
	handler.Close()
	handler = wrapHandler(flags.Log.Style.Handler(log.Std()))
	ctx = log.PutHandler(ctx, handler)
	ctx = log.PutFilter(ctx, log.SeverityFilter(flags.Log.Level))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := main(ctx)
	var exit ExitCode
	switch {
	case err == nil:
		return SuccessExit
	case errors.As(err, &exit):
		return exit
	case errors.Is(err, context.Canceled), errors.Is(err, ErrAborted):
		log.W(ctx, "Interrupted")
		return FailureExit
	default:
		log.E(ctx, "Main failed\nError: %v", err)
		return FailureExit
	}
}

const logChanBufferSize = 100

func wrapHandler(to log.Handler) log.Handler {
	to = log.Channel(to, logChanBufferSize)
	return log.NewHandler(func(m *log.Message) {
		to.Handle(m)
		if m.StopProcess {
			to.Close()
			panic(FatalExit)
		}
	}, to.Close)
}
