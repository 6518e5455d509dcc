package launcher

import (
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/hsmade/server-launch/pkg/args"
)

type Launcher struct {
	Runner   string // server runner binary, resolved via PATH
	App      string // module:attribute the runner serves
	Host     string
	Port     int
	LogLevel args.LogLevel
}

func NewLauncher(level args.LogLevel) *Launcher {
	return &Launcher{
		Runner:   "uvicorn",
		App:      "server:app",
		Host:     "0.0.0.0",
		Port:     3001,
		LogLevel: level,
	}
}

// Command builds the runner invocation. The child inherits our
// environment with LOG_LEVEL replaced, and our stdio.
func (l *Launcher) Command() *exec.Cmd {
	cmd := exec.Command(l.Runner, l.App,
		"--host", l.Host,
		"--port", strconv.Itoa(l.Port),
		"--log-level", string(l.LogLevel),
	)
	cmd.Env = environment(string(l.LogLevel))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// Run starts the runner and waits for it to exit, forwarding interrupt
// and terminate signals to the child while it runs.
func (l *Launcher) Run() error {
	id := uuid.New()
	cmd := l.Command()
	logrus.WithFields(logrus.Fields{
		"launch-id": id,
		"argv":      cmd.Args,
		"log-level": l.LogLevel,
	}).Debug("starting server runner")

	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to start %s", l.Runner)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		for s := range signals {
			logrus.WithFields(logrus.Fields{"launch-id": id, "signal": s}).Debug("forwarding signal")
			_ = cmd.Process.Signal(s)
		}
	}()

	err := cmd.Wait()
	signal.Stop(signals)
	close(signals)

	logrus.WithFields(logrus.Fields{
		"launch-id": id,
		"exit-code": cmd.ProcessState.ExitCode(),
	}).Debug("server runner exited")
	return err
}

// ExitCode translates a Run error into the code this process should
// exit with. The child's own status passes through untouched; a runner
// that cannot be found maps to 127, matching the shell.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if exitErr, ok := errors.Cause(err).(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	if execErr, ok := errors.Cause(err).(*exec.Error); ok && execErr.Err == exec.ErrNotFound {
		return 127
	}
	return 1
}

// environment returns the parent environment with LOG_LEVEL replaced.
func environment(level string) []string {
	env := []string{"LOG_LEVEL=" + level}
	for _, entry := range os.Environ() {
		if strings.HasPrefix(entry, "LOG_LEVEL=") {
			continue
		}
		env = append(env, entry)
	}
	return env
}
