package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/hsmade/server-launch/pkg/args"
	"github.com/hsmade/server-launch/pkg/launcher"
)

func main() {
	level := args.Scan(os.Args[1:])
	if level == args.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	l := launcher.NewLauncher(level)
	err := l.Run()
	if err != nil {
		logrus.WithError(err).Debug("server runner failed")
	}
	os.Exit(launcher.ExitCode(err))
}
