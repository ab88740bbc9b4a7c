package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-readmegen"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, and the runner used for external tools.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Runner readmegen.CommandRunner
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Runner: &readmegen.ExecRunner{},
	}
}
