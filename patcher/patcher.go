// Package patcher runs the external tool that writes translated strings into
// the game executable.
package patcher

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xishang0128/df-translate/bisect"
)

var (
	ErrNoExecutable = errors.New("valid path to an executable file must be specified")
	ErrNoDictionary = errors.New("dictionary is empty")
	ErrNoCommand    = errors.New("patcher command is empty")
)

// DefaultCommand invokes dfrus. {executable}, {dictionary} and {codepage}
// are substituted in every argument.
var DefaultCommand = []string{"dfrus", "-p", "{executable}", "-d", "{dictionary}", "--codepage", "{codepage}"}

// Options describes one patching run.
type Options struct {
	Executable string
	Codepage   string
	Debug      bool
	Dictionary []bisect.Pair
}

// Patcher runs Command as a subprocess.
type Patcher struct {
	Command []string
	// WaitDelay bounds the wait for output after the process is stopped.
	WaitDelay time.Duration
}

func New(command []string) *Patcher {
	if len(command) == 0 {
		command = DefaultCommand
	}
	return &Patcher{Command: command, WaitDelay: 5 * time.Second}
}

// Args returns the command line for opts with the dictionary at dictionary.
func (p *Patcher) Args(opts Options, dictionary string) []string {
	r := strings.NewReplacer(
		"{executable}", opts.Executable,
		"{dictionary}", dictionary,
		"{codepage}", opts.Codepage,
	)

	args := make([]string, 0, len(p.Command)+1)
	for _, arg := range p.Command {
		args = append(args, r.Replace(arg))
	}
	if opts.Debug {
		args = append(args, "--debug")
	}
	return args
}

// Run patches opts.Executable and streams the patcher's stdout and stderr
// into out. Cancelling ctx stops the process.
func (p *Patcher) Run(ctx context.Context, opts Options, out io.Writer) error {
	if len(p.Command) == 0 {
		return ErrNoCommand
	}
	if opts.Executable == "" {
		return ErrNoExecutable
	}
	if st, err := os.Stat(opts.Executable); err != nil || st.IsDir() {
		return fmt.Errorf("%w: %s", ErrNoExecutable, opts.Executable)
	}
	if len(opts.Dictionary) == 0 {
		return ErrNoDictionary
	}

	dict, err := writeDictionary(opts.Dictionary)
	if err != nil {
		return fmt.Errorf("write dictionary: %w", err)
	}
	defer os.Remove(dict)

	args := p.Args(opts, dict)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = out
	cmd.Stderr = out
	cmd.WaitDelay = p.WaitDelay

	log.Info().
		Strs("args", args).
		Int("strings", len(opts.Dictionary)).
		Msg("Starting patcher")

	start := time.Now()
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("patcher stopped: %w", ctx.Err())
		}
		return fmt.Errorf("patcher: %w", err)
	}

	log.Info().Dur("elapsed", time.Since(start)).Msg("Patcher finished")

	return nil
}

// writeDictionary stores pairs as a two-column CSV file and returns its path.
func writeDictionary(pairs []bisect.Pair) (string, error) {
	f, err := os.CreateTemp("", "df-translate-*.csv")
	if err != nil {
		return "", err
	}

	w := csv.NewWriter(f)
	for _, p := range pairs {
		if err := w.Write([]string{p.Original, p.Translation}); err != nil {
			f.Close()
			os.Remove(f.Name())
			return "", err
		}
	}
	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return f.Name(), nil
}
