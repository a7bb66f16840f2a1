package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/crystalix007/range-alloc/rangealloc"
)

// Replay implements subcommands.Command for the "replay" command.
type Replay struct {
	dump  bool
	debug bool
}

// Name implements subcommands.Command.Name.
func (*Replay) Name() string {
	return "replay"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Replay) Synopsis() string {
	return "replay the allocations of a scenario file and print the outcome"
}

// Usage implements subcommands.Command.Usage.
func (*Replay) Usage() string {
	return `replay [flags] <scenario.toml>
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (r *Replay) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.dump, "dump", false, "print the allocator tree after every request")
	f.BoolVar(&r.debug, "debug", false, "log granted requests as well as rejected ones")
}

// Execute implements subcommands.Command.Execute.
func (r *Replay) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	log := args[0].(*logrus.Logger)
	if r.debug {
		log.SetLevel(logrus.DebugLevel)
	}

	s, err := loadScenario(f.Arg(0))
	if err != nil {
		log.WithError(err).Error("replay failed")
		return subcommands.ExitFailure
	}

	if err := r.run(os.Stdout, log, s); err != nil {
		log.WithError(err).Error("replay failed")
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

// run replays s against a fresh allocator, writing one line per request to
// out. Rejected requests are part of a normal replay and are not errors.
func (r *Replay) run(out io.Writer, log logrus.FieldLogger, s *scenario) error {
	a := rangealloc.New(s.Universe.span())

	log.WithField("universe", a.Universe().String()).Debug("created allocator")

	for i, req := range s.Allocs {
		span := req.span()
		entry := log.WithFields(logrus.Fields{
			"request": i,
			"index":   req.Index,
			"length":  req.Length,
		})

		result := "granted"

		if err := a.TryAlloc(span); err != nil {
			result = "rejected"
			entry.WithError(err).Info("request rejected")
		} else {
			entry.Debug("request granted")
		}

		if _, err := fmt.Fprintf(out, "%v\t%s\n", span, result); err != nil {
			return err
		}

		if r.dump {
			if _, err := a.WriteTo(out); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(out, "free %v (%d)\n", a.Free(), a.FreeLength())

	return err
}
