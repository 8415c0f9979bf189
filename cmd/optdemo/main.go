package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/napalu/optparse"
	"github.com/rs/zerolog"
)

func main() {
	prog := filepath.Base(os.Args[0])
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	if os.Getenv("OPTDEMO_DEBUG") != "" {
		logger = logger.Level(zerolog.DebugLevel)
	}

	var p *optparse.Parser
	p, err := optparse.NewParserWith(
		optparse.WithLogger(logger),
		optparse.WithFlag('h', "help", "print this useless message", func() error {
			return p.HelpHandler(os.Stdout, prog, os.Exit).Call("")
		}),
		optparse.WithFlag('v', "", "print more useless messages than usual", func() error {
			fmt.Println("-v set")
			return nil
		}),
		optparse.WithValue('n', "", "a number", processN),
		optparse.WithValue(0, "num", "another number\nthis line is supposed to explain what it does", func(n string) error {
			fmt.Println("--num:", n)
			return nil
		}),
		optparse.WithFlag(0, "undocumented", "", func() error {
			fmt.Println("--undocumented set")
			return nil
		}),
		optparse.WithValue(0, "completion", "print the completion script for SHELL (bash, zsh or fish)", func(shell string) error {
			script := p.GenerateCompletion(shell, prog)
			if script == "" {
				return optparse.Fatalf("unsupported shell %q", shell)
			}
			fmt.Print(script)
			os.Exit(0)
			return nil
		}),
		optparse.WithPositional("First-arg", "required argument", func(s string) error {
			fmt.Println("First argument:", s)
			return nil
		}),
		optparse.WithPositional("Second-arg", "mandatory argument", func(s string) error {
			fmt.Println("Second argument:", s)
			return nil
		}),
		optparse.WithOptionalPositionals(),
		optparse.WithPositional("Next-args", "optional arguments", func(s string) error {
			fmt.Println("Next argument:", s)
			return nil
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if errs := p.Parse(os.Args[1:]); optparse.ReportErrors(os.Stderr, errs) > 0 {
		logger.Debug().Bool("fatal", errs.HasFatal()).Int("errors", len(errs)).Msg("parse failed")
		os.Exit(1)
	}
}

func processN(n string) error {
	fmt.Println("-n:", n)
	if _, err := strconv.ParseInt(n, 10, 64); err != nil {
		return optparse.NewError("invalid number")
	}

	return nil
}
