package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/caarlos0/env/v11"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/askpass/config"
	"github.com/lixenwraith/askpass/prompt"
	"github.com/lixenwraith/askpass/setup"
	"github.com/lixenwraith/askpass/terminal"
)

var version = "dev"

const missingConfigAdvisory = "Please create a configuration file with `askpass --setup`"

type options struct {
	setup      bool
	debug      bool
	configPath string
}

// runtimeEnv holds process switches read from the environment
type runtimeEnv struct {
	Debug bool `env:"ASKPASS_DEBUG"`
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the prompt crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stderr)
			fmt.Fprintf(os.Stderr, "\naskpass crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "askpass: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "askpass [prompt] [ignored...]",
		Short: "Masked password prompt with an animated indicator",
		Long: `askpass reads a password from the terminal, echoing a mask and an
animated indicator, and prints it to stdout. It is meant to be used as
SUDO_ASKPASS or any other credential helper whose stdout is captured.`,
		Args:          cobra.ArbitraryArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}

	flags := cmd.Flags()
	// Everything after the prompt is passed through untouched and ignored
	flags.SetInterspersed(false)
	flags.BoolVar(&opts.setup, "setup", false, "run the interactive configuration wizard")
	flags.BoolVar(&opts.debug, "debug", false, "write a debug log to the state directory")
	flags.StringVar(&opts.configPath, "config", "", "configuration file (default: discovered in $XDG_CONFIG_HOME)")
	return cmd
}

func run(opts options, args []string) (err error) {
	var renv runtimeEnv
	if perr := env.Parse(&renv); perr != nil {
		return errors.Wrap(perr, "environment")
	}

	if logger := setupLogging(opts.debug || renv.Debug); logger != nil {
		defer logger.Close()
	}

	if opts.setup {
		_, err := setup.Run(setup.Options{Path: opts.configPath})
		return err
	}

	cfg, advisory := loadConfig(opts.configPath)

	term, err := terminal.Open()
	if err != nil {
		return err
	}
	// Restores the terminal on every exit path; a failed restore is fatal too
	defer func() {
		if cerr := term.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := term.Init(); err != nil {
		return err
	}

	out := term.Output()
	if advisory != "" {
		printAdvisory(out, advisory)
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	ctrl, err := prompt.NewSession(cfg, arg, out, term.Input())
	if err != nil {
		return err
	}

	password, err := ctrl.Run()
	if err != nil {
		return err
	}

	return deliver(term, os.Stdout, password)
}

// deliver restores the terminal, then prints the password line.
// Nothing reaches stdout while the terminal is still in raw mode.
func deliver(term io.Closer, stdout io.Writer, password string) error {
	if err := term.Close(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(stdout, password); err != nil {
		return errors.Wrap(err, "write result")
	}
	log.Debug("askpass: result written")
	return nil
}

// loadConfig resolves the configuration, falling back to defaults.
// The returned advisory is non-empty when the user should be told why.
func loadConfig(explicit string) (config.Config, string) {
	cfg, advisory := loadFile(explicit)

	if err := config.ApplyEnv(&cfg); err != nil {
		log.WithError(err).Debug("config: environment overrides ignored")
		msg := fmt.Sprintf("ignoring environment overrides: %v", err)
		if advisory == "" {
			advisory = msg
		} else {
			advisory += "; " + msg
		}
	}
	return cfg, advisory
}

func loadFile(explicit string) (config.Config, string) {
	path := explicit
	if path == "" {
		p, err := config.Discover()
		if err != nil {
			if errors.Is(err, config.ErrNotFound) {
				log.Debug("config: none found, using defaults")
				return config.Default(), missingConfigAdvisory
			}
			log.WithError(err).Debug("config: discovery failed")
			return config.Default(), fmt.Sprintf("using default configuration: %v", err)
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			log.WithField("path", path).Debug("config: file missing, using defaults")
			return config.Default(), missingConfigAdvisory
		}
		log.WithError(err).WithField("path", path).Debug("config: unusable, using defaults")
		return config.Default(), fmt.Sprintf("using default configuration: %v", err)
	}
	log.WithField("path", path).Debug("config: loaded")
	return cfg, ""
}

// printAdvisory writes a one-line red notice to the terminal device.
// stdout is never colored or written here.
func printAdvisory(out *terminal.Output, msg string) {
	red := color.New(color.FgRed)
	// The device is a terminal even when stdout is captured
	red.EnableColor()
	fmt.Fprintf(out, "askpass: %s\n", red.Sprint(msg))
}
