package main

// implements the crimson repl

import (
	"crimson/eval"
	"fmt"
	"io"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var VERSION string
var LOGO = `
                 _
  ___ ____(_)_ _  ___ ___  ___    | crimson
 / __/ __/ /  ' \(_-</ _ \/ _ \   | version: $VERSION
 \__/_/ /_/_/_/_/___/\___/_//_/   |
`

const usage = `usage: crimson [options] [file ...]

options:
  -c FILE  read config from FILE instead of ~/.crimson.yaml
  -e EXPR  evaluate EXPR, print the result and exit
  -d       debug logging
  -n       disable colored output
  -h       show this help
`

func sliceVersion(v string) string {
	m := 10
	if len(v) < 10 {
		m = len(v)
	}
	return v[0:m]
}

type options struct {
	configPath string
	explicit   bool
	expr       string
	hasExpr    bool
	debug      bool
	noColor    bool
	files      []string
}

func parseFlags(args []string) (*options, error) {
	opts, optind, err := getopt.Getopts(args, "c:e:dhn")
	if err != nil {
		return nil, err
	}
	o := &options{configPath: defaultConfigPath()}
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			o.configPath = opt.Value
			o.explicit = true
		case 'e':
			o.expr = opt.Value
			o.hasExpr = true
		case 'd':
			o.debug = true
		case 'n':
			o.noColor = true
		case 'h':
			return nil, nil
		}
	}
	o.files = args[optind:]
	return o, nil
}

func newLogger(cfg Config, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	if debug {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	return logger
}

var errColor = color.New(color.FgRed)

// reportError prints err with its trace, if it has one.
func reportError(w io.Writer, err error) {
	var rtErr *eval.Error
	if errors.As(err, &rtErr) {
		errColor.Fprintln(w, rtErr.String())
		return
	}
	errColor.Fprintln(w, err.Error())
}

func runFile(s *eval.Session, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	_, err = s.RunNamed(path, string(src))
	return err
}

func repl(s *eval.Session, cfg Config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		return errors.Wrap(err, "starting line editor")
	}
	defer rl.Close()

	fmt.Println(strings.Replace(LOGO, "$VERSION", sliceVersion(VERSION), 1))
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if err != nil {
			// io.EOF
			return nil
		}
		if strings.TrimSpace(line) == "exit" {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		u, err := s.Run(line)
		if err != nil {
			reportError(os.Stderr, err)
			continue
		}
		fmt.Println(s.Inspect(u))
	}
}

func run(args []string) int {
	o, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		return 2
	}
	if o == nil {
		fmt.Print(usage)
		return 0
	}
	cfg, err := loadConfig(o.configPath, o.explicit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if o.noColor || !cfg.Color {
		color.NoColor = true
	}
	logger := newLogger(cfg, o.debug)

	s := eval.NewSession(eval.Config{
		MaxDepth:       cfg.MaxDepth,
		ParseCacheSize: cfg.ParseCache,
		Output:         os.Stdout,
		Logger:         logrus.NewEntry(logger),
	})
	logger.WithField("session", s.ID).Debug("session started")

	for _, path := range o.files {
		if err := runFile(s, path); err != nil {
			reportError(os.Stderr, err)
			return 1
		}
	}
	if o.hasExpr {
		u, err := s.RunNamed("<expr>", o.expr)
		if err != nil {
			reportError(os.Stderr, err)
			return 1
		}
		fmt.Println(s.Inspect(u))
		return 0
	}
	if len(o.files) > 0 {
		return 0
	}
	if err := repl(s, cfg); err != nil {
		reportError(os.Stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args))
}
