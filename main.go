package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"git.sr.ht/~plaid/plaidsh/glob"
	"git.sr.ht/~plaid/plaidsh/lexer"
	"git.sr.ht/~plaid/plaidsh/log"
	"git.sr.ht/~plaid/plaidsh/parser"
	"git.sr.ht/~plaid/plaidsh/vm"
)

type shell struct {
	vm      *vm.Vm
	exp     glob.Expander
	verbose bool
}

func main() {
	var (
		command           string
		nullGlob, verbose bool
	)

	opts, optind, err := getopt.Getopts(os.Args, "c:nv")
	if err != nil {
		usage()
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			command = opt.Value
		case 'n':
			nullGlob = true
		case 'v':
			verbose = true
		}
	}
	args := os.Args[optind:]

	sh := shell{
		vm:      vm.New(),
		exp:     glob.New(afero.NewOsFs(), glob.Options{NullGlob: nullGlob}),
		verbose: verbose,
	}

	switch {
	case command != "":
		sh.runLine(command)
	case len(args) == 1:
		sh.runFile(args[0])
	case len(args) > 1:
		usage()
	default:
		sh.repl()
	}

	os.Exit(int(sh.vm.Status))
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-nv] [-c command] [file]\n", os.Args[0])
	os.Exit(1)
}

func (sh *shell) repl() {
	sh.vm.Interactive = true

	home, _ := os.UserHomeDir()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      color.New(color.FgRed, color.Bold).Sprint("#? "),
		HistoryFile: filepath.Join(home, ".plaidsh_history"),
	})
	if err != nil {
		log.CrashOnError = true
		log.Err("%s", err)
	}
	defer rl.Close()

	fmt.Println("Welcome to Plaid Shell!")

	for !sh.vm.Quit {
		line, err := rl.Readline()

		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(os.Stderr, "^D")
			return
		case err != nil:
			log.Err("%s", err)
			return
		}

		sh.runLine(line)
	}
}

func (sh *shell) runFile(name string) {
	f, err := os.Open(name)
	if err != nil {
		log.CrashOnError = true
		log.Err("%s", err)
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() && !sh.vm.Quit {
		sh.runLine(s.Text())
	}
	if err := s.Err(); err != nil {
		log.Err("%s", err)
	}
}

func (sh *shell) runLine(line string) {
	toks, err := lexer.Tokenize(line)
	if err != nil {
		log.Err("%s", err)
		return
	}

	p, err := parser.Parse(toks, sh.exp)
	if err != nil {
		log.Err("%s", err)
		return
	}
	if p == nil {
		return
	}

	if sh.verbose {
		fmt.Fprintf(os.Stderr, "+ %s\n", p)
	}

	sh.vm.Run(p)
}
