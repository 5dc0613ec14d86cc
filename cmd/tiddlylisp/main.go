package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	tiddlylisp "github.com/devonzuegel/tiddly-lisp"
)

const (
	appName     = "tiddlylisp"
	historyFile = ".tiddlylisp_history"
	promptMain  = "> "
	promptCont  = ". "
)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 1 {
		switch args[0] {
		case "-h", "--help", "help":
			usage()
			return 0
		case "version":
			fmt.Println(tiddlylisp.Version)
			return 0
		}
	}
	if len(args) > 1 || (len(args) == 1 && strings.HasPrefix(args[0], "-")) {
		if len(args) >= 1 {
			fmt.Fprintf(os.Stderr, "%s: unknown flag %q\n", appName, args[0])
		}
		usage()
		return 2
	}

	env := tiddlylisp.NewGlobalEnv()

	// With a program argument, load it first and drop into the REPL
	// whether or not loading succeeded; completed bindings survive.
	if len(args) == 1 {
		if err := tiddlylisp.LoadFile(args[0], env, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			var le *tiddlylisp.LoadError
			if errors.As(err, &le) && le.Src != "" {
				fmt.Fprintln(os.Stderr, red("in: "+le.Src))
			}
		}
	}

	return repl(env)
}

func usage() {
	fmt.Printf(`tiddlylisp %s

Usage:
  %s            Start the REPL.
  %s <file.tl>  Run a program, then start the REPL.
  %s version    Print the interpreter version.

`, tiddlylisp.Version, appName, appName, appName)
}

func repl(env *tiddlylisp.Env) int {
	fmt.Printf("tiddlylisp %s\nCtrl+C or Ctrl+D exits; input continues until parens balance.\n", tiddlylisp.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println("\nExiting tiddlylisp... Bye!")
			return 0
		}
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if code == "quit" {
			fmt.Println("Exiting tiddlylisp... Bye!")
			return 0
		}

		expr, err := tiddlylisp.Parse(code)
		var v tiddlylisp.Value
		if err == nil {
			v, err = tiddlylisp.Eval(expr, env)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		if v.Tag != tiddlylisp.VTNone {
			fmt.Println(blue(tiddlylisp.Render(v)))
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readByParseProbe reads one logical form, prompting for more lines while
// the accumulated input parses as incomplete (unclosed parens). Ctrl+C and
// Ctrl+D both end the session: ok is false.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" {
			return "", true
		}
		_, perr := tiddlylisp.Parse(src)
		if perr == nil {
			return src, true
		}
		if tiddlylisp.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
