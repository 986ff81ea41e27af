package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/slisp-lang/slisp/lisp"
	"github.com/slisp-lang/slisp/parser"
)

// RunRepl runs a simple read-eval-print loop.
func RunRepl(prompt string) {
	env := lisp.NewEnv(nil)
	lerr := lisp.InitializeUserEnv(env, lisp.WithReader(parser.NewReader()))
	if lerr.Type == lisp.LError {
		errln(lisp.GoError(lerr))
		return
	}

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		var line []byte
		line, err = rl.ReadSlice()
		if err != nil && err != readline.ErrInterrupt {
			break
		}
		if err == readline.ErrInterrupt {
			line = nil
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if len(line) != 0 {
			complete, err := parser.Parse(env, true, line)
			if err != nil {
				errln(err)
				continue
			}
			if !complete {
				buf = line
				rl.SetPrompt(contPrompt)
			}
		}
	}
	if err != io.EOF {
		errln(err)
		return
	}
	errln("done")
}

func errlnf(format string, v ...interface{}) {
	if strings.HasSuffix(format, "\n") {
		errf(format, v...)
		return
	}
	errf(format+"\n", v...)
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}

func errf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
}
