package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/riva-lang/riva/internal/rivaerrors"
	"github.com/riva-lang/riva/internal/scanner"
)

// App is the riva token-dump front end: it scans a script file or REPL
// lines and prints the resulting token stream.
type App struct {
	out      io.Writer
	reporter rivaerrors.Reporter
	err      error
}

func NewApp() *App {
	return &App{out: os.Stdout, reporter: rivaerrors.NewReporter(os.Stderr)}
}

func (app *App) reportError(err error) {
	app.reporter.Report(err)
	app.err = err
}

func (app *App) Main(args []string) int {
	var err error
	switch len(args) {
	case 1:
		err = app.runFile(args[0])
	case 0:
		err = app.runPrompt()
	default:
		err = fmt.Errorf("Usage: riva [script]")
	}

	if err != nil {
		app.reportError(err)
	}

	if app.err != nil {
		return 64
	}

	return 0
}

func (app *App) resetError() {
	app.err = nil
}

func (app *App) runPrompt() error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := app.run(line); err != nil {
			app.reportError(err)
			app.resetError()
		}
	}
}

func (app *App) runFile(scriptPath string) error {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}

	return app.run(string(bytes))
}

func (app *App) run(input string) error {
	tokens, err := scanner.Scan(input)
	if err != nil {
		return err
	}

	for _, tok := range tokens {
		fmt.Fprintln(app.out, tok)
	}

	return nil
}
