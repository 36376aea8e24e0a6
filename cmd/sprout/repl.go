package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sprout/interp"
	"strings"
	"syscall"

	"github.com/peterh/liner"
)

const (
	historyFile = ".sprout_history"
	promptMain  = "sprout> "
	promptBlock = "......> "
)

const banner = "Sprout REPL\nCtrl+C cancels input, Ctrl+D exits. Commands: :vars :reset :quit"

// runRepl reads lines interactively and feeds them to one interpreter.
// Variables and the open block persist between lines.
func runRepl(opts interp.Options) (ret int) {
	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	opts.In = &termPrompter{ln: ln}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
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

	ip := interp.New(opts)
	for {
		prompt := promptMain
		if ip.State() != interp.Outside {
			prompt = promptBlock
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ":") {
			if quit := replCommand(ip, trimmed); quit {
				return 0
			}
			continue
		}

		if trimmed != "" {
			ln.AppendHistory(line)
		}
		if err := ip.Exec(line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if ip.Halted() {
			return 0
		}
	}
}

// replCommand handles a ':' command and reports whether to exit
func replCommand(ip *interp.Interpreter, cmd string) (exit bool) {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":vars":
		printVars(ip)
	case ":reset":
		ip.Reset()
		fmt.Println("state cleared")
	default:
		fmt.Println("unknown command. Commands: :vars :reset :quit")
	}
	return false
}
