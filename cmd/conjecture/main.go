// conjecture is a small developer tool around pkg/conjecture: it runs a
// registered property search to a shrunken counterexample, shows the
// effective search/shrink settings for the current project, and lets
// you load a previously dumped interesting buffer back into an
// interactive replay shell.
//
// Usage:
//
//	conjecture search <test-name> [--buffer-size N] [--mutations N]
//	                               [--generations N] [--max-shrinks N]
//	                               [--seed-file file] [--dump file] [-i]
//	conjecture print-config [--config file]
//	conjecture replay <dump-file>
package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/conjecture-go/internal/conjecturecli"
	"github.com/calvinalkan/conjecture-go/pkg/conjecture"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printUsage()
		return nil
	}

	switch args[0] {
	case "search":
		return runSearch(args[1:])
	case "print-config":
		return runPrintConfig(args[1:])
	case "replay":
		return runReplay(args[1:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  conjecture search <test-name> [--buffer-size N] [--mutations N] [--generations N] [--max-shrinks N] [--seed-file file] [--dump file] [-i]")
	fmt.Fprintln(os.Stderr, "  conjecture print-config [--config file]")
	fmt.Fprintln(os.Stderr, "  conjecture replay <dump-file>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "registered tests: %s\n", strings.Join(conjecturecli.Names(), ", "))
}

// runSearch registers no tests of its own — conjecturecli's init()
// registers a handful of illustrative ones (internal/conjecturecli/examples.go)
// — looks one up by name, runs it to a shrunken counterexample, and
// optionally dumps or replays the result.
func runSearch(args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	configPath := fs.String("config", "", "use specified config file instead of .conjecture.json")
	bufferSize := fs.Int("buffer-size", 0, "override Settings.BufferSize")
	mutations := fs.Int("mutations", 0, "override Settings.Mutations")
	generations := fs.Int("generations", 0, "override Settings.Generations")
	maxShrinks := fs.Int("max-shrinks", 0, "override Settings.MaxShrinks")
	seedFile := fs.String("seed-file", "", "read a decimal int64 seed from this file for a reproducible run")
	dumpPath := fs.String("dump", "", "atomically write the interesting buffer to this file")
	interactive := fs.BoolP("interactive", "i", false, "drop into the replay REPL on the result")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: conjecture search <test-name> [flags]\nregistered tests: %s",
			strings.Join(conjecturecli.Names(), ", "))
	}

	name := fs.Arg(0)

	test, ok := conjecturecli.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", conjecturecli.ErrUnknownTest, name)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot get working directory: %w", err)
	}

	input := conjecturecli.LoadConfigInput{WorkDir: workDir, ConfigPath: *configPath}

	if fs.Changed("buffer-size") {
		input.BufferSize = bufferSize
	}

	if fs.Changed("mutations") {
		input.Mutations = mutations
	}

	if fs.Changed("generations") {
		input.Generations = generations
	}

	if fs.Changed("max-shrinks") {
		input.MaxShrinks = maxShrinks
	}

	settings, err := conjecturecli.LoadSettings(input)
	if err != nil {
		return err
	}

	rnd := conjecture.NewSource()

	if *seedFile != "" {
		seed, err := conjecturecli.LoadSeed(*seedFile)
		if err != nil {
			return err
		}

		rnd = conjecture.NewSeededSource(seed)
	}

	buffer, found := conjecture.FindInterestingBufferWithSource(test, &settings, rnd)
	if !found {
		fmt.Println("no interesting buffer found")
		return nil
	}

	fmt.Printf("interesting buffer (%d bytes): %x\n", len(buffer), buffer)

	if *dumpPath != "" {
		if err := conjecturecli.DumpBuffer(*dumpPath, buffer); err != nil {
			return err
		}

		fmt.Printf("dumped to %s\n", *dumpPath)
	}

	if *interactive {
		repl := &conjecturecli.REPL{Buffer: buffer}
		return repl.Run()
	}

	return nil
}

func runPrintConfig(args []string) error {
	fs := flag.NewFlagSet("print-config", flag.ContinueOnError)
	configPath := fs.String("config", "", "use specified config file instead of .conjecture.json")

	if err := fs.Parse(args); err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot get working directory: %w", err)
	}

	settings, err := conjecturecli.LoadSettings(conjecturecli.LoadConfigInput{
		WorkDir:    workDir,
		ConfigPath: *configPath,
	})
	if err != nil {
		return err
	}

	fmt.Printf("buffer_size=%d\n", settings.BufferSize)
	fmt.Printf("mutations=%d\n", settings.Mutations)
	fmt.Printf("generations=%d\n", settings.Generations)
	fmt.Printf("max_shrinks=%d\n", settings.MaxShrinks)

	return nil
}

func runReplay(args []string) error {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: conjecture replay <dump-file>")
	}

	buffer, err := conjecturecli.LoadBuffer(fs.Arg(0))
	if err != nil {
		return err
	}

	repl := &conjecturecli.REPL{Buffer: buffer}

	return repl.Run()
}
