package conjecturecli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/calvinalkan/conjecture-go/pkg/conjecture"
)

// REPL is the interactive loop for stepping through an Interesting
// buffer byte by byte and slice by slice, the way a developer
// inspects a shrunken counterexample by hand.
type REPL struct {
	Buffer []byte

	liner *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".conjecture_history")
}

// Run starts the REPL loop against r.Buffer.
func (r *REPL) Run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)

	if f, err := os.Open(historyFile()); err == nil {
		_, _ = r.liner.ReadHistory(f)
		_ = f.Close()
	}

	fmt.Printf("conjecture replay (%d bytes)\n", len(r.Buffer))
	fmt.Println("Type 'help' for available commands.")
	fmt.Println()

	for {
		line, err := r.liner.Prompt("conjecture> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			r.saveHistory()

			return nil

		case "help", "?":
			r.printHelp()

		case "hex":
			fmt.Println(hexDump(r.Buffer))

		case "len":
			fmt.Println(len(r.Buffer))

		case "byte":
			r.cmdByte(args)

		case "slice":
			r.cmdSlice(args)

		case "run":
			r.cmdRun(args)

		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()

	return nil
}

func (r *REPL) saveHistory() {
	path := historyFile()
	if path == "" {
		return
	}

	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = r.liner.WriteHistory(f)
}

func (r *REPL) printHelp() {
	fmt.Println(`Commands:
  hex                 Print the buffer as hex
  len                 Print the buffer length
  byte <i>            Print the byte at index i
  slice <i> <j>       Print buffer[i:j] as hex
  run <test-name>     Re-run a named registered test against the buffer
  help                Show this help
  exit / quit / q     Exit`)
}

func (r *REPL) cmdByte(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: byte <i>")
		return
	}

	i, err := strconv.Atoi(args[0])
	if err != nil || i < 0 || i >= len(r.Buffer) {
		fmt.Println("index out of range")
		return
	}

	fmt.Printf("%d (0x%02x)\n", r.Buffer[i], r.Buffer[i])
}

func (r *REPL) cmdSlice(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: slice <i> <j>")
		return
	}

	i, errI := strconv.Atoi(args[0])
	j, errJ := strconv.Atoi(args[1])

	if errI != nil || errJ != nil || i < 0 || j > len(r.Buffer) || i > j {
		fmt.Println("invalid range")
		return
	}

	fmt.Println(hexDump(r.Buffer[i:j]))
}

// cmdRun re-executes a registered test against r.Buffer and reports its
// resulting status, for comparing a replayed buffer against a live
// property without re-running the whole search.
func (r *REPL) cmdRun(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: run <test-name>")
		return
	}

	test, ok := registry[args[0]]
	if !ok {
		fmt.Printf("no registered test named %q\n", args[0])
		return
	}

	d := conjecture.New(r.Buffer)

	func() {
		defer func() {
			if rec := recover(); rec != nil {
				fmt.Printf("status: interesting (panic: %v)\n", rec)
			}
		}()

		test(d)
		fmt.Println("status: valid")
	}()
}

// registry holds named test callbacks a host binary can register so the
// REPL's `run` command can re-execute them against a loaded buffer.
var registry = map[string]func(*conjecture.TestData){}

// Register adds a named test callback to the REPL registry, so it can
// be driven from the REPL's `run` command and from the `search`
// subcommand.
func Register(name string, test func(*conjecture.TestData)) {
	registry[name] = test
}

// Lookup returns the test callback registered under name, if any.
func Lookup(name string) (func(*conjecture.TestData), bool) {
	test, ok := registry[name]
	return test, ok
}

// Names returns the names of all registered test callbacks, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func hexDump(b []byte) string {
	var sb strings.Builder

	for i, c := range b {
		if i > 0 && i%16 == 0 {
			sb.WriteByte('\n')
		}

		fmt.Fprintf(&sb, "%02x ", c)
	}

	return sb.String()
}
