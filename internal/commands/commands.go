package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrUnknownCommand is returned by Execute for a name that was never registered.
var ErrUnknownCommand = errors.New("unknown command")

// FlagSet is the part of *flag.FlagSet the registry needs.
type FlagSet interface {
	Parse(arguments []string) error
	Args() []string
	PrintDefaults()
	SetOutput(w io.Writer)
}

// Command is a subcommand with its own flags and a Run function.
// Run is called after the flags are parsed and receives the remaining positional args.
type Command struct {
	Name    string
	Summary string
	Flags   FlagSet
	Run     func(args []string) error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds     map[string]*Command
	fallback string
}

// NewRegistry returns an empty registry. fallback names the command Execute runs when
// args is empty or starts with a flag; it may be registered later.
func NewRegistry(fallback string) *Registry {
	return &Registry{cmds: make(map[string]*Command), fallback: fallback}
}

// Register adds a subcommand, replacing any previous one with the same name.
func (r *Registry) Register(name, summary string, fs FlagSet, run func(args []string) error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, Flags: fs, Run: run}
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Execute runs the subcommand in args[0] with args[1:] as its flags and arguments.
// With no args, or when args[0] is a flag, the fallback command gets all of args.
func (r *Registry) Execute(args []string) error {
	name := r.fallback
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		name, args = args[0], args[1:]
	}
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if err := cmd.Flags.Parse(args); err != nil {
		return err
	}
	return cmd.Run(cmd.Flags.Args())
}

// Usage writes one line per command, then each command's flag defaults.
func (r *Registry) Usage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s <command> [flags]\n\ncommands:\n", program)
	for _, n := range r.Names() {
		c := r.cmds[n]
		marker := ""
		if n == r.fallback {
			marker = " (default)"
		}
		fmt.Fprintf(w, "  %-8s %s%s\n", n, c.Summary, marker)
	}
	for _, n := range r.Names() {
		c := r.cmds[n]
		fmt.Fprintf(w, "\n%s flags:\n", n)
		c.Flags.SetOutput(w)
		c.Flags.PrintDefaults()
	}
}
