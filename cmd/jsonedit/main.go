package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jsonedit/jsonedit"
	"github.com/jsonedit/jsonedit/editor"
	"github.com/jsonedit/jsonedit/internal/mcpserver"
	"github.com/jsonedit/jsonedit/transform"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("jsonedit v%s\n", jsonedit.Version())
	case "help", "-h", "--help":
		printUsage()
	case "patch":
		if err := handlePatch(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// patchFlags contains the non-operation flags for the patch command.
type patchFlags struct {
	inPlace bool
	keep    bool
	pretty  bool
	charset string
	format  string
}

func setupPatchFlags(p *editor.Patcher) (*flag.FlagSet, *patchFlags) {
	fs := flag.NewFlagSet("patch", flag.ContinueOnError)
	flags := &patchFlags{}

	fs.BoolVar(&flags.inPlace, "in-place", false, "rewrite input files instead of printing to stdout")
	fs.BoolVar(&flags.keep, "keep", false, "with -in-place, keep the previous contents as <file>.orig")
	fs.BoolVar(&flags.pretty, "pretty", false, "indent JSON output")
	fs.StringVar(&flags.charset, "charset", "", "character encoding of the input (default UTF-8)")
	fs.StringVar(&flags.format, "format", "", "force output format: json or yaml (default follows the input)")

	// Operation flags are repeatable and apply in command-line order.
	fs.Func("set", "SPEC=VALUE: set the addressed member or element", func(arg string) error {
		return addSet(p, arg, editor.SetAny)
	})
	fs.Func("set-existing", "SPEC=VALUE: set, requiring the target to exist", func(arg string) error {
		return addSet(p, arg, editor.SetExisting)
	})
	fs.Func("set-non-existing", "SPEC=VALUE: set, requiring the target to be absent", func(arg string) error {
		return addSet(p, arg, editor.SetNonExisting)
	})
	fs.Func("remove", "SPEC: remove the addressed member or element", func(arg string) error {
		p.AddRemove(arg, editor.RemoveAny)
		return nil
	})
	fs.Func("remove-existing", "SPEC: remove, requiring the target to exist", func(arg string) error {
		p.AddRemove(arg, editor.RemoveExisting)
		return nil
	})
	fs.Func("insert", "SPEC=VALUE: insert a new element into an array", func(arg string) error {
		spec, value, err := splitSpecValue(arg)
		if err != nil {
			return err
		}
		p.AddInsert(spec, value)
		return nil
	})

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: jsonedit patch [flags] [file...]\n\n")
		_, _ = fmt.Fprintf(output, "Apply set/remove/insert operations to JSON or YAML documents.\n")
		_, _ = fmt.Fprintf(output, "Without files, reads one document from stdin and writes to stdout.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nVALUE is a JSON/YAML literal, or @path to read the value from a file.\n")
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  jsonedit patch -set '.version=\"2.0\"' config.json\n")
		_, _ = fmt.Fprintf(output, "  jsonedit patch -remove '.servers[0]' -insert '.tags[]=extra' -pretty api.json\n")
		_, _ = fmt.Fprintf(output, "  jsonedit patch -set '.spec=@replacement.json' -in-place -keep deploy.yaml\n")
	}

	return fs, flags
}

func handlePatch(args []string) error {
	p := editor.New()
	fs, flags := setupPatchFlags(p)

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	tr, err := transform.New(p,
		transform.WithFormat(outputFormat(flags.format)),
		transform.WithPretty(flags.pretty),
		transform.WithCharset(flags.charset),
		transform.WithKeepOriginal(flags.keep),
	)
	if err != nil {
		return err
	}

	files := fs.Args()
	if len(files) == 0 {
		if flags.inPlace {
			return fmt.Errorf("-in-place requires file arguments")
		}
		return tr.Transform(os.Stdin, os.Stdout)
	}

	for _, file := range files {
		if flags.inPlace {
			if err := tr.File(file); err != nil {
				return err
			}
			continue
		}
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		err = tr.Transform(f, os.Stdout)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// outputFormat maps the -format flag value to a transform format, leaving
// validation of unknown names to transform.New.
func outputFormat(name string) transform.Format {
	if name == "" {
		return transform.FormatAuto
	}
	return transform.Format(name)
}

// addSet parses a SPEC=VALUE argument and registers a set operation.
func addSet(p *editor.Patcher, arg string, mode editor.SetMode) error {
	spec, value, err := splitSpecValue(arg)
	if err != nil {
		return err
	}
	p.AddSet(spec, value, mode)
	return nil
}

// splitSpecValue splits a SPEC=VALUE argument at the first '=' and parses
// the value part as a literal or @file reference.
func splitSpecValue(arg string) (string, any, error) {
	spec, rawValue, found := strings.Cut(arg, "=")
	if !found {
		return "", nil, fmt.Errorf("expected SPEC=VALUE, got %q", arg)
	}
	value, err := transform.Value(rawValue)
	if err != nil {
		return "", nil, err
	}
	return spec, value, nil
}

func printUsage() {
	fmt.Printf("jsonedit v%s - path-addressed JSON/YAML document editor\n\n", jsonedit.Version())
	fmt.Println("Usage: jsonedit <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  patch      Apply set/remove/insert operations to documents")
	fmt.Println("  mcp        Run the MCP server over stdio")
	fmt.Println("  version    Show version information")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Run 'jsonedit <command> -h' for command-specific help.")
}
