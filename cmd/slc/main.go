// Command slc is the compiler's command-line front end: compile a file
// to target source, print its parsed AST, or serve the CompileService
// over gRPC. Subcommands are dispatched straight off os.Args, the way
// the teacher's cmd/funxy does it, rather than through a flags framework.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"

	"github.com/funvibe/funxy/internal/cache"
	"github.com/funvibe/funxy/internal/config"
	"github.com/funvibe/funxy/internal/rpcservice"
	"github.com/funvibe/funxy/pkg/slc"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "compile":
		runCompile(os.Args[2:])
	case "ast":
		runAst(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	case "-help", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "slc: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s compile <file> | ast <file> | serve [addr]\n", os.Args[0])
}

func loadConfig() *config.Config {
	path, err := config.FindConfig(".")
	if err != nil || path == "" {
		cfg, _ := config.ParseConfig(nil, "slc.yaml")
		return cfg
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slc: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func runCompile(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "slc compile: expects a file argument")
		os.Exit(1)
	}
	cfg := loadConfig()
	source, err := os.ReadFile(args[0])
	if err != nil {
		fail(err)
	}

	var c *cache.Cache
	if cfg.Cache.Enabled {
		c, err = cache.Open(cfg.Cache.Path)
		if err != nil {
			fail(err)
		}
		defer c.Close()
	}

	text, err := compileWithCache(c, string(source), cfg)
	if err != nil {
		fail(err)
	}
	fmt.Print(text)
}

func compileWithCache(c *cache.Cache, source string, cfg *config.Config) (string, error) {
	if c != nil {
		key := cache.Key(source, cfg.Indent)
		if text, ok, err := c.Get(key); err == nil && ok {
			return text, nil
		}
		text, err := slc.Compile(source, slc.Options{Tab: cfg.Indent})
		if err != nil {
			return "", err
		}
		_ = c.Put(key, text)
		return text, nil
	}
	return slc.Compile(source, slc.Options{Tab: cfg.Indent})
}

func runAst(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "slc ast: expects a file argument")
		os.Exit(1)
	}
	source, err := os.ReadFile(args[0])
	if err != nil {
		fail(err)
	}
	forms, _, err := slc.Parse(string(source))
	if err != nil {
		fail(err)
	}
	for _, f := range forms {
		printLine(slc.AstToString(f))
	}
}

func runServe(args []string) {
	cfg := loadConfig()
	addr := cfg.RPC.Addr
	if len(args) > 0 {
		addr = args[0]
	}
	srv, err := rpcservice.New(cfg.Indent, nil)
	if err != nil {
		fail(err)
	}
	log.WithField("addr", addr).Info("slc: starting CompileService")
	if err := srv.Serve(addr); err != nil {
		fail(err)
	}
}

// printLine writes s in a bold color when stdout is a real terminal,
// matching the teacher's builtins_term.go isatty gate for colorized
// output.
func printLine(s string) {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Printf("\x1b[1m%s\x1b[0m\n", s)
		return
	}
	fmt.Println(s)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "slc: %v\n", err)
	os.Exit(1)
}
