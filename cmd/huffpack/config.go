package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
)

const usageText = `usage:
	huffpack [flags] compress <input> <output>
	huffpack [flags] decompress <input> <output>
	huffpack [flags] roundtrip <input> <compressed> <decompressed>

flags:
`

var errUsage = errors.New("invalid usage")

type config struct {
	verb    string
	paths   []string
	dump    bool
	verbose bool
}

var verbArity = map[string]int{
	"compress":   2,
	"decompress": 2,
	"roundtrip":  3,
}

func loadConfig(args []string, stderr io.Writer) (config, error) {
	var cfg config

	dumpDefault, _ := strconv.ParseBool(os.Getenv("HUFFPACK_DUMP"))

	fs := flag.NewFlagSet("huffpack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}
	fs.BoolVar(&cfg.dump, "dump", dumpDefault, "print the code table after compressing (default from $HUFFPACK_DUMP)")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return config{}, errUsage
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return config{}, errUsage
	}
	cfg.verb = fs.Arg(0)
	cfg.paths = fs.Args()[1:]

	arity, found := verbArity[cfg.verb]
	if !found {
		fmt.Fprintf(stderr, "unknown command %q\n", cfg.verb)
		fs.Usage()
		return config{}, errUsage
	}
	if len(cfg.paths) != arity {
		fmt.Fprintf(stderr, "unexpected number of arguments for %s: expected %d, got %d\n", cfg.verb, arity, len(cfg.paths))
		fs.Usage()
		return config{}, errUsage
	}
	return cfg, nil
}
