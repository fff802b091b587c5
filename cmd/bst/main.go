package main

import (
	"flag"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/e11jah/bst"
	"github.com/e11jah/bst/internal/logging"
)

func main() {
	args, err := ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if args.Debug {
		level = zerolog.DebugLevel
	}
	logging.SetGlobalLogger(level)

	if err := run(os.Stdout, args); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(w io.Writer, args *Args) error {
	logger := logging.WithScope(log.Logger, "tree")
	values := splitValues(args.Values)

	if args.Strings {
		logger.Debug().Int("values", len(values)).Msg("building string tree")
		return demo(w, bst.New[string](bst.WithLogger(logger)), values, []string(args.Search), []string(args.Delete), args.Shape)
	}

	ints, err := parseInts(values)
	if err != nil {
		return errors.Wrap(err, "parse -values")
	}
	search, err := parseInts(args.Search)
	if err != nil {
		return errors.Wrap(err, "parse -search")
	}
	del, err := parseInts(args.Delete)
	if err != nil {
		return errors.Wrap(err, "parse -delete")
	}

	logger.Debug().Int("values", len(ints)).Msg("building integer tree")
	return demo(w, bst.New[int](bst.WithLogger(logger)), ints, search, del, args.Shape)
}
