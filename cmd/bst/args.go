package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type Args struct {
	Values  string
	Delete  StringArray
	Search  StringArray
	Strings bool
	Debug   bool
	Shape   bool
}

type StringArray []string

func (arr *StringArray) String() string {
	return fmt.Sprintf("%s", *arr)
}

func (arr *StringArray) Set(value string) error {
	*arr = append(*arr, value)
	return nil
}

func ParseArgs(argv []string) (*Args, error) {
	args := new(Args)
	fs := flag.NewFlagSet("bst", flag.ContinueOnError)

	fs.StringVar(&args.Values, "values", "10,5,15,3,7,12,20", "comma separated values to insert, in order")
	fs.Var(&args.Delete, "delete", "value to delete after inserting; can be given multiple times")
	fs.Var(&args.Search, "search", "value to search for; can be given multiple times")
	fs.BoolVar(&args.Strings, "strings", false, "treat values as strings instead of integers")
	fs.BoolVar(&args.Debug, "debug", false, "enable debug output")
	fs.BoolVar(&args.Shape, "shape", true, "render the shape of the tree")

	if err := fs.Parse(argv); err != nil {
		return nil, err
	}

	if len(args.Search) == 0 && len(args.Delete) == 0 && args.Values == "10,5,15,3,7,12,20" {
		args.Search = StringArray{"7", "11"}
		args.Delete = StringArray{"5"}
	}
	return args, nil
}

func splitValues(s string) []string {
	parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	return lo.Filter(parts, func(p string, _ int) bool {
		return p != ""
	})
}

func parseInts(values []string) ([]int, error) {
	ints := make([]int, 0, len(values))
	for _, v := range values {
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid integer value %q", v)
		}
		ints = append(ints, i)
	}
	return ints, nil
}
