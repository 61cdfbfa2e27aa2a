// Command regcomb-gen writes Go constructors for the patterns in a YAML
// config. It is meant for go:generate:
//
//	//go:generate go run github.com/dlclark/regcomb/cmd/regcomb-gen -config patterns.yaml -out patterns_gen.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dlclark/regcomb/gen"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "regcomb-gen: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("regcomb-gen", flag.ContinueOnError)
	configFile := fs.String("config", "patterns.yaml", "YAML file listing the patterns")
	outputFile := fs.String("out", "", "output Go file (default stdout)")
	pkg := fs.String("package", "", "package name, overriding the config")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %v", fs.Args())
	}

	f, err := os.Open(*configFile)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg, err := gen.LoadConfig(f)
	if err != nil {
		return err
	}
	if *pkg != "" {
		cfg.Package = *pkg
	}

	src, err := gen.Generate(cfg)
	if err != nil {
		return err
	}

	if *outputFile == "" {
		_, err = stdout.Write(src)
		return err
	}
	return os.WriteFile(*outputFile, src, 0o644)
}
