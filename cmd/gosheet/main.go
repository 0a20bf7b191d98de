package main

import (
	"flag"
	"fmt"
	"os"

	gosheet "github.com/reoring/gosheet"
	"github.com/reoring/gosheet/dsl"
	"github.com/reoring/gosheet/theme"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "compile":
		compileCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "gosheet CLI\n\nUsage:\n  gosheet compile -in theme.yaml [-o out.css] [-manifest out.json] [-debug]\n\nNotes:\n  - Compiles a YAML theme document into a stylesheet. With no -o the CSS goes to stdout.")
}

func compileCmd(args []string) {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	var in string
	var out string
	var manifest string
	var debug bool
	fs.StringVar(&in, "in", "", "theme YAML file")
	fs.StringVar(&out, "o", "", "output CSS filename (default stdout)")
	fs.StringVar(&manifest, "manifest", "", "also write a JSON manifest of generated names")
	fs.BoolVar(&debug, "debug", false, "enable debug mode (diagnostic CSS + lookup warnings)")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(in)
	if err != nil {
		fatal(err)
	}
	opts, models, err := theme.Load(data)
	if err != nil {
		fatal(err)
	}
	if debug {
		opts = append(opts, dsl.Debug())
	}

	sheet := gosheet.Render(opts, models)

	if out == "" {
		fmt.Println(sheet.CSS())
	} else if err := os.WriteFile(out, []byte(sheet.CSS()+"\n"), 0o644); err != nil {
		fatal(err)
	}

	if manifest != "" {
		js, err := sheet.ManifestJSON()
		if err != nil {
			fatal(err)
		}
		if err := os.WriteFile(manifest, js, 0o644); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "gosheet:", err)
	os.Exit(1)
}
