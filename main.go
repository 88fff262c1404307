package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	appcli "github.com/linksift/linksift/internal/cli"
	"github.com/linksift/linksift/internal/config"
	"github.com/linksift/linksift/internal/extract"
	"github.com/linksift/linksift/internal/fetch"
	"github.com/linksift/linksift/internal/pipeline"
)

var (
	verboseColor = color.New(color.FgBlue)
	debugColor   = color.New(color.FgYellow)
)

func runApp(c *cli.Context) error {
	opts, err := config.Parse(c)
	if err != nil {
		return cli.Exit(color.RedString("❌ Error: %v", err), 1)
	}

	// Diagnostics go to stderr; stdout carries only result URLs.
	verbosef := func(format string, args ...interface{}) {
		if opts.Verbose {
			verboseColor.Fprintf(color.Error, format+"\n", args...)
		}
	}

	verbosef("Reading document from %s", opts.Source.Describe())

	client := &fetch.Client{
		UserAgent: opts.UserAgent,
		Timeout:   opts.Timeout,
		Progress:  opts.Verbose,
	}
	text, err := client.Fetch(opts.Source)
	if err != nil {
		return cli.Exit(color.RedString("❌ Error: %v", err), 1)
	}

	raw := extract.Links(text)
	verbosef("Extracted %d links", len(raw))

	p := &pipeline.Pipeline{
		Spec:    opts.Spec,
		Base:    opts.Base,
		Resolve: opts.Resolve,
		Unique:  opts.Unique,
		Sort:    opts.Sort,
	}
	if opts.Debug {
		p.Debugf = func(format string, args ...interface{}) {
			debugColor.Fprintf(color.Error, "debug: "+format+"\n", args...)
		}
	}

	results := p.Run(raw)
	verbosef("%d links after filtering", len(results))

	for _, u := range results {
		fmt.Println(u)
	}
	return nil
}

func main() {
	// optional per-project defaults for the env-backed flags
	_ = godotenv.Load()

	app := appcli.NewApp(runApp)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
