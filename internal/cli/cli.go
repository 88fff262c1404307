package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/linksift/linksift/internal/fetch"
	"github.com/linksift/linksift/internal/utils"
)

const helpTemplate = `{{.Name}} - {{.Usage}}

Usage: {{.HelpName}} [options]

The document is read from --url, --file, or standard input when neither
is given. Matching URLs are printed one per line.

Options:
   {{range .VisibleFlags}}{{.}}
   {{end}}`

func NewApp(action cli.ActionFunc) *cli.App {
	cli.AppHelpTemplate = helpTemplate
	// keep -v free for --verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}

	return &cli.App{
		Name:    "linksift",
		Usage:   "extract, filter and normalize hyperlinks from an HTML document",
		Version: "v" + utils.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Aliases: []string{"u"},
				Usage:   "fetch the document from this URL",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "read the document from this file",
			},
			&cli.StringFlag{
				Name:  "base",
				Usage: "base URL for resolving relative links (defaults to --url)",
			},
			&cli.BoolFlag{
				Name:    "absolute",
				Aliases: []string{"a"},
				Usage:   "resolve relative links against the base URL",
			},
			&cli.BoolFlag{
				Name:    "unique",
				Aliases: []string{"q"},
				Usage:   "drop duplicate URLs",
			},
			&cli.BoolFlag{
				Name:    "sort",
				Aliases: []string{"s"},
				Usage:   "sort output ascending (wins over --sort-desc)",
			},
			&cli.BoolFlag{
				Name:    "sort-desc",
				Aliases: []string{"S"},
				Usage:   "sort output descending",
			},
			&cli.StringFlag{
				Name:  "scheme",
				Usage: "keep only these schemes (comma-separated)",
			},
			&cli.StringFlag{
				Name:  "scheme-exclude",
				Usage: "drop these schemes (comma-separated)",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "keep only these hosts (comma-separated)",
			},
			&cli.StringFlag{
				Name:  "host-exclude",
				Usage: "drop these hosts (comma-separated)",
			},
			&cli.StringFlag{
				Name:  "ext",
				Usage: "keep only these extensions, no leading dot (comma-separated)",
			},
			&cli.StringFlag{
				Name:  "ext-exclude",
				Usage: "drop these extensions (comma-separated)",
			},
			&cli.StringFlag{
				Name:  "path",
				Usage: "keep only URLs whose path matches this pattern",
			},
			&cli.StringFlag{
				Name:  "path-exclude",
				Usage: "drop URLs whose path matches this pattern",
			},
			&cli.StringFlag{
				Name:  "match",
				Usage: "keep only URLs matching this pattern",
			},
			&cli.StringFlag{
				Name:  "match-exclude",
				Usage: "drop URLs matching this pattern",
			},
			&cli.StringFlag{
				Name:    "user-agent",
				Usage:   "User-Agent header for HTTP fetches",
				Value:   fetch.DefaultUserAgent,
				EnvVars: []string{"LINKSIFT_USER_AGENT"},
			},
			&cli.IntFlag{
				Name:    "timeout",
				Usage:   "HTTP timeout in seconds",
				Value:   30,
				EnvVars: []string{"LINKSIFT_TIMEOUT"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "report progress on stderr",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "report every dropped link on stderr",
			},
		},
		Action: action,
		Authors: []*cli.Author{
			{Name: "linksift contributors"},
		},
	}
}
