// mdfold is a small frontend over the fold library: it parses GFM
// markdown and runs one of the built-in folds over it.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	mdfold "github.com/growler/go-mdfold"
	"github.com/growler/go-mdfold/htmltree"
	"github.com/growler/go-mdfold/parse"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "mdfold",
		Usage: "fold GFM markdown documents",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug output",
			},
		},
		Before: func(ctx *cli.Context) error {
			if ctx.Bool("debug") {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			checkCommand,
			fmtCommand,
			htmlCommand,
			wordsCommand,
			tocCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("mdfold failed")
	}
}

// load parses the file named by the first argument, or stdin when no
// argument is given.
func load(ctx *cli.Context) (mdfold.Document, error) {
	var (
		source []byte
		err    error
		name   = ctx.Args().First()
	)
	if name == "" || name == "-" {
		name = "stdin"
		source, err = io.ReadAll(os.Stdin)
	} else {
		source, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	doc, err := parse.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	logrus.WithFields(logrus.Fields{
		"input":  name,
		"blocks": len(doc),
	}).Debug("parsed document")
	return doc, nil
}

var checkCommand = &cli.Command{
	Name:      "check",
	Usage:     "validate heading anchors and anchor links",
	ArgsUsage: "[file]",
	Action: func(ctx *cli.Context) error {
		doc, err := load(ctx)
		if err != nil {
			return err
		}
		if _, err := mdfold.ValidateDocument(doc, func(b mdfold.Block[struct{}]) struct{} {
			return struct{}{}
		}); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	},
}

var fmtCommand = &cli.Command{
	Name:      "fmt",
	Usage:     "pretty-print the document as markdown",
	ArgsUsage: "[file]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "compact",
			Usage: "do not pad table columns",
		},
	},
	Action: func(ctx *cli.Context) error {
		doc, err := load(ctx)
		if err != nil {
			return err
		}
		var style mdfold.TableStyle = mdfold.DefaultStyle{}
		if ctx.Bool("compact") {
			style = mdfold.CompactStyle{}
		}
		fmt.Print(mdfold.Print(doc, style))
		return nil
	},
}

var htmlCommand = &cli.Command{
	Name:      "html",
	Usage:     "render the document as HTML",
	ArgsUsage: "[file]",
	Action: func(ctx *cli.Context) error {
		doc, err := load(ctx)
		if err != nil {
			return err
		}
		fmt.Print(htmltree.Render(doc))
		return nil
	},
}

var wordsCommand = &cli.Command{
	Name:      "words",
	Usage:     "print the document's words, one per line",
	ArgsUsage: "[file]",
	Action: func(ctx *cli.Context) error {
		doc, err := load(ctx)
		if err != nil {
			return err
		}
		for _, w := range mdfold.ExtractDocumentWords(doc) {
			fmt.Println(w)
		}
		return nil
	},
}

var tocCommand = &cli.Command{
	Name:      "toc",
	Usage:     "print the table of contents",
	ArgsUsage: "[file]",
	Action: func(ctx *cli.Context) error {
		doc, err := load(ctx)
		if err != nil {
			return err
		}
		for _, e := range mdfold.TableOfContents(doc) {
			indent := strings.Repeat("  ", int(e.Level)-1)
			fmt.Printf("%s- [%s](#%s)\n", indent, e.Text, e.Anchor)
		}
		return nil
	},
}
