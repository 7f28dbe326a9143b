package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	vizschema "github.com/reportkit/vizschema"
	"github.com/reportkit/vizschema/export"
	"github.com/reportkit/vizschema/jsonschema"
	"github.com/reportkit/vizschema/render"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "render":
		renderCmd(os.Args[2:])
	case "validate":
		validateCmd(os.Args[2:])
	case "csv":
		csvCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "vizschema CLI\n\nUsage:\n  vizschema render -in report.json [-o out.html] [-png out.png] [-pdf out.pdf] [-max bytes] [-v]\n  vizschema validate -in report.json\n  vizschema csv -in report.json -element <id> [-o out.csv]\n\nNotes:\n  - Candidates ending in .yaml/.yml are decoded as YAML, everything else as JSON.\n  - validate runs the strict schema pre-flight; render repairs instead of rejecting.")
}

func renderCmd(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var in, out, png, pdf string
	var maxBytes int64
	var verbose bool
	fs.StringVar(&in, "in", "", "candidate document (json or yaml)")
	fs.StringVar(&out, "o", "", "output html filename (default stdout)")
	fs.StringVar(&png, "png", "", "also capture a PNG snapshot")
	fs.StringVar(&pdf, "pdf", "", "also capture a PDF snapshot")
	fs.Int64Var(&maxBytes, "max", 0, "reject candidates larger than this many bytes (0 = no cap)")
	fs.BoolVar(&verbose, "v", false, "log repairs and diagnostics")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	doc, iss, err := vizschema.ParseReport(ctx, sourceFor(in), vizschema.ParseOpt{MaxBytes: maxBytes})
	if err != nil {
		fatalf("parse %s: %v", in, err)
	}

	var opts []render.Option
	if verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fatalf("logger: %v", err)
		}
		defer log.Sync()
		for _, it := range iss {
			log.Info("repair", zap.String("path", it.Path), zap.String("code", it.Code), zap.String("msg", it.Message))
		}
		opts = append(opts, render.WithLogger(log))
	}

	html := render.New(opts...).RenderHTML(doc)
	if html == "" {
		fatalf("candidate %s is not renderable", in)
	}
	if out == "" {
		fmt.Print(html)
	} else if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		fatalf("writing %s: %v", out, err)
	}

	if png == "" && pdf == "" {
		return
	}
	snap := export.NewSnapshotter()
	defer snap.Close()
	if png != "" {
		b, err := snap.PNG(ctx, html)
		if err != nil {
			fatalf("png snapshot: %v", err)
		}
		if err := os.WriteFile(png, b, 0o644); err != nil {
			fatalf("writing %s: %v", png, err)
		}
	}
	if pdf != "" {
		b, err := snap.PDF(ctx, html)
		if err != nil {
			fatalf("pdf snapshot: %v", err)
		}
		if err := os.WriteFile(pdf, b, 0o644); err != nil {
			fatalf("writing %s: %v", pdf, err)
		}
	}
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var in string
	fs.StringVar(&in, "in", "", "candidate document (json)")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(in)
	if err != nil {
		fatalf("reading %s: %v", in, err)
	}
	iss, err := jsonschema.Validate(raw)
	if err != nil {
		fatalf("validate %s: %v", in, err)
	}
	if len(iss) == 0 {
		fmt.Println("ok")
		return
	}
	b, _ := json.MarshalIndent(map[string]any{"issues": iss}, "", "  ")
	fmt.Println(string(b))
	os.Exit(1)
}

func csvCmd(args []string) {
	fs := flag.NewFlagSet("csv", flag.ExitOnError)
	var in, element, out string
	fs.StringVar(&in, "in", "", "candidate document (json or yaml)")
	fs.StringVar(&element, "element", "", "id of the table element to export")
	fs.StringVar(&out, "o", "", "output csv filename (default stdout)")
	_ = fs.Parse(args)
	if in == "" || element == "" {
		fs.Usage()
		os.Exit(2)
	}

	doc, _, err := vizschema.ParseReport(context.Background(), sourceFor(in))
	if err != nil {
		fatalf("parse %s: %v", in, err)
	}
	for _, sec := range doc.Sections {
		for _, el := range sec.Elements {
			if el.ID != element {
				continue
			}
			csv, err := export.TableCSV(el)
			if err != nil {
				fatalf("csv export: %v", err)
			}
			if out == "" {
				fmt.Print(csv)
			} else if err := os.WriteFile(out, []byte(csv), 0o644); err != nil {
				fatalf("writing %s: %v", out, err)
			}
			return
		}
	}
	fatalf("element %s not found in %s", element, in)
}

func sourceFor(path string) vizschema.Source {
	b, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading %s: %v", path, err)
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return vizschema.YAMLBytes(b)
	}
	return vizschema.JSONBytes(b)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
