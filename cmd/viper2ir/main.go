// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/ast"
	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/errors"
	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/kir"
	"github.com/tmdwlsdktkfkdgo/vyper-semantics/internal/parser"
)

var verbose = flag.Bool("v", false, "enable debug tracing")

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	if *verbose {
		commonlog.Configure(1, nil)
	}
	log := commonlog.GetLogger("viper2ir")

	startTime := time.Now()
	path := flag.Arg(0)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	module, parseErrors, scanErrors := parser.ParseSource(path, string(source))
	log.Debugf("parsed %s: %d top-level declarations, %d scan errors, %d parse errors",
		path, len(module.Body), len(scanErrors), len(parseErrors))

	reporter := errors.NewReporter(path, string(source))

	for _, e := range scanErrors {
		fmt.Fprint(os.Stderr, reporter.Format(e.Message, diagPos(path, e.Position), e.Length))
	}
	for _, e := range parseErrors {
		fmt.Fprint(os.Stderr, reporter.Format(e.Message, diagPos(path, e.Position), 1))
	}
	if len(scanErrors) > 0 || len(parseErrors) > 0 {
		fail(startTime)
	}

	ast.FoldNegativeLiterals(module)

	out, err := kir.Translate(module, kir.NewSourceText(string(source)))
	if err != nil {
		if u, ok := errors.AsUnsupported(err); ok {
			fmt.Fprint(os.Stderr, reporter.Format(u.Error(), u.Pos, 1))
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		fail(startTime)
	}

	duration := formatDuration(time.Since(startTime))
	log.Debugf("translated %s in %s", path, duration)

	fmt.Println(out)
	color.New(color.FgGreen).Fprintf(os.Stderr, "Successfully translated %s in %s\n", path, duration)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: viper2ir [-v] <file.v.py>")
}

func fail(startTime time.Time) {
	color.New(color.FgRed).Fprintf(os.Stderr, "Translation failed after %s\n", formatDuration(time.Since(startTime)))
	os.Exit(1)
}

func diagPos(path string, pos parser.Position) ast.Position {
	return ast.Position{
		Filename: path,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
