package main

import (
	"io"
	"passimpay/client/passimpay"

	"github.com/fatih/color"
)

func newConsoleReporter(w io.Writer) passimpay.Reporter {
	errColor := color.New(color.FgRed, color.Bold)
	okColor := color.New(color.FgGreen)
	return func(r passimpay.Report) {
		if r.Message != "" {
			errColor.Fprintf(w, "Error: %s\n", r.Message)
			return
		}
		okColor.Fprintln(w, r.Summary)
	}
}
