package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"sortd/internal/catalog"
	"sortd/internal/config"
)

// promptClassifier asks the user for a category when the catalog has none
// for an extension. Accepted answers are remembered so the caller can
// persist them after the run.
type promptClassifier struct {
	in       *bufio.Reader
	out      io.Writer
	assigned map[string]string
}

func newPromptClassifier(in io.Reader, out io.Writer) *promptClassifier {
	return &promptClassifier{
		in:       bufio.NewReader(in),
		out:      out,
		assigned: make(map[string]string),
	}
}

func (p *promptClassifier) Classify(ext string, fileCount int) (string, bool) {
	label := ext
	if label == catalog.NoExtension {
		label = "(no extension)"
	}
	fmt.Fprintf(p.out, "No category mapped for %s (%d file(s)).\n", label, fileCount)

	for {
		fmt.Fprint(p.out, "Category name (blank to skip): ")
		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			return "", false
		}
		answer := strings.TrimSpace(line)
		if answer == "" {
			return "", false
		}
		if err := config.ValidateCategoryName(answer); err != nil {
			fmt.Fprintf(p.out, "invalid category: %v\n", err)
			continue
		}
		category := catalog.CanonicalCategory(answer)
		p.assigned[ext] = category
		return category, true
	}
}

// Assignments returns the accepted extension-to-category answers.
func (p *promptClassifier) Assignments() map[string]string {
	return p.assigned
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
