// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/notify"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad right-pads s with spaces to n runes.
func pad(s string, n int) string {
	if c := utf8.RuneCountInString(s); c < n {
		return s + strings.Repeat(" ", n-c)
	}
	return s
}

func onOff(v bool) string {
	if v {
		return "shown"
	}
	return "hidden"
}

// PrintResume outputs a summary of the document: presentation choices,
// contact, and the size and visibility of every section.
func (p *Printer) PrintResume(doc *types.Resume) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	info := doc.PersonalInfo
	name := info.FullName
	if name == "" {
		name = "(no name)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	if info.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Title:    %s\n", info.JobTitle))
	}
	if info.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", info.Email))
	}
	sb.WriteString(fmt.Sprintf("Template: %s\n", doc.Template))
	sb.WriteString(fmt.Sprintf("Accent:   %s\n", doc.AccentColor))
	sb.WriteString("\n")

	photo := "none"
	if types.Deref(info.Photo) != "" {
		photo = "attached"
	}
	sb.WriteString(fmt.Sprintf("%-15s %-9s %s\n", "photo", photo, onOff(doc.ShowSections.Photo)))
	summary := "empty"
	if doc.Summary != "" {
		summary = fmt.Sprintf("%d chars", utf8.RuneCountInString(doc.Summary))
	}
	sb.WriteString(fmt.Sprintf("%-15s %-9s %s\n", "summary", summary, onOff(doc.ShowSections.Summary)))

	counts := []struct {
		section types.Section
		n       int
	}{
		{types.SectionExperience, len(doc.Experience)},
		{types.SectionEducation, len(doc.Education)},
		{types.SectionSkills, len(doc.Skills)},
		{types.SectionCertifications, len(doc.Certifications)},
		{types.SectionProjects, len(doc.Projects)},
		{types.SectionLanguages, len(doc.Languages)},
		{types.SectionAwards, len(doc.Awards)},
	}
	for _, c := range counts {
		sb.WriteString(fmt.Sprintf("%-15s %-9d %s\n", c.section, c.n, onOff(doc.ShowSections.Shows(c.section))))
	}

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecords outputs the ids and labels of one collection, as used by the
// update, remove and move commands.
func (p *Printer) PrintRecords(title string, ids, labels []string) {
	if len(ids) == 0 {
		p.printBox(title, "(empty)")
		return
	}

	var sb strings.Builder
	for i, id := range ids {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		if label == "" {
			label = "(untitled)"
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n   %s\n", i+1, label, id))
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFieldErrors outputs form validation problems, sorted by field.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFieldErrors(title string, fieldErrors map[string]string) {
	if len(fieldErrors) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", pad("✅ "+title+": no problems", boxWidth-4))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	fields := make([]string, 0, len(fieldErrors))
	for f := range fieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString(fmt.Sprintf("⚠ %s: %s\n", f, fieldErrors[f]))
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintNotices outputs warnings collected during a session.
func (p *Printer) PrintNotices(notices []notify.Notice) {
	if len(notices) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(notices), maxItemsToShow)
	for i := 0; i < count; i++ {
		n := notices[i]
		sb.WriteString(fmt.Sprintf("⚠ %s\n", n.Message))
		if n.Err != nil {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", n.Kind, n.Err))
		} else {
			sb.WriteString(fmt.Sprintf("  [%s]\n", n.Kind))
		}
	}
	if len(notices) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(notices)-maxItemsToShow))
	}

	p.printBox("WARNINGS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExports outputs the files written by an export.
func (p *Printer) PrintExports(paths []string) {
	if len(paths) == 0 {
		return
	}
	var sb strings.Builder
	for _, path := range paths {
		sb.WriteString(fmt.Sprintf("• %s\n", path))
	}
	p.printBox("EXPORTED", strings.TrimSuffix(sb.String(), "\n"))
}
