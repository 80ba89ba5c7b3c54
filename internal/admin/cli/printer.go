package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/popcue/admin-console/internal/admin/notify"
	"github.com/popcue/admin-console/internal/admin/view"
)

type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// ResolveColors decides whether to colorize. Auto honours NO_COLOR, a dumb
// terminal and fatih/color's own tty detection.
func ResolveColors(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		if os.Getenv("TERM") == "dumb" {
			return false
		}
		return !color.NoColor
	}
}

// Printer renders console output. It doubles as the notify.Sink.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

var _ notify.Sink = (*Printer)(nil)

func NewPrinter(out, errw io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: errw, useColors: useColors}
}

func (p *Printer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func (p *Printer) fprintf(w io.Writer, attrs []color.Attribute, format string, args ...any) {
	if p.useColors {
		p.paint(attrs...).Fprintf(w, format, args...)
		return
	}
	fmt.Fprintf(w, format, args...)
}

func (p *Printer) Info(format string, args ...any) {
	p.fprintf(p.out, []color.Attribute{color.FgCyan}, format+"\n", args...)
}

func (p *Printer) Success(format string, args ...any) {
	p.fprintf(p.out, []color.Attribute{color.FgGreen}, format+"\n", args...)
}

func (p *Printer) Warning(format string, args ...any) {
	p.fprintf(p.err, []color.Attribute{color.FgYellow}, format+"\n", args...)
}

func (p *Printer) Error(format string, args ...any) {
	p.fprintf(p.err, []color.Attribute{color.FgRed}, format+"\n", args...)
}

func (p *Printer) Print(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Header(title string) {
	line := strings.Repeat("─", len([]rune(title)))
	if p.useColors {
		p.paint(color.FgWhite, color.Bold).Fprintf(p.out, "\n%s\n", title)
		p.paint(color.FgWhite).Fprintf(p.out, "%s\n", line)
		return
	}
	fmt.Fprintf(p.out, "\n%s\n%s\n", title, line)
}

func (p *Printer) Bold(text string) string {
	if p.useColors {
		return p.paint(color.Bold).Sprint(text)
	}
	return text
}

// Notify prints a notice the moment it is shown.
func (p *Printer) Notify(n notify.Notice) {
	switch n.Kind {
	case notify.Success:
		p.Success("%s", n.Message)
	case notify.Error:
		p.Error("%s", n.Message)
	default:
		p.Info("%s", n.Message)
	}
}

// Badge colours the publication status like the web console did: orange for
// draft, green for live.
func (p *Printer) Badge(r view.Result) string {
	if !p.useColors {
		return "[" + r.Badge + "]"
	}
	if r.Published {
		return p.paint(color.FgBlack, color.BgGreen).Sprintf(" %s ", r.Badge)
	}
	return p.paint(color.FgBlack, color.BgYellow).Sprintf(" %s ", r.Badge)
}

// Result prints the result panel.
func (p *Printer) Result(r view.Result) {
	p.Header("Survey")
	if r.Message != "" {
		p.Success("%s", r.Message)
	}
	p.Print("ID:        %s", p.Bold(r.SurveyID))
	p.Print("Questions: %s", r.QuestionsCount)
	p.Print("Status:    %s", p.Badge(r))

	if r.WarningsVisible {
		p.Header("Validation warnings")
		for _, w := range r.Warnings {
			p.fprintf(p.out, []color.Attribute{color.FgYellow}, "  • %s\n", w)
		}
	}

	if r.StructurePreview != "" {
		p.Header("Structure")
		p.Print("%s", r.StructurePreview)
	}
}

func (p *Printer) newTable() *tablewriter.Table {
	return tablewriter.NewTable(p.out,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
}

// Surveys prints the survey list table.
func (p *Printer) Surveys(rows []view.SurveyRow) error {
	if len(rows) == 0 {
		p.Info("No surveys yet. Type 'new' to create one.")
		return nil
	}

	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		actions := "view"
		if r.CanPublish {
			actions = "view, publish"
		}
		data = append(data, []string{r.Title, r.Questions, r.Status, r.Created, r.ID, actions})
	}

	table := p.newTable()
	table.Header([]string{"Title", "Questions", "Status", "Created", "ID", "Actions"})
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// Tenants prints the tenant picker.
func (p *Printer) Tenants(opts []view.TenantOption, fallback bool) error {
	data := make([][]string, 0, len(opts))
	for _, o := range opts {
		mark := ""
		if o.Selected {
			mark = "*"
		}
		data = append(data, []string{mark, o.Label, o.ID})
	}

	table := p.newTable()
	table.Header([]string{"", "Organization", "ID"})
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if fallback {
		p.Warning("Could not load organizations, showing defaults")
	}
	return nil
}
