package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// fittrackHuhTheme returns a custom huh theme using the Gruvbox palette.
func fittrackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// packageField describes one raw value the form asks for.
type packageField struct {
	title       string
	placeholder string
	validate    func(string) error
}

var commonFields = []packageField{
	{"Action count (steps or strokes)", "15000", validateNonNegativeInt},
	{"Duration (hours)", "1", validatePositiveFloat},
	{"Weight (kg)", "75", validatePositiveFloat},
}

// packageFields returns the inputs for code in constructor order.
func packageFields(code string) []packageField {
	fields := append([]packageField(nil), commonFields...)
	switch code {
	case domain.CodeWalking:
		fields = append(fields, packageField{"Height (cm)", "180", validatePositiveFloat})
	case domain.CodeSwimming:
		fields = append(fields,
			packageField{"Pool length (m)", "25", validatePositiveFloat},
			packageField{"Pool laps", "40", validateNonNegativeInt},
		)
	}
	return fields
}

// wizardSelectCode creates a huh form to pick the workout code.
func wizardSelectCode(result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(domain.Codes))
	for _, code := range domain.Codes {
		kind, _ := domain.KindForCode(code)
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", kind.Label(), code), code))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Workout").
				Options(options...).
				Value(result),
		),
	).WithTheme(fittrackHuhTheme()).WithShowHelp(false)
}

// wizardInputValues creates a huh form with one input per raw value of code.
func wizardInputValues(code string, values []string) *huh.Form {
	fields := packageFields(code)
	inputs := make([]huh.Field, 0, len(fields))
	for i, f := range fields {
		inputs = append(inputs, huh.NewInput().
			Title(f.title).
			Placeholder(f.placeholder).
			Value(&values[i]).
			Validate(f.validate))
	}
	return huh.NewForm(huh.NewGroup(inputs...)).
		WithTheme(fittrackHuhTheme()).
		WithShowHelp(false)
}

// runForm drives a huh form over the given streams.
func runForm(form *huh.Form, in io.Reader, out io.Writer) error {
	return form.WithProgramOptions(tea.WithInput(in), tea.WithOutput(out)).Run()
}

// packageFromForm converts validated form strings into a package.
func packageFromForm(code string, values []string) (domain.Package, error) {
	data := make([]float64, 0, len(values))
	for i, raw := range values {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return domain.Package{}, fmt.Errorf("value %d: invalid number %q", i+1, raw)
		}
		data = append(data, v)
	}
	return domain.Package{Code: code, Data: data}, nil
}

// validatePositiveFloat requires a number greater than zero.
func validatePositiveFloat(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateNonNegativeInt requires a whole number of zero or more.
func validateNonNegativeInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return fmt.Errorf("enter a whole number of zero or more")
	}
	return nil
}
