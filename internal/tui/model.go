// Package tui is an interactive liability calculator: type a profit figure,
// pick a tax year, see the full income tax and NI breakdown.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/calculation"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/rates"
)

// Model is the application state.
type Model struct {
	registry  *rates.Registry
	incomeTax *calculation.IncomeTaxCalculator
	ni        *calculation.NationalInsuranceCalculator

	input     textinput.Model
	years     []string
	yearIndex int

	result *breakdown
	err    error
}

type breakdown struct {
	incomeTax *domain.IncomeTaxResult
	ni        *domain.NationalInsuranceResult
}

// NewModel creates the calculator model over a rate registry.
func NewModel(registry *rates.Registry) Model {
	ti := textinput.New()
	ti.Placeholder = "annual profit in pounds, e.g. 30000"
	ti.CharLimit = 12
	ti.Width = 30
	ti.Focus()

	years := registry.Years()
	return Model{
		registry:  registry,
		incomeTax: calculation.NewIncomeTaxCalculator(registry),
		ni:        calculation.NewNationalInsuranceCalculator(registry),
		input:     ti,
		years:     years,
		yearIndex: len(years) - 1,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "tab", "right":
			m.yearIndex = (m.yearIndex + 1) % len(m.years)
			m.recalculate()
			return m, nil
		case "shift+tab", "left":
			m.yearIndex = (m.yearIndex - 1 + len(m.years)) % len(m.years)
			m.recalculate()
			return m, nil
		case "enter":
			m.recalculate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) recalculate() {
	m.result = nil
	m.err = nil

	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return
	}
	profit, err := domain.ParseMoney(raw)
	if err != nil {
		m.err = err
		return
	}

	year := m.years[m.yearIndex]
	it, err := m.incomeTax.Calculate(profit, year)
	if err != nil {
		m.err = err
		return
	}
	ni, err := m.ni.Calculate(profit, year)
	if err != nil {
		m.err = err
		return
	}
	m.result = &breakdown{incomeTax: it, ni: ni}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("UK Self Assessment Calculator"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Tax year: "))
	b.WriteString(valueStyle.Render(m.years[m.yearIndex]))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if m.result != nil {
		b.WriteString(boxStyle.Render(m.renderBreakdown()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter calculate · tab switch year · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderBreakdown() string {
	var b strings.Builder
	it := m.result.incomeTax
	ni := m.result.ni

	row := func(label string, amount domain.Money) {
		b.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render(fmt.Sprintf("%-22s", label)),
			valueStyle.Render(fmt.Sprintf("%14s", amount.Format()))))
	}

	row("Personal allowance", it.Allowance)
	row("Taxable income", it.TaxableIncome)
	for _, band := range it.Bands {
		row(fmt.Sprintf("  %s rate tax", band.Name), band.Tax)
	}
	row("Income tax", it.TotalTax)
	row("Class 2 NI", ni.Class2.AnnualAmount)
	row("Class 4 NI", ni.Class4.Total)

	total := it.TotalTax + ni.Total
	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render(fmt.Sprintf("%-22s", "Total liability")),
		totalStyle.Render(fmt.Sprintf("%14s", total.Format()))))
	b.WriteString(fmt.Sprintf("%s %s",
		labelStyle.Render(fmt.Sprintf("%-22s", "Take-home")),
		totalStyle.Render(fmt.Sprintf("%14s", (it.GrossIncome-total).Format()))))
	return b.String()
}
