// Package dashui provides the Bubble Tea dashboard interface.
package dashui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkvl/salesdash/internal/analytics"
	"github.com/mkvl/salesdash/internal/dataset"
	"github.com/mkvl/salesdash/internal/feedback"
	"github.com/mkvl/salesdash/internal/model"
)

const (
	tabOverview = iota
	tabBreakdown
	tabSegments
	tabData
	tabFeedback
)

const (
	plotHeight  = 10
	dateFormat  = "2006-01-02"
	maxFeedback = 50
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6BCB77"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	cardDeltaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea dashboard UI.
type Model struct {
	loader *dataset.Loader
	log    *feedback.Log

	criteria model.Criteria
	opts     analytics.Options

	report     analytics.Report
	incomplete bool
	errMsg     string

	// Dataset-wide context used by the criteria form.
	segments []string
	regions  []string
	minDate  time.Time
	maxDate  time.Time

	tabs       []string
	activeTab  int
	viewports  []viewport.Model
	dataTable  table.Model
	dataLayout tableLayout

	width  int
	height int

	filterMode   bool
	filterInputs []textinput.Model
	filterIndex  int
	filterError  string

	feedbackMode   bool
	feedbackInput  textinput.Model
	feedbackStatus string
	entries        []model.FeedbackEntry
}

type tableLayout struct {
	width    int
	height   int
	rowCount int
}

// NewModel constructs a dashboard model. An incomplete initial
// criteria is allowed; the UI prompts for segments and regions and
// computes nothing until both are selected.
func NewModel(loader *dataset.Loader, log *feedback.Log, criteria model.Criteria, opts analytics.Options) *Model {
	m := &Model{
		loader:   loader,
		log:      log,
		criteria: criteria,
		opts:     opts,
		tabs:     []string{"Overview", "Breakdown", "Segments", "Data", "Feedback"},
	}
	m.initInputs()
	m.initFeedbackInput()
	m.initDataTable()
	m.initViewports()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.incomplete {
		_, cmd := m.startFilter()
		return cmd
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		if m.feedbackMode {
			return m.updateFeedback(msg)
		}
		if msg.String() == "q" {
			return m, tea.Quit
		}
		if m.activeTab == tabData {
			m.dataTable.Focus()
		} else {
			m.dataTable.Blur()
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "/":
			return m.startFilter()
		case "g":
			m.toggleGranularity()
			return m, nil
		case "t":
			m.cycleTopN()
			return m, nil
		case "enter":
			if m.activeTab == tabFeedback {
				return m.startFeedback()
			}
			return m, nil
		case "home":
			if m.activeTab == tabData {
				m.dataTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "end", "G":
			if m.activeTab == tabData {
				m.dataTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabData {
				var cmd tea.Cmd
				m.dataTable, cmd = m.dataTable.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) initViewports() {
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
}

func (m *Model) initInputs() {
	m.filterInputs = []textinput.Model{
		newInput("From (YYYY-MM-DD): "),
		newInput("To (YYYY-MM-DD): "),
		newInput("Segments (comma-separated): "),
		newInput("Regions (comma-separated): "),
	}
	m.setInputsFromCriteria()
}

func (m *Model) initFeedbackInput() {
	m.feedbackInput = newInput("Feedback: ")
	m.feedbackInput.Placeholder = "What do you think about this dashboard?"
}

func (m *Model) initDataTable() {
	cols, rows := buildDataTable(nil)
	m.dataTable = table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(1),
	)
	m.dataTable.SetStyles(dataTableStyles())
}

func newInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if !m.filterMode && m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, vpHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = vpHeight
	}
	m.setDataTableSize(m.width, vpHeight)
	for i := range m.filterInputs {
		promptWidth := lipgloss.Width(m.filterInputs[i].Prompt)
		m.filterInputs[i].Width = maxInt(10, m.width-promptWidth-2)
	}
	promptWidth := lipgloss.Width(m.feedbackInput.Prompt)
	m.feedbackInput.Width = maxInt(10, m.width-promptWidth-2)
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabData {
		m.dataTable.Focus()
	} else {
		m.dataTable.Blur()
	}
}

func (m *Model) toggleGranularity() {
	if m.opts.Granularity == model.Monthly {
		m.opts.Granularity = model.Daily
	} else {
		m.opts.Granularity = model.Monthly
	}
	m.refresh()
}

func (m *Model) cycleTopN() {
	switch {
	case m.opts.TopN <= 0:
		m.opts.TopN = 5
	case m.opts.TopN >= 20:
		m.opts.TopN = 5
	default:
		m.opts.TopN += 5
	}
	m.refresh()
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	criteria := padLines(m.renderCriteriaSummary(), m.width)
	return tabs + "\n" + criteria
}

func (m *Model) renderCriteriaSummary() string {
	segments := "none"
	if len(m.criteria.Segments) > 0 {
		segments = strings.Join(m.criteria.Segments, ",")
	}
	regions := "none"
	if len(m.criteria.Regions) > 0 {
		regions = strings.Join(m.criteria.Regions, ",")
	}
	summary := fmt.Sprintf("Filters: %s..%s  segments=%s  regions=%s  trend=%s  top=%d",
		m.criteria.From.Format(dateFormat),
		m.criteria.To.Format(dateFormat),
		segments,
		regions,
		m.opts.Granularity,
		m.effectiveTopN(),
	)
	summary = truncateLine(summary, m.width)
	return headerStyle.Render(summary)
}

func (m *Model) effectiveTopN() int {
	if m.opts.TopN <= 0 {
		return 10
	}
	return m.opts.TopN
}

func (m *Model) renderHelp() string {
	help := "Nav: left/right  Scroll: up/down/pgup/pgdn  Filters: /  Trend: g  Top-N: t  Quit: q"
	if m.activeTab == tabFeedback {
		help = "Nav: left/right  Write feedback: enter  Filters: /  Quit: q"
	}
	return headerStyle.Render(help)
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return headerStyle.Render("tab/shift+tab: next field  enter: apply  esc: cancel")
	}
	if m.feedbackMode {
		return headerStyle.Render("enter: submit  esc: cancel")
	}
	if m.errMsg != "" {
		return m.renderHelp() + "\n" + errorStyle.Render(m.errMsg)
	}
	return m.renderHelp()
}

func (m *Model) renderFilterForm() string {
	lines := []string{"Filter Data (enter to apply, esc to cancel)"}
	for _, input := range m.filterInputs {
		lines = append(lines, input.View())
	}
	lines = append(lines,
		"",
		headerStyle.Render(fmt.Sprintf("Dates: %s .. %s", m.minDate.Format(dateFormat), m.maxDate.Format(dateFormat))),
		headerStyle.Render("Segments: "+strings.Join(m.segments, ", ")),
		headerStyle.Render("Regions: "+strings.Join(m.regions, ", ")),
	)
	if m.filterError != "" {
		lines = append(lines, errorStyle.Render(m.filterError))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBody(height int) string {
	if m.filterMode {
		return fitLines(m.renderFilterForm(), m.width, height)
	}
	if m.incomplete {
		prompt := warnStyle.Render("Select at least one segment and one region to proceed.") +
			"\n" + headerStyle.Render("Press / to open the filter form.")
		return fitLines(prompt, m.width, height)
	}
	if m.activeTab == tabData {
		if len(m.report.Filtered) == 0 {
			return fitLines("No matching orders.", m.width, height)
		}
		view := tableMutedStyle.Render(m.dataTable.View())
		return fitLines(view, m.width, height)
	}
	if m.activeTab == tabFeedback {
		return fitLines(m.renderFeedback(), m.width, height)
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) refresh() {
	orders, err := m.loader.Load(context.Background())
	if err != nil {
		m.errMsg = err.Error()
		m.incomplete = false
		for i := range m.viewports {
			m.viewports[i].SetContent("Failed to load dataset.")
		}
		return
	}
	m.segments = analytics.DistinctValues(orders, analytics.BySegment)
	m.regions = analytics.DistinctValues(orders, analytics.ByRegion)
	m.minDate, m.maxDate = analytics.DateSpan(orders)
	if m.criteria.From.IsZero() {
		m.criteria.From = m.minDate
	}
	if m.criteria.To.IsZero() {
		m.criteria.To = m.maxDate
	}

	report, err := analytics.BuildReport(context.Background(), m.loader, m.criteria, m.opts)
	if errors.Is(err, analytics.ErrIncompleteCriteria) {
		m.incomplete = true
		m.errMsg = ""
		return
	}
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.incomplete = false
	m.errMsg = ""
	m.report = report
	m.reloadFeedback()

	width := m.width
	if width <= 0 {
		width = 80
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.applyDataTable(width, bodyHeight)
	m.renderTabContents()
}

func (m *Model) renderTabContents() {
	if len(m.viewports) == 0 || m.incomplete || m.errMsg != "" {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabOverview].SetContent(renderOverview(m.report, m.opts.Granularity, width))
	m.viewports[tabBreakdown].SetContent(renderBreakdown(m.report, m.effectiveTopN(), width))
	m.viewports[tabSegments].SetContent(renderSegments(m.report, width))
}

func renderOverview(report analytics.Report, granularity model.Granularity, width int) string {
	cards := renderKPICards(report, width)
	var buf bytes.Buffer
	if err := analytics.RenderTrend(&buf, report.Trend, granularity, width, plotHeight, true); err != nil {
		return fmt.Sprintf("Failed to render trend: %v", err)
	}
	return strings.TrimRight(cards+"\n\n"+buf.String(), "\n")
}

func renderKPICards(report analytics.Report, width int) string {
	cards := []string{
		metricCard("Total Sales", analytics.FormatMoney(report.Current.TotalSales), analytics.FormatPercent(report.Deltas.SalesPct)),
		metricCard("Total Profit", analytics.FormatMoney(report.Current.TotalProfit), analytics.FormatPercent(report.Deltas.ProfitPct)),
		metricCard("Total Orders", fmt.Sprintf("%d", report.Current.TotalOrders), analytics.FormatPercent(report.Deltas.OrdersPct)),
		metricCard("Avg Delivery", analytics.FormatDays(report.Current.AvgDeliveryDays), analytics.FormatDayDelta(report.Deltas.DeliveryDays)),
	}
	if width < 80 {
		return strings.Join(cards, "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func metricCard(label, value, delta string) string {
	content := fmt.Sprintf("%s\n%s\n%s",
		cardTitleStyle.Render(label),
		cardValueStyle.Render(value),
		cardDeltaStyle.Render(delta+" vs overall"))
	return cardStyle.Render(content)
}

func renderBreakdown(report analytics.Report, topN, width int) string {
	var buf bytes.Buffer
	if err := analytics.RenderBarChart(&buf, "Sales by Region", report.SalesByRegion, width); err != nil {
		return fmt.Sprintf("Failed to render breakdown: %v", err)
	}
	if err := analytics.RenderBarChart(&buf, "Sales by Category", report.SalesByCategory, width); err != nil {
		return fmt.Sprintf("Failed to render breakdown: %v", err)
	}
	title := fmt.Sprintf("Top %d Products by Profit", topN)
	if err := analytics.RenderBarChart(&buf, title, report.TopProducts, width); err != nil {
		return fmt.Sprintf("Failed to render breakdown: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func renderSegments(report analytics.Report, width int) string {
	var buf bytes.Buffer
	err := analytics.RenderGroupTable(&buf, "Sales & Profit by Customer Segment",
		[]analytics.Dimension{analytics.BySegment},
		[]analytics.Metric{analytics.Sales, analytics.Profit},
		report.SegmentSummary)
	if err != nil {
		return fmt.Sprintf("Failed to render segments: %v", err)
	}
	if err := analytics.RenderSeriesBars(&buf, "Preferred Categories by Segment", report.SegmentCategory, width); err != nil {
		return fmt.Sprintf("Failed to render segments: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func (m *Model) renderFeedback() string {
	lines := []string{cardValueStyle.Render("Feedback"), ""}
	if m.feedbackMode {
		lines = append(lines, m.feedbackInput.View(), "")
	} else {
		lines = append(lines, headerStyle.Render("Press Enter to write feedback."), "")
	}
	if m.feedbackStatus != "" {
		lines = append(lines, m.feedbackStatus, "")
	}
	if len(m.entries) == 0 {
		lines = append(lines, headerStyle.Render("No feedback submitted yet."))
	} else {
		start := 0
		if len(m.entries) > maxFeedback {
			start = len(m.entries) - maxFeedback
		}
		for i := len(m.entries) - 1; i >= start; i-- {
			entry := m.entries[i]
			lines = append(lines, fmt.Sprintf("%s  %s",
				headerStyle.Render(entry.At.Format(dateFormat+" 15:04")),
				entry.Comment))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) reloadFeedback() {
	if m.log == nil {
		return
	}
	entries, err := m.log.List()
	if err != nil {
		m.feedbackStatus = errorStyle.Render(err.Error())
		return
	}
	m.entries = entries
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterError = ""
	m.setInputsFromCriteria()
	return m, m.setFilterIndex(0)
}

func (m *Model) startFeedback() (tea.Model, tea.Cmd) {
	m.feedbackMode = true
	m.feedbackStatus = ""
	m.feedbackInput.SetValue("")
	return m, m.feedbackInput.Focus()
}

func (m *Model) setInputsFromCriteria() {
	if len(m.filterInputs) == 0 {
		return
	}
	if !m.criteria.From.IsZero() {
		m.filterInputs[0].SetValue(m.criteria.From.Format(dateFormat))
	}
	if !m.criteria.To.IsZero() {
		m.filterInputs[1].SetValue(m.criteria.To.Format(dateFormat))
	}
	m.filterInputs[2].SetValue(strings.Join(m.criteria.Segments, ","))
	m.filterInputs[3].SetValue(strings.Join(m.criteria.Regions, ","))
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.filterMode = false
		m.filterError = ""
		return m, nil
	case tea.KeyEnter:
		if err := m.applyFilter(); err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.filterMode = false
		m.filterError = ""
		m.refresh()
		m.updateLayout()
		return m, nil
	case tea.KeyTab:
		return m, m.setFilterIndex(m.filterIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFilterIndex(m.filterIndex - 1)
	}
	var cmd tea.Cmd
	m.filterInputs[m.filterIndex], cmd = m.filterInputs[m.filterIndex].Update(msg)
	return m, cmd
}

func (m *Model) updateFeedback(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.feedbackMode = false
		return m, nil
	case tea.KeyEnter:
		if m.log == nil {
			m.feedbackMode = false
			return m, nil
		}
		err := m.log.Append(time.Now(), m.feedbackInput.Value())
		if errors.Is(err, feedback.ErrBlankComment) {
			m.feedbackStatus = warnStyle.Render("Please enter some feedback before submitting.")
			return m, nil
		}
		if err != nil {
			m.feedbackStatus = errorStyle.Render(err.Error())
			return m, nil
		}
		m.feedbackMode = false
		m.feedbackStatus = okStyle.Render("Thank you! Your feedback has been received.")
		m.reloadFeedback()
		return m, nil
	}
	var cmd tea.Cmd
	m.feedbackInput, cmd = m.feedbackInput.Update(msg)
	return m, cmd
}

func (m *Model) setFilterIndex(idx int) tea.Cmd {
	count := len(m.filterInputs)
	if count == 0 {
		return nil
	}
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.filterIndex = idx
	var cmd tea.Cmd
	for i := range m.filterInputs {
		if i == m.filterIndex {
			cmd = m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) applyFilter() error {
	from, err := parseDateInput(m.filterInputs[0].Value(), m.minDate)
	if err != nil {
		return fmt.Errorf("invalid from date (expected YYYY-MM-DD)")
	}
	to, err := parseDateInput(m.filterInputs[1].Value(), m.maxDate)
	if err != nil {
		return fmt.Errorf("invalid to date (expected YYYY-MM-DD)")
	}
	if to.Before(from) {
		return fmt.Errorf("to date is before from date")
	}
	m.criteria = model.Criteria{
		From:     from,
		To:       to,
		Segments: SplitList(m.filterInputs[2].Value()),
		Regions:  SplitList(m.filterInputs[3].Value()),
	}
	return nil
}

func parseDateInput(value string, fallback time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	return time.Parse(dateFormat, value)
}

// SplitList parses a comma-separated selection, dropping empty parts.
func SplitList(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func buildDataTable(orders []model.Order) ([]table.Column, []table.Row) {
	columns := []table.Column{
		{Title: "Order ID", Width: 14},
		{Title: "Order Date", Width: 10},
		{Title: "Ship Date", Width: 10},
		{Title: "Segment", Width: 11},
		{Title: "Region", Width: 8},
		{Title: "Category", Width: 15},
		{Title: "Product", Width: 28},
		{Title: "Sales", Width: 12},
		{Title: "Profit", Width: 12},
	}
	rows := make([]table.Row, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, table.Row{
			order.OrderID,
			order.OrderDate.Format(dateFormat),
			order.ShipDate.Format(dateFormat),
			order.Segment,
			order.Region,
			order.Category,
			order.ProductName,
			analytics.FormatMoney(order.Sales),
			analytics.FormatMoney(order.Profit),
		})
	}
	return columns, rows
}

func dataTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func (m *Model) applyDataTable(width, height int) {
	cols, rows := buildDataTable(m.report.Filtered)
	m.dataTable.SetColumns(cols)
	m.dataTable.SetRows(rows)
	m.dataLayout.rowCount = len(rows)
	m.dataLayout.width = 0 // force resize
	m.setDataTableSize(width, height)
}

func (m *Model) setDataTableSize(width, height int) {
	viewportHeight := maxInt(1, height-1)
	if m.dataLayout.width == width && m.dataLayout.height == viewportHeight {
		return
	}
	m.dataLayout.width = width
	m.dataLayout.height = viewportHeight
	m.dataTable.SetWidth(width)
	m.dataTable.SetHeight(viewportHeight)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
