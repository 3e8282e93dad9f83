package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/paperfeed/paperlens/internal/paper"
)

type ListView struct {
	papers      []paper.Paper
	cursor      int
	width       int
	height      int
	visibleRows int // number of data rows visible (excluding header)

	headerStyle   lipgloss.Style
	cellStyle     lipgloss.Style
	selectedStyle lipgloss.Style
	columns       []table.Column
	rows          []table.Row
}

func listColumns(width int) []table.Column {
	// Each cell has Padding(0,1) adding 2 chars per column (6 columns = 12 extra).
	// Subtract 2 more to avoid hitting exact terminal width (causes implicit wraps).
	fixedWidth := 12 + 8 + 8 + 9 + 20 // non-title columns
	padding := 6*2 + 2
	titleWidth := width - fixedWidth - padding
	if titleWidth < 20 {
		titleWidth = 20
	}
	return []table.Column{
		{Title: "Rec", Width: 12},
		{Title: "Novelty", Width: 8},
		{Title: "Impact", Width: 8},
		{Title: "H-Index", Width: 9},
		{Title: "Topic", Width: 20},
		{Title: "Title", Width: titleWidth},
	}
}

func NewListView(width, height int) ListView {
	columns := listColumns(width)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return ListView{
		width:         width,
		height:        height,
		visibleRows:   listVisibleRows(height),
		headerStyle:   headerStyle,
		cellStyle:     cellStyle,
		selectedStyle: selectedStyle,
		columns:       columns,
	}
}

// listVisibleRows reserves space for: header(1) + table header(2) +
// divider(1) + detail pane(6) + status(1) + footer(3).
func listVisibleRows(height int) int {
	visibleRows := height - 14
	if visibleRows < 3 {
		visibleRows = 3
	}
	return visibleRows
}

// UpdateTableStyles updates the styles to match the current theme
func (lv *ListView) UpdateTableStyles(theme Theme) {
	lv.headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.Subtle)).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color(theme.Primary))
	lv.selectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Background)).
		Background(lipgloss.Color(theme.Primary)).
		Bold(false)
}

// SetPapers replaces the page of papers shown in the list. The cursor is
// clamped so it always points at a real row.
func (lv *ListView) SetPapers(papers []paper.Paper) {
	lv.papers = papers
	if lv.cursor >= len(papers) {
		lv.cursor = len(papers) - 1
	}
	if lv.cursor < 0 {
		lv.cursor = 0
	}
	lv.updateRows()
}

func (lv *ListView) updateRows() {
	rows := make([]table.Row, len(lv.papers))
	for i, p := range lv.papers {
		rec := runewidth.FillRight(recommendationText(p.RecommendationScore), 12)
		novelty := runewidth.FillRight(noveltyText(p.NoveltyScore), 8)
		impact := runewidth.FillRight(impactText(p.ImpactScore), 8)
		hIndex := hIndexText(&p)
		topic := Truncate(p.BestTopic().Label(), 20)
		title := Truncate(p.Title, lv.width-70)

		rows[i] = table.Row{rec, novelty, impact, hIndex, topic, title}
	}
	lv.rows = rows
}

func Truncate(s string, maxLen int) string {
	if runewidth.StringWidth(s) > maxLen {
		return runewidth.Truncate(s, maxLen, "…")
	}
	return s
}

func recommendationText(rec paper.Recommendation) string {
	switch rec {
	case paper.MustRead:
		return "🔥 Must"
	case paper.ShouldRead:
		return "👍 Should"
	case paper.CanSkip:
		return "💤 Skip"
	case paper.Ignore:
		return "❌ Ignore"
	default:
		return "· —"
	}
}

func noveltyText(n paper.Novelty) string {
	switch n {
	case paper.NoveltyHigh:
		return "🔴 High"
	case paper.NoveltyModerate:
		return "🟡 Mod"
	case paper.NoveltyLow:
		return "🟢 Low"
	case paper.NoveltyNone:
		return "· None"
	default:
		return "  —"
	}
}

func impactText(im paper.Impact) string {
	switch im {
	case paper.ImpactHigh:
		return "🔴 High"
	case paper.ImpactModerate:
		return "🟡 Mod"
	case paper.ImpactLow:
		return "🟢 Low"
	case paper.ImpactNegligible:
		return "· Negl"
	default:
		return "  —"
	}
}

func hIndexText(p *paper.Paper) string {
	if !p.HasHIndex() {
		return "—"
	}
	return fmt.Sprintf("%.0f/%.0f", p.HighestHIndex, p.AverageHIndex)
}

// detailPaneHeight is the fixed number of lines the detail pane always occupies.
const detailPaneHeight = 6

// DetailView renders a detail pane for the paper under the cursor, padded to
// a fixed height.
func (lv *ListView) DetailView(width int, styles Styles) string {
	p := lv.GetPaper(lv.cursor)
	if p == nil {
		return ""
	}

	maxWidth := width - 4
	if maxWidth < 20 {
		maxWidth = 20
	}

	var lines []string

	lines = append(lines, styles.Highlight.Render(Truncate(p.Title, maxWidth)))

	var meta []string
	meta = append(meta, p.ID)
	if len(p.Authors) > 0 {
		meta = append(meta, Truncate(strings.Join(p.Authors, ", "), 60))
	}
	if p.HasHIndex() {
		meta = append(meta, fmt.Sprintf("h-index max %.0f avg %.1f", p.HighestHIndex, p.AverageHIndex))
	}
	lines = append(lines, styles.Normal.Render(Truncate(strings.Join(meta, " · "), maxWidth)))

	best := p.BestTopic()
	topicLine := fmt.Sprintf("%s %.2f (%s)", best.Label(), p.TopicScore(best), p.TopicRelevance(best))
	if just := p.TopicJustification(best); just != "" && just != paper.NoJustification {
		topicLine += ": " + just
	}
	lines = append(lines, styles.Help.Render(Truncate(topicLine, maxWidth)))

	if p.HasLLMScores() {
		if p.RecommendationJustification != "" && p.RecommendationJustification != paper.NoJustification {
			lines = append(lines, styles.HelpDesc.Render(Truncate("rec: "+p.RecommendationJustification, maxWidth)))
		}
		if p.NoveltyJustification != "" && p.NoveltyJustification != paper.NoJustification {
			lines = append(lines, styles.HelpDesc.Render(Truncate("novelty: "+p.NoveltyJustification, maxWidth)))
		}
		if p.ImpactJustification != "" && p.ImpactJustification != paper.NoJustification {
			lines = append(lines, styles.HelpDesc.Render(Truncate("impact: "+p.ImpactJustification, maxWidth)))
		}
	} else if p.Summary != "" {
		lines = append(lines, styles.HelpDesc.Render(Truncate(p.Summary, maxWidth)))
	}

	if len(lines) > detailPaneHeight {
		lines = lines[:detailPaneHeight]
	}
	for len(lines) < detailPaneHeight {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (lv ListView) Cursor() int {
	return lv.cursor
}

func (lv *ListView) SetCursor(pos int) {
	if pos >= 0 && pos < len(lv.papers) {
		lv.cursor = pos
	}
}

func (lv *ListView) MoveCursor(delta int) {
	newPos := lv.cursor + delta
	if newPos >= 0 && newPos < len(lv.papers) {
		lv.cursor = newPos
	}
}

func (lv ListView) GetPaper(index int) *paper.Paper {
	if index >= 0 && index < len(lv.papers) {
		return &lv.papers[index]
	}
	return nil
}

func (lv ListView) Len() int {
	return len(lv.papers)
}

// renderCell renders a single cell value with the given column width.
func (lv *ListView) renderCell(value string, colWidth int) string {
	style := lipgloss.NewStyle().Width(colWidth).MaxWidth(colWidth).Inline(true)
	return lv.cellStyle.Render(style.Render(runewidth.Truncate(value, colWidth, "…")))
}

// View renders the table with custom scrolling so the cursor row is always
// inside the visible window.
func (lv ListView) View() string {
	// Render header
	headerCells := make([]string, 0, len(lv.columns))
	for _, col := range lv.columns {
		if col.Width <= 0 {
			continue
		}
		style := lipgloss.NewStyle().Width(col.Width).MaxWidth(col.Width).Inline(true)
		cell := style.Render(runewidth.Truncate(col.Title, col.Width, "…"))
		headerCells = append(headerCells, lv.headerStyle.Render(lv.cellStyle.Render(cell)))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, headerCells...)

	visibleRows := lv.visibleRows
	if visibleRows <= 0 {
		visibleRows = 10
	}

	start := 0
	if lv.cursor >= visibleRows {
		start = lv.cursor - visibleRows + 1
	}
	end := start + visibleRows
	if end > len(lv.rows) {
		end = len(lv.rows)
		start = end - visibleRows
		if start < 0 {
			start = 0
		}
	}

	renderedRows := make([]string, 0, visibleRows)
	for i := start; i < end; i++ {
		cells := make([]string, 0, len(lv.columns))
		for ci, value := range lv.rows[i] {
			if lv.columns[ci].Width <= 0 {
				continue
			}
			cells = append(cells, lv.renderCell(value, lv.columns[ci].Width))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		if i == lv.cursor {
			row = lv.selectedStyle.Render(row)
		}
		renderedRows = append(renderedRows, row)
	}

	for len(renderedRows) < visibleRows {
		renderedRows = append(renderedRows, "")
	}

	return header + "\n" + strings.Join(renderedRows, "\n")
}

func (lv *ListView) SetWidthHeight(width, height int) {
	lv.width = width
	lv.height = height
	lv.columns = listColumns(width)
	lv.visibleRows = listVisibleRows(height)
	lv.updateRows()
}
