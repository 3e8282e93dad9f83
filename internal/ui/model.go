package ui

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/paperfeed/paperlens/internal/config"
	"github.com/paperfeed/paperlens/internal/feed"
	"github.com/paperfeed/paperlens/internal/filter"
	"github.com/paperfeed/paperlens/internal/paper"
	"github.com/paperfeed/paperlens/internal/store"
	"github.com/paperfeed/paperlens/internal/urlstate"
)

type State int

const (
	StateLoading State = iota
	StateBrowsing
	StateFiltering
	StateMessage
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateBrowsing:
		return "Browsing"
	case StateFiltering:
		return "Filtering"
	case StateMessage:
		return "Message"
	default:
		return "Unknown"
	}
}

type Model struct {
	state  State
	width  int
	height int
	styles Styles
	keys   KeyMap

	themeIndex int
	showHelp   bool

	snapshot *paper.Snapshot
	visible  []paper.Paper
	page     int
	pageSize int

	store      *filter.Store
	filterForm *FilterForm

	listView ListView
	spinner  spinner.Model

	statusMessage string
	messageType   string

	editingPreset bool
	presetInput   string
	presetIndex   int

	cfg     *config.Config
	presets *config.PresetStore
}

type PapersLoadedMsg struct {
	Snapshot *paper.Snapshot
}

type ErrorMsg struct {
	Error error
}

func NewModel() *Model {
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{PageSize: 25}
	}

	presets, err := config.LoadPresetStore()
	if err != nil {
		presets = nil // nil-checked by callers
	}

	themeNames := GetThemeNames()
	themeIndex := 0
	themeName := "default"
	for i, name := range themeNames {
		if name == cfg.Theme {
			themeIndex = i
			themeName = name
			break
		}
	}

	st := filter.NewStore()
	if cfg.Filters != "" {
		if restored, err := urlstate.ParseQuery(cfg.Filters); err == nil {
			st.Replace(restored)
		}
	}
	if cfg.DefaultSort != "" {
		if sortKey, ok := filter.ParseSortKey(cfg.DefaultSort); ok {
			st.SetSort(sortKey)
		}
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 25
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(Themes[themeName].Primary))

	m := &Model{
		state:      StateLoading,
		styles:     NewStyles(Themes[themeName]),
		keys:       DefaultKeyMap(),
		themeIndex: themeIndex,
		page:       1,
		pageSize:   pageSize,
		store:      st,
		spinner:    s,
		cfg:        cfg,
		presets:    presets,
	}

	m.listView = NewListView(80, 24)
	m.listView.UpdateTableStyles(Themes[themeName])
	return m
}

func (m *Model) cycleTheme() {
	themeNames := GetThemeNames()
	m.themeIndex = (m.themeIndex + 1) % len(themeNames)
	newTheme := themeNames[m.themeIndex]
	m.styles = NewStyles(Themes[newTheme])
	m.listView.UpdateTableStyles(Themes[newTheme])
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(Themes[newTheme].Primary))

	if m.cfg != nil {
		m.cfg.Theme = newTheme
		_ = m.cfg.Save()
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startLoading())
}

func (m *Model) startLoading() tea.Cmd {
	m.state = StateLoading
	m.statusMessage = "Loading papers..."

	cfg := m.cfg
	return func() tea.Msg {
		if cfg != nil && cfg.Database != "" {
			s, err := store.Open(cfg.Database)
			if err != nil {
				return ErrorMsg{Error: err}
			}
			defer s.Close()

			ctx := context.Background()
			date := cfg.Date
			if date == "" {
				dates, err := s.Dates(ctx)
				if err != nil {
					return ErrorMsg{Error: err}
				}
				if len(dates) == 0 {
					return ErrorMsg{Error: fmt.Errorf("database has no papers")}
				}
				date = dates[0]
			}

			snap, err := s.SnapshotForDate(ctx, date)
			if err != nil {
				return ErrorMsg{Error: err}
			}
			return PapersLoadedMsg{Snapshot: snap}
		}

		var feedURL string
		if cfg != nil {
			feedURL = cfg.FeedURL
		}
		client := feed.NewClient(feedURL)
		opts := feed.FetchOptions{}
		if cfg != nil {
			opts.Date = cfg.Date
		}
		snap, err := client.GetPapers(opts)
		if err != nil {
			return ErrorMsg{Error: err}
		}
		return PapersLoadedMsg{Snapshot: snap}
	}
}

// refresh recomputes the visible set from the applied filters, re-sorts it
// and clamps the page so it never points past the end.
func (m *Model) refresh() {
	if m.snapshot == nil {
		return
	}

	m.visible = filter.VisiblePapers(m.snapshot.Papers, m.store.Current())

	pageCount := filter.PageCount(len(m.visible), m.pageSize)
	if m.page > pageCount {
		m.page = pageCount
	}
	if m.page < 1 {
		m.page = 1
	}

	m.listView.SetPapers(filter.Page(m.visible, m.page, m.pageSize))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listView.SetWidthHeight(msg.Width, msg.Height)
		if m.state == StateFiltering && m.filterForm != nil {
			f, cmd := m.filterForm.form.Update(msg)
			m.filterForm.form = f.(*huh.Form)
			return m, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PapersLoadedMsg:
		m.snapshot = msg.Snapshot
		m.page = 1
		m.refresh()
		m.statusMessage = fmt.Sprintf("Loaded %d papers for %s", m.snapshot.TotalPapers, m.snapshot.Date)
		m.state = StateBrowsing

	case ErrorMsg:
		m.statusMessage = msg.Error.Error()
		m.messageType = "error"
		m.state = StateMessage

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	default:
		if m.state == StateFiltering && m.filterForm != nil {
			return m.updateFilterForm(msg)
		}
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateFiltering:
		return m.updateFilterForm(msg)
	case StateMessage:
		m.state = StateBrowsing
		m.statusMessage = ""
		m.messageType = ""
		return m, nil
	case StateLoading:
		if keyMatches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	// Preset name input intercepts everything else
	if m.editingPreset {
		return m.handlePresetInput(msg)
	}

	switch {
	case keyMatches(msg, m.keys.Quit):
		return m, tea.Quit
	case keyMatches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	return m.handleBrowsingKeys(msg)
}

func (m *Model) handleBrowsingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Up):
		m.listView.MoveCursor(-1)
	case keyMatches(msg, m.keys.Down):
		m.listView.MoveCursor(1)
	case keyMatches(msg, m.keys.PrevPage):
		if m.page > 1 {
			m.page--
			m.refresh()
		}
	case keyMatches(msg, m.keys.NextPage):
		if m.page < filter.PageCount(len(m.visible), m.pageSize) {
			m.page++
			m.refresh()
		}
	case keyMatches(msg, m.keys.Filter):
		m.filterForm = NewFilterForm(m.store)
		m.state = StateFiltering
		return m, m.filterForm.form.Init()
	case keyMatches(msg, m.keys.Sort):
		m.cycleSort(1)
	case keyMatches(msg, m.keys.SortBack):
		m.cycleSort(-1)
	case keyMatches(msg, m.keys.Copy):
		if query, err := m.ExportFiltersToClipboard(); err != nil {
			m.statusMessage = fmt.Sprintf("Copy failed: %v", err)
			m.messageType = "error"
			m.state = StateMessage
		} else if query == "" {
			m.statusMessage = "Copied link (default filters)"
		} else {
			m.statusMessage = "Copied filter link: " + Truncate(query, 60)
		}
	case keyMatches(msg, m.keys.Paste):
		if err := m.ImportFiltersFromClipboard(); err != nil {
			m.statusMessage = fmt.Sprintf("Paste failed: %v", err)
			m.messageType = "error"
			m.state = StateMessage
		} else {
			m.page = 1
			m.refresh()
			m.statusMessage = m.matchSummary()
		}
	case keyMatches(msg, m.keys.Reload):
		return m, m.startLoading()
	case keyMatches(msg, m.keys.Open):
		if p := m.listView.GetPaper(m.listView.Cursor()); p != nil && p.ArxivURL != "" {
			if err := openURL(p.ArxivURL); err != nil {
				m.statusMessage = fmt.Sprintf("Failed to open URL: %v", err)
				m.messageType = "error"
				m.state = StateMessage
			}
		}
	case keyMatches(msg, m.keys.SavePreset):
		m.editingPreset = true
		m.presetInput = ""
	case keyMatches(msg, m.keys.Presets):
		m.applyNextPreset()
	case keyMatches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	}

	return m, nil
}

func (m *Model) cycleSort(delta int) {
	keys := filter.SortKeys()
	current := m.store.Current().Sort
	idx := 0
	for i, k := range keys {
		if k == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(keys)) % len(keys)
	m.store.SetSort(keys[idx])
	m.refresh()
	m.statusMessage = "Sort: " + keys[idx].Label()

	if m.cfg != nil {
		m.cfg.DefaultSort = string(keys[idx])
		_ = m.cfg.Save()
	}
}

func (m *Model) handlePresetInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		name := strings.TrimSpace(m.presetInput)
		if name != "" && m.presets != nil {
			m.presets.SetPreset(name, urlstate.EncodeQuery(m.store.Current()))
			if err := m.presets.Save(); err != nil {
				m.statusMessage = fmt.Sprintf("Preset save failed: %v", err)
				m.messageType = "error"
				m.state = StateMessage
			} else {
				m.statusMessage = fmt.Sprintf("Saved preset %q", name)
			}
		}
		m.editingPreset = false
		m.presetInput = ""
	case tea.KeyEsc:
		m.editingPreset = false
		m.presetInput = ""
	case tea.KeyBackspace:
		if len(m.presetInput) > 0 {
			m.presetInput = m.presetInput[:len(m.presetInput)-1]
		}
	default:
		if s := msg.String(); len(s) == 1 && s[0] >= 32 {
			m.presetInput += s
		}
	}
	return m, nil
}

// applyNextPreset cycles through saved presets, installing each in turn.
func (m *Model) applyNextPreset() {
	if m.presets == nil {
		return
	}
	names := m.presets.Names()
	if len(names) == 0 {
		m.statusMessage = "No saved presets"
		return
	}

	m.presetIndex = m.presetIndex % len(names)
	name := names[m.presetIndex]
	m.presetIndex++

	preset, ok := m.presets.GetPreset(name)
	if !ok {
		return
	}

	state, err := DecodeShared(preset.Query)
	if err != nil {
		m.statusMessage = fmt.Sprintf("Preset %q is corrupt: %v", name, err)
		m.messageType = "error"
		m.state = StateMessage
		return
	}

	m.store.Replace(state)
	m.page = 1
	m.refresh()
	m.statusMessage = fmt.Sprintf("Preset %q: %s", name, m.matchSummary())
}

func (m *Model) updateFilterForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.filterForm == nil {
		m.state = StateBrowsing
		return m, nil
	}

	// Esc abandons the pending edits without touching the applied filters
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.filterForm.Discard()
		m.filterForm = nil
		m.state = StateBrowsing
		return m, nil
	}

	f, cmd := m.filterForm.form.Update(msg)
	m.filterForm.form = f.(*huh.Form)

	switch m.filterForm.form.State {
	case huh.StateCompleted:
		m.filterForm.Apply()
		m.filterForm = nil
		m.page = 1
		m.refresh()
		m.statusMessage = m.matchSummary()
		m.state = StateBrowsing

		if m.cfg != nil {
			m.cfg.Filters = urlstate.EncodeQuery(m.store.Current())
			_ = m.cfg.Save()
		}
	case huh.StateAborted:
		m.filterForm.Discard()
		m.filterForm = nil
		m.state = StateBrowsing
	}

	return m, cmd
}

func (m *Model) matchSummary() string {
	total := 0
	if m.snapshot != nil {
		total = len(m.snapshot.Papers)
	}
	return fmt.Sprintf("%d of %d papers match", len(m.visible), total)
}

func (m *Model) View() string {
	var content string
	centered := true

	switch m.state {
	case StateLoading:
		content = m.loadingView()
	case StateBrowsing:
		content = m.browsingView()
		centered = false
	case StateFiltering:
		content = m.filteringView()
		centered = false
	case StateMessage:
		content = m.messageView()
	default:
		return "Unknown state"
	}

	if centered && m.width > 0 && m.height > 0 {
		content = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}

	return content
}

func (m *Model) loadingView() string {
	status := fmt.Sprintf("%s %s", m.spinner.View(), m.statusMessage)

	content := m.styles.Border.Render(
		lipgloss.JoinVertical(lipgloss.Center,
			m.styles.Title.Render("Paperlens"),
			"",
			m.styles.Normal.Render(status),
		),
	)

	help := m.renderHelpLine([]helpEntry{{"q", "cancel"}})
	return lipgloss.JoinVertical(lipgloss.Center, "", content, "", help)
}

func (m *Model) browsingView() string {
	// Header bar
	date := ""
	total := 0
	if m.snapshot != nil {
		date = m.snapshot.Date
		total = len(m.snapshot.Papers)
	}
	headerLeft := m.styles.HelpKey.Render("Paperlens " + date)
	pageCount := filter.PageCount(len(m.visible), m.pageSize)
	countText := m.styles.HelpDesc.Render(fmt.Sprintf(
		"%d/%d visible · page %d/%d · %s",
		len(m.visible), total, m.page, pageCount, m.store.Current().Sort.Label(),
	))
	headerGap := ""
	if m.width > 0 {
		gap := m.width - lipgloss.Width(headerLeft) - lipgloss.Width(countText) - 4
		if gap > 0 {
			headerGap = strings.Repeat(" ", gap)
		}
	}
	header := m.styles.HeaderBar.Width(m.width - 1).Render(headerLeft + headerGap + countText)

	// Table, or an explicit empty-match line so no matches never looks like
	// a load failure
	var list string
	if m.listView.Len() == 0 {
		list = m.styles.Warning.Render("  " + m.matchSummary() + " — press f to adjust filters")
	} else {
		list = m.listView.View()
	}

	// Detail pane
	detail := ""
	if m.listView.Len() > 0 {
		detailContent := m.listView.DetailView(m.width, m.styles)
		if detailContent != "" {
			divW := m.width - 1
			if divW < 1 {
				divW = 1
			}
			divider := m.styles.HelpSep.Render(strings.Repeat("─", divW))
			detail = divider + "\n" + detailContent
		}
	}

	var statusLine string
	if m.editingPreset {
		statusLine = m.styles.Normal.Render("  preset name: " + m.presetInput + "▌")
	} else if m.statusMessage != "" {
		statusLine = m.styles.Help.Render("  " + m.statusMessage)
	}

	var footer string
	if m.showHelp {
		footer = m.renderFullHelp()
	} else {
		footer = m.renderBrowseFooter()
	}

	parts := []string{header, list}
	if detail != "" {
		parts = append(parts, detail)
	}
	if statusLine != "" {
		parts = append(parts, statusLine)
	}
	if footer != "" {
		parts = append(parts, footer)
	}

	content := strings.Join(parts, "\n")

	// Pad output to exactly m.height lines so the alternate screen buffer
	// repaints cleanly and doesn't leave stale content from previous frames.
	if m.height > 0 {
		rendered := strings.Split(content, "\n")
		for len(rendered) < m.height {
			rendered = append(rendered, "")
		}
		return strings.Join(rendered[:m.height], "\n")
	}
	return content
}

func (m *Model) filteringView() string {
	if m.filterForm == nil {
		return ""
	}

	title := m.styles.Title.Render("  Edit Filters")
	hint := m.styles.Help.Render("  changes apply on submit · esc abandons them")
	summary := m.styles.HelpDesc.Render("  applied: " + appliedSummary(m.store.Current()))
	disabled := filter.Disabled(m.store.Current())
	var disabledLine string
	if keys := disabled.Keys(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = string(k)
		}
		disabledLine = m.styles.HelpDesc.Render("  unavailable: " + strings.Join(names, ", "))
	}

	parts := []string{title, hint, summary}
	if disabledLine != "" {
		parts = append(parts, disabledLine)
	}
	parts = append(parts, "", m.filterForm.form.View())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// appliedSummary describes the applied per-category selection counts shown
// above the form while editing.
func appliedSummary(current filter.State) string {
	return fmt.Sprintf("topics %s · recommendation %s · relevance %s",
		filter.ButtonLabel(filter.SelectedCount(current.Topics), len(paper.Topics())),
		filter.ButtonLabel(filter.SelectedCount(current.Recommendation), len(paper.Recommendations())),
		filter.ButtonLabel(filter.SelectedCount(current.Relevance), len(paper.Relevances())))
}

func (m *Model) messageView() string {
	var icon, title string
	var titleStyle lipgloss.Style

	if m.messageType == "error" {
		icon = "✗"
		title = "Error"
		titleStyle = m.styles.Error
	} else {
		icon = "✓"
		title = "Success"
		titleStyle = m.styles.Success
	}

	content := m.styles.Border.Render(
		lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render(icon+" "+title),
			"",
			m.styles.Normal.Render(m.statusMessage),
		),
	)

	help := m.renderHelpLine([]helpEntry{{"any key", "continue"}})
	return lipgloss.JoinVertical(lipgloss.Center, "", content, "", help)
}

// Help rendering

type helpEntry struct {
	key  string
	desc string
}

func (m *Model) renderHelpLine(entries []helpEntry) string {
	var parts []string
	sep := m.styles.HelpSep.Render(" · ")
	for _, e := range entries {
		parts = append(parts, m.styles.HelpKey.Render(e.key)+" "+m.styles.HelpDesc.Render(e.desc))
	}
	return strings.Join(parts, sep)
}

func (m *Model) renderBrowseFooter() string {
	line1 := []helpEntry{
		{"j/k", "navigate"},
		{"h/l", "page"},
		{"f", "filters"},
		{"s/S", "sort"},
	}
	line2 := []helpEntry{
		{"c", "copy link"},
		{"v", "paste link"},
		{"p/P", "presets"},
		{"o", "open"},
		{"R", "reload"},
		{"t", "theme"},
		{"?", "help"},
		{"q", "quit"},
	}

	return m.styles.FooterBar.Width(m.width - 1).Render(
		m.renderHelpLine(line1) + "\n" + m.renderHelpLine(line2),
	)
}

func (m *Model) renderFullHelp() string {
	sections := []struct {
		title   string
		entries []helpEntry
	}{
		{"Navigation", []helpEntry{
			{"j / ↓", "move down"},
			{"k / ↑", "move up"},
			{"h / ←", "previous page"},
			{"l / →", "next page"},
		}},
		{"Filtering", []helpEntry{
			{"f", "edit filters (apply on submit)"},
			{"c", "copy filter link to clipboard"},
			{"v", "paste filter link from clipboard"},
			{"p", "save filters as preset"},
			{"P", "cycle saved presets"},
		}},
		{"Sorting", []helpEntry{
			{"s", "next sort key"},
			{"S", "previous sort key"},
		}},
		{"General", []helpEntry{
			{"o", "open paper on arxiv"},
			{"R", "reload papers"},
			{"t", "cycle theme"},
			{"?", "toggle this help"},
			{"q / ctrl+c", "quit"},
		}},
	}

	var lines []string
	for _, sec := range sections {
		lines = append(lines, m.styles.HelpKey.Render("  "+sec.title))
		for _, e := range sec.entries {
			lines = append(lines, fmt.Sprintf("    %s  %s",
				m.styles.HelpKey.Render(fmt.Sprintf("%-12s", e.key)),
				m.styles.HelpDesc.Render(e.desc),
			))
		}
	}

	return m.styles.FooterBar.Width(m.width - 1).Render(strings.Join(lines, "\n"))
}

func keyMatches(msg tea.KeyMsg, target key.Binding) bool {
	for _, k := range target.Keys() {
		if msg.String() == k {
			return true
		}
	}
	return false
}

func openURL(url string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "windows":
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		cmd = "open"
		args = []string{url}
	default:
		cmd = "xdg-open"
		args = []string{url}
	}
	return exec.Command(cmd, args...).Start()
}
