package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pthm/contentlint/internal/analysis"
	"github.com/pthm/contentlint/internal/assessments"
)

// NodeKind says what an explorer row shows.
type NodeKind int

const (
	NodeDocument NodeKind = iota
	NodeCategory
	NodeResult
	NodeEvidence
)

// ExplorerNode represents a displayable row in the explorer tree
type ExplorerNode struct {
	Kind     NodeKind
	Report   *analysis.Report
	Category assessments.Category
	Result   *assessments.Result
	Evidence *assessments.Evidence
	Depth    int
	Expanded bool
	Children []*ExplorerNode
	Parent   *ExplorerNode
}

// ExplorerModel is the bubbletea model for browsing reports:
// document, category, assessment, evidence.
type ExplorerModel struct {
	reports     []*analysis.Report
	nodes       []*ExplorerNode // Flattened list of visible nodes
	allNodes    []*ExplorerNode // Top-level nodes including collapsed ones
	cursor      int
	viewport    viewport.Model
	ready       bool
	width       int
	height      int
	showSkipped bool
	keys        explorerKeyMap
	styles      explorerStyles
	ratings     *Styles
}

type explorerKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Toggle      key.Binding
	ToggleSkips key.Binding
	Quit        key.Binding
}

type explorerStyles struct {
	selected  lipgloss.Style
	document  lipgloss.Style
	category  lipgloss.Style
	evidence  lipgloss.Style
	tree      lipgloss.Style
	dim       lipgloss.Style
	statusBar lipgloss.Style
	helpBar   lipgloss.Style
}

func defaultExplorerKeyMap() explorerKeyMap {
	return explorerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "collapse"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "expand"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "toggle"),
		),
		ToggleSkips: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle skipped"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func defaultExplorerStyles() explorerStyles {
	return explorerStyles{
		selected:  lipgloss.NewStyle().Background(lipgloss.Color("237")).Bold(true),
		document:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		category:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		evidence:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		tree:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		statusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1),
		helpBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Background(lipgloss.Color("235")),
	}
}

// NewExplorerModel creates a new explorer over reports
func NewExplorerModel(reports []*analysis.Report) ExplorerModel {
	m := ExplorerModel{
		reports: reports,
		keys:    defaultExplorerKeyMap(),
		styles:  defaultExplorerStyles(),
		ratings: NewStyles(true),
	}
	m.buildNodes()
	return m
}

// buildNodes constructs the tree from the reports
func (m *ExplorerModel) buildNodes() {
	m.allNodes = nil

	for _, rep := range m.reports {
		doc := &ExplorerNode{Kind: NodeDocument, Report: rep, Expanded: len(m.reports) == 1}
		byCategory := make(map[assessments.Category]*ExplorerNode)

		for i := range rep.Results {
			res := &rep.Results[i]
			if res.Status == assessments.Skipped && !m.showSkipped {
				continue
			}
			cat, ok := byCategory[res.Category]
			if !ok {
				cat = &ExplorerNode{Kind: NodeCategory, Report: rep, Category: res.Category, Depth: 1, Expanded: true, Parent: doc}
				byCategory[res.Category] = cat
				doc.Children = append(doc.Children, cat)
			}

			node := &ExplorerNode{Kind: NodeResult, Report: rep, Result: res, Depth: 2, Parent: cat}
			for j := range res.Evidence {
				node.Children = append(node.Children, &ExplorerNode{
					Kind: NodeEvidence, Report: rep, Result: res, Evidence: &res.Evidence[j], Depth: 3, Parent: node,
				})
			}
			cat.Children = append(cat.Children, node)
		}
		m.allNodes = append(m.allNodes, doc)
	}

	m.updateVisibleNodes()
}

func (m *ExplorerModel) updateVisibleNodes() {
	m.nodes = nil
	for _, node := range m.allNodes {
		m.collectVisible(node)
	}

	if m.cursor >= len(m.nodes) {
		m.cursor = len(m.nodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *ExplorerModel) collectVisible(node *ExplorerNode) {
	m.nodes = append(m.nodes, node)

	if node.Expanded {
		for _, child := range node.Children {
			m.collectVisible(child)
		}
	}
}

// Visible returns the rows currently shown.
func (m ExplorerModel) Visible() []*ExplorerNode {
	return m.nodes
}

// Selected returns the row under the cursor, or nil.
func (m ExplorerModel) Selected() *ExplorerNode {
	if m.cursor < len(m.nodes) {
		return m.nodes[m.cursor]
	}
	return nil
}

// Init initializes the model
func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.nodes)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Left):
			if node := m.Selected(); node != nil {
				if !node.Expanded && node.Parent != nil {
					m.moveTo(node.Parent)
				} else {
					node.Expanded = false
				}
				m.updateVisibleNodes()
			}

		case key.Matches(msg, m.keys.Right):
			if node := m.Selected(); node != nil {
				node.Expanded = true
				m.updateVisibleNodes()
			}

		case key.Matches(msg, m.keys.Toggle):
			if node := m.Selected(); node != nil {
				node.Expanded = !node.Expanded
				m.updateVisibleNodes()
			}

		case key.Matches(msg, m.keys.ToggleSkips):
			m.showSkipped = !m.showSkipped
			m.buildNodes()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.viewport.YPosition = 2
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}
	}

	return m, nil
}

func (m *ExplorerModel) moveTo(target *ExplorerNode) {
	for i, n := range m.nodes {
		if n == target {
			m.cursor = i
			return
		}
	}
}

// View renders the explorer
func (m ExplorerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	treeHeight := max(m.height-4, 5)

	var sb strings.Builder

	lines := make([]string, 0, len(m.nodes))
	for i, node := range m.nodes {
		lines = append(lines, m.renderNode(node, i == m.cursor))
	}

	// Scroll to keep cursor visible
	startIdx := 0
	if m.cursor >= treeHeight {
		startIdx = m.cursor - treeHeight + 1
	}
	endIdx := min(startIdx+treeHeight, len(lines))

	if startIdx < len(lines) {
		sb.WriteString(strings.Join(lines[startIdx:endIdx], "\n"))
	}
	for i := max(endIdx-startIdx, 0); i < treeHeight; i++ {
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	detail := ""
	if node := m.Selected(); node != nil {
		detail = m.renderDetailLine(node)
	}
	sb.WriteString(m.styles.statusBar.Width(m.width).Render(detail))
	sb.WriteString("\n")

	help := fmt.Sprintf(" ↑↓ navigate  ←→ collapse/expand  s skipped(%s)  q quit", boolToOnOff(m.showSkipped))
	sb.WriteString(m.styles.helpBar.Width(m.width).Render(help))

	return sb.String()
}

func (m *ExplorerModel) renderNode(node *ExplorerNode, selected bool) string {
	var sb strings.Builder

	sb.WriteString(m.styles.tree.Render(strings.Repeat("  ", node.Depth)))

	if node.Parent != nil {
		connector := "├─ "
		siblings := node.Parent.Children
		if siblings[len(siblings)-1] == node {
			connector = "└─ "
		}
		sb.WriteString(m.styles.tree.Render(connector))
	}

	if len(node.Children) > 0 {
		if node.Expanded {
			sb.WriteString(m.styles.dim.Render("▼ "))
		} else {
			sb.WriteString(m.styles.dim.Render("▶ "))
		}
	} else {
		sb.WriteString("  ")
	}

	content := m.nodeLabel(node)
	if selected {
		content = m.styles.selected.Render(content)
	}
	sb.WriteString(content)

	return sb.String()
}

func (m *ExplorerModel) nodeLabel(node *ExplorerNode) string {
	switch node.Kind {
	case NodeDocument:
		rep := node.Report
		label := m.styles.document.Render(documentName(rep)) + m.styles.dim.Render(" ["+rep.Language+"]")
		if rep.HasReadabilityScore {
			label += " " + m.ratings.ForScore(rep.ReadabilityScore).Render(fmt.Sprintf("readability %d", rep.ReadabilityScore))
		}
		if rep.HasSEOScore {
			label += " " + m.ratings.ForScore(rep.SEOScore).Render(fmt.Sprintf("seo %d", rep.SEOScore))
		}
		return label
	case NodeCategory:
		return m.styles.category.Render(string(node.Category))
	case NodeResult:
		style, icon := m.ratings.ForResult(*node.Result)
		return style.Render(icon) + " " + node.Result.ID + m.styles.dim.Render("  "+node.Result.Message)
	case NodeEvidence:
		ev := node.Evidence
		return m.styles.evidence.Render(firstNonEmpty(ev.Sentence, ev.Text))
	}
	return ""
}

func (m *ExplorerModel) renderDetailLine(node *ExplorerNode) string {
	switch node.Kind {
	case NodeDocument:
		rep := node.Report
		detail := fmt.Sprintf("%s  Words: %d  Sentences: %d  Keyphrase: %q",
			documentName(rep), rep.Stats.Words, rep.Stats.Sentences, rep.Keyword)
		if rep.FallbackReason != "" {
			detail += "  Fallback: " + rep.FallbackReason
		}
		return detail
	case NodeCategory:
		return fmt.Sprintf("%s  Assessments: %d", node.Category, len(node.Children))
	case NodeResult, NodeEvidence:
		res := node.Result
		detail := fmt.Sprintf("%s  Status: %s  Score: %d/%d", res.ID, res.Status, res.Score, assessments.MaxScore)
		if res.Value != nil {
			detail += fmt.Sprintf("  Value: %.1f", *res.Value)
		}
		if len(res.Missing) > 0 {
			detail += "  Missing: " + strings.Join(res.Missing, ", ")
		}
		return detail
	}
	return ""
}

func documentName(rep *analysis.Report) string {
	if rep.ID != "" {
		return rep.ID
	}
	return "(untitled)"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func boolToOnOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// RunExplorer opens the explorer on the UI's terminal.
func (ui *UI) RunExplorer(reports []*analysis.Report) error {
	p := tea.NewProgram(NewExplorerModel(reports), tea.WithAltScreen(), tea.WithOutput(ui.Writer))
	_, err := p.Run()
	return err
}
