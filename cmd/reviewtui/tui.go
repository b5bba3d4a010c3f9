// tui.go
package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ninenine-news/backend/store"
	"github.com/ninenine-news/backend/subm"
)

type state int

const (
	stateList state = iota
	stateDetail
	stateScore
	stateFeedback
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
)

type model struct {
	ctx    context.Context
	srvc   *subm.SubmSrvc
	caller subm.Caller

	state   state
	pending []subm.Submission
	cursor  int

	chosenStatus store.Status
	scoreInput   textinput.Model
	fbInput      textinput.Model

	statusLine string
}

func initialModel(ctx context.Context, srvc *subm.SubmSrvc, caller subm.Caller, pending []subm.Submission) model {
	scoreInput := textinput.New()
	scoreInput.Placeholder = "0-100"
	scoreInput.CharLimit = 3

	fbInput := textinput.New()
	fbInput.Placeholder = "feedback for the author"

	return model{
		ctx:        ctx,
		srvc:       srvc,
		caller:     caller,
		state:      stateList,
		pending:    pending,
		scoreInput: scoreInput,
		fbInput:    fbInput,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateList:
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}
			case "down", "j":
				if m.cursor < len(m.pending)-1 {
					m.cursor++
				}
			case "enter":
				if len(m.pending) > 0 {
					m.state = stateDetail
					m.statusLine = ""
				}
			}
		}
	case stateDetail:
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "b":
				m.state = stateList
			case "a":
				return m.pickStatus(store.StatusApproved)
			case "r":
				return m.pickStatus(store.StatusRejected)
			case "n":
				return m.pickStatus(store.StatusNeedsRevision)
			}
		}
	case stateScore:
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.state = stateDetail
				return m, nil
			case "enter":
				score, err := strconv.Atoi(m.scoreInput.Value())
				if err != nil || score < 0 || score > 100 {
					m.statusLine = "score must be an integer between 0 and 100"
					return m, nil
				}
				m.state = stateFeedback
				m.fbInput.SetValue("")
				return m, m.fbInput.Focus()
			}
		}
		var cmd tea.Cmd
		m.scoreInput, cmd = m.scoreInput.Update(msg)
		return m, cmd
	case stateFeedback:
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.state = stateScore
				return m, m.scoreInput.Focus()
			case "enter":
				return m.applyReview()
			}
		}
		var cmd tea.Cmd
		m.fbInput, cmd = m.fbInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) pickStatus(status store.Status) (tea.Model, tea.Cmd) {
	m.chosenStatus = status
	m.state = stateScore
	m.scoreInput.SetValue("")
	m.statusLine = ""
	return m, m.scoreInput.Focus()
}

func (m model) applyReview() (tea.Model, tea.Cmd) {
	score, err := strconv.Atoi(m.scoreInput.Value())
	if err != nil {
		m.statusLine = "invalid score"
		m.state = stateScore
		return m, nil
	}
	feedback := m.fbInput.Value()
	status := m.chosenStatus

	current := m.pending[m.cursor]
	_, err = m.srvc.Review(m.ctx, m.caller, current.ID, subm.ReviewParams{
		Status:   &status,
		Score:    &score,
		Feedback: &feedback,
	})
	if err != nil {
		m.statusLine = fmt.Sprintf("review failed: %v", err)
		m.state = stateDetail
		return m, nil
	}

	m.pending = append(m.pending[:m.cursor], m.pending[m.cursor+1:]...)
	if m.cursor >= len(m.pending) && m.cursor > 0 {
		m.cursor--
	}
	m.statusLine = fmt.Sprintf("submission #%d reviewed as %s (%d)", current.ID, status, score)
	m.state = stateList
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateList:
		s := titleStyle.Render("Pending submissions") + "\n\n"
		if len(m.pending) == 0 {
			s += "Nothing awaiting review.\n"
		}
		for i, view := range m.pending {
			line := fmt.Sprintf("#%d  %s  %s", view.ID, view.OwnerName, view.Title)
			if i == m.cursor {
				line = selectedStyle.Render(line)
			}
			s += line + "\n"
		}
		s += "\n" + faintStyle.Render("enter: open  j/k: move  q: quit")
		if m.statusLine != "" {
			s += "\n" + m.statusLine
		}
		return s
	case stateDetail:
		view := m.pending[m.cursor]
		s := titleStyle.Render(fmt.Sprintf("#%d %s", view.ID, view.Title)) + "\n"
		s += faintStyle.Render(fmt.Sprintf("by %s <%s> on %s",
			view.OwnerName, view.OwnerEmail, view.SubmittedAt.Format("2006-01-02 15:04"))) + "\n\n"
		s += view.Content + "\n\n"
		s += faintStyle.Render("a: approve  r: reject  n: needs revision  b: back  q: quit")
		if m.statusLine != "" {
			s += "\n" + m.statusLine
		}
		return s
	case stateScore:
		s := titleStyle.Render(fmt.Sprintf("Score (%s)", m.chosenStatus)) + "\n\n"
		s += m.scoreInput.View() + "\n\n"
		s += faintStyle.Render("enter: next  esc: back")
		if m.statusLine != "" {
			s += "\n" + m.statusLine
		}
		return s
	case stateFeedback:
		s := titleStyle.Render("Feedback") + "\n\n"
		s += m.fbInput.View() + "\n\n"
		s += faintStyle.Render("enter: submit review  esc: back")
		return s
	default:
		return ""
	}
}
