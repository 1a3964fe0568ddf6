package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultBaseURL = "http://localhost:8080"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringEmail step = iota
	stepEnteringPassword
	stepLoggingIn
	stepLoadingStyles
	stepBrowsingStyles
	stepEnteringStyleName
	stepEnteringStyleDescription
	stepSavingStyle
	stepDeletingStyle
)

type catalogStyle struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type model struct {
	step         step
	baseURL      string
	styles       []catalogStyle
	cursor       int
	email        string
	password     string
	userID       string
	token        string
	newName      string
	currentInput string
	message      string
	quitting     bool
}

type loginSuccessMsg struct {
	userID string
	token  string
}
type stylesLoadedMsg []catalogStyle
type styleSavedMsg struct{ name string }
type styleDeletedMsg struct {
	success bool
	message string
}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	baseURL := os.Getenv("IMAGEMAKER_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return model{
		step:    stepEnteringEmail,
		baseURL: baseURL,
		styles:  []catalogStyle{},
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func loginUser(baseURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", baseURL+"/login", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusUnauthorized {
			return errMsg{fmt.Errorf("invalid email or password")}
		}
		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("login failed with status %d", resp.StatusCode)}
		}

		var result struct {
			Token  string `json:"token"`
			UserID string `json:"user_id"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected login response: %w", err)}
		}
		return loginSuccessMsg{userID: result.UserID, token: result.Token}
	}
}

func loadStyles(baseURL string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		resp, err := client.Get(baseURL + "/styles")
		if err != nil {
			return errMsg{fmt.Errorf("failed to load styles: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("list styles returned %d", resp.StatusCode)}
		}

		var result struct {
			Styles []catalogStyle `json:"styles"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected styles response: %w", err)}
		}
		return stylesLoadedMsg(result.Styles)
	}
}

func createStyle(baseURL, name, description string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{"name": name}
		if description != "" {
			payload["description"] = description
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", baseURL+"/styles", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("failed to create style: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			body, _ := io.ReadAll(resp.Body)
			var apiErr struct {
				Error string `json:"error"`
			}
			if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
				return errMsg{fmt.Errorf("%s", apiErr.Error)}
			}
			return errMsg{fmt.Errorf("create style returned %d", resp.StatusCode)}
		}
		return styleSavedMsg{name: name}
	}
}

func deleteStyle(baseURL, id string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		req, _ := http.NewRequest("DELETE", fmt.Sprintf("%s/styles/%s", baseURL, id), nil)
		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("failed to delete style: %w", err)}
		}
		defer resp.Body.Close()

		var result struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected delete response: %w", err)}
		}
		return styleDeletedMsg{success: result.Success, message: result.Message}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			if m.step == stepBrowsingStyles {
				m.quitting = true
				return m, tea.Quit
			}
			if m.step == stepEnteringEmail || m.step == stepEnteringPassword ||
				m.step == stepEnteringStyleName || m.step == stepEnteringStyleDescription {
				m.currentInput += "q"
			}

		case "up":
			if m.step == stepBrowsingStyles && m.cursor > 0 {
				m.cursor--
			}

		case "down":
			if m.step == stepBrowsingStyles && m.cursor < len(m.styles)-1 {
				m.cursor++
			}

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		case "n":
			if m.step == stepBrowsingStyles {
				m.currentInput = ""
				m.step = stepEnteringStyleName
				return m, nil
			}
			m.currentInput += "n"

		case "d":
			if m.step == stepBrowsingStyles && len(m.styles) > 0 {
				m.step = stepDeletingStyle
				m.message = fmt.Sprintf("Deleting %s...", m.styles[m.cursor].Name)
				return m, deleteStyle(m.baseURL, m.styles[m.cursor].ID)
			}
			m.currentInput += "d"

		case "r":
			if m.step == stepBrowsingStyles {
				m.step = stepLoadingStyles
				m.message = "Refreshing..."
				return m, loadStyles(m.baseURL)
			}
			m.currentInput += "r"

		case "enter":
			switch m.step {
			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepLoggingIn
					m.message = "Logging in..."
					return m, loginUser(m.baseURL, m.email, m.password)
				}

			case stepEnteringStyleName:
				if m.currentInput != "" {
					m.newName = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringStyleDescription
				}

			case stepEnteringStyleDescription:
				description := m.currentInput
				m.currentInput = ""
				m.step = stepSavingStyle
				m.message = fmt.Sprintf("Creating %s...", m.newName)
				return m, createStyle(m.baseURL, m.newName, description)
			}

		default:
			if m.step == stepEnteringEmail || m.step == stepEnteringPassword ||
				m.step == stepEnteringStyleName || m.step == stepEnteringStyleDescription {
				m.currentInput += msg.String()
			}
		}

	case loginSuccessMsg:
		m.userID = msg.userID
		m.token = msg.token
		m.step = stepLoadingStyles
		m.message = successStyle.Render("Logged in as " + m.email)
		return m, loadStyles(m.baseURL)

	case stylesLoadedMsg:
		m.styles = []catalogStyle(msg)
		if m.cursor >= len(m.styles) {
			m.cursor = 0
		}
		m.step = stepBrowsingStyles

	case styleSavedMsg:
		m.message = successStyle.Render(fmt.Sprintf("Created style %q", msg.name))
		m.step = stepLoadingStyles
		return m, loadStyles(m.baseURL)

	case styleDeletedMsg:
		if msg.success {
			m.message = successStyle.Render(msg.message)
		} else {
			m.message = errorStyle.Render(msg.message)
		}
		m.step = stepLoadingStyles
		return m, loadStyles(m.baseURL)

	case errMsg:
		m.message = errorStyle.Render(msg.err.Error())
		if m.userID == "" {
			m.currentInput = ""
			m.step = stepEnteringEmail
		} else {
			m.step = stepBrowsingStyles
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Image Maker - Style Catalog Admin\n\n"))

	switch m.step {
	case stepEnteringEmail:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Enter your email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Enter your password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("*", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepLoggingIn, stepLoadingStyles, stepSavingStyle, stepDeletingStyle:
		s.WriteString(m.message + "\n")

	case stepBrowsingStyles:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Styles:\n\n"))

		if len(m.styles) == 0 {
			s.WriteString(normalStyle.Render("(no styles yet)\n"))
		}
		for i, style := range m.styles {
			cursor := " "
			lineStyle := normalStyle
			if m.cursor == i {
				cursor = ">"
				lineStyle = selectedStyle
			}
			line := style.Name
			if style.Description != "" {
				line = fmt.Sprintf("%s - %s", style.Name, style.Description)
			}
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, lineStyle.Render(line)))
		}

		s.WriteString("\nUp/Down to move, n new, d delete, r refresh, q quit\n")

	case stepEnteringStyleName:
		s.WriteString(promptStyle.Render("New style name:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringStyleDescription:
		s.WriteString(promptStyle.Render(fmt.Sprintf("Description for %q (optional):\n", m.newName)))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
