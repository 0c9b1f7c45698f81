package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"caretrack/internal/adapter/http/dto"
	"caretrack/internal/core/domain"
	"caretrack/internal/heuristic"
)

type taskFormMode int

const (
	taskFormCreate taskFormMode = iota
	taskFormEdit
)

const (
	taskFormStepTitle = iota
	taskFormStepDescription
	taskFormStepPriority
	taskFormStepStatus
	taskFormStepCategory
	taskFormStepDueDate
	taskFormSteps = 6
)

type taskForm struct {
	mode        taskFormMode
	taskID      string
	step        int
	title       string
	description string
	priority    string
	status      string
	category    string
	dueDate     string
}

func (m *Model) startCreateForm() {
	m.form = &taskForm{
		mode:     taskFormCreate,
		step:     taskFormStepTitle,
		priority: string(domain.PriorityMedium),
		status:   string(domain.StatusPending),
		category: string(domain.CategoryExamination),
	}
	m.inputMode = inputTaskForm
	m.loadCurrentFormStep()
	m.textInput.Focus()
}

func (m *Model) startEditForm(task domain.Task) {
	dueDate := ""
	if !task.DueDate.IsZero() {
		dueDate = task.DueDate.Format("2006-01-02")
	}
	m.form = &taskForm{
		mode:        taskFormEdit,
		taskID:      task.ID,
		step:        taskFormStepTitle,
		title:       task.Title,
		description: task.Description,
		priority:    string(task.Priority),
		status:      string(task.Status),
		category:    string(task.Category),
		dueDate:     dueDate,
	}
	m.inputMode = inputTaskForm
	m.loadCurrentFormStep()
	m.textInput.Focus()
}

func (m Model) submitOrAdvanceForm() (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.inputMode = inputNone
		return m, nil
	}

	value := strings.TrimSpace(m.textInput.Value())
	switch m.form.step {
	case taskFormStepTitle:
		m.form.title = value
	case taskFormStepDescription:
		m.form.description = value
	case taskFormStepPriority:
		m.form.priority = value
	case taskFormStepStatus:
		m.form.status = value
	case taskFormStepCategory:
		m.form.category = value
	case taskFormStepDueDate:
		m.form.dueDate = value
	}

	if m.form.step < taskFormSteps-1 {
		m.form.step++
		m.loadCurrentFormStep()
		m.textInput.Focus()
		return m, textinput.Blink
	}

	cmd, err := m.submitFormCmd()
	if err != nil {
		m.statusLine = err.Error()
		m.loadCurrentFormStep()
		m.textInput.Focus()
		return m, textinput.Blink
	}

	m.inputMode = inputNone
	m.form = nil
	m.textInput.Blur()
	return m, cmd
}

func (m *Model) loadCurrentFormStep() {
	if m.form == nil {
		return
	}

	modeLabel := "Créer"
	if m.form.mode == taskFormEdit {
		modeLabel = "Modifier"
	}

	suffix := fmt.Sprintf("%s une tâche (%d/%d) - ", modeLabel, m.form.step+1, taskFormSteps)
	switch m.form.step {
	case taskFormStepTitle:
		m.textInput.Placeholder = "Titre"
		m.textInput.SetValue(m.form.title)
		m.statusLine = suffix + "titre"
	case taskFormStepDescription:
		m.textInput.Placeholder = "Description"
		m.textInput.SetValue(m.form.description)
		m.statusLine = suffix + "description"
	case taskFormStepPriority:
		m.textInput.Placeholder = "Priorité (low|medium|high)"
		m.textInput.SetValue(m.form.priority)
		m.statusLine = suffix + "priorité"
	case taskFormStepStatus:
		m.textInput.Placeholder = "Statut (pending|in_progress|completed|cancelled)"
		m.textInput.SetValue(m.form.status)
		m.statusLine = suffix + "statut"
	case taskFormStepCategory:
		m.textInput.Placeholder = "Catégorie (examination|surgery|medication|consultation|follow_up)"
		m.textInput.SetValue(m.form.category)
		m.statusLine = suffix + "catégorie"
	case taskFormStepDueDate:
		m.textInput.Placeholder = "Échéance (AAAA-MM-JJ, vide pour aucune)"
		m.textInput.SetValue(m.form.dueDate)
		m.statusLine = suffix + "échéance"
	}
}

func (m Model) submitFormCmd() (tea.Cmd, error) {
	if m.form == nil {
		return nil, fmt.Errorf("aucun formulaire actif")
	}

	title := strings.TrimSpace(m.form.title)
	if title == "" {
		return nil, fmt.Errorf("le titre est obligatoire")
	}
	if !validPriority(m.form.priority) {
		return nil, fmt.Errorf("priorité invalide (low|medium|high)")
	}
	if !validStatus(m.form.status) {
		return nil, fmt.Errorf("statut invalide")
	}
	if !validCategory(m.form.category) {
		return nil, fmt.Errorf("catégorie invalide")
	}
	if m.form.dueDate != "" {
		if _, err := time.Parse("2006-01-02", m.form.dueDate); err != nil {
			return nil, fmt.Errorf("échéance invalide, format AAAA-MM-JJ")
		}
	}

	if m.form.mode == taskFormCreate {
		req := dto.CreateTaskRequest{Title: title}
		req.Description = optional(m.form.description)
		req.Priority = optional(m.form.priority)
		req.Status = optional(m.form.status)
		req.Category = optional(m.form.category)
		req.DueDate = optional(m.form.dueDate)
		return m.createTaskCmd(req), nil
	}

	// Description is always sent on edit; emptying the field clears the
	// stored value instead of leaving it behind.
	req := dto.UpdateTaskRequest{
		Title:       &title,
		Description: &m.form.description,
		Priority:    optional(m.form.priority),
		Status:      optional(m.form.status),
		Category:    optional(m.form.category),
		DueDate:     optional(m.form.dueDate),
	}
	return m.updateTaskCmd(m.form.taskID, req), nil
}

// submitQuickTask turns one free-text line into a create request via the
// local heuristics, then sends it as-is.
func (m Model) submitQuickTask(text string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(text) == "" {
		m.statusLine = "texte vide"
		return m, nil
	}

	draft := heuristic.Infer(text, time.Now())
	req := dto.CreateTaskRequest{Title: draft.Title}
	req.Description = optional(draft.Description)
	req.Priority = optional(string(draft.Priority))
	if !draft.DueDate.IsZero() {
		req.DueDate = optional(draft.DueDate.Format("2006-01-02"))
	}
	if draft.Patient != nil {
		req.Patient = &dto.PatientPayload{
			FirstName: draft.Patient.FirstName,
			LastName:  draft.Patient.LastName,
		}
	}
	return m, m.createTaskCmd(req)
}

func (m Model) createTaskCmd(req dto.CreateTaskRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if _, err := client.CreateTask(context.Background(), req); err != nil {
			return opResultMsg{err: err}
		}
		return opResultMsg{status: "tâche créée"}
	}
}

func (m Model) updateTaskCmd(id string, req dto.UpdateTaskRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if _, err := client.UpdateTask(context.Background(), id, req); err != nil {
			return opResultMsg{err: err}
		}
		return opResultMsg{status: "tâche mise à jour"}
	}
}

func validPriority(value string) bool {
	switch domain.Priority(value) {
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
		return true
	}
	return false
}

func validStatus(value string) bool {
	switch domain.Status(value) {
	case domain.StatusPending, domain.StatusInProgress, domain.StatusCompleted, domain.StatusCancelled:
		return true
	}
	return false
}

func validCategory(value string) bool {
	switch domain.Category(value) {
	case domain.CategoryExamination, domain.CategorySurgery, domain.CategoryMedication,
		domain.CategoryConsultation, domain.CategoryFollowUp:
		return true
	}
	return false
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
