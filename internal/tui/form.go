package tui

import (
	"fmt"
	"strings"

	goerrors "github.com/go-errors/errors"
	"github.com/jesseduffield/gocui"

	"github.com/Joseda-hg/demoboard/internal/model"
)

type formKind int

const (
	formUser formKind = iota
	formTodo
)

type formField struct {
	Label string
	Value string
}

const (
	userFieldName = iota
	userFieldEmail
)

const (
	todoFieldTitle = iota
	todoFieldPriority
)

type formState struct {
	kind   formKind
	fields []formField
	index  int
}

type formEditor struct {
	ui *UI
}

func newUserForm() *formState {
	return &formState{
		kind: formUser,
		fields: []formField{
			{Label: "Name"},
			{Label: "Email"},
		},
	}
}

func newTodoForm(priority model.Priority) *formState {
	return &formState{
		kind: formTodo,
		fields: []formField{
			{Label: "Title"},
			{Label: "Priority (space/←→)", Value: string(priority)},
		},
	}
}

func (u *UI) openAddForm(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	switch u.focus {
	case viewUsers:
		u.store.SetShowUserForm(true)
		u.form = newUserForm()
	case viewTodos:
		u.form = newTodoForm(u.store.SelectedPriority())
	}
	return nil
}

func (u *UI) showForm(gui *gocui.Gui) error {
	if u.form == nil {
		return nil
	}

	maxX, maxY := gui.Size()
	width := max(50, maxX/2)
	height := len(u.form.fields) + 1
	x0 := (maxX - width) / 2
	y0 := (maxY - height) / 2

	view, err := gui.SetView(viewForm, x0, y0, x0+width, y0+height, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		view.Wrap = true
	}
	if u.form.kind == formUser {
		view.Title = "New User"
	} else {
		view.Title = "New Todo"
	}
	view.Editable = true
	view.KeybindOnEdit = true
	view.Editor = u.formEditor
	u.renderForm(view)
	_, _ = gui.SetCurrentView(viewForm)
	return nil
}

func (u *UI) submitForm(gui *gocui.Gui, _ *gocui.View) error {
	if u.form == nil {
		return nil
	}

	switch u.form.kind {
	case formUser:
		if !u.store.AddUser(u.form.fields[userFieldName].Value, u.form.fields[userFieldEmail].Value) {
			return nil
		}
	case formTodo:
		u.store.SetNewTodoTitle(u.form.fields[todoFieldTitle].Value)
		u.store.SetSelectedPriority(model.Priority(u.form.fields[todoFieldPriority].Value))
		if !u.store.AddTodo() {
			return nil
		}
	}

	u.form = nil
	u.status = ""
	if gui != nil {
		_ = gui.DeleteView(viewForm)
		_, _ = gui.SetCurrentView(u.focus)
	}
	u.refresh()
	return nil
}

func (u *UI) cancelForm(gui *gocui.Gui, _ *gocui.View) error {
	if u.form != nil && u.form.kind == formUser {
		u.store.SetShowUserForm(false)
	}
	u.form = nil
	_ = gui.DeleteView(viewForm)
	_, _ = gui.SetCurrentView(u.focus)
	return nil
}

func (u *UI) nextFormField(gui *gocui.Gui, view *gocui.View) error {
	if u.form == nil {
		return nil
	}
	if u.form.index < len(u.form.fields)-1 {
		u.form.index++
	}
	u.renderForm(view)
	return nil
}

func (u *UI) prevFormField(gui *gocui.Gui, view *gocui.View) error {
	if u.form == nil {
		return nil
	}
	if u.form.index > 0 {
		u.form.index--
	}
	u.renderForm(view)
	return nil
}

func (u *UI) renderForm(view *gocui.View) {
	if u.form == nil || view == nil {
		return
	}
	view.Clear()
	for index, field := range u.form.fields {
		prefix := "  "
		if index == u.form.index {
			prefix = "> "
		}
		fmt.Fprintf(view, "%s%s: %s\n", prefix, field.Label, field.Value)
	}
	label := u.form.fields[u.form.index].Label + ": "
	cursorX := len([]rune(label)) + len([]rune(u.form.fields[u.form.index].Value)) + 2
	view.SetCursor(cursorX, u.form.index)
}

func (e *formEditor) Edit(view *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) bool {
	ui := e.ui
	if ui == nil || ui.form == nil || view == nil {
		return false
	}
	field := &ui.form.fields[ui.form.index]

	if isPriorityField(field.Label) {
		switch key {
		case gocui.KeyArrowRight, gocui.KeySpace:
			field.Value = string(nextPriority(model.Priority(field.Value)))
		case gocui.KeyArrowLeft:
			field.Value = string(prevPriority(model.Priority(field.Value)))
		}
		ui.renderForm(view)
		return true
	}

	switch key {
	case gocui.KeyBackspace, gocui.KeyBackspace2:
		runes := []rune(field.Value)
		if len(runes) > 0 {
			field.Value = string(runes[:len(runes)-1])
		}
	case gocui.KeySpace:
		field.Value += " "
	case gocui.KeyCtrlU:
		field.Value = ""
	}

	if ch != 0 && ch != '\n' && ch != '\r' && mod == 0 {
		field.Value += string(ch)
	}

	ui.renderForm(view)
	return true
}

func isPriorityField(label string) bool {
	return strings.HasPrefix(label, "Priority")
}
