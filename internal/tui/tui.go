package tui

import (
	"fmt"
	"strings"

	goerrors "github.com/go-errors/errors"
	"github.com/jesseduffield/gocui"

	"github.com/Joseda-hg/demoboard/internal/model"
	"github.com/Joseda-hg/demoboard/internal/state"
)

const (
	viewHeader = "header"
	viewFooter = "footer"
	viewUsers  = "users"
	viewTodos  = "todos"
	viewStats  = "stats"
	viewDetail = "detail"
	viewSearch = "search"
	viewForm   = "form"
	viewHelp   = "help"
)

type UI struct {
	store *state.Store
	gui   *gocui.Gui

	users []model.User
	todos []model.Todo

	selectedUsers int
	selectedTodos int
	focus         string

	form         *formState
	formEditor   *formEditor
	searchActive bool
	helpActive   bool
	status       string
}

func Run(store *state.Store) error {
	gui, err := gocui.NewGui(gocui.NewGuiOpts{OutputMode: gocui.OutputNormal})
	if err != nil {
		return err
	}
	defer gui.Close()

	ui := &UI{
		store: store,
		gui:   gui,
		focus: viewUsers,
	}
	gui.Mouse = true
	ui.formEditor = &formEditor{ui: ui}

	gui.SetManagerFunc(ui.layout)
	if err := ui.bindKeys(gui); err != nil {
		return err
	}
	ui.refresh()

	store.SetOnTick(func() {
		gui.Update(func(*gocui.Gui) error { return nil })
	})
	defer store.SetOnTick(nil)

	if err := gui.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}

	return nil
}

func (u *UI) bindKeys(gui *gocui.Gui) error {
	if err := gui.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, u.quit); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", 'q', gocui.ModNone, u.quit); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", gocui.KeyTab, gocui.ModNone, u.switchFocus); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", '1', gocui.ModNone, u.focusUsers); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", '2', gocui.ModNone, u.focusTodos); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", 't', gocui.ModNone, u.toggleTheme); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", '/', gocui.ModNone, u.startSearch); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", '?', gocui.ModNone, u.toggleHelp); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", 'g', gocui.ModNone, u.clearFilters); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", 'r', gocui.ModNone, u.reload); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", 'R', gocui.ModNone, u.resetToDefaults); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", gocui.KeyCtrlX, gocui.ModNone, u.resetAllData); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", 'a', gocui.ModNone, u.openAddForm); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", 'd', gocui.ModNone, u.deleteItem); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", 'x', gocui.ModNone, u.toggleItem); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", 's', gocui.ModNone, u.sortItems); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", 'S', gocui.ModNone, u.sortItemsAlt); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", 'm', gocui.ModNone, u.markAll); err != nil {
		return err
	}
	if err := gui.SetKeybinding("", 'M', gocui.ModNone, u.unmarkAll); err != nil {
		return err
	}
	for _, name := range []string{viewUsers, viewTodos} {
		if err := gui.SetKeybinding(name, gocui.KeyArrowDown, gocui.ModNone, u.moveDown); err != nil {
			return err
		}
		if err := gui.SetKeybinding(name, 'j', gocui.ModNone, u.moveDown); err != nil {
			return err
		}
		if err := gui.SetKeybinding(name, gocui.KeyArrowUp, gocui.ModNone, u.moveUp); err != nil {
			return err
		}
		if err := gui.SetKeybinding(name, 'k', gocui.ModNone, u.moveUp); err != nil {
			return err
		}
	}
	if err := gui.SetKeybinding(viewUsers, gocui.KeyEnter, gocui.ModNone, u.selectUser); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewTodos, 'p', gocui.ModNone, u.cyclePriority); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewTodos, 'f', gocui.ModNone, u.cycleFilter); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewTodos, 'c', gocui.ModNone, u.clearCompleted); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewSearch, gocui.KeyEnter, gocui.ModNone, u.submitSearch); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewSearch, gocui.KeyEsc, gocui.ModNone, u.cancelSearch); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewForm, gocui.KeyEnter, gocui.ModNone, u.submitForm); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewForm, gocui.KeyTab, gocui.ModNone, u.nextFormField); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewForm, gocui.KeyBacktab, gocui.ModNone, u.prevFormField); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewForm, gocui.KeyArrowDown, gocui.ModNone, u.nextFormField); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewForm, gocui.KeyArrowUp, gocui.ModNone, u.prevFormField); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewForm, gocui.KeyEsc, gocui.ModNone, u.cancelForm); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewHelp, gocui.KeyEsc, gocui.ModNone, u.closeHelp); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewHelp, 'q', gocui.ModNone, u.closeHelp); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewHelp, '?', gocui.ModNone, u.closeHelp); err != nil {
		return err
	}
	if err := gui.SetViewClickBinding(&gocui.ViewMouseBinding{ViewName: viewUsers, Key: gocui.MouseLeft, Handler: func(opts gocui.ViewMouseBindingOpts) error {
		return u.onListClick(gui, viewUsers, opts)
	}}); err != nil {
		return err
	}
	if err := gui.SetViewClickBinding(&gocui.ViewMouseBinding{ViewName: viewTodos, Key: gocui.MouseLeft, Handler: func(opts gocui.ViewMouseBindingOpts) error {
		return u.onListClick(gui, viewTodos, opts)
	}}); err != nil {
		return err
	}
	return nil
}

func (u *UI) layout(gui *gocui.Gui) error {
	maxX, maxY := gui.Size()
	if maxX <= 0 || maxY <= 0 {
		return nil
	}

	headerView, err := gui.SetView(viewHeader, 0, 0, maxX-1, 0, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	headerView.Frame = false
	headerView.Wrap = true
	u.renderHeader(headerView)

	footerY1 := maxY - 2
	if footerY1 < 1 {
		footerY1 = 1
	}
	footerY0 := footerY1 - 2
	if footerY0 < 1 {
		footerY0 = 1
	}
	footerView, err := gui.SetView(viewFooter, 0, footerY0, maxX-1, footerY1, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	footerView.Frame = false
	footerView.Wrap = true
	footerView.FgColor = gocui.ColorDefault | gocui.AttrDim
	u.renderFooter(footerView)

	bodyTop := 1
	bodyBottom := footerY0 - 1
	if bodyBottom < bodyTop {
		return nil
	}

	leftWidth := maxX / 2
	if leftWidth < 30 {
		leftWidth = min(30, maxX-1)
	}
	rightX0 := leftWidth + 1
	if rightX0 >= maxX {
		rightX0 = leftWidth
	}

	statsY1 := bodyTop + 4
	if statsY1 > bodyBottom-2 {
		statsY1 = max(bodyBottom-2, bodyTop+1)
	}
	detailTop := statsY1 + 1
	if detailTop > bodyBottom-1 {
		detailTop = max(bodyBottom-1, bodyTop)
	}

	usersView, err := gui.SetView(viewUsers, 0, bodyTop, leftWidth-1, (bodyTop+bodyBottom)/2, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		usersView.Title = "1 Users"
		usersView.TitleColor = gocui.ColorCyan
	}
	applyViewStyle(usersView, u.focus == viewUsers)
	u.renderUsers(usersView)

	todosView, err := gui.SetView(viewTodos, 0, (bodyTop+bodyBottom)/2+1, leftWidth-1, bodyBottom, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		todosView.Title = "2 Todos"
		todosView.TitleColor = gocui.ColorGreen
	}
	applyViewStyle(todosView, u.focus == viewTodos)
	u.renderTodos(todosView)

	statsView, err := gui.SetView(viewStats, rightX0, bodyTop, maxX-1, statsY1, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		statsView.Title = "Statistics"
	}
	applyViewStyle(statsView, false)
	u.renderStats(statsView)

	detailView, err := gui.SetView(viewDetail, rightX0, detailTop, maxX-1, bodyBottom, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		detailView.Title = "Selected User"
	}
	applyViewStyle(detailView, false)
	u.renderDetail(detailView)

	_, _ = gui.SetViewOnTop(viewHeader)
	_, _ = gui.SetViewOnTop(viewFooter)

	if u.searchActive {
		if err := u.showSearch(gui); err != nil {
			return err
		}
	} else {
		_ = gui.DeleteView(viewSearch)
	}

	if u.form != nil {
		if err := u.showForm(gui); err != nil {
			return err
		}
	} else {
		_ = gui.DeleteView(viewForm)
	}

	if u.helpActive {
		if err := u.showHelp(gui); err != nil {
			return err
		}
	} else {
		_ = gui.DeleteView(viewHelp)
	}

	if gui.CurrentView() == nil {
		_, _ = gui.SetCurrentView(u.focus)
	}

	gui.Cursor = u.searchActive || u.form != nil

	return nil
}

func (u *UI) refresh() {
	u.users = u.store.SearchUsers()
	u.todos = u.store.FilteredTodos()

	if u.selectedUsers >= len(u.users) {
		u.selectedUsers = max(len(u.users)-1, 0)
	}
	if u.selectedTodos >= len(u.todos) {
		u.selectedTodos = max(len(u.todos)-1, 0)
	}
}

func (u *UI) renderHeader(view *gocui.View) {
	view.Clear()
	clock := "--:--:--"
	if now := u.store.CurrentTime(); !now.IsZero() {
		clock = now.Format("15:04:05")
	}
	fmt.Fprintf(view, "Demoboard | %s | ticks: %d | theme: %s | filter: %s",
		clock, u.store.Counter(), u.store.Theme(), u.store.TodoFilter())
	if term := strings.TrimSpace(u.store.UserSearchTerm()); term != "" {
		fmt.Fprintf(view, " | search: %s", term)
	}
}

func (u *UI) renderFooter(view *gocui.View) {
	view.Clear()
	view.SetOrigin(0, 0)
	view.SetCursor(0, 0)

	fmt.Fprintln(view, "a add | d delete | x toggle | enter select | s/S sort | m/M all | p priority | f filter | c clear done")
	fmt.Fprintln(view, "/ search | g clear | t theme | R defaults | ctrl+x wipe | tab/1/2 panes | ? help | q quit")

	if message := u.store.ErrorMessage(); message != "" {
		fmt.Fprint(view, message)
	} else if u.status != "" {
		fmt.Fprint(view, u.status)
	}
}

func (u *UI) renderUsers(view *gocui.View) {
	view.Clear()
	selected, hasSelection := u.store.SelectedUser()
	for i, user := range u.users {
		prefix := " "
		if i == u.selectedUsers {
			if u.focus == viewUsers {
				prefix = ">"
			} else {
				prefix = "*"
			}
		}
		marker := " "
		if hasSelection && user.ID == selected.ID {
			marker = "#"
		}
		fmt.Fprintf(view, "%s%s %s\n", prefix, marker, formatUserSummary(user))
	}
	if u.focus == viewUsers {
		view.SetCursor(0, min(u.selectedUsers, len(u.users)-1))
	}
}

func (u *UI) renderTodos(view *gocui.View) {
	view.Clear()
	for i, todo := range u.todos {
		prefix := " "
		if i == u.selectedTodos {
			if u.focus == viewTodos {
				prefix = ">"
			} else {
				prefix = "*"
			}
		}
		fmt.Fprintf(view, "%s %s\n", prefix, formatTodoSummary(todo))
	}
	if u.focus == viewTodos {
		view.SetCursor(0, min(u.selectedTodos, len(u.todos)-1))
	}
}

func (u *UI) renderStats(view *gocui.View) {
	view.Clear()
	stats := u.store.Statistics()
	fmt.Fprintf(view, "Users: %d (%d active)\n", stats.TotalUsers, stats.ActiveUsers)
	fmt.Fprintf(view, "Todos: %d (%d done)\n", stats.TotalTodos, stats.CompletedTodos)
	fmt.Fprintf(view, "High priority: %d\n", stats.HighPriorityTodos)
	fmt.Fprintf(view, "Active todos: %d", u.store.ActiveTodosCount())
}

func (u *UI) renderDetail(view *gocui.View) {
	view.Clear()
	selected, ok := u.store.SelectedUser()
	if !ok {
		fmt.Fprint(view, "No user selected")
		return
	}

	status := "inactive"
	if selected.IsActive {
		status = "active"
	}
	fmt.Fprint(view, strings.Join([]string{
		selected.Name,
		fmt.Sprintf("Email: %s", selected.Email),
		fmt.Sprintf("Status: %s", status),
		fmt.Sprintf("ID: %d", selected.ID),
	}, "\n"))
}

func (u *UI) onListClick(gui *gocui.Gui, viewName string, opts gocui.ViewMouseBindingOpts) error {
	if u.inputActive() {
		return nil
	}
	view, err := gui.View(viewName)
	if err != nil {
		return nil
	}

	_, y0, _, _ := view.Dimensions()
	_, oy := view.Origin()
	row := opts.Y - y0 - 1 + oy
	if row < 0 {
		row = 0
	}

	switch viewName {
	case viewUsers:
		u.selectedUsers = min(row, len(u.users)-1)
		return u.setFocus(gui, viewUsers)
	case viewTodos:
		u.selectedTodos = min(row, len(u.todos)-1)
		return u.setFocus(gui, viewTodos)
	default:
		return nil
	}
}

func (u *UI) switchFocus(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	if u.focus == viewUsers {
		u.focus = viewTodos
	} else {
		u.focus = viewUsers
	}
	_, _ = gui.SetCurrentView(u.focus)
	return nil
}

func (u *UI) focusUsers(gui *gocui.Gui, _ *gocui.View) error {
	return u.setFocus(gui, viewUsers)
}

func (u *UI) focusTodos(gui *gocui.Gui, _ *gocui.View) error {
	return u.setFocus(gui, viewTodos)
}

func (u *UI) setFocus(gui *gocui.Gui, name string) error {
	if u.inputActive() {
		return nil
	}
	u.focus = name
	if gui != nil {
		_, _ = gui.SetCurrentView(name)
	}
	return nil
}

func (u *UI) moveDown(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	switch u.focus {
	case viewUsers:
		if u.selectedUsers < len(u.users)-1 {
			u.selectedUsers++
		}
	case viewTodos:
		if u.selectedTodos < len(u.todos)-1 {
			u.selectedTodos++
		}
	}
	return nil
}

func (u *UI) moveUp(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	switch u.focus {
	case viewUsers:
		if u.selectedUsers > 0 {
			u.selectedUsers--
		}
	case viewTodos:
		if u.selectedTodos > 0 {
			u.selectedTodos--
		}
	}
	return nil
}

func (u *UI) selectedUser() *model.User {
	if u.selectedUsers >= 0 && u.selectedUsers < len(u.users) {
		return &u.users[u.selectedUsers]
	}
	return nil
}

func (u *UI) selectedTodo() *model.Todo {
	if u.selectedTodos >= 0 && u.selectedTodos < len(u.todos) {
		return &u.todos[u.selectedTodos]
	}
	return nil
}

func (u *UI) selectUser(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	selected := u.selectedUser()
	if selected == nil {
		return nil
	}
	u.store.SelectUser(selected.ID)
	return nil
}

func (u *UI) deleteItem(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	switch u.focus {
	case viewUsers:
		if selected := u.selectedUser(); selected != nil {
			u.store.DeleteUser(selected.ID)
		}
	case viewTodos:
		if selected := u.selectedTodo(); selected != nil {
			u.store.DeleteTodo(selected.ID)
		}
	}
	u.refresh()
	return nil
}

func (u *UI) toggleItem(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	switch u.focus {
	case viewUsers:
		if selected := u.selectedUser(); selected != nil {
			u.store.ToggleUserStatus(selected.ID)
		}
	case viewTodos:
		if selected := u.selectedTodo(); selected != nil {
			u.store.ToggleTodo(selected.ID)
		}
	}
	u.refresh()
	return nil
}

func (u *UI) cyclePriority(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	selected := u.selectedTodo()
	if selected == nil {
		return nil
	}
	u.store.UpdateTodoPriority(selected.ID, nextPriority(selected.Priority))
	u.refresh()
	return nil
}

func (u *UI) cycleFilter(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	u.store.SetTodoFilter(nextFilter(u.store.TodoFilter()))
	u.refresh()
	return nil
}

func (u *UI) clearCompleted(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	u.store.ClearCompletedTodos()
	u.refresh()
	return nil
}

func (u *UI) sortItems(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	switch u.focus {
	case viewUsers:
		u.store.SortUsersByName()
		u.status = "sorted users by name"
	case viewTodos:
		u.store.SortTodosByPriority()
		u.status = "sorted todos by priority"
	}
	u.refresh()
	return nil
}

func (u *UI) sortItemsAlt(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	switch u.focus {
	case viewUsers:
		u.store.SortUsersByEmail()
		u.status = "sorted users by email"
	case viewTodos:
		u.store.SortTodosByDate()
		u.status = "sorted todos by date"
	}
	u.refresh()
	return nil
}

func (u *UI) markAll(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	switch u.focus {
	case viewUsers:
		u.store.ActivateAllUsers()
	case viewTodos:
		u.store.MarkAllTodosComplete()
	}
	u.refresh()
	return nil
}

func (u *UI) unmarkAll(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	switch u.focus {
	case viewUsers:
		u.store.DeactivateAllUsers()
	case viewTodos:
		u.store.MarkAllTodosIncomplete()
	}
	u.refresh()
	return nil
}

func (u *UI) toggleTheme(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	u.store.ToggleTheme()
	return nil
}

func (u *UI) resetToDefaults(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	u.store.ResetToDefaults()
	u.status = "restored defaults"
	u.refresh()
	return nil
}

func (u *UI) resetAllData(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	u.store.ResetAllData()
	u.status = "cleared all data"
	u.refresh()
	return nil
}

func (u *UI) clearFilters(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	u.store.SetUserSearchTerm("")
	u.store.SetTodoFilter(model.FilterAll)
	u.status = ""
	u.refresh()
	return nil
}

func (u *UI) reload(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	u.status = ""
	u.refresh()
	return nil
}

func (u *UI) startSearch(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	u.searchActive = true
	return nil
}

func (u *UI) showSearch(gui *gocui.Gui) error {
	maxX, maxY := gui.Size()
	width := max(30, maxX/2)
	height := 3
	x0 := (maxX - width) / 2
	y0 := (maxY - height) / 2

	view, err := gui.SetView(viewSearch, x0, y0, x0+width, y0+height, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		view.Title = "Search Users"
		view.Wrap = true
		view.Clear()
		fmt.Fprint(view, u.store.UserSearchTerm())
	}
	view.Editable = true
	view.Editor = gocui.DefaultEditor
	_, _ = gui.SetCurrentView(viewSearch)
	return nil
}

func (u *UI) submitSearch(gui *gocui.Gui, view *gocui.View) error {
	u.store.SetUserSearchTerm(strings.TrimSpace(view.Buffer()))
	u.searchActive = false
	u.status = ""
	_ = gui.DeleteView(viewSearch)
	_, _ = gui.SetCurrentView(u.focus)
	u.refresh()
	return nil
}

func (u *UI) cancelSearch(gui *gocui.Gui, _ *gocui.View) error {
	u.searchActive = false
	_ = gui.DeleteView(viewSearch)
	_, _ = gui.SetCurrentView(u.focus)
	return nil
}

func (u *UI) toggleHelp(gui *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() && !u.helpActive {
		return nil
	}
	u.helpActive = !u.helpActive
	return nil
}

func (u *UI) closeHelp(gui *gocui.Gui, _ *gocui.View) error {
	u.helpActive = false
	_ = gui.DeleteView(viewHelp)
	_, _ = gui.SetCurrentView(u.focus)
	return nil
}

func (u *UI) showHelp(gui *gocui.Gui) error {
	maxX, maxY := gui.Size()
	width := max(60, maxX/2)
	height := 14
	x0 := (maxX - width) / 2
	y0 := (maxY - height) / 2

	view, err := gui.SetView(viewHelp, x0, y0, x0+width, y0+height, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		view.Title = "Help"
		view.Wrap = true
	}
	view.Clear()
	fmt.Fprint(view, helpText())
	_, _ = gui.SetCurrentView(viewHelp)
	return nil
}

func (u *UI) inputActive() bool {
	return u.searchActive || u.form != nil || u.helpActive
}

func (u *UI) quit(_ *gocui.Gui, _ *gocui.View) error {
	return gocui.ErrQuit
}

func helpText() string {
	return strings.Join([]string{
		"Navigation:",
		"  Tab switch panes | 1 Users | 2 Todos",
		"  j/k or arrows move selection",
		"  mouse click to focus/select",
		"",
		"Actions:",
		"  a add | d delete | x toggle active/done",
		"  enter select user (Users pane)",
		"  p cycle priority | f cycle filter | c clear done (Todos pane)",
		"  s sort by name/priority | S sort by email/date",
		"  m activate/complete all | M deactivate/uncomplete all",
		"",
		"Other:",
		"  / search users | g clear search+filter | t theme",
		"  R restore defaults | ctrl+x wipe data | r reload | ? help | q quit",
	}, "\n")
}

func applyViewStyle(view *gocui.View, focused bool) {
	view.Frame = true
	view.Highlight = focused
	view.HighlightInactive = false
	view.SelBgColor = gocui.ColorBlue
	view.SelFgColor = gocui.ColorBlack
	view.InactiveViewSelBgColor = gocui.ColorDefault
	if focused {
		view.FrameColor = gocui.ColorCyan
		view.TitleColor = gocui.ColorCyan
	} else {
		view.FrameColor = gocui.ColorDefault
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
