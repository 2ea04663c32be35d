package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ProtoSG/momentum-front/internal/app"
	"github.com/ProtoSG/momentum-front/internal/game"
	"github.com/ProtoSG/momentum-front/internal/model"
	"github.com/ProtoSG/momentum-front/internal/ui"
)

// spriteFrames is the terminal stand-in for the dragon sprite sheet; the
// cycle speed follows the pet's mood.
var spriteFrames = []string{"🐉  ", " 🐉 ", "  🐉", " 🐉 "}

type dashboardModel struct {
	ctx context.Context
	svc *app.Service

	width  int
	height int

	tasks  []model.Task
	pet    model.Pet
	hasPet bool
	levels []model.PetLevel

	selected      int
	confirmDelete int64 // task id pending delete confirmation, 0 when none

	petRefreshSeen int
	pointsCh       chan int

	frame   int
	lastLog string
	loading bool
	err     error
}

type tasksLoadedMsg struct {
	tasks []model.Task
	err   error
}

type petLoadedMsg struct {
	pet    model.Pet
	hasPet bool
	levels []model.PetLevel
	err    error
}

type statusChangedMsg struct {
	id  int64
	res app.StatusResult
	sig int // pet refresh counter after the change
	err error
}

type deletedMsg struct {
	id      int64
	deleted bool
	err     error
}

type careMsg struct {
	action string
	err    error
}

type pointsChangedMsg struct {
	total int
}

type frameMsg struct{}

func newDashboardModel(ctx context.Context, svc *app.Service) dashboardModel {
	// The model collects delete confirmations itself (d then y), so the
	// service-level prompt always passes.
	svc.SetConfirm(func(string) bool { return true })

	// Care actions report fresh balances through the points-changed hook;
	// the channel turns those callbacks into messages.
	ch := make(chan int, 1)
	svc.SetPointsChanged(func(total int) {
		select {
		case ch <- total:
		default:
		}
	})

	return dashboardModel{
		ctx:      ctx,
		svc:      svc,
		pointsCh: ch,
		loading:  true,
		lastLog:  "Loading…",
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.loadTasksCmd(), m.loadPetCmd(), m.waitPointsCmd(), m.tickCmd())
}

func (m dashboardModel) waitPointsCmd() tea.Cmd {
	return func() tea.Msg {
		return pointsChangedMsg{total: <-m.pointsCh}
	}
}

func (m dashboardModel) loadTasksCmd() tea.Cmd {
	return func() tea.Msg {
		err := m.svc.ReloadTasks(m.ctx)
		return tasksLoadedMsg{tasks: m.svc.Tasks(), err: err}
	}
}

func (m dashboardModel) loadPetCmd() tea.Cmd {
	return func() tea.Msg {
		err := m.svc.RefreshPet(m.ctx)
		pet, hasPet := m.svc.Pet()
		return petLoadedMsg{pet: pet, hasPet: hasPet, levels: m.svc.Levels(), err: err}
	}
}

func (m dashboardModel) completeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ChangeStatus(m.ctx, id, model.TaskStatusDone)
		return statusChangedMsg{id: id, res: res, sig: m.svc.PetRefreshSignal(), err: err}
	}
}

func (m dashboardModel) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		deleted, err := m.svc.DeleteTask(m.ctx, id)
		return deletedMsg{id: id, deleted: deleted, err: err}
	}
}

func (m dashboardModel) careCmd(action string) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch action {
		case "feed":
			err = m.svc.FeedPet(m.ctx)
		case "heal":
			err = m.svc.HealPet(m.ctx)
		case "boost":
			err = m.svc.BoostEnergy(m.ctx)
		}
		return careMsg{action: action, err: err}
	}
}

func (m dashboardModel) tickCmd() tea.Cmd {
	mood := game.MoodFor(m.pet)
	return tea.Tick(game.FrameInterval(mood), func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// visibleTasks lists pending first, then completed, then archived, matching
// the dashboard's section order.
func (m dashboardModel) visibleTasks() []model.Task {
	out := make([]model.Task, 0, len(m.tasks))
	for _, status := range []model.TaskStatus{model.TaskStatusTodo, model.TaskStatusDone, model.TaskStatusArchived} {
		for _, t := range m.tasks {
			if t.Status == status {
				out = append(out, t)
			}
		}
	}
	return out
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tasksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.err = nil
		m.tasks = msg.tasks
		if max := len(m.visibleTasks()) - 1; m.selected > max && max >= 0 {
			m.selected = max
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil

	case petLoadedMsg:
		if msg.err != nil {
			m.lastLog = "Pet load failed: " + msg.err.Error()
			return m, nil
		}
		m.pet = msg.pet
		m.hasPet = msg.hasPet
		m.levels = msg.levels
		return m, nil

	case statusChangedMsg:
		m.loading = false
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.res.Changed {
			m.lastLog = "Already done."
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Completed #%d: +%d pts, +%d XP", msg.id, msg.res.PointsAwarded, msg.res.ExperienceAwarded)
		if msg.res.PointsErr != nil {
			m.lastLog = fmt.Sprintf("Completed #%d, but points were not awarded: %v", msg.id, msg.res.PointsErr)
		} else if msg.res.ExperienceErr != nil {
			m.lastLog = fmt.Sprintf("Completed #%d, but XP was not awarded: %v", msg.id, msg.res.ExperienceErr)
		}
		cmds := []tea.Cmd{m.loadTasksCmd()}
		// The refresh counter says whether the pet view is stale.
		if msg.sig != m.petRefreshSeen {
			m.petRefreshSeen = msg.sig
			cmds = append(cmds, m.loadPetCmd())
		}
		return m, tea.Batch(cmds...)

	case deletedMsg:
		m.loading = false
		if msg.err != nil {
			m.lastLog = "Delete failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.deleted {
			m.lastLog = "Delete cancelled."
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Deleted #%d.", msg.id)
		return m, m.loadTasksCmd()

	case careMsg:
		m.loading = false
		if msg.err != nil {
			m.lastLog = strings.ToUpper(msg.action[:1]) + msg.action[1:] + " failed: " + msg.err.Error()
			return m, nil
		}
		pet, hasPet := m.svc.Pet()
		m.pet = pet
		m.hasPet = hasPet
		m.lastLog = fmt.Sprintf("%s ok, %d points left.", msg.action, pet.PointsTotal)
		return m, nil

	case pointsChangedMsg:
		if m.hasPet {
			m.pet.PointsTotal = msg.total
		}
		return m, m.waitPointsCmd()

	case frameMsg:
		m.frame = (m.frame + 1) % len(spriteFrames)
		return m, m.tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// A pending delete confirmation swallows the next key.
	if m.confirmDelete != 0 {
		id := m.confirmDelete
		m.confirmDelete = 0
		if key == "y" {
			m.loading = true
			m.lastLog = fmt.Sprintf("Deleting #%d…", id)
			return m, m.deleteCmd(id)
		}
		m.lastLog = "Delete cancelled."
		return m, nil
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.lastLog = "Refreshing…"
		return m, tea.Batch(m.loadTasksCmd(), m.loadPetCmd())
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.visibleTasks())-1 {
			m.selected++
		}
		return m, nil
	case "c", " ":
		if m.loading {
			return m, nil
		}
		tasks := m.visibleTasks()
		if m.selected < 0 || m.selected >= len(tasks) {
			return m, nil
		}
		t := tasks[m.selected]
		if t.Status == model.TaskStatusDone {
			m.lastLog = "Already done."
			return m, nil
		}
		m.loading = true
		m.lastLog = fmt.Sprintf("Completing #%d…", t.TaskID)
		return m, m.completeCmd(t.TaskID)
	case "d":
		if m.loading {
			return m, nil
		}
		tasks := m.visibleTasks()
		if m.selected < 0 || m.selected >= len(tasks) {
			return m, nil
		}
		m.confirmDelete = tasks[m.selected].TaskID
		m.lastLog = fmt.Sprintf("Delete #%d? Press y to confirm.", m.confirmDelete)
		return m, nil
	case "f":
		return m.careKey("feed", game.CanFeed(m.pet))
	case "h":
		return m.careKey("heal", game.CanHeal(m.pet))
	case "b":
		return m.careKey("boost", game.CanBoostEnergy(m.pet))
	}
	return m, nil
}

// careKey issues a care action only when its gate passes; a gated action is
// reported without touching the network.
func (m dashboardModel) careKey(action string, allowed bool) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	if !m.hasPet {
		m.lastLog = "No pet yet, run: mm pet create"
		return m, nil
	}
	if !allowed {
		m.lastLog = fmt.Sprintf("Cannot %s right now (points %d).", action, m.pet.PointsTotal)
		return m, nil
	}
	m.loading = true
	m.lastLog = strings.ToUpper(action[:1]) + action[1:] + "…"
	return m, m.careCmd(action)
}

func (m dashboardModel) View() string {
	var b strings.Builder

	tally := game.TallyTasks(m.tasks)
	header := fmt.Sprintf("%s  %s  %s  %s",
		ui.Heading("", "MOMENTUM"),
		ui.LabelValue("Points", m.points(tally)),
		ui.LabelValue("Pending", tally.Pending),
		ui.LabelValue("Done", tally.Completed),
	)
	b.WriteString(header + "\n\n")

	b.WriteString(m.tasksView())
	b.WriteString("\n")
	b.WriteString(m.petView())
	b.WriteString("\n")

	status := m.lastLog
	if m.loading {
		status += " " + ui.Muted.Render("(working…)")
	}
	b.WriteString(ui.Muted.Render(status) + "\n")
	b.WriteString(ui.Muted.Render("j/k move · c complete · d delete · f/h/b feed/heal/boost · r refresh · q quit") + "\n")
	return b.String()
}

// points prefers the server's balance and falls back to the local estimate
// while the pet has not loaded.
func (m dashboardModel) points(tally game.Tally) int {
	if m.hasPet {
		return m.pet.PointsTotal
	}
	return tally.EstimatedPoints
}

func (m dashboardModel) tasksView() string {
	tasks := m.visibleTasks()
	if len(tasks) == 0 {
		return ui.Panel.Render(ui.Muted.Render("No missions yet. Create one with: mm add \"…\""))
	}

	var rows []string
	for i, t := range tasks {
		line := fmt.Sprintf("#%-3d %s %s  %s", t.TaskID, ui.StatusText(t.Status), ui.PriorityText(t.Priority), t.Description)
		if t.DueDate != nil && *t.DueDate != "" {
			line += " " + ui.Muted.Render("(due "+*t.DueDate+")")
		}
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}
	return ui.Panel.Render(ui.PanelTitle.Render(ui.IconMission+" Missions") + "\n" + strings.Join(rows, "\n"))
}

func (m dashboardModel) petView() string {
	if !m.hasPet {
		return ui.Panel.Render(ui.Muted.Render("No pet yet. Create one with: mm pet create <name>"))
	}

	mood := game.MoodFor(m.pet)
	next := "MAX"
	if req, ok := game.NextLevelRequirement(m.levels, m.pet.Level); ok {
		next = fmt.Sprintf("%d", req)
	}

	lines := []string{
		ui.PanelTitle.Render(ui.IconDragon+" "+m.pet.Name) + "  " + ui.Purple.Render(game.LevelName(m.levels, m.pet.Level)),
		spriteFrames[m.frame] + "  mood: " + ui.MoodText(mood),
		fmt.Sprintf("%s  %s  %s",
			ui.LabelValue("Points", m.pet.PointsTotal),
			ui.LabelValue("Level", m.pet.Level),
			ui.LabelValue("XP", fmt.Sprintf("%d/%s", m.pet.Experience, next)),
		),
		ui.StatBar(ui.IconHeart, "Health", m.pet.Health, game.StatMax, 10),
		ui.StatBar(ui.IconBolt, "Energy", m.pet.Energy, game.StatMax, 10),
		ui.StatBar(ui.IconFood, "Hunger", m.pet.Hunger, game.StatMax, 10),
	}
	return ui.Panel.Render(strings.Join(lines, "\n"))
}
