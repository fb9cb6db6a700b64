package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/yukimo/studytrack.git/internal/client"
	"github.com/yukimo/studytrack.git/internal/models"
	"github.com/yukimo/studytrack.git/internal/service"
	"github.com/yukimo/studytrack.git/internal/settings"
	"github.com/yukimo/studytrack.git/internal/storage/cache"
	"github.com/yukimo/studytrack.git/internal/timer"
	"github.com/yukimo/studytrack.git/internal/timespan"

	"go.uber.org/zap"
)

// App is the interactive command loop gluing the views to the
// services. It owns the one timer instance and the pending-count
// sub-state between stopping a COUNT timer and entering the count.
type App struct {
	services *service.Service
	timer    *timer.Timer
	store    *settings.Store
	auth     *client.API
	subjects *cache.Subjects
	log      *zap.Logger

	in      io.Reader
	out     io.Writer
	scanner *bufio.Scanner

	theme   Theme
	pending *service.PendingCount
}

func NewApp(services *service.Service, t *timer.Timer, store *settings.Store, auth *client.API, subjects *cache.Subjects, log *zap.Logger, in io.Reader, out io.Writer) *App {
	app := &App{
		services: services,
		timer:    t,
		store:    store,
		auth:     auth,
		subjects: subjects,
		log:      log,
		in:       in,
		out:      out,
		theme:    ThemeByName(store.Get(settings.KeyGlobalTheme)),
	}

	store.Subscribe(func(key, value string) {
		if key == settings.KeyGlobalTheme {
			app.theme = ThemeByName(value)
		}
	})

	return app
}

// Run resumes a persisted timer, then dispatches commands until EOF
// or quit.
func (a *App) Run(ctx context.Context) error {
	if state, err := a.timer.Resume(ctx); err != nil {
		a.log.Warn("failed to resume timer", zap.Error(err))
	} else if state.Active {
		elapsed := a.timer.Elapsed()
		fmt.Fprintf(a.out, "Resumed running timer, elapsed %s\n", timespan.Clock(elapsed.Seconds))
	}

	a.scanner = bufio.NewScanner(a.in)
	fmt.Fprint(a.out, "> ")
	for a.scanner.Scan() {
		line := strings.TrimSpace(a.scanner.Text())
		if line != "" {
			if quit := a.dispatch(ctx, line); quit {
				return nil
			}
		}
		fmt.Fprint(a.out, "> ")
	}
	return a.scanner.Err()
}

func (a *App) dispatch(ctx context.Context, line string) (quit bool) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	var err error
	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		a.printHelp()
	case "login":
		err = a.cmdLogin(ctx, args)
	case "logout":
		err = a.auth.Logout(ctx)
	case "dash", "dashboard":
		err = a.cmdDashboard(ctx)
	case "cal", "calendar":
		err = a.cmdCalendar(ctx, args)
	case "day":
		err = a.cmdDay(ctx, args)
	case "history":
		err = a.cmdHistory(ctx, args)
	case "subjects":
		err = a.cmdSubjects(ctx, args)
	case "start":
		err = a.cmdStart(ctx, args)
	case "status":
		a.cmdStatus()
	case "stop":
		err = a.cmdStop(ctx)
	case "count":
		err = a.cmdCount(ctx, args)
	case "cancel":
		a.cmdCancel()
	case "log":
		err = a.cmdLog(ctx, args)
	case "theme":
		err = a.cmdTheme(ctx, args)
	default:
		fmt.Fprintf(a.out, "unknown command %q, try help\n", cmd)
	}

	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			fmt.Fprintln(a.out, a.theme.Warning.Render("session expired, please login again"))
		} else {
			fmt.Fprintln(a.out, a.theme.Warning.Render(err.Error()))
		}
	}
	return false
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `commands:
  dashboard                      today's totals and subject progress
  calendar [YYYY-MM]             monthly heatmap
  day YYYY-MM-DD                 one day's records
  history [from to]              merged record list (default: last 7 days)
  subjects                       list subjects
  subjects add <name> <DURATION|COUNT> [target] [#color]
  subjects rm <id>               delete a subject (asks to confirm)
  start <subject-id>             start the timer
  status                         show elapsed time
  stop                           stop the timer (COUNT subjects then need: count <n>)
  count <n> [note]               commit the pending word count
  cancel                         discard the pending word count
  log session <id> <start> <end> [note]
  log words <id> <date> <n> [note]
  theme <name>                   switch appearance preset
  login <username> <password>
  logout | quit
`)
}

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: login <username> <password>")
	}
	if err := a.auth.Login(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "logged in")
	return nil
}

func (a *App) cmdDashboard(ctx context.Context) error {
	overview, err := a.services.Today(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, RenderDashboard(overview, a.theme))
	return nil
}

func (a *App) cmdCalendar(ctx context.Context, args []string) error {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if len(args) == 1 {
		parsed, err := time.Parse("2006-01", args[0])
		if err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM", args[0])
		}
		year, month = parsed.Year(), parsed.Month()
	}

	totals, err := a.services.Month(ctx, year, month)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, RenderMonth(year, month, totals, a.theme))
	return nil
}

func (a *App) cmdDay(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: day YYYY-MM-DD")
	}
	if _, err := time.Parse(time.DateOnly, args[0]); err != nil {
		return fmt.Errorf("invalid date %q: %w", args[0], err)
	}

	detail, err := a.services.Day(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, RenderDayDetail(detail, a.theme))
	return nil
}

func (a *App) cmdHistory(ctx context.Context, args []string) error {
	to := time.Now()
	from := to.AddDate(0, 0, -7)
	fromKey, toKey := timespan.DayKey(from), timespan.DayKey(to)
	if len(args) == 2 {
		fromKey, toKey = args[0], args[1]
	}

	records, err := a.services.History(ctx, fromKey, toKey)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, RenderHistory(records, a.theme))
	return nil
}

func (a *App) cmdSubjects(ctx context.Context, args []string) error {
	if len(args) == 0 {
		subjects, err := a.services.SubjectS.Subjects(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, RenderSubjects(subjects, a.theme))
		return nil
	}

	switch args[0] {
	case "add":
		return a.cmdSubjectAdd(ctx, args[1:])
	case "rm":
		return a.cmdSubjectDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subjects action %q", args[0])
	}
}

func (a *App) cmdSubjectAdd(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: subjects add <name> <DURATION|COUNT> [target] [#color]")
	}

	input := models.NewSubject{
		Name:      args[0],
		StudyType: models.StudyType(strings.ToUpper(args[1])),
	}
	if len(args) > 2 {
		target, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid target %q: %w", args[2], err)
		}
		input.DailyTarget = target
	}
	if len(args) > 3 {
		input.ColorHex = args[3]
	}

	created, err := a.services.CreateSubject(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created subject %d (%s)\n", created.ID, created.Name)
	return nil
}

func (a *App) cmdSubjectDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: subjects rm <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid subject id %q: %w", args[0], err)
	}

	fmt.Fprintf(a.out, "delete subject %d and keep its history dangling? [y/N] ", id)
	confirmed := a.scanner.Scan() && strings.EqualFold(strings.TrimSpace(a.scanner.Text()), "y")

	if err := a.services.DeleteSubject(ctx, id, confirmed); err != nil {
		if errors.Is(err, service.ErrDeleteNotConfirmed) {
			fmt.Fprintln(a.out, "not deleted")
			return nil
		}
		return err
	}
	fmt.Fprintln(a.out, "deleted")
	return nil
}

func (a *App) cmdStart(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: start <subject-id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid subject id %q: %w", args[0], err)
	}

	subject, ok := a.subjects.Get(id)
	if !ok {
		subjects, err := a.services.ActiveSubjects(ctx)
		if err != nil {
			return err
		}
		for _, s := range subjects {
			if s.ID == id {
				subject, ok = s, true
				break
			}
		}
		if !ok {
			return fmt.Errorf("no subject with id %d", id)
		}
	}

	state, err := a.timer.Start(ctx, subject)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "timer started for %s at %s\n", subject.Name, state.Start.Format("15:04:05"))
	return nil
}

func (a *App) cmdStatus() {
	if a.pending != nil {
		span := timespan.Between(a.pending.Start, a.pending.End)
		fmt.Fprintf(a.out, "waiting for word count, session was %s\n", timespan.Clock(span.Seconds))
		return
	}
	if !a.timer.Running() {
		fmt.Fprintln(a.out, "timer idle")
		return
	}
	elapsed := a.timer.Elapsed()
	fmt.Fprintln(a.out, a.theme.Accent.Render(timespan.Clock(elapsed.Seconds)))
}

func (a *App) cmdStop(ctx context.Context) error {
	state := a.timer.State()

	start, end, err := a.timer.Stop(ctx)
	if err != nil {
		return err
	}

	if state.SubjectType == models.StudyCount {
		subject, _ := a.subjects.Get(state.SubjectID)
		subject.ID = state.SubjectID
		a.pending = &service.PendingCount{Subject: subject, Start: start, End: end}
		span := timespan.Between(start, end)
		fmt.Fprintf(a.out, "stopped after %s; enter the word count with: count <n>\n", timespan.Clock(span.Seconds))
		return nil
	}

	subject, _ := a.subjects.Get(state.SubjectID)
	subject.ID = state.SubjectID
	if _, err := a.services.CommitTimedSession(ctx, subject, start, end, ""); err != nil {
		return err
	}
	span := timespan.Between(start, end)
	fmt.Fprintf(a.out, "saved %s of study\n", timespan.Clock(span.Seconds))
	return nil
}

func (a *App) cmdCount(ctx context.Context, args []string) error {
	if a.pending == nil {
		return errors.New("no pending word session; start and stop a COUNT timer first")
	}
	if len(args) < 1 {
		return errors.New("usage: count <n> [note]")
	}

	count, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid count %q: %w", args[0], err)
	}
	note := strings.Join(args[1:], " ")

	if _, err := a.services.CommitTimedWords(ctx, *a.pending, count, note); err != nil {
		return err
	}
	a.pending = nil
	fmt.Fprintln(a.out, "word log saved")
	return nil
}

func (a *App) cmdCancel() {
	if a.pending == nil {
		fmt.Fprintln(a.out, "nothing to cancel")
		return
	}
	a.pending = nil
	fmt.Fprintln(a.out, "discarded the pending word session")
}

func (a *App) cmdLog(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: log session|words ...")
	}

	switch args[0] {
	case "session":
		if len(args) < 4 {
			return errors.New("usage: log session <subject-id> <start> <end> [note]")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid subject id %q: %w", args[1], err)
		}
		_, err = a.services.LogSession(ctx, models.NewStudySession{
			SubjectID: id,
			StartTime: args[2],
			EndTime:   args[3],
			Note:      strings.Join(args[4:], " "),
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, "study session saved")
		return nil
	case "words":
		if len(args) < 4 {
			return errors.New("usage: log words <subject-id> <date> <count> [note]")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid subject id %q: %w", args[1], err)
		}
		count, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", args[3], err)
		}
		_, err = a.services.LogWords(ctx, models.NewWordLog{
			SubjectID: id,
			Date:      args[2],
			Count:     count,
			Note:      strings.Join(args[4:], " "),
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, "word log saved")
		return nil
	default:
		return fmt.Errorf("unknown log kind %q", args[0])
	}
}

func (a *App) cmdTheme(ctx context.Context, args []string) error {
	if len(args) != 1 {
		names := make([]string, 0, len(themes))
		for name := range themes {
			names = append(names, name)
		}
		return fmt.Errorf("usage: theme <%s>", strings.Join(names, "|"))
	}
	return a.store.Set(ctx, settings.KeyGlobalTheme, args[0])
}
