package gym

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/gym-manager/internal/lib/sl"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// Run запускает интерактивный цикл команд на stdin — замену оконного UI,
// вызывающую те же операции ядра. Завершается по команде quit, концу ввода
// или отмене контекста.
func (a *App) Run(ctx context.Context) error {
	return a.runShell(ctx, os.Stdin, os.Stdout)
}

func (a *App) runShell(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	fmt.Fprintln(out, `gym-manager shell, "help" for commands`)
	for {
		fmt.Fprint(out, "> ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if strings.TrimSpace(line) == "quit" {
				return nil
			}
			if err := a.dispatch(ctx, out, line); err != nil {
				a.logger.Debug("command failed", sl.Op("shell.dispatch"), sl.Err(err))
				fmt.Fprintf(out, "error: %v\n", err)
			}
		}
	}
}

// dispatch разбирает одну команду оболочки. Составные аргументы (имя,
// email и т.п.) разделяются вертикальной чертой, поскольку могут содержать
// пробелы.
func (a *App) dispatch(ctx context.Context, out io.Writer, line string) error {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "":
		return nil
	case "help":
		printHelp(out)
		return nil
	case "stats":
		return a.printStats(ctx, out)
	case "members":
		return a.printMembers(ctx, out, rest)
	case "member":
		return a.printMember(ctx, out, rest)
	case "add-member":
		return a.addMember(ctx, out, rest)
	case "update-member":
		return a.updateMember(ctx, out, rest)
	case "rm-member":
		return a.removeMember(ctx, out, rest)
	case "payments":
		return a.printPayments(ctx, out)
	case "pay":
		return a.addPayment(ctx, out, rest)
	case "attendance":
		return a.printAttendance(ctx, out)
	case "checkin":
		return a.checkin(ctx, out, rest)
	case "workouts":
		return a.printWorkouts(ctx, out)
	case "add-workout":
		return a.addWorkout(ctx, out, rest)
	case "report":
		return a.printReport(ctx, out, rest)
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
}

func printHelp(out io.Writer) {
	fmt.Fprint(out, `commands:
  stats
  members [term]
  member <id>
  add-member <name>|<email>|<phone>|<type>|<join YYYY-MM-DD>|<end YYYY-MM-DD>
  update-member <id> <field>=<value> ...
  rm-member <id>
  payments
  pay <member id> <amount>
  attendance
  checkin <member id>
  workouts
  add-workout <name>|<duration minutes>|<difficulty>
  report <YYYY-MM>
  quit
`)
}

func (a *App) printStats(ctx context.Context, out io.Writer) error {
	stats, err := a.Reports.Dashboard(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "members: %d, workouts: %d, payments total: %.2f, active today: %d\n",
		stats.TotalMembers, stats.TotalWorkouts, stats.TotalPayments, stats.ActiveMembers)
	return nil
}

func (a *App) printMembers(ctx context.Context, out io.Writer, term string) error {
	members, err := a.Members.List(ctx, term)
	if err != nil {
		return err
	}
	for _, m := range members {
		fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%s\t%s..%s\t%s\n",
			m.ID, m.Name, strOrDash(m.Email), strOrDash(m.Phone),
			m.MembershipType, m.JoinDate, m.EndDate, m.Status)
	}
	fmt.Fprintf(out, "%d member(s)\n", len(members))
	return nil
}

func (a *App) printMember(ctx context.Context, out io.Writer, arg string) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("usage: member <id>")
	}
	m, err := a.Members.Read(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%s\t%s..%s\n",
		m.ID, m.Name, strOrDash(m.Email), strOrDash(m.Phone),
		m.MembershipType, m.JoinDate, m.EndDate)
	return nil
}

func (a *App) addMember(ctx context.Context, out io.Writer, rest string) error {
	parts := strings.Split(rest, "|")
	if len(parts) != 6 {
		return fmt.Errorf("usage: add-member <name>|<email>|<phone>|<type>|<join>|<end>")
	}
	req := newDummyMember(parts)
	id, err := a.Members.Create(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "added member %d\n", id)
	return nil
}

func (a *App) updateMember(ctx context.Context, out io.Writer, rest string) error {
	args := strings.Fields(rest)
	if len(args) < 2 {
		return fmt.Errorf("usage: update-member <id> <field>=<value> ...")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("usage: update-member <id> <field>=<value> ...")
	}
	updates := make(map[string]string)
	for _, pair := range args[1:] {
		field, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("bad field assignment %q", pair)
		}
		updates[field] = value
	}
	count, err := a.Members.Update(ctx, id, updates)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "updated %d row(s)\n", count)
	return nil
}

func (a *App) removeMember(ctx context.Context, out io.Writer, arg string) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("usage: rm-member <id>")
	}
	count, err := a.Members.Delete(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "removed %d row(s)\n", count)
	return nil
}

func (a *App) printPayments(ctx context.Context, out io.Writer) error {
	payments, err := a.Payments.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range payments {
		name := "-"
		if p.MemberName != nil {
			name = *p.MemberName
		}
		fmt.Fprintf(out, "%d\t%.2f\t%s\t%s\n", p.ID, p.Amount, p.PaymentDate, name)
	}
	fmt.Fprintf(out, "%d payment(s)\n", len(payments))
	return nil
}

func (a *App) addPayment(ctx context.Context, out io.Writer, rest string) error {
	args := strings.Fields(rest)
	if len(args) != 2 {
		return fmt.Errorf("usage: pay <member id> <amount>")
	}
	id, err := a.Payments.Create(ctx, newDummyPayment(args[0], args[1]))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "recorded payment %d\n", id)
	return nil
}

func (a *App) printAttendance(ctx context.Context, out io.Writer) error {
	records, err := a.Attendance.List(ctx)
	if err != nil {
		return err
	}
	for _, r := range records {
		fmt.Fprintf(out, "%d\t%s\t%s\n", r.ID, r.CheckInTime, r.MemberName)
	}
	fmt.Fprintf(out, "%d record(s)\n", len(records))
	return nil
}

func (a *App) checkin(ctx context.Context, out io.Writer, arg string) error {
	if arg == "" {
		return fmt.Errorf("usage: checkin <member id>")
	}
	if _, err := a.Attendance.RecordCheckin(ctx, arg); err != nil {
		return err
	}
	fmt.Fprintln(out, "checked in")
	return nil
}

func (a *App) printWorkouts(ctx context.Context, out io.Writer) error {
	workouts, err := a.Workouts.List(ctx)
	if err != nil {
		return err
	}
	for _, w := range workouts {
		fmt.Fprintf(out, "%d\t%s\t%d min\t%s\n", w.ID, w.Name, w.Duration, w.Difficulty)
	}
	fmt.Fprintf(out, "%d workout(s)\n", len(workouts))
	return nil
}

func (a *App) addWorkout(ctx context.Context, out io.Writer, rest string) error {
	parts := strings.Split(rest, "|")
	if len(parts) != 3 {
		return fmt.Errorf("usage: add-workout <name>|<duration>|<difficulty>")
	}
	id, err := a.Workouts.Create(ctx, newDummyWorkout(parts))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "added workout %d\n", id)
	return nil
}

func (a *App) printReport(ctx context.Context, out io.Writer, month string) error {
	report, err := a.Reports.Monthly(ctx, month)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: payments %.2f, check-ins %d, active members %d, avg days %s\n",
		report.Month, report.TotalPayments, report.TotalCheckins,
		report.ActiveMembers, report.AvgAttendanceDays)
	return nil
}

func newDummyMember(parts []string) models.DummyMember {
	return models.DummyMember{
		Name:           strings.TrimSpace(parts[0]),
		Email:          strings.TrimSpace(parts[1]),
		Phone:          strings.TrimSpace(parts[2]),
		MembershipType: strings.TrimSpace(parts[3]),
		JoinDate:       strings.TrimSpace(parts[4]),
		EndDate:        strings.TrimSpace(parts[5]),
	}
}

func newDummyPayment(memberID, amount string) models.DummyPayment {
	return models.DummyPayment{MemberID: memberID, Amount: amount}
}

func newDummyWorkout(parts []string) models.DummyWorkout {
	return models.DummyWorkout{
		Name:       strings.TrimSpace(parts[0]),
		Duration:   strings.TrimSpace(parts[1]),
		Difficulty: strings.TrimSpace(parts[2]),
	}
}

func strOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
