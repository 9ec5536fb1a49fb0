package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okian/draftroots/internal/domain/model"
)

// Menu choices.
const (
	choiceConnections = 1
	choiceAverages    = 2
	choiceTeam        = 3
	choiceExit        = 4
)

const menuText = `1: Most successful colleges
2: Determine average NBA rookie performance by college
3: NBA draft history
4: Exit
`

// Querier answers the three draft queries. *service.Service implements it.
type Querier interface {
	ConnectionCounts(ctx context.Context, limit int) ([]model.InstitutionCount, error)
	AverageComposite(ctx context.Context) (map[string]float64, error)
	TopInstitutionsForTeam(ctx context.Context, team string, limit int) ([]model.InstitutionCount, error)
}

// Menu is the interactive prompt loop. Each choice is an independent query.
type Menu struct {
	q      Querier
	in     *bufio.Scanner
	out    io.Writer
	format Format
	limit  int
}

// NewMenu creates a menu reading choices from in and writing to out.
func NewMenu(q Querier, in io.Reader, out io.Writer, format Format, limit int) *Menu {
	return &Menu{q: q, in: bufio.NewScanner(in), out: out, format: format, limit: limit}
}

// Run loops until the user exits, input ends, or ctx is cancelled.
// Query failures are reported and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.printf("%s", menuText)
		line, ok := m.prompt("Please input an option: ")
		if !ok {
			m.printf("\nThank You!\n")
			return m.in.Err()
		}

		choice, err := strconv.Atoi(line)
		if err != nil || choice < choiceConnections || choice > choiceExit {
			m.printf("\nPlease input a valid input option\n\n")
			continue
		}
		if choice == choiceExit {
			m.printf("\nThank You!\n")
			return nil
		}

		if err := m.answer(ctx, choice); err != nil {
			m.printf("\nQuery failed: %v\n\n", err)
		}
	}
}

func (m *Menu) answer(ctx context.Context, choice int) error {
	switch choice {
	case choiceConnections:
		counts, err := m.q.ConnectionCounts(ctx, m.limit)
		if err != nil {
			return err
		}
		return m.section(func() error { return Counts(m.out, m.format, counts) })

	case choiceAverages:
		avgs, err := m.q.AverageComposite(ctx)
		if err != nil {
			return err
		}
		return m.section(func() error { return Averages(m.out, m.format, avgs) })

	default:
		team, ok := m.prompt("Please input an NBA team abbreviation: ")
		if !ok {
			return nil
		}
		counts, err := m.q.TopInstitutionsForTeam(ctx, team, m.limit)
		if err != nil {
			return err
		}
		if len(counts) == 0 {
			m.printf("\nNo drafted rookies found for team %q\n\n", team)
			return nil
		}
		return m.section(func() error { return Counts(m.out, m.format, counts) })
	}
}

func (m *Menu) section(render func() error) error {
	m.printf("\n")
	if err := render(); err != nil {
		return err
	}
	m.printf("\n")
	return nil
}

func (m *Menu) prompt(text string) (string, bool) {
	m.printf("%s", text)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}
