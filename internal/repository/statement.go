package repository

import (
	"fmt"
	"strings"

	"github.com/deppfellow/sample-api/internal/model"
)

// Explicit column lists keep the JSON shape independent of table layout.
const (
	agentColumns    = "id, name, working_area, commission"
	customerColumns = "id, name, city"
	orderColumns    = "id, order_date, amount"
)

// placeholder renders the n-th (1-based) bind parameter.
type placeholder func(n int) string

func dollarPlaceholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

func questionPlaceholder(int) string {
	return "?"
}

// buildAgentUpdate builds an UPDATE over only the columns set in patch.
// The id is always the last argument. patch must not be empty.
func buildAgentUpdate(id int64, patch model.AgentPatch, ph placeholder) (string, []any) {
	var (
		sets []string
		args []any
	)

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = %s", column, ph(len(args))))
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.WorkingArea != nil {
		set("working_area", *patch.WorkingArea)
	}
	if patch.Commission != nil {
		set("commission", *patch.Commission)
	}

	args = append(args, id)

	var b strings.Builder
	b.WriteString("UPDATE agents SET ")
	b.WriteString(strings.Join(sets, ", "))
	b.WriteString(" WHERE id = ")
	b.WriteString(ph(len(args)))

	return b.String(), args
}
