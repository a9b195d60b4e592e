package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// fragmentWriter accumulates the WHERE clause and its $N arguments.
type fragmentWriter struct {
	buf  strings.Builder
	args []any
	next int
}

func (w *fragmentWriter) writeString(s string) {
	w.buf.WriteString(s)
}

func (w *fragmentWriter) writeArg(value any) {
	w.buf.WriteString("$" + strconv.Itoa(w.next))
	w.args = append(w.args, value)
	w.next++
}

// Condition renders one WHERE predicate.
type Condition func(w *fragmentWriter)

func Eq(column string, value any) Condition {
	return func(w *fragmentWriter) {
		w.writeString(column)
		w.writeString(" = ")
		w.writeArg(value)
	}
}

func In(column string, values []any) Condition {
	return func(w *fragmentWriter) {
		if len(values) == 0 {
			w.writeString("1=0")
			return
		}
		w.writeString(column)
		w.writeString(" IN (")
		for i, v := range values {
			if i > 0 {
				w.writeString(", ")
			}
			w.writeArg(v)
		}
		w.writeString(")")
	}
}

// Expr embeds a raw SQL fragment with ? placeholders rewritten to $N.
func Expr(expr string, exprArgs ...any) Condition {
	return func(w *fragmentWriter) {
		if len(exprArgs) == 0 {
			w.writeString(expr)
			return
		}
		used := 0
		for i := 0; i < len(expr); i++ {
			if expr[i] != '?' || used >= len(exprArgs) {
				w.buf.WriteByte(expr[i])
				continue
			}
			w.writeArg(exprArgs[used])
			used++
		}
	}
}

// SelectBuilder composes the read queries the repositories issue. The
// schema is written by the bot, so only SELECT is supported.
type SelectBuilder struct {
	columns []string
	table   string
	joins   []string
	where   []Condition
	groupBy []string
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Join(join string) *SelectBuilder {
	b.joins = append(b.joins, strings.TrimSpace(join))
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) GroupBy(parts ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, parts...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	w := &fragmentWriter{next: 1, args: make([]any, 0, len(b.where))}
	w.writeString("SELECT ")
	w.writeString(strings.Join(b.columns, ", "))
	w.writeString(" FROM ")
	w.writeString(b.table)
	for _, join := range b.joins {
		w.writeString(" ")
		w.writeString(join)
	}

	for i, c := range b.where {
		if i == 0 {
			w.writeString(" WHERE ")
		} else {
			w.writeString(" AND ")
		}
		c(w)
	}
	if len(b.groupBy) > 0 {
		w.writeString(" GROUP BY ")
		w.writeString(strings.Join(b.groupBy, ", "))
	}
	if len(b.orderBy) > 0 {
		w.writeString(" ORDER BY ")
		w.writeString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.writeString(" LIMIT ")
		w.writeString(strconv.Itoa(b.limit))
	}

	return w.buf.String(), w.args, nil
}
