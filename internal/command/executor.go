package command

import (
	"fmt"
	"log/slog"

	"rowstore/internal/heap"
	"rowstore/internal/record"
)

// Result is the generic statement result returned to the caller.
type Result struct {
	Columns []string
	Rows    [][]any

	// For DML:
	AffectedRows int64
}

// Executor runs prepared statements against one table.
type Executor struct {
	Table  *heap.Table
	Logger *slog.Logger
}

func NewExecutor(tbl *heap.Table, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{Table: tbl, Logger: logger}
}

// Execute dispatches stmt to the table and returns its result.
func (e *Executor) Execute(stmt Statement) (*Result, error) {
	switch s := stmt.(type) {
	case *InsertStatement:
		return e.execInsert(s)
	case *SelectStatement:
		return e.execSelect()
	default:
		return nil, fmt.Errorf("command: unsupported statement %T", stmt)
	}
}

func (e *Executor) execInsert(s *InsertStatement) (*Result, error) {
	idx, err := e.Table.Insert(record.NewRow(s.ID, s.Username, s.Email))
	if err != nil {
		return nil, err
	}
	e.Logger.Debug("inserted row",
		"table", e.Table.Name,
		"row", idx,
		"id", s.ID,
	)
	return &Result{AffectedRows: 1}, nil
}

func (e *Executor) execSelect() (*Result, error) {
	res := &Result{Columns: []string{"id", "username", "email"}}
	err := e.Table.Scan(func(_ int, r record.Row) error {
		res.Rows = append(res.Rows, []any{*r.ID, r.Username, r.Email})
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.AffectedRows = int64(len(res.Rows))
	return res, nil
}
