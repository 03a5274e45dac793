package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyStatement = errors.New("command: empty statement")
	ErrUnrecognized   = errors.New("command: unrecognized keyword at start of statement")
	ErrSyntax         = errors.New("command: syntax error")
)

// Prepare parses one input line into a Statement.
//
// Supported forms:
//
//	insert <id> <username> <email>
//	select
func Prepare(line string) (Statement, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrEmptyStatement
	}

	switch fields[0] {
	case "insert":
		return prepareInsert(fields)
	case "select":
		if len(fields) != 1 {
			return nil, fmt.Errorf("%w: select takes no arguments", ErrSyntax)
		}
		return &SelectStatement{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognized, fields[0])
	}
}

func prepareInsert(fields []string) (Statement, error) {
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: insert expects <id> <username> <email>", ErrSyntax)
	}
	id, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid id %q", ErrSyntax, fields[1])
	}
	return &InsertStatement{
		ID:       id,
		Username: fields[2],
		Email:    fields[3],
	}, nil
}
