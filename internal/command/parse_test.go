package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareInsert(t *testing.T) {
	stmt, err := Prepare("insert 1 user1 person1@example.com")
	require.NoError(t, err)

	ins, ok := stmt.(*InsertStatement)
	require.True(t, ok)
	assert.Equal(t, uint64(1), ins.ID)
	assert.Equal(t, "user1", ins.Username)
	assert.Equal(t, "person1@example.com", ins.Email)
}

func TestPrepareInsertTrimsWhitespace(t *testing.T) {
	stmt, err := Prepare("   insert   42   bob   bob@mail  ")
	require.NoError(t, err)

	ins := stmt.(*InsertStatement)
	assert.Equal(t, uint64(42), ins.ID)
	assert.Equal(t, "bob", ins.Username)
}

func TestPrepareInsertErrors(t *testing.T) {
	for _, line := range []string{
		"insert",
		"insert 1 user1",
		"insert 1 user1 mail extra",
		"insert -1 user1 mail",
		"insert abc user1 mail",
	} {
		_, err := Prepare(line)
		require.ErrorIs(t, err, ErrSyntax, "line %q", line)
	}
}

func TestPrepareSelect(t *testing.T) {
	stmt, err := Prepare("select")
	require.NoError(t, err)
	_, ok := stmt.(*SelectStatement)
	require.True(t, ok)

	_, err = Prepare("select everything")
	require.ErrorIs(t, err, ErrSyntax)
}

func TestPrepareUnrecognized(t *testing.T) {
	_, err := Prepare("update 1 user1 mail")
	require.ErrorIs(t, err, ErrUnrecognized)

	_, err = Prepare("")
	require.ErrorIs(t, err, ErrEmptyStatement)
	_, err = Prepare("   ")
	require.ErrorIs(t, err, ErrEmptyStatement)
}
