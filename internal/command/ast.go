package command

// Statement is the root interface for all prepared statements.
type Statement interface {
	stmtNode()
}

// ----- INSERT -----
type InsertStatement struct {
	ID       uint64
	Username string
	Email    string
}

func (*InsertStatement) stmtNode() {}

// ----- SELECT -----
type SelectStatement struct{}

func (*SelectStatement) stmtNode() {}
