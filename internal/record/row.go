package record

// Row is the logical record stored by a table. ID stays nil until the
// caller assigns it; a Row without an ID cannot be encoded.
type Row struct {
	ID       *uint64
	Username string
	Email    string
}

// NewRow builds a Row with the ID already set.
func NewRow(id uint64, username, email string) Row {
	return Row{ID: &id, Username: username, Email: email}
}
