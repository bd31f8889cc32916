package constants

type TaskStatus string

const (
	StatusPending TaskStatus = "pending"
	StatusDone    TaskStatus = "done"
)

// Valid reports whether s is one of the two recognized status values.
func (s TaskStatus) Valid() bool {
	return s == StatusPending || s == StatusDone
}
