package models

const (
	DefaultElapsedTime = "0m"
	DateLayout         = "2006-01-02"
)

type Task struct {
	ID          int64
	UserID      int64
	Name        string
	Priority    int
	Deadline    string
	ElapsedTime string
	Notes       string
	Completed   bool
}
