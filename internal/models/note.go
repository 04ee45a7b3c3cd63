package models

type Note struct {
	ID     int64
	TaskID int64
	Text   string
	Date   string
	Time   string
}
