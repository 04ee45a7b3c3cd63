package models

type Activity struct {
	ID           int64
	TaskID       int64
	Date         string
	StartTime    string
	EndTime      string
	Observations string
}
