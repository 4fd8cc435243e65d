package usecase

import "strings"

// MessageLog keeps the most recent messages, oldest first.
type MessageLog struct {
	limit int
	lines []string
}

func NewMessageLog(limit int) *MessageLog {
	return &MessageLog{
		limit: limit,
		lines: make([]string, 0, limit),
	}
}

func (that *MessageLog) Add(message string) {
	if that.limit <= 0 {
		return
	}

	if len(that.lines) == that.limit {
		copy(that.lines, that.lines[1:])
		that.lines = that.lines[:that.limit-1]
	}
	that.lines = append(that.lines, message)
}

func (that *MessageLog) String() string {
	return strings.Join(that.lines, "\n")
}
