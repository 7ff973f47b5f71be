package journal

import (
	"time"

	"github.com/mj1618/pinwin/internal/model"
)

// CommandEntry is one row of the command history.
type CommandEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id" yaml:"id"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp" yaml:"timestamp"`
	Action    string    `gorm:"not null;index" json:"action" yaml:"action"`
	Handle    int64     `gorm:"not null" json:"handle" yaml:"handle"`
	Title     string    `gorm:"not null" json:"title" yaml:"title"`
	Process   string    `gorm:"not null" json:"process" yaml:"process"`
	OK        bool      `gorm:"not null;default:true" json:"ok" yaml:"ok"`
	Error     string    `json:"error,omitempty" yaml:"error,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-" yaml:"-"`
}

func entryFromEvent(ev model.CommandEvent) *CommandEntry {
	return &CommandEntry{
		Timestamp: ev.Time,
		Action:    ev.Action,
		Handle:    int64(ev.Handle),
		Title:     ev.Title,
		Process:   ev.Process,
		OK:        ev.OK,
		Error:     ev.Error,
	}
}

// Event converts the row back to a command event.
func (e CommandEntry) Event() model.CommandEvent {
	return model.CommandEvent{
		Time:    e.Timestamp,
		Action:  e.Action,
		Handle:  model.Handle(e.Handle),
		Title:   e.Title,
		Process: e.Process,
		OK:      e.OK,
		Error:   e.Error,
	}
}
