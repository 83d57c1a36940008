package task

import (
	"time"
)

// Task is a to-do item owned by exactly one user. Tasks are only ever read
// or written through queries scoped to their owner.
type Task struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null;type:text" json:"title"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	OwnerID   uint      `gorm:"not null;index" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}
