package tasks

import (
	"errors"
	"fmt"

	domain "github.com/example/task-manager-api/domain/task"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a task does not exist for the given owner.
// A task owned by someone else is indistinguishable from an absent one.
var ErrNotFound = errors.New("task not found")

// Repository provides owner-scoped access to task storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new task to the database.
func (r *Repository) Create(task *domain.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindAllByOwner retrieves all tasks belonging to the owner, ordered by id.
func (r *Repository) FindAllByOwner(ownerID uint) ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := r.db.Where("owner_id = ?", ownerID).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}
	return tasks, nil
}

// FindByIDAndOwner retrieves a single task scoped to the owner.
func (r *Repository) FindByIDAndOwner(id, ownerID uint) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.First(&task, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// Update overwrites title and completed of the owner's task. Both columns
// are always written, so completed can transition back to false.
func (r *Repository) Update(id, ownerID uint, title string, completed bool) error {
	result := r.db.Model(&domain.Task{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(map[string]any{"title": title, "completed": completed})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete permanently removes the owner's task.
func (r *Repository) Delete(id, ownerID uint) error {
	result := r.db.Delete(&domain.Task{}, "id = ? AND owner_id = ?", id, ownerID)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
