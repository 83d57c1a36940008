package tasks

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	OwnerID uint   `json:"owner_id"`
	Title   string `json:"title"`
}

// TaskResponse represents a task in responses.
type TaskResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// ListTasksRequest is the request for listing an owner's tasks.
type ListTasksRequest struct {
	OwnerID uint `json:"owner_id"`
}

// ListTasksResponse is the response containing an owner's tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// UpdateTaskRequest is the request for updating a task. Title and completed
// fully overwrite the stored values.
type UpdateTaskRequest struct {
	ID        uint   `json:"id"`
	OwnerID   uint   `json:"owner_id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	ID      uint `json:"id"`
	OwnerID uint `json:"owner_id"`
}

// DeleteTaskResponse is the response after deleting a task.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
	ID      uint `json:"id"`
}
