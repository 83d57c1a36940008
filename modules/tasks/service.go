package tasks

import (
	"context"
	"fmt"

	domain "github.com/example/task-manager-api/domain/task"
	"github.com/go-monolith/mono"
)

// createTask handles the tasks.create service request.
func (m *TasksModule) createTask(_ context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if req.OwnerID == 0 {
		return TaskResponse{}, fmt.Errorf("owner_id is required")
	}
	if req.Title == "" {
		return TaskResponse{}, fmt.Errorf("title is required")
	}

	task := &domain.Task{
		Title:     req.Title,
		Completed: false,
		OwnerID:   req.OwnerID,
	}

	if err := m.repo.Create(task); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to save task: %w", err)
	}

	return toTaskResponse(task), nil
}

// listTasks handles the tasks.list service request.
func (m *TasksModule) listTasks(_ context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	if req.OwnerID == 0 {
		return ListTasksResponse{}, fmt.Errorf("owner_id is required")
	}

	found, err := m.repo.FindAllByOwner(req.OwnerID)
	if err != nil {
		return ListTasksResponse{}, err
	}

	response := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(found)),
		Total: len(found),
	}

	for _, task := range found {
		response.Tasks = append(response.Tasks, toTaskResponse(task))
	}

	return response, nil
}

// updateTask handles the tasks.update service request.
func (m *TasksModule) updateTask(_ context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if req.ID == 0 || req.OwnerID == 0 {
		return TaskResponse{}, fmt.Errorf("id and owner_id are required")
	}
	if req.Title == "" {
		return TaskResponse{}, fmt.Errorf("title is required")
	}

	if err := m.repo.Update(req.ID, req.OwnerID, req.Title, req.Completed); err != nil {
		return TaskResponse{}, err
	}

	return TaskResponse{
		ID:        req.ID,
		Title:     req.Title,
		Completed: req.Completed,
	}, nil
}

// deleteTask handles the tasks.delete service request.
func (m *TasksModule) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if req.ID == 0 || req.OwnerID == 0 {
		return DeleteTaskResponse{Deleted: false}, fmt.Errorf("id and owner_id are required")
	}

	if err := m.repo.Delete(req.ID, req.OwnerID); err != nil {
		return DeleteTaskResponse{Deleted: false, ID: req.ID}, err
	}

	return DeleteTaskResponse{Deleted: true, ID: req.ID}, nil
}

// toTaskResponse converts a Task entity to a TaskResponse.
func toTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
	}
}
