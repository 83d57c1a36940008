package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestModule builds a TasksModule backed by an in-memory database,
// bypassing Start so no file or env configuration is involved.
func newTestModule(t *testing.T) *TasksModule {
	t.Helper()

	db := setupTestDB(t)
	return &TasksModule{
		db:   db,
		repo: NewRepository(db),
	}
}

func TestTasksModule_CreateTask(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	resp, err := m.createTask(ctx, CreateTaskRequest{OwnerID: 1, Title: "Buy milk"}, nil)
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Buy milk", resp.Title)
	assert.False(t, resp.Completed, "new tasks start incomplete")
}

func TestTasksModule_CreateTask_Validation(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	_, err := m.createTask(ctx, CreateTaskRequest{OwnerID: 1}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")

	_, err = m.createTask(ctx, CreateTaskRequest{Title: "no owner"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "owner_id is required")
}

func TestTasksModule_ListTasks(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createTask(ctx, CreateTaskRequest{OwnerID: 1, Title: "Buy milk"}, nil)
	require.NoError(t, err)
	_, err = m.createTask(ctx, CreateTaskRequest{OwnerID: 2, Title: "not yours"}, nil)
	require.NoError(t, err)

	resp, err := m.listTasks(ctx, ListTasksRequest{OwnerID: 1}, nil)
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	assert.Equal(t, created.ID, resp.Tasks[0].ID)
	assert.Equal(t, "Buy milk", resp.Tasks[0].Title)
	assert.False(t, resp.Tasks[0].Completed)
}

func TestTasksModule_UpdateTask(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createTask(ctx, CreateTaskRequest{OwnerID: 1, Title: "Buy milk"}, nil)
	require.NoError(t, err)

	resp, err := m.updateTask(ctx, UpdateTaskRequest{
		ID:        created.ID,
		OwnerID:   1,
		Title:     "Buy bread",
		Completed: true,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Buy bread", resp.Title)
	assert.True(t, resp.Completed)

	list, err := m.listTasks(ctx, ListTasksRequest{OwnerID: 1}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Buy bread", list.Tasks[0].Title)
	assert.True(t, list.Tasks[0].Completed)
}

func TestTasksModule_UpdateTask_OwnershipIsolation(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createTask(ctx, CreateTaskRequest{OwnerID: 1, Title: "Buy milk"}, nil)
	require.NoError(t, err)

	// User 2 updating user 1's task gets the same error as for a
	// non-existent task
	_, err = m.updateTask(ctx, UpdateTaskRequest{
		ID:        created.ID,
		OwnerID:   2,
		Title:     "hijacked",
		Completed: true,
	}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTasksModule_DeleteTask(t *testing.T) {
	m := newTestModule(t)
	ctx := context.Background()

	created, err := m.createTask(ctx, CreateTaskRequest{OwnerID: 1, Title: "Buy milk"}, nil)
	require.NoError(t, err)

	_, err = m.deleteTask(ctx, DeleteTaskRequest{ID: created.ID, OwnerID: 2}, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	resp, err := m.deleteTask(ctx, DeleteTaskRequest{ID: created.ID, OwnerID: 1}, nil)
	require.NoError(t, err)
	assert.True(t, resp.Deleted)

	list, err := m.listTasks(ctx, ListTasksRequest{OwnerID: 1}, nil)
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}
