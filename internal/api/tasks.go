package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ProtoSG/momentum-front/internal/model"
)

func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := c.do(ctx, http.MethodGet, "/task", nil, &tasks)
	return tasks, err
}

func (c *Client) CreateTask(ctx context.Context, req model.CreateTaskRequest) (model.Task, error) {
	var task model.Task
	err := c.do(ctx, http.MethodPost, "/task", req, &task)
	return task, err
}

func (c *Client) UpdateTask(ctx context.Context, taskID int64, req model.UpdateTaskRequest) (model.Task, error) {
	var task model.Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/task/%d", taskID), req, &task)
	return task, err
}

func (c *Client) UpdateTaskStatus(ctx context.Context, taskID int64, status model.TaskStatus) (model.Task, error) {
	var task model.Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/task/state/%d", taskID), model.TaskStatusUpdate{Status: status}, &task)
	return task, err
}

func (c *Client) DeleteTask(ctx context.Context, taskID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/task/%d", taskID), nil, nil)
}
