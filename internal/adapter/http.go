package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-todo-fetch/internal/config"
	"github.com/MKhiriev/go-todo-fetch/internal/logger"
	"github.com/MKhiriev/go-todo-fetch/internal/utils"
	"github.com/MKhiriev/go-todo-fetch/models"
)

const (
	ownerPath  = "/users/{owner}"
	createPath = "/todos/{owner}"
	taskPath   = "/todos/{id}"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises the base URL from adapterCfg.HTTPAddress
// (the scheme defaults to http) and applies adapterCfg.RequestTimeout when it
// is positive; otherwise the transport default applies.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetTasks implements [ServerAdapter] with GET /users/{owner}.
func (h *httpServerAdapter) GetTasks(ctx context.Context, owner string) ([]models.Task, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("owner", owner).
		Get(ownerPath)
	if err != nil {
		return nil, fmt.Errorf("get tasks request: %w: %w", ErrNetworkFailure, err)
	}
	h.logResponse(resp)
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body models.OwnerResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decode owner response: %w", ErrUnexpectedShape, err)
	}

	todos := bytes.TrimSpace(body.Todos)
	if len(todos) == 0 || todos[0] != '[' {
		return nil, fmt.Errorf("%w: todos is not an array: %s", ErrUnexpectedShape, string(todos))
	}

	tasks := make([]models.Task, 0)
	if err = json.Unmarshal(todos, &tasks); err != nil {
		return nil, fmt.Errorf("%w: decode todos: %w", ErrUnexpectedShape, err)
	}

	return tasks, nil
}

// CreateTask implements [ServerAdapter] with POST /todos/{owner}.
func (h *httpServerAdapter) CreateTask(ctx context.Context, owner, label string) (models.Task, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("owner", owner).
		SetBody(models.LabelRequest{Label: label}).
		Post(createPath)
	if err != nil {
		return models.Task{}, fmt.Errorf("create task request: %w: %w", ErrNetworkFailure, err)
	}
	h.logResponse(resp)
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return decodeTask(resp.Body())
}

// UpdateTask implements [ServerAdapter] with PUT /todos/{id}.
func (h *httpServerAdapter) UpdateTask(ctx context.Context, id int64, label string) (models.Task, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(models.LabelRequest{Label: label}).
		Put(taskPath)
	if err != nil {
		return models.Task{}, fmt.Errorf("update task request: %w: %w", ErrNetworkFailure, err)
	}
	h.logResponse(resp)
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return decodeTask(resp.Body())
}

// DeleteTask implements [ServerAdapter] with DELETE /todos/{id}.
func (h *httpServerAdapter) DeleteTask(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete(taskPath)
	if err != nil {
		return fmt.Errorf("delete task request: %w: %w", ErrNetworkFailure, err)
	}
	h.logResponse(resp)

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) logResponse(resp *resty.Response) {
	h.logger.Debug().
		Str("trace_id", resp.Request.Header.Get(utils.TraceIDHeader)).
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("remote call finished")
}

func decodeTask(body []byte) (models.Task, error) {
	var task models.Task
	if err := json.Unmarshal(body, &task); err != nil {
		return models.Task{}, fmt.Errorf("%w: decode task: %w", ErrUnexpectedShape, err)
	}
	if task.ID == 0 {
		return models.Task{}, fmt.Errorf("%w: task without id: %s", ErrUnexpectedShape, string(body))
	}

	return task, nil
}
