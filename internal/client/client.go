// Package client: типизированный шлюз к REST API команды.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"team-member-service/internal/model"
)

const maxResponseBytes = 4 << 20

// Config задаёт параметры клиента.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client выполняет запросы к API. Повторов и кэширования нет.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New создаёт клиент. Если HTTPClient не задан, создаётся свой с Timeout (по умолчанию 10s).
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

// Members возвращает API участников.
func (c *Client) Members() *MembersAPI {
	return &MembersAPI{c: c}
}

// Projects возвращает API проектов.
func (c *Client) Projects() *CatalogAPI[model.Project] {
	return &CatalogAPI[model.Project]{c: c, path: "/projects"}
}

// Tasks возвращает API задач.
func (c *Client) Tasks() *CatalogAPI[model.Task] {
	return &CatalogAPI[model.Task]{c: c, path: "/tasks"}
}

// do выполняет запрос и возвращает тело успешного ответа.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, &Error{Kind: KindUnexpected, Message: "marshal request", Err: err}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &Error{Kind: KindUnexpected, Message: "create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("team api unreachable",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("err", err),
		)
		return nil, &Error{Kind: KindNetworkFailure, Message: "could not reach server", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &Error{Kind: KindNetworkFailure, Status: resp.StatusCode, Message: "read response", Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return respBody, nil
	}

	apiErr := &Error{
		Kind:    KindUnexpected,
		Status:  resp.StatusCode,
		Message: serverMessage(respBody),
		Body:    respBody,
	}
	if resp.StatusCode == http.StatusNotFound {
		apiErr.Kind = KindNotFound
	}
	c.log.Debug("team api error response",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.String("message", apiErr.Message),
	)
	return nil, apiErr
}

func serverMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	return gjson.GetBytes(body, "message").String()
}

func decode[T any](body []byte) (T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return out, &Error{Kind: KindUnexpected, Message: "decode response", Body: body, Err: err}
	}
	return out, nil
}

// decodeList разбирает массив, отбрасывая элементы, которые не являются объектами
// или не имеют id.
func decodeList[T any](log *slog.Logger, body []byte) ([]T, error) {
	if !gjson.ValidBytes(body) {
		return nil, &Error{Kind: KindUnexpected, Message: "invalid JSON in list response", Body: body}
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, &Error{Kind: KindUnexpected, Message: "list response is not an array", Body: body}
	}

	out := make([]T, 0)
	dropped := 0
	root.ForEach(func(_, el gjson.Result) bool {
		if !el.IsObject() || el.Get("id").String() == "" {
			dropped++
			return true
		}
		var item T
		if err := json.Unmarshal([]byte(el.Raw), &item); err != nil {
			dropped++
			return true
		}
		out = append(out, item)
		return true
	})
	if dropped > 0 {
		log.Warn("dropped malformed list entries", slog.Int("count", dropped))
	}
	return out, nil
}

func escapeID(id string) string {
	return "/" + url.PathEscape(id)
}

// MembersAPI: операции над участниками.
type MembersAPI struct {
	c *Client
}

type memberCreateBody struct {
	Name               string   `json:"name"`
	Role               string   `json:"role"`
	Email              string   `json:"email"`
	Description        string   `json:"description"`
	AssociatedProjects []string `json:"associatedProjects"`
	AssociatedTasks    []string `json:"associatedTasks"`
}

type memberPatchBody struct {
	Name               *string   `json:"name,omitempty"`
	Role               *string   `json:"role,omitempty"`
	Email              *string   `json:"email,omitempty"`
	Description        *string   `json:"description,omitempty"`
	AssociatedProjects *[]string `json:"associatedProjects,omitempty"`
	AssociatedTasks    *[]string `json:"associatedTasks,omitempty"`
}

func (a *MembersAPI) List(ctx context.Context) ([]model.TeamMember, error) {
	body, err := a.c.do(ctx, http.MethodGet, "/team-members", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[model.TeamMember](a.c.log, body)
}

func (a *MembersAPI) Get(ctx context.Context, id string) (model.TeamMember, error) {
	body, err := a.c.do(ctx, http.MethodGet, "/team-members"+escapeID(id), nil)
	if err != nil {
		return model.TeamMember{}, err
	}
	return decode[model.TeamMember](body)
}

// Create отправляет все поля; сервер выдаёт id.
func (a *MembersAPI) Create(ctx context.Context, in model.MemberInput) (model.TeamMember, error) {
	m := in.ToMember()
	body, err := a.c.do(ctx, http.MethodPost, "/team-members", memberCreateBody{
		Name:               m.Name,
		Role:               m.Role,
		Email:              m.Email,
		Description:        m.Description,
		AssociatedProjects: m.AssociatedProjects,
		AssociatedTasks:    m.AssociatedTasks,
	})
	if err != nil {
		return model.TeamMember{}, err
	}
	return decode[model.TeamMember](body)
}

// Update отправляет только заданные поля патча.
func (a *MembersAPI) Update(ctx context.Context, id string, patch model.MemberPatch) (model.TeamMember, error) {
	body, err := a.c.do(ctx, http.MethodPut, "/team-members"+escapeID(id), memberPatchBody{
		Name:               patch.Name,
		Role:               patch.Role,
		Email:              patch.Email,
		Description:        patch.Description,
		AssociatedProjects: patch.AssociatedProjects,
		AssociatedTasks:    patch.AssociatedTasks,
	})
	if err != nil {
		return model.TeamMember{}, err
	}
	return decode[model.TeamMember](body)
}

func (a *MembersAPI) Delete(ctx context.Context, id string) error {
	_, err := a.c.do(ctx, http.MethodDelete, "/team-members"+escapeID(id), nil)
	return err
}

// CatalogAPI: чтение справочника проектов или задач.
type CatalogAPI[T any] struct {
	c    *Client
	path string
}

func (a *CatalogAPI[T]) List(ctx context.Context) ([]T, error) {
	body, err := a.c.do(ctx, http.MethodGet, a.path, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[T](a.c.log, body)
}

func (a *CatalogAPI[T]) Get(ctx context.Context, id string) (T, error) {
	body, err := a.c.do(ctx, http.MethodGet, a.path+escapeID(id), nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](body)
}
