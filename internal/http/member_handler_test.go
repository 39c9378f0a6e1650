package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "team-member-service/internal/http"
	"team-member-service/internal/http/mocks"
	"team-member-service/internal/model"
	"team-member-service/internal/service"
)

func newTestHandler(ms *mocks.MemberService, cs *mocks.CatalogService) *httpapi.Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return httpapi.NewHandler(ms, cs, logger)
}

func strPtr(s string) *string { return &s }

func idsPtr(ids ...string) *[]string { return &ids }

func TestHandler_CreateMember(t *testing.T) {
	created := model.TeamMember{
		ID: "m1", Name: "Ana", Role: "Dev", Email: "a@x.io",
		AssociatedProjects: []string{}, AssociatedTasks: []string{},
	}

	tests := []struct {
		name           string
		body           string
		mockBehavior   func(ms *mocks.MemberService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success",
			body: `{"name":"Ana","role":"Dev","email":"a@x.io"}`,
			mockBehavior: func(ms *mocks.MemberService) {
				ms.On("Create", mock.Anything, model.MemberInput{Name: "Ana", Role: "Dev", Email: "a@x.io"}).
					Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Client id is ignored, non-array associations dropped",
			body: `{"id":"mine","name":"Ana","associatedProjects":"p1","associatedTasks":["t1",null,7]}`,
			mockBehavior: func(ms *mocks.MemberService) {
				ms.On("Create", mock.Anything, model.MemberInput{
					Name:            "Ana",
					AssociatedTasks: []string{"t1", "7"},
				}).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Repeated key keeps last value",
			body: `{"name":"a","role":"Dev","name":"b","associatedTasks":["t1"],"associatedTasks":["t2"]}`,
			mockBehavior: func(ms *mocks.MemberService) {
				ms.On("Create", mock.Anything, model.MemberInput{
					Name: "b", Role: "Dev", AssociatedTasks: []string{"t2"},
				}).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Empty body creates blank member",
			body: ``,
			mockBehavior: func(ms *mocks.MemberService) {
				ms.On("Create", mock.Anything, model.MemberInput{}).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Bad Request: Invalid JSON",
			body:           `{"name": "broken`,
			mockBehavior:   func(ms *mocks.MemberService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "BAD_REQUEST",
		},
		{
			name:           "Bad Request: Not an object",
			body:           `["Ana"]`,
			mockBehavior:   func(ms *mocks.MemberService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "BAD_REQUEST",
		},
		{
			name: "Internal Error",
			body: `{"name":"Ana"}`,
			mockBehavior: func(ms *mocks.MemberService) {
				ms.On("Create", mock.Anything, model.MemberInput{Name: "Ana"}).
					Return(model.TeamMember{}, service.ErrInternal("failed to create team member", errors.New("db down")))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := new(mocks.MemberService)
			cs := new(mocks.CatalogService)
			tt.mockBehavior(ms)

			h := newTestHandler(ms, cs)

			req := httptest.NewRequest(http.MethodPost, "/team-members", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			h.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				var resp struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedCode, resp.Code)
				assert.NotEmpty(t, resp.Message)
			}
			ms.AssertExpectations(t)
		})
	}
}

func TestHandler_UpdateMember(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		body           string
		mockBehavior   func(ms *mocks.MemberService)
		expectedStatus int
	}{
		{
			name: "Associations only",
			id:   "m1",
			body: `{"associatedProjects":["p2"]}`,
			mockBehavior: func(ms *mocks.MemberService) {
				ms.On("Update", mock.Anything, "m1", model.MemberPatch{AssociatedProjects: idsPtr("p2")}).
					Return(model.TeamMember{ID: "m1", AssociatedProjects: []string{"p2"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Null means absent, id in body ignored",
			id:   "m1",
			body: `{"id":"other","name":"Bo","role":null,"associatedTasks":{"a":1}}`,
			mockBehavior: func(ms *mocks.MemberService) {
				ms.On("Update", mock.Anything, "m1", model.MemberPatch{Name: strPtr("Bo")}).
					Return(model.TeamMember{ID: "m1", Name: "Bo"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Repeated key keeps last value, trailing null means absent",
			id:   "m1",
			body: `{"name":"a","name":"b","role":"QA","role":null}`,
			mockBehavior: func(ms *mocks.MemberService) {
				ms.On("Update", mock.Anything, "m1", model.MemberPatch{Name: strPtr("b")}).
					Return(model.TeamMember{ID: "m1", Name: "b"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Empty association list clears",
			id:   "m1",
			body: `{"associatedTasks":[]}`,
			mockBehavior: func(ms *mocks.MemberService) {
				ms.On("Update", mock.Anything, "m1", model.MemberPatch{AssociatedTasks: &[]string{}}).
					Return(model.TeamMember{ID: "m1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Not Found",
			id:   "ghost",
			body: `{"name":"Bo"}`,
			mockBehavior: func(ms *mocks.MemberService) {
				ms.On("Update", mock.Anything, "ghost", model.MemberPatch{Name: strPtr("Bo")}).
					Return(model.TeamMember{}, service.ErrNotFound(service.MsgMemberNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Bad Request: Invalid JSON",
			id:             "m1",
			body:           `{`,
			mockBehavior:   func(ms *mocks.MemberService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := new(mocks.MemberService)
			cs := new(mocks.CatalogService)
			tt.mockBehavior(ms)

			h := newTestHandler(ms, cs)

			req := httptest.NewRequest(http.MethodPut, "/team-members/"+tt.id, bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			h.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			ms.AssertExpectations(t)
		})
	}
}

func TestHandler_GetAndDeleteMember(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		id              string
		mockBehavior    func(ms *mocks.MemberService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:   "Get Success",
			method: http.MethodGet,
			id:     "m1",
			mockBehavior: func(ms *mocks.MemberService) {
				ms.On("Get", mock.Anything, "m1").Return(model.TeamMember{ID: "m1", Name: "Ana"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Get Not Found",
			method: http.MethodGet,
			id:     "ghost",
			mockBehavior: func(ms *mocks.MemberService) {
				ms.On("Get", mock.Anything, "ghost").
					Return(model.TeamMember{}, service.ErrNotFound(service.MsgMemberNotFound))
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: service.MsgMemberNotFound,
		},
		{
			name:   "Delete Success",
			method: http.MethodDelete,
			id:     "m1",
			mockBehavior: func(ms *mocks.MemberService) {
				ms.On("Delete", mock.Anything, "m1").Return(nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: service.MsgMemberDeleted,
		},
		{
			name:   "Delete Not Found",
			method: http.MethodDelete,
			id:     "nonexistent",
			mockBehavior: func(ms *mocks.MemberService) {
				ms.On("Delete", mock.Anything, "nonexistent").Return(service.ErrNotFound(service.MsgMemberNotFound))
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: service.MsgMemberNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := new(mocks.MemberService)
			cs := new(mocks.CatalogService)
			tt.mockBehavior(ms)

			h := newTestHandler(ms, cs)

			req := httptest.NewRequest(tt.method, "/team-members/"+tt.id, nil)
			w := httptest.NewRecorder()

			h.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMessage != "" {
				var resp struct {
					Message string `json:"message"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
			ms.AssertExpectations(t)
		})
	}
}

func TestHandler_ListMembers(t *testing.T) {
	ms := new(mocks.MemberService)
	cs := new(mocks.CatalogService)
	ms.On("List", mock.Anything).Return([]model.TeamMember{
		{ID: "m1", Name: "Ana", AssociatedProjects: []string{}, AssociatedTasks: []string{}},
	}, nil)

	h := newTestHandler(ms, cs)

	req := httptest.NewRequest(http.MethodGet, "/team-members", nil)
	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`[{"id":"m1","name":"Ana","role":"","email":"","description":"","associatedProjects":[],"associatedTasks":[]}]`,
		w.Body.String())
	ms.AssertExpectations(t)
}

func TestHandler_Catalog(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockBehavior   func(cs *mocks.CatalogService)
		expectedStatus int
	}{
		{
			name: "List projects",
			path: "/projects",
			mockBehavior: func(cs *mocks.CatalogService) {
				cs.On("ListProjects", mock.Anything).Return([]model.Project{{ID: "p1", Name: "Alpha"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Get project not found",
			path: "/projects/nope",
			mockBehavior: func(cs *mocks.CatalogService) {
				cs.On("GetProject", mock.Anything, "nope").Return(model.Project{}, service.ErrNotFound("project not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "List tasks",
			path: "/tasks",
			mockBehavior: func(cs *mocks.CatalogService) {
				cs.On("ListTasks", mock.Anything).Return([]model.Task{{ID: "t1", Name: "Write docs"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Get task",
			path: "/tasks/t1",
			mockBehavior: func(cs *mocks.CatalogService) {
				cs.On("GetTask", mock.Anything, "t1").Return(model.Task{ID: "t1", Name: "Write docs"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Storage failure",
			path: "/tasks",
			mockBehavior: func(cs *mocks.CatalogService) {
				cs.On("ListTasks", mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := new(mocks.MemberService)
			cs := new(mocks.CatalogService)
			tt.mockBehavior(cs)

			h := newTestHandler(ms, cs)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			h.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			cs.AssertExpectations(t)
		})
	}
}

func TestHandler_Misc(t *testing.T) {
	h := newTestHandler(new(mocks.MemberService), new(mocks.CatalogService))

	t.Run("Index", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Welcome")
	})

	t.Run("Health", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("Unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("Method not allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/team-members/m1", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("CORS preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/team-members", nil)
		req.Header.Set("Origin", "http://localhost:19006")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		h.Router().ServeHTTP(w, req)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
