package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"team-member-service/internal/model"
	"team-member-service/internal/service"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// readObject читает тело запроса как JSON-объект. Пустое тело считается {}.
func readObject(w http.ResponseWriter, r *http.Request) (gjson.Result, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return gjson.Result{}, service.ErrBadRequest("failed to read request body")
	}
	return parseObject(body)
}

func parseObject(body []byte) (gjson.Result, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return gjson.Parse("{}"), nil
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, service.ErrBadRequest("invalid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return gjson.Result{}, service.ErrBadRequest("request body must be a JSON object")
	}
	return root, nil
}

// field возвращает значение ключа верхнего уровня. При повторе ключа
// побеждает последнее вхождение.
func field(root gjson.Result, key string) gjson.Result {
	var v gjson.Result
	root.ForEach(func(k, val gjson.Result) bool {
		if k.String() == key {
			v = val
		}
		return true
	})
	return v
}

// stringField возвращает строковое представление поля; null и отсутствие равнозначны.
func stringField(root gjson.Result, key string) (string, bool) {
	v := field(root, key)
	if !v.Exists() || v.Type == gjson.Null {
		return "", false
	}
	return v.String(), true
}

// idListField возвращает список id, если поле: массив. null-элементы пропускаются,
// остальные приводятся к строке.
func idListField(root gjson.Result, key string) ([]string, bool) {
	v := field(root, key)
	if !v.IsArray() {
		return nil, false
	}
	ids := make([]string, 0)
	for _, el := range v.Array() {
		if el.Type == gjson.Null {
			continue
		}
		ids = append(ids, el.String())
	}
	return ids, true
}

// memberInputFrom собирает данные для создания участника.
// Отсутствующие поля становятся пустыми: сервер поля не валидирует.
func memberInputFrom(root gjson.Result) model.MemberInput {
	var in model.MemberInput
	in.Name, _ = stringField(root, "name")
	in.Role, _ = stringField(root, "role")
	in.Email, _ = stringField(root, "email")
	in.Description, _ = stringField(root, "description")
	in.AssociatedProjects, _ = idListField(root, "associatedProjects")
	in.AssociatedTasks, _ = idListField(root, "associatedTasks")
	return in
}

// memberPatchFrom собирает частичное обновление. id в теле игнорируется,
// связи меняются только если переданы массивом.
func memberPatchFrom(root gjson.Result) model.MemberPatch {
	var p model.MemberPatch
	for key, dst := range map[string]**string{
		"name":        &p.Name,
		"role":        &p.Role,
		"email":       &p.Email,
		"description": &p.Description,
	} {
		if s, ok := stringField(root, key); ok {
			*dst = &s
		}
	}
	if ids, ok := idListField(root, "associatedProjects"); ok {
		p.AssociatedProjects = &ids
	}
	if ids, ok := idListField(root, "associatedTasks"); ok {
		p.AssociatedTasks = &ids
	}
	return p
}

func describePatch(p model.MemberPatch) string {
	fields := make([]string, 0, 6)
	add := func(set bool, name string) {
		if set {
			fields = append(fields, name)
		}
	}
	add(p.Name != nil, "name")
	add(p.Role != nil, "role")
	add(p.Email != nil, "email")
	add(p.Description != nil, "description")
	add(p.AssociatedProjects != nil, "associatedProjects")
	add(p.AssociatedTasks != nil, "associatedTasks")
	return fmt.Sprint(fields)
}
