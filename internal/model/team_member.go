// Package model содержит доменные структуры для участников команды, проектов и задач
package model

// TeamMember описывает участника команды и его связи с проектами и задачами.
// Связи хранятся как есть: ссылки на несуществующие проекты/задачи допустимы.
type TeamMember struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Role               string   `json:"role"`
	Email              string   `json:"email"`
	Description        string   `json:"description"`
	AssociatedProjects []string `json:"associatedProjects"`
	AssociatedTasks    []string `json:"associatedTasks"`
}

// GetID возвращает идентификатор участника.
func (m TeamMember) GetID() string { return m.ID }

// Clone возвращает копию участника, не разделяющую слайсы связей с оригиналом.
func (m TeamMember) Clone() TeamMember {
	m.AssociatedProjects = cloneIDs(m.AssociatedProjects)
	m.AssociatedTasks = cloneIDs(m.AssociatedTasks)
	return m
}

// MemberInput описывает поля, из которых создаётся новый участник.
// Отсутствующие поля заменяются пустыми значениями.
type MemberInput struct {
	Name               string
	Role               string
	Email              string
	Description        string
	AssociatedProjects []string
	AssociatedTasks    []string
}

// ToMember собирает участника без идентификатора; слайсы связей никогда не nil.
func (in MemberInput) ToMember() TeamMember {
	return TeamMember{
		Name:               in.Name,
		Role:               in.Role,
		Email:              in.Email,
		Description:        in.Description,
		AssociatedProjects: cloneIDs(in.AssociatedProjects),
		AssociatedTasks:    cloneIDs(in.AssociatedTasks),
	}
}

// MemberPatch описывает частичное обновление. nil означает «поле не передано».
type MemberPatch struct {
	Name               *string
	Role               *string
	Email              *string
	Description        *string
	AssociatedProjects *[]string
	AssociatedTasks    *[]string
}

// Apply накладывает патч поверх участника. ID не меняется никогда.
func (p MemberPatch) Apply(m TeamMember) TeamMember {
	out := m.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Role != nil {
		out.Role = *p.Role
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.AssociatedProjects != nil {
		out.AssociatedProjects = cloneIDs(*p.AssociatedProjects)
	}
	if p.AssociatedTasks != nil {
		out.AssociatedTasks = cloneIDs(*p.AssociatedTasks)
	}
	return out
}

func cloneIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
