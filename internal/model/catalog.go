package model

// Project описывает проект. Клиент видит проекты только на чтение.
type Project struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// GetID возвращает идентификатор проекта.
func (p Project) GetID() string { return p.ID }

func (p Project) GetName() string { return p.Name }

// Task описывает задачу. Клиент видит задачи только на чтение.
type Task struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// GetID возвращает идентификатор задачи.
func (t Task) GetID() string { return t.ID }

func (t Task) GetName() string { return t.Name }
