package repository

import "errors"

var (
	// ErrMemberNotFound возвращается, если участник команды не найден.
	ErrMemberNotFound = errors.New("team member not found")

	// ErrProjectNotFound возвращается, если проект не найден.
	ErrProjectNotFound = errors.New("project not found")

	// ErrTaskNotFound возвращается, если задача не найдена.
	ErrTaskNotFound = errors.New("task not found")
)
