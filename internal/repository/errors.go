package repository

import "errors"

var (
	// ErrPersonNotFound возвращается, если сотрудник с таким id не найден.
	ErrPersonNotFound = errors.New("person not found")

	// ErrPersonExists возвращается, если имя, email или контакт уже заняты.
	ErrPersonExists = errors.New("person already exists")

	// ErrTeamNotFound возвращается, если команда не найдена.
	ErrTeamNotFound = errors.New("team not found")
)

// pgUniqueViolation — код ошибки PostgreSQL при нарушении UNIQUE.
const pgUniqueViolation = "23505"
