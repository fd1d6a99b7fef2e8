// Package model содержит доменные структуры для команд и сотрудников.
package model

// Team описывает команду.
type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TeamWithMembers описывает команду вместе со списком сотрудников, которые на неё ссылаются.
type TeamWithMembers struct {
	Team
	Members []Person
}
