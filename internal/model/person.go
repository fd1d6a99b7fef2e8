package model

import (
	"fmt"
	"time"
)

// Person описывает сотрудника, его команду, контакты и статус обеденного перерыва.
// TeamID — слабая ссылка: существование команды не проверяется.
type Person struct {
	ID           int64
	Name         string
	TeamID       *int64
	Email        string
	Contact      string
	OnLunchBreak bool
	Started      *time.Time
}

func (p Person) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Email)
}
