package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Quiz struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Title       string      `gorm:"type:text;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description,omitempty"`
	Content     QuizContent `gorm:"type:jsonb;not null" json:"content"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// QuizContent is the structured quiz document stored in the content column.
type QuizContent struct {
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Questions   []QuizQuestion `json:"questions"`
}

type QuizQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation,omitempty"`
}

func (c *QuizContent) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("cannot scan %T into QuizContent", value)
	}
}

func (c QuizContent) Value() (driver.Value, error) {
	return json.Marshal(c)
}
