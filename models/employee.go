package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// CourseList is stored as a JSON array in a text column.
type CourseList []string

func (c CourseList) Value() (driver.Value, error) {
	if c == nil {
		c = CourseList{}
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *CourseList) Scan(src any) error {
	if src == nil {
		*c = CourseList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return errors.New("course list: unsupported column type")
	}
}

type Employee struct {
	ID          uint       `gorm:"primaryKey"                   json:"id"`
	Name        string     `gorm:"size:100;not null"            json:"name"`
	Email       string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Mobile      string     `gorm:"size:15;not null"             json:"mobile"`
	Designation string     `gorm:"size:50;not null"             json:"designation"`
	Gender      string     `gorm:"size:10;not null"             json:"gender"`
	Course      CourseList `gorm:"type:text;not null"           json:"course"`
	Image       string     `gorm:"size:255"                     json:"image,omitempty"` // relative path under the asset store
	CreateDate  time.Time  `json:"createDate"`
	Active      bool       `json:"active"`
}
