package model

import "time"

// Student is keyed by NIM, the externally assigned identifier that is also
// the student's only login credential.
type Student struct {
	NIM       string    `json:"nim" gorm:"primaryKey;size:50"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
