package entity

import "time"

// Patient status values. A freshly created patient has not been seen yet.
const (
	PatientStatusUnvisited = "unvisited"
	PatientStatusVisited   = "visited"
)

// Patient represents a patient record owned by exactly one doctor.
// Created is assigned by the database and never client-supplied.
type Patient struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"type:varchar(100)" json:"name"`
	Age            int       `json:"age"`
	Gender         string    `gorm:"type:varchar(10)" json:"gender"`
	MedicalHistory string    `gorm:"type:text" json:"medical_history"`
	Email          string    `gorm:"type:varchar(120);uniqueIndex" json:"email"`
	Created        time.Time `gorm:"autoCreateTime" json:"created"`
	DoctorID       uint      `gorm:"not null;index" json:"doctor_id"`
	Status         string    `gorm:"type:varchar(20);default:'unvisited'" json:"status"`

	// Relationships
	Doctor    *User       `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Diagnoses []Diagnosis `gorm:"foreignKey:PatientID" json:"diagnoses,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
