package entity

import "time"

// Diagnosis represents a diagnosis entry with a video recording and notes.
// PatientID is nullable: a diagnosis may exist unlinked to any patient.
// Date is assigned by the database and never client-supplied.
type Diagnosis struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Video       string    `gorm:"type:varchar(255);not null" json:"video"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Suggestion  *string   `gorm:"type:text" json:"suggestion"`
	Date        time.Time `gorm:"autoCreateTime" json:"date"`
	PatientID   *uint     `gorm:"index" json:"patient_id"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Diagnosis) TableName() string {
	return "diagnoses"
}
