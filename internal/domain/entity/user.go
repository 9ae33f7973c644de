package entity

// User represents a doctor account. The password column always holds a
// bcrypt hash, never the plaintext.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"type:varchar(120);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:text;not null" json:"password"`

	// Relationships
	Patients []Patient `gorm:"foreignKey:DoctorID" json:"patients,omitempty"`
}

func (User) TableName() string {
	return "users"
}
