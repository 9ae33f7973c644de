package entity

// Author represents a standalone author record with no relationships.
type Author struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string `gorm:"type:varchar(20)" json:"name"`
	Specialisation string `gorm:"type:varchar(50)" json:"specialisation"`
}

func (Author) TableName() string {
	return "authors"
}
