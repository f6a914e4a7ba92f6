package entities

import "time"

// Employee represents the persisted employee row.
type Employee struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Address   *string   `gorm:"type:text"`
	Age       *int
	Role      string    `gorm:"type:varchar(80);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (Employee) TableName() string {
	return "employees"
}
