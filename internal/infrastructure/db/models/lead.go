package models

import "time"

type Profile struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Email     string `gorm:"size:320;not null;uniqueIndex"`
	FullName  string `gorm:"size:255;not null"`
	Role      string `gorm:"size:32;not null;default:sales"`
	Status    string `gorm:"size:32;not null;default:active"`
	CreatedAt time.Time
}

func (Profile) TableName() string {
	return "profiles"
}

type Lead struct {
	ID               string  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name             string  `gorm:"size:255;not null"`
	Email            *string `gorm:"size:320;uniqueIndex"`
	Phone            *string `gorm:"size:32;uniqueIndex"`
	Company          string  `gorm:"size:255"`
	Country          string  `gorm:"size:120"`
	City             string  `gorm:"size:120"`
	Profession       string  `gorm:"size:120"`
	Notes            string  `gorm:"type:text"`
	Source           string  `gorm:"size:120"`
	Status           string  `gorm:"size:64;not null"`
	ProductInterest  string  `gorm:"size:120"`
	BootcampAttendee bool    `gorm:"not null;default:false"`
	DaysAttended     int     `gorm:"not null;default:0"`
	AssignedTo       *string `gorm:"type:uuid;index"`
	CreatedBy        *string `gorm:"type:uuid"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Lead) TableName() string {
	return "leads"
}
