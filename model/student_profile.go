package model

// StudentProfile extends a student User. Resume holds a plain path/URL
// reference; file handling is out of scope.
type StudentProfile struct {
	ID         int64   `gorm:"primaryKey;autoIncrement;column:id"`
	UserID     int64   `gorm:"column:user_id;uniqueIndex;not null"`
	User       User    `gorm:"foreignKey:UserID"`
	Department string  `gorm:"column:department;size:100"`
	CGPA       float64 `gorm:"column:cgpa"`
	Resume     string  `gorm:"column:resume;size:200"`
}

func (StudentProfile) TableName() string {
	return "student_profiles"
}
