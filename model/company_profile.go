package model

// CompanyProfile extends a company User. Created lazily the first time the
// company submits the profile form, updated in place after that.
type CompanyProfile struct {
	ID          int64  `gorm:"primaryKey;autoIncrement;column:id"`
	UserID      int64  `gorm:"column:user_id;uniqueIndex;not null"`
	User        User   `gorm:"foreignKey:UserID"`
	CompanyName string `gorm:"column:company_name;size:150"`
	Industry    string `gorm:"column:industry;size:100"`
	Website     string `gorm:"column:website;size:150"`
	Description string `gorm:"column:description;type:text"`
	Location    string `gorm:"column:location;size:100"`
	CompanySize string `gorm:"column:company_size;size:50"`
}

func (CompanyProfile) TableName() string {
	return "company_profiles"
}
