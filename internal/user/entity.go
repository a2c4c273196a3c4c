package user

// User passwords are stored and compared as plaintext.
type User struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string `gorm:"type:varchar(255);not null;index" json:"username"`
	Email     string `gorm:"type:varchar(255)" json:"email"`
	Password  string `gorm:"type:varchar(255);not null" json:"password"`
	IsTeacher *bool  `gorm:"column:is_teacher" json:"is_teacher"`
	Phone     string `gorm:"type:varchar(64)" json:"phone"`
}

func (User) TableName() string {
	return "users"
}
