package quiz

import "gorm.io/datatypes"

type Quiz struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title    string `gorm:"type:varchar(255);not null" json:"title"`
	Username string `gorm:"type:varchar(255);not null;index" json:"username"`

	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// Question belongs to exactly one quiz; its id and position are storage details.
type Question struct {
	ID            int64                       `gorm:"primaryKey;autoIncrement" json:"-"`
	QuizID        int64                       `gorm:"not null;index" json:"-"`
	Position      int                         `gorm:"not null" json:"-"`
	Text          string                      `gorm:"type:text" json:"text"`
	Options       datatypes.JSONSlice[string] `json:"options"`
	CorrectOption string                      `gorm:"type:text" json:"correctOption"`
}

func (Question) TableName() string {
	return "quiz_questions"
}
