package quiz

type QuestionRequest struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correctOption"`
}

type CreateQuizRequest struct {
	Title     *string           `json:"title" validate:"required"`
	Username  *string           `json:"username" validate:"required"`
	Questions []QuestionRequest `json:"questions"`
}

func (r CreateQuizRequest) ToQuiz() *Quiz {
	q := &Quiz{
		Title:     *r.Title,
		Username:  *r.Username,
		Questions: make([]Question, 0, len(r.Questions)),
	}
	for _, qr := range r.Questions {
		options := qr.Options
		if options == nil {
			options = []string{}
		}
		q.Questions = append(q.Questions, Question{
			Text:          qr.Text,
			Options:       options,
			CorrectOption: qr.CorrectOption,
		})
	}
	return q
}
