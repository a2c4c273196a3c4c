package user

type RegisterRequest struct {
	Username  *string `json:"username" validate:"required"`
	Email     string  `json:"email"`
	Password  *string `json:"password" validate:"required"`
	IsTeacher *bool   `json:"is_teacher"`
	Phone     string  `json:"phone"`
}

func (r RegisterRequest) ToUser() *User {
	return &User{
		Username:  *r.Username,
		Email:     r.Email,
		Password:  *r.Password,
		IsTeacher: r.IsTeacher,
		Phone:     r.Phone,
	}
}
