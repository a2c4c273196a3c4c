package auth

type AuthContainer struct {
	Handler *Handler
	Service LoginService
}

func NewAuthContainer(users UserFinder) *AuthContainer {
	service := NewService(users)
	handler := NewHandler(service)

	return &AuthContainer{
		Handler: handler,
		Service: service,
	}
}
