package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"` // опционально
	LastName  string `json:"lastName,omitempty"`  // опционально
}

// LoginRequest представляет запрос на аутентификацию.
// Identifier принимает email или username.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// User публичная проекция аккаунта: без хеша пароля и security-полей.
// CreatedAt/LastLogin заполняются только в ответе /auth/me.
type User struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Role      string  `json:"role"`
	CreatedAt *string `json:"createdAt,omitempty"`
	LastLogin *string `json:"lastLogin,omitempty"`
}

// AuthData тело data для ответов register/login
type AuthData struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// MeData тело data для ответа /auth/me
type MeData struct {
	User User `json:"user"`
}
