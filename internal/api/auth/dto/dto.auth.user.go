package authdto

// RegisterInput datos de entrada para registrar un usuario nuevo.
type RegisterInput struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Roles    interface{} `json:"roles"`
	Phone    string      `json:"phone"`
}

// LoginInput datos de entrada para iniciar sesión con email y contraseña.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput datos de entrada para actualizar el perfil propio.
type UpdateProfileInput struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	AvatarURL    string `json:"avatarUrl"`
	StudentLevel string `json:"studentLevel"`
}

// ChangePasswordInput datos de entrada para cambiar la contraseña propia.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// EnrollInput datos de entrada para matricular a un estudiante en un curso.
type EnrollInput struct {
	CourseID string `json:"courseId" validate:"required" transform:"str_objectid,map=CourseID"`
}

// UserCreateInput entrada de creación de usuario (CRUD administrativo).
type UserCreateInput struct {
	Name         string      `json:"name" validate:"required"`
	Email        string      `json:"email" validate:"required,email"`
	Password     string      `json:"password" validate:"required,min=6"`
	Roles        interface{} `json:"roles"`
	Phone        string      `json:"phone"`
	StudentLevel string      `json:"studentLevel"`
}

// UserUpdateInput entrada de actualización de usuario (CRUD administrativo).
type UserUpdateInput struct {
	Name         string      `json:"name"`
	Phone        string      `json:"phone"`
	Roles        interface{} `json:"roles"`
	StudentLevel string      `json:"studentLevel"`
	AvatarURL    string      `json:"avatarUrl"`
	IsDisabled   *bool       `json:"isDisabled"`
	DisabledNote string      `json:"disabledNote"`
}

// BlockUserInput entrada para deshabilitar una cuenta.
type BlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note" validate:"required"`
}

// UnBlockUserInput entrada para habilitar una cuenta deshabilitada.
type UnBlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
}
