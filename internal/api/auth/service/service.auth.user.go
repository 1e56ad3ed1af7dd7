package authsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	authdto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/dto"
	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/models"
	basesvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/service"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/global"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserService contiene la lógica de usuarios: registro, login, perfil y matrícula.
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
	tokenService *TokenService
}

// NewUserService crea un UserService nuevo.
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de usuarios: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
		tokenService:         NewTokenService(),
	}, nil
}

// LoginResult es el resultado de un login exitoso.
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register registra un usuario nuevo con la contraseña hasheada (bcrypt).
// El campo roles acepta un string o una lista; vacío produce ["student"].
func (s *UserService) Register(ctx context.Context, input *authdto.RegisterInput) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Error al procesar la contraseña", common.StatusInternalServerError, err)
	}

	user := models.User{
		Name:     input.Name,
		Email:    utility.NormalizeEmail(input.Email),
		Password: string(hashed),
		Roles:    models.NormalizeRoles(input.Roles),
		Phone:    input.Phone,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return nil, common.NewError(common.ErrCodeDatabaseQuery, "El email ya está registrado", common.StatusConflict, nil)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"userId": created.ID.Hex(),
		"email":  created.Email,
		"roles":  created.Roles,
	}).Info("Register: usuario registrado")

	created.Password = ""
	return &created, nil
}

// Login autentica con email y contraseña, actualiza lastLoginAt y emite un JWT.
func (s *UserService) Login(ctx context.Context, input *authdto.LoginInput) (*LoginResult, error) {
	user, err := s.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.IsDisabled {
		return nil, common.ErrUserDisabled
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		return nil, err
	}

	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"lastLoginAt": time.Now().UnixMilli()},
	})
	if err != nil {
		logrus.WithError(err).Warn("Login: no se pudo actualizar lastLoginAt")
	}

	user.Password = ""
	return &LoginResult{Token: token, User: user}, nil
}

// FindByEmail busca un usuario por su email (normalizado a minúsculas).
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": utility.NormalizeEmail(email)}, nil)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile retorna el perfil del usuario sin campos sensibles.
func (s *UserService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return &user, nil
}

// UpdateProfile actualiza los campos editables del perfil propio.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input *authdto.UpdateProfileInput) (*models.User, error) {
	setData := map[string]interface{}{}
	if input.Name != "" {
		setData["name"] = input.Name
	}
	if input.Phone != "" {
		setData["phone"] = input.Phone
	}
	if input.AvatarURL != "" {
		setData["avatarUrl"] = input.AvatarURL
	}
	if input.StudentLevel != "" {
		setData["studentLevel"] = input.StudentLevel
	}
	if len(setData) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "No hay campos para actualizar", common.StatusBadRequest, nil)
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, &basesvc.UpdateData{Set: setData})
	if err != nil {
		return nil, err
	}
	updated.Password = ""
	return &updated, nil
}

// ChangePassword verifica la contraseña actual y guarda la nueva hasheada.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.ChangePasswordInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)) != nil {
		return common.NewError(common.ErrCodeAuthCredentials, "La contraseña actual es incorrecta", common.StatusUnauthorized, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Error al procesar la contraseña", common.StatusInternalServerError, err)
	}

	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{"password": string(hashed)},
	})
	return err
}

// Enroll matricula a un estudiante en un curso ($addToSet evita duplicados).
func (s *UserService) Enroll(ctx context.Context, studentID primitive.ObjectID, courseID primitive.ObjectID) (*models.User, error) {
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, studentID, &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"enrolledCourses": courseID},
	})
	if err != nil {
		return nil, err
	}
	updated.Password = ""
	return &updated, nil
}

// Unenroll retira la matrícula de un estudiante en un curso.
func (s *UserService) Unenroll(ctx context.Context, studentID primitive.ObjectID, courseID primitive.ObjectID) (*models.User, error) {
	filter := bson.M{"_id": studentID}
	update := bson.M{"$pull": bson.M{"enrolledCourses": courseID}}
	if _, err := s.Collection().UpdateOne(ctx, filter, update); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, studentID, &basesvc.UpdateData{
		Set: map[string]interface{}{"updatedAt": time.Now().UnixMilli()},
	})
	if err != nil {
		return nil, err
	}
	updated.Password = ""
	return &updated, nil
}

// BlockUser deshabilita una cuenta por email, guardando la nota del motivo.
func (s *UserService) BlockUser(ctx context.Context, input *authdto.BlockUserInput) error {
	user, err := s.FindByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"isDisabled": true, "disabledNote": input.Note},
	})
	return err
}

// UnBlockUser habilita una cuenta deshabilitada por email.
func (s *UserService) UnBlockUser(ctx context.Context, input *authdto.UnBlockUserInput) error {
	user, err := s.FindByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set:   map[string]interface{}{"isDisabled": false},
		Unset: map[string]interface{}{"disabledNote": ""},
	})
	return err
}
