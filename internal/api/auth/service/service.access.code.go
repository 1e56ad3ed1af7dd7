package authsvc

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
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
)

// Alfabeto sin caracteres ambiguos (sin I, L, O, 0, 1).
const accessCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const (
	accessCodeLength      = 6
	accessCodeMaxAttempts = 10
)

// AccessCodeService gestiona los códigos de acceso de un solo uso para estudiantes.
type AccessCodeService struct {
	*basesvc.BaseServiceMongoImpl[models.AccessCode]
	userService  *UserService
	tokenService *TokenService
}

// NewAccessCodeService crea un AccessCodeService nuevo.
func NewAccessCodeService() (*AccessCodeService, error) {
	codeCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AccessCodes)
	if !exist {
		return nil, fmt.Errorf("no se pudo obtener la colección de códigos de acceso: %v", common.ErrNotFound)
	}
	userService, err := NewUserService()
	if err != nil {
		return nil, err
	}

	return &AccessCodeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.AccessCode](codeCollection),
		userService:          userService,
		tokenService:         NewTokenService(),
	}, nil
}

// CourseSummary es el resumen de curso que acompaña al login por código.
type CourseSummary struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Language    string             `json:"language,omitempty" bson:"language,omitempty"`
}

// ValidateResult es el resultado de validar un código de acceso o un QR.
// Las validaciones fallidas responden 200 con valid=false y el motivo.
type ValidateResult struct {
	Valid   bool            `json:"valid"`
	Message string          `json:"message"`
	Token   string          `json:"token,omitempty"`
	Student *models.User    `json:"student,omitempty"`
	Courses []CourseSummary `json:"courses,omitempty"`
}

func invalidResult(message string) *ValidateResult {
	return &ValidateResult{Valid: false, Message: message}
}

// randomCode genera un código aleatorio con el alfabeto sin ambigüedades.
func randomCode() (string, error) {
	max := big.NewInt(int64(len(accessCodeAlphabet)))
	code := make([]byte, accessCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = accessCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// Generate crea un código de acceso nuevo para un estudiante.
// Desactiva los códigos anteriores no usados y reintenta hasta 10 veces
// si el código generado colisiona con uno existente.
func (s *AccessCodeService) Generate(ctx context.Context, generatedBy primitive.ObjectID, input *authdto.AccessCodeGenerateInput) (*models.AccessCode, error) {
	studentID := utility.String2ObjectID(input.StudentID)
	if studentID.IsZero() {
		return nil, common.NewError(common.ErrCodeValidationInput, "El ID del estudiante no es válido", common.StatusBadRequest, nil)
	}

	student, err := s.userService.FindOneById(ctx, studentID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Estudiante no encontrado", common.StatusNotFound, nil)
		}
		return nil, err
	}
	if !student.HasRole(models.RoleStudent) {
		return nil, common.NewError(common.ErrCodeValidationInput, "El usuario indicado no es un estudiante", common.StatusBadRequest, nil)
	}

	// Desactivar los códigos activos no usados del estudiante
	_, err = s.BaseServiceMongoImpl.UpdateMany(ctx,
		bson.M{"studentId": studentID, "isActive": true, "isUsed": false},
		&basesvc.UpdateData{Set: map[string]interface{}{"isActive": false}}, nil)
	if err != nil {
		return nil, err
	}

	var expiresAt int64
	if input.ExpiresInDays > 0 {
		expiresAt = time.Now().AddDate(0, 0, input.ExpiresInDays).UnixMilli()
	}

	for attempt := 0; attempt < accessCodeMaxAttempts; attempt++ {
		code, err := randomCode()
		if err != nil {
			return nil, common.NewError(common.ErrCodeInternalServer, "Error al generar el código de acceso", common.StatusInternalServerError, err)
		}

		created, err := s.BaseServiceMongoImpl.InsertOne(ctx, models.AccessCode{
			Code:        code,
			StudentID:   studentID,
			IsActive:    true,
			IsUsed:      false,
			ExpiresAt:   expiresAt,
			GeneratedBy: generatedBy,
		})
		if err != nil {
			if errors.Is(err, common.ErrMongoDuplicate) {
				continue
			}
			return nil, err
		}

		logrus.WithFields(logrus.Fields{
			"studentId": studentID.Hex(),
			"code":      code,
		}).Info("AccessCode: código generado")
		return &created, nil
	}

	return nil, common.NewError(common.ErrCodeInternalServer, "No se pudo generar un código único, intente nuevamente", common.StatusInternalServerError, nil)
}

// NormalizeCode normaliza un código ingresado: mayúsculas y sin espacios.
// Menos de 4 caracteres nunca es un código válido.
func NormalizeCode(code string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) < 4 {
		return "", false
	}
	return normalized, true
}

// Validate valida un código de acceso y, si es válido, lo marca como usado
// y retorna el JWT del estudiante junto con el resumen de sus cursos.
// Los rechazos no son errores HTTP: responden valid=false con el motivo.
func (s *AccessCodeService) Validate(ctx context.Context, input *authdto.AccessCodeValidateInput) (*ValidateResult, error) {
	code, ok := NormalizeCode(input.Code)
	if !ok {
		return invalidResult("Código de acceso inválido"), nil
	}

	accessCode, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"code": code, "isActive": true}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return invalidResult("Código de acceso inválido"), nil
		}
		return nil, err
	}

	if accessCode.IsUsed {
		return invalidResult("Este código ya fue utilizado"), nil
	}
	if accessCode.ExpiresAt > 0 && accessCode.ExpiresAt < time.Now().UnixMilli() {
		return invalidResult("Este código ha expirado"), nil
	}

	student, err := s.userService.FindOneById(ctx, accessCode.StudentID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return invalidResult("Estudiante no encontrado"), nil
		}
		return nil, err
	}
	if student.IsDisabled {
		return invalidResult("Esta cuenta está deshabilitada"), nil
	}

	token, err := s.tokenService.CreateToken(&student)
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, accessCode.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"isUsed": true, "usedAt": now},
	})
	if err != nil {
		return nil, err
	}
	_, err = s.userService.UpdateById(ctx, student.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"lastLoginAt": now},
	})
	if err != nil {
		logrus.WithError(err).Warn("AccessCode: no se pudo actualizar lastLoginAt")
	}

	courses, err := s.findCourseSummaries(ctx, student.EnrolledCourses)
	if err != nil {
		logrus.WithError(err).Warn("AccessCode: no se pudieron cargar los cursos del estudiante")
		courses = []CourseSummary{}
	}

	student.Password = ""
	return &ValidateResult{
		Valid:   true,
		Message: "Código validado exitosamente",
		Token:   token,
		Student: &student,
		Courses: courses,
	}, nil
}

// DeactivateExpired desactiva los códigos activos no usados cuya fecha de
// expiración ya pasó. Retorna la cantidad de códigos desactivados.
func (s *AccessCodeService) DeactivateExpired(ctx context.Context) (int64, error) {
	return s.BaseServiceMongoImpl.UpdateMany(ctx,
		bson.M{
			"isActive":  true,
			"isUsed":    false,
			"expiresAt": bson.M{"$gt": 0, "$lt": time.Now().UnixMilli()},
		},
		&basesvc.UpdateData{Set: map[string]interface{}{"isActive": false}}, nil)
}

// Revoke desactiva un código de acceso por su ID.
func (s *AccessCodeService) Revoke(ctx context.Context, codeID primitive.ObjectID) (*models.AccessCode, error) {
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, codeID, &basesvc.UpdateData{
		Set: map[string]interface{}{"isActive": false},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// findCourseSummaries carga el resumen de los cursos matriculados.
func (s *AccessCodeService) findCourseSummaries(ctx context.Context, courseIDs []primitive.ObjectID) ([]CourseSummary, error) {
	if len(courseIDs) == 0 {
		return []CourseSummary{}, nil
	}

	courseCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Courses)
	if !exist {
		return nil, common.ErrNotFound
	}

	cursor, err := courseCollection.Find(ctx, bson.M{"_id": bson.M{"$in": courseIDs}})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	summaries := make([]CourseSummary, 0, len(courseIDs))
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return summaries, nil
}
