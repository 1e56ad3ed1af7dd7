package authsvc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	authdto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/dto"
	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/models"
	basesvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/service"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/global"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/utility"

	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Prefijo del payload codificado en el QR: "APOLO:<studentId>:<hash>"
const qrPayloadPrefix = "APOLO"

const qrImageSize = 256

// QRService genera y verifica los códigos QR de login de estudiantes.
type QRService struct {
	userService  *UserService
	tokenService *TokenService
	codeService  *AccessCodeService
	salt         string
}

// NewQRService crea un QRService nuevo. La sal del hash es el secreto JWT
// del servidor, así el hash queda ligado al despliegue.
func NewQRService() (*QRService, error) {
	userService, err := NewUserService()
	if err != nil {
		return nil, err
	}
	codeService, err := NewAccessCodeService()
	if err != nil {
		return nil, err
	}

	return &QRService{
		userService:  userService,
		tokenService: NewTokenService(),
		codeService:  codeService,
		salt:         global.MongoDB_ServerConfig.JwtSecret,
	}, nil
}

// QRResult es el resultado de generar un código QR.
type QRResult struct {
	StudentID string `json:"studentId"`
	QRCodeURL string `json:"qrCodeUrl"`
	Payload   string `json:"payload"`
}

// computeHash calcula los primeros 32 caracteres hex del SHA-256
// de "<studentId>:<email>:<sal>".
func (s *QRService) computeHash(studentID primitive.ObjectID, email string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%s", studentID.Hex(), email, s.salt)))
	return hex.EncodeToString(sum[:])[:32]
}

// buildPayload arma el payload "APOLO:<studentId>:<hash>".
func (s *QRService) buildPayload(studentID primitive.ObjectID, hash string) string {
	return fmt.Sprintf("%s:%s:%s", qrPayloadPrefix, studentID.Hex(), hash)
}

// Generate crea el código QR de login de un estudiante: calcula el hash,
// genera el PNG, lo sube a Firebase Storage y guarda hash y URL en el usuario.
func (s *QRService) Generate(ctx context.Context, input *authdto.QRGenerateInput) (*QRResult, error) {
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

	hash := s.computeHash(student.ID, student.Email)
	payload := s.buildPayload(student.ID, hash)

	png, err := qrcode.Encode(payload, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Error al generar la imagen del código QR", common.StatusInternalServerError, err)
	}

	setData := map[string]interface{}{"qrCodeHash": hash}

	var qrURL string
	if utility.FirebaseReady() {
		objectPath := fmt.Sprintf("qr/%s_%d.png", student.ID.Hex(), time.Now().UnixMilli())
		qrURL, err = utility.UploadToStorage(ctx, objectPath, png, "image/png")
		if err != nil {
			return nil, common.NewError(common.ErrCodeInternalServer, "Error al subir el código QR al almacenamiento", common.StatusInternalServerError, err)
		}
		setData["qrCodeUrl"] = qrURL
	} else {
		logrus.Warn("QR: Firebase no inicializado, se genera el QR sin URL de imagen")
	}

	if _, err := s.userService.UpdateById(ctx, student.ID, &basesvc.UpdateData{Set: setData}); err != nil {
		return nil, err
	}

	return &QRResult{
		StudentID: student.ID.Hex(),
		QRCodeURL: qrURL,
		Payload:   payload,
	}, nil
}

// Verify valida un QR escaneado: formato del payload, hash almacenado,
// rol de estudiante y cuenta habilitada. Si es válido, emite el JWT
// y retorna el estudiante con el resumen de sus cursos.
func (s *QRService) Verify(ctx context.Context, input *authdto.QRVerifyInput) (*ValidateResult, error) {
	parts := strings.Split(strings.TrimSpace(input.QRData), ":")
	if len(parts) != 3 || parts[0] != qrPayloadPrefix {
		return invalidResult("Código QR inválido"), nil
	}

	studentID := utility.String2ObjectID(parts[1])
	if studentID.IsZero() {
		return invalidResult("Código QR inválido"), nil
	}

	student, err := s.userService.FindOneById(ctx, studentID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return invalidResult("Estudiante no encontrado"), nil
		}
		return nil, err
	}

	if student.QRCodeHash == "" || student.QRCodeHash != parts[2] {
		return invalidResult("Código QR inválido"), nil
	}
	if !student.HasRole(models.RoleStudent) {
		return invalidResult("Permisos insuficientes"), nil
	}
	if student.IsDisabled {
		return invalidResult("Esta cuenta está deshabilitada"), nil
	}

	token, err := s.tokenService.CreateToken(&student)
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	if _, err := s.userService.UpdateById(ctx, student.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"lastLoginAt": now},
	}); err != nil {
		logrus.WithError(err).Warn("QR: no se pudo actualizar lastLoginAt")
	}

	courses, err := s.codeService.findCourseSummaries(ctx, student.EnrolledCourses)
	if err != nil {
		logrus.WithError(err).Warn("QR: no se pudieron cargar los cursos del estudiante")
		courses = []CourseSummary{}
	}

	student.Password = ""
	return &ValidateResult{
		Valid:   true,
		Message: "Código QR validado exitosamente",
		Token:   token,
		Student: &student,
		Courses: courses,
	}, nil
}
