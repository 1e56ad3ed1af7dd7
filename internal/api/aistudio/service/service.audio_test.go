package aistudiosvc

import (
	"context"
	"testing"

	"github.com/jesus-bazan-entel/IdecapLMS/internal/ai"
	dto "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/dto"
	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/models"
	basesvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/service"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// Una falla del motor TTS no debe propagarse como error HTTP: el registro
// queda en estado failed con su errorMessage y se responde como cualquier
// otro artefacto.
func TestAudioServiceGenerate_FallaDeMotorRespondeArtefactoFailed(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("motor no configurado", func(mt *mtest.T) {
		svc := &AudioService{
			BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.GeneratedAudio](mt.Coll),
			tts:                  ai.NewTTSClient("", ""),
		}

		id := primitive.NewObjectID()
		userID := primitive.NewObjectID()
		ns := mt.DB.Name() + "." + mt.Coll.Name()

		pendingDoc := bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "Saludo"},
			{Key: "text", Value: "Olá, tudo bem?"},
			{Key: "voiceId", Value: ai.DefaultTTSVoice},
			{Key: "speed", Value: 1.0},
			{Key: "status", Value: models.StatusGenerating},
			{Key: "createdBy", Value: userID},
		}
		failedDoc := bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "Saludo"},
			{Key: "text", Value: "Olá, tudo bem?"},
			{Key: "voiceId", Value: ai.DefaultTTSVoice},
			{Key: "speed", Value: 1.0},
			{Key: "status", Value: models.StatusFailed},
			{Key: "errorMessage", Value: common.ErrAINotConfigured.Error()},
			{Key: "createdBy", Value: userID},
		}

		mt.AddMockResponses(
			// InsertOne + lectura del documento creado.
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, pendingDoc),
			// markFailed: update + lectura del documento actualizado.
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, failedDoc),
			// Lectura final que se devuelve al cliente.
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, failedDoc),
		)

		input := &dto.AudioGenerateInput{Text: "Olá, tudo bem?"}
		result, err := svc.Generate(context.Background(), input, userID)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, models.StatusFailed, result.Status)
		assert.Equal(t, common.ErrAINotConfigured.Error(), result.ErrorMessage)
	})
}
