// Package worker - workers de fondo del servidor: sondeo de estados de
// videos en el proveedor y limpieza de tokens de sesión expirados.
package worker

import (
	"context"
	"time"

	aistudiosvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/aistudio/service"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/logger"
)

// VideoStatusWorker sondea periódicamente el estado de los videos con
// avatar que siguen en curso en el proveedor. Los videos que superan el
// tiempo máximo de espera se marcan como fallidos.
type VideoStatusWorker struct {
	videoService *aistudiosvc.VideoService
	interval     time.Duration // Intervalo entre sondeos (vd: 30s)
}

// NewVideoStatusWorker crea el worker de sondeo de videos.
//
// Parámetros:
//   - interval: intervalo entre sondeos (por defecto: 30 segundos)
func NewVideoStatusWorker(interval time.Duration) (*VideoStatusWorker, error) {
	videoService, err := aistudiosvc.NewVideoService()
	if err != nil {
		return nil, err
	}
	if interval < 10*time.Second {
		interval = 30 * time.Second
	}
	return &VideoStatusWorker{
		videoService: videoService,
		interval:     interval,
	}, nil
}

// Start corre el worker en bucle hasta que el contexto se cancele.
func (w *VideoStatusWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("🎬 [VIDEO_STATUS] Iniciando el worker de sondeo de videos...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🎬 [VIDEO_STATUS] Worker de sondeo de videos detenido")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

// runOnce ejecuta un sondeo. Un panic en un ciclo no tumba el worker.
func (w *VideoStatusWorker) runOnce(ctx context.Context) {
	log := logger.GetAppLogger()
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]interface{}{
				"panic": r,
			}).Error("🎬 [VIDEO_STATUS] Panic durante el sondeo, se reintenta en el próximo ciclo")
		}
	}()

	if err := w.videoService.RefreshPending(ctx); err != nil {
		log.WithError(err).Warn("🎬 [VIDEO_STATUS] Error al sondear los videos pendientes")
	}
}
