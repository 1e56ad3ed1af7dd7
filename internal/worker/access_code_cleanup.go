package worker

import (
	"context"
	"time"

	authsvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/service"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/logger"
)

// AccessCodeCleanupWorker desactiva periódicamente los códigos de acceso
// que expiraron sin ser usados, para que la lista administrativa refleje
// solo los códigos vigentes.
type AccessCodeCleanupWorker struct {
	codeService *authsvc.AccessCodeService
	interval    time.Duration // Intervalo entre limpiezas (vd: 1h)
}

// NewAccessCodeCleanupWorker crea el worker de limpieza de códigos.
//
// Parámetros:
//   - interval: intervalo entre limpiezas (por defecto: 1 hora)
func NewAccessCodeCleanupWorker(interval time.Duration) (*AccessCodeCleanupWorker, error) {
	codeService, err := authsvc.NewAccessCodeService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = time.Hour
	}
	return &AccessCodeCleanupWorker{
		codeService: codeService,
		interval:    interval,
	}, nil
}

// Start corre el worker en bucle hasta que el contexto se cancele.
func (w *AccessCodeCleanupWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("🔑 [ACCESS_CODE_CLEANUP] Iniciando el worker de limpieza de códigos...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🔑 [ACCESS_CODE_CLEANUP] Worker de limpieza de códigos detenido")
			return
		case <-ticker.C:
			deactivated, err := w.codeService.DeactivateExpired(ctx)
			if err != nil {
				log.WithError(err).Warn("🔑 [ACCESS_CODE_CLEANUP] Error al desactivar códigos expirados")
				continue
			}
			if deactivated > 0 {
				log.WithFields(map[string]interface{}{
					"deactivated": deactivated,
				}).Info("🔑 [ACCESS_CODE_CLEANUP] Códigos expirados desactivados")
			}
		}
	}
}
