package main

import (
	"context"

	"github.com/jesus-bazan-entel/IdecapLMS/internal/api/initsvc"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/global"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/logger"
)

// InitDefaultData siembra los datos iniciales del sistema: el
// administrador por defecto, las categorías de cursos y la
// configuración de prompts del AI Studio.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Sembrando datos iniciales...")

	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("No se pudo crear el init service: %v", err)
	}

	cfg := global.MongoDB_ServerConfig
	if err := initService.Run(context.Background(), cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		log.Fatalf("No se pudieron sembrar los datos iniciales: %v", err)
	}
}
