package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/jesus-bazan-entel/IdecapLMS/internal/global"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/logger"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/worker"
)

// initLogger inicializa el logger de toda la aplicación. Lee las
// variables de entorno para su configuración.
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("No se pudo inicializar el logger: %v", err))
	}
	logger.GetAppLogger().Info("Sistema de logging inicializado")
}

// startWorkers arranca los workers de fondo: el sondeo de estados de
// videos en HeyGen y la desactivación de códigos de acceso vencidos.
func startWorkers(ctx context.Context) {
	log := logger.GetAppLogger()

	videoWorker, err := worker.NewVideoStatusWorker(30 * time.Second)
	if err != nil {
		log.WithError(err).Error("No se pudo crear el worker de estados de video, se continúa sin él")
	} else {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(map[string]interface{}{"panic": r}).Error("🎬 [VIDEO_STATUS] Panic en la goroutine del worker")
				}
			}()
			videoWorker.Start(ctx)
		}()
	}

	cleanupWorker, err := worker.NewAccessCodeCleanupWorker(time.Hour)
	if err != nil {
		log.WithError(err).Error("No se pudo crear el worker de limpieza de códigos, se continúa sin él")
	} else {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(map[string]interface{}{"panic": r}).Error("🔑 [ACCESS_CODE_CLEANUP] Panic en la goroutine del worker")
				}
			}()
			cleanupWorker.Start(ctx)
		}()
	}
}

// resolvePath resuelve rutas relativas buscando la raíz del proyecto
// (el directorio que contiene config/env) hacia arriba en el árbol.
func resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	currentDir, err := os.Getwd()
	if err != nil {
		return path
	}
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(currentDir, path)
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return path
		}
		currentDir = parentDir
	}
}

// mainThread inicializa y corre el servidor Fiber en el hilo principal.
func mainThread() {
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	address := cfg.Address
	log := logger.GetAppLogger()

	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("No se encontró el certificado TLS: %s (resuelto desde: %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("No se encontró la llave TLS: %s (resuelto desde: %s)", keyPath, cfg.TLSKeyFile)
		}

		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("Error al cargar el certificado TLS: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error al crear el listener: %v", err)
		}
		tlsListener := tls.NewListener(ln, &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		})

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
		}).Info("Iniciando servidor con HTTPS/TLS")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error en Fiber Listener con TLS: %v", err)
		}
		return
	}

	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Iniciando servidor con HTTP")

	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error en Fiber Listen: %v", err)
	}
}

func main() {
	initLogger()
	InitGlobal()
	InitRegistry()
	InitDefaultData()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startWorkers(ctx)

	mainThread()
}
