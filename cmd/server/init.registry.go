package main

import (
	"reflect"

	"github.com/jesus-bazan-entel/IdecapLMS/config"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// InitRegistry registra en el registry global todas las colecciones
// declaradas en global.MongoDB_ColNames.
func InitRegistry() {
	if err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig); err != nil {
		logrus.Fatalf("No se pudieron registrar las colecciones: %v", err)
	}
	logrus.Info("Registry de colecciones inicializado")
}

// InitCollections registra cada colección nombrada en MongoDB_ColNames.
// Recorre los campos del struct para no mantener una lista duplicada.
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)

	v := reflect.ValueOf(global.MongoDB_ColNames)
	for i := 0; i < v.NumField(); i++ {
		name := v.Field(i).String()
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("No se pudo registrar la colección %s: %v", name, err)
			return err
		}
		if !registered {
			logrus.Warnf("La colección %s ya estaba registrada", name)
		}
	}
	return nil
}
