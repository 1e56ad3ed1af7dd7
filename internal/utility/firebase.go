package utility

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

var (
	firebaseApp    *firebase.App
	firebaseBucket *storage.BucketHandle
	bucketName     string
)

// resolveCredentialsPath resuelve la ruta al service account JSON.
// Las rutas relativas se resuelven desde el directorio raíz del proyecto
// (el que contiene config/env).
func resolveCredentialsPath(credentialsPath string) (string, error) {
	if filepath.IsAbs(credentialsPath) {
		if _, err := os.Stat(credentialsPath); err != nil {
			return "", fmt.Errorf("no se encontró el archivo de credenciales de Firebase: %s", credentialsPath)
		}
		return credentialsPath, nil
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			resolved := filepath.Join(currentDir, credentialsPath)
			if _, err := os.Stat(resolved); err != nil {
				return "", fmt.Errorf("no se encontró el archivo de credenciales de Firebase: %s", resolved)
			}
			return resolved, nil
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", fmt.Errorf("no se encontró el directorio raíz del proyecto")
		}
		currentDir = parentDir
	}
}

// InitFirebase inicializa el SDK de Firebase Admin y el bucket de almacenamiento.
// Los archivos generados (MP3, PNG de códigos QR, etc.) se suben a este bucket.
func InitFirebase(projectID, credentialsPath, storageBucket string) error {
	resolved, err := resolveCredentialsPath(credentialsPath)
	if err != nil {
		return err
	}

	opt := option.WithCredentialsFile(resolved)
	app, err := firebase.NewApp(context.Background(), &firebase.Config{
		ProjectID:     projectID,
		StorageBucket: storageBucket,
	}, opt)
	if err != nil {
		return fmt.Errorf("error al inicializar la app de Firebase: %v", err)
	}
	firebaseApp = app

	storageClient, err := app.Storage(context.Background())
	if err != nil {
		return fmt.Errorf("error al obtener el cliente de Storage de Firebase: %v", err)
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		return fmt.Errorf("error al obtener el bucket por defecto de Firebase: %v", err)
	}

	firebaseBucket = bucket
	bucketName = storageBucket
	return nil
}

// FirebaseReady indica si el bucket de almacenamiento está inicializado.
func FirebaseReady() bool {
	return firebaseBucket != nil
}

// UploadToStorage sube un archivo al bucket de Firebase con lectura pública
// y retorna su URL pública.
func UploadToStorage(ctx context.Context, objectPath string, data []byte, contentType string) (string, error) {
	if firebaseBucket == nil {
		return "", fmt.Errorf("el almacenamiento de Firebase no está inicializado")
	}

	writer := firebaseBucket.Object(objectPath).NewWriter(ctx)
	writer.ContentType = contentType
	writer.PredefinedACL = "publicRead"

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("error al escribir el archivo en Storage: %v", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("error al cerrar la escritura en Storage: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucketName, objectPath), nil
}

// DeleteFromStorage elimina un archivo del bucket de Firebase.
func DeleteFromStorage(ctx context.Context, objectPath string) error {
	if firebaseBucket == nil {
		return fmt.Errorf("el almacenamiento de Firebase no está inicializado")
	}
	if err := firebaseBucket.Object(objectPath).Delete(ctx); err != nil {
		return fmt.Errorf("error al eliminar el archivo de Storage: %v", err)
	}
	return nil
}
