package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"dukani_back_end/internal/database"
)

// UploadProductImage pousse l'image d'un produit dans le bucket et renvoie
// son URL publique. L'objet est nommé products/<id>_<ts><ext> pour éviter
// les collisions entre re-uploads.
func UploadProductImage(ctx context.Context, productID string, file *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	bucket := os.Getenv("MINIO_BUCKET")
	ext := strings.ToLower(filepath.Ext(file.Filename))
	objectName := fmt.Sprintf("products/%s_%d%s", productID, time.Now().Unix(), ext)

	_, err = database.MinIO.PutObject(ctx, bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if os.Getenv("MINIO_USE_SSL") == "true" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, os.Getenv("MINIO_ENDPOINT"), bucket, objectName), nil
}

// DeleteProductImage retire un objet du bucket à partir de son URL publique
func DeleteProductImage(ctx context.Context, imageURL string) error {
	if database.MinIO == nil {
		return fmt.Errorf("MinIO non initialisé")
	}

	bucket := os.Getenv("MINIO_BUCKET")
	key := objectKeyFromURL(imageURL, bucket)
	if key == "" {
		return fmt.Errorf("URL d'image invalide: %s", imageURL)
	}

	return database.MinIO.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
}

// GenerateSignedURL génère une URL signée à durée limitée pour un objet
func GenerateSignedURL(ctx context.Context, imageURL string, duration time.Duration) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	bucket := os.Getenv("MINIO_BUCKET")
	key := objectKeyFromURL(imageURL, bucket)
	if key == "" {
		return "", fmt.Errorf("URL d'image invalide: %s", imageURL)
	}

	presignedURL, err := database.MinIO.PresignedGetObject(ctx, bucket, key, duration, make(url.Values))
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}

// objectKeyFromURL extrait la clé d'objet après "/<bucket>/" dans l'URL
func objectKeyFromURL(imageURL, bucket string) string {
	marker := "/" + bucket + "/"
	idx := strings.Index(imageURL, marker)
	if idx < 0 {
		return ""
	}
	return imageURL[idx+len(marker):]
}
