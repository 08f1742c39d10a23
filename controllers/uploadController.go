package controllers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/burkibooks/burki-api/utils"
	"github.com/gin-gonic/gin"
)

// ImageUploader pushes an image to the public image host and returns its
// public URL.
type ImageUploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// S3Uploader stores images in a public S3 bucket.
type S3Uploader struct {
	Bucket string
}

func NewS3Uploader(bucket string) *S3Uploader {
	return &S3Uploader{Bucket: bucket}
}

func (u *S3Uploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	uploader := manager.NewUploader(client)

	result, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ACL:         "public-read",
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return result.Location, nil
}

type UploadController struct {
	Uploader  ImageUploader
	JWTSecret string
}

func NewUploadController(uploader ImageUploader, jwtSecret string) *UploadController {
	return &UploadController{Uploader: uploader, JWTSecret: jwtSecret}
}

// UploadImage receives one multipart image and hands back its hosted URL.
// Receipt uploads are public so a customer can attach payment proof at
// checkout; everything else requires the admin session.
func (c *UploadController) UploadImage(ctx *gin.Context) {
	uploadType := ctx.DefaultQuery("type", "product")

	if uploadType != "receipt" {
		tokenString, err := ctx.Cookie(utils.AdminCookieName)
		if err != nil || tokenString == "" {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		if _, err := utils.VerifyAdminToken(tokenString, c.JWTSecret); err != nil {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthorized)
			return
		}
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "No file provided")
		return
	}

	folder := "products"
	if uploadType == "receipt" {
		folder = "receipts"
	}
	key := path.Join(folder, fmt.Sprintf("%s-%s", time.Now().Format("20060102150405"), file.Filename))

	f, err := file.Open()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to read uploaded file", err)
		return
	}
	defer f.Close()

	url, err := c.Uploader.Upload(ctx.Request.Context(), key, file.Header.Get("Content-Type"), f)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload image", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"url": url, "key": key})
}
