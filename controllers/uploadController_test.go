package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/burkibooks/burki-api/controllers"
	"github.com/burkibooks/burki-api/routes"
	"github.com/burkibooks/burki-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadRouter(uploader *stubUploader) *gin.Engine {
	router := gin.New()
	routes.UploadRoutes(router, controllers.NewUploadController(uploader, testJWTSecret))
	return router
}

func multipartUpload(t *testing.T, router *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "cover.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadImage_ProductRequiresAdmin(t *testing.T) {
	router := newUploadRouter(&stubUploader{})

	w := multipartUpload(t, router, "/upload?type=product")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUploadImage_ProductWithAdminSession(t *testing.T) {
	uploader := &stubUploader{}
	router := newUploadRouter(uploader)

	token, err := utils.SignAdminToken("admin@burki.pk", testJWTSecret)
	require.NoError(t, err)

	w := multipartUpload(t, router, "/upload?type=product",
		&http.Cookie{Name: utils.AdminCookieName, Value: token})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody[map[string]string](t, w)
	assert.Contains(t, body["key"], "products/")
	assert.NotEmpty(t, body["url"])
}

func TestUploadImage_ReceiptIsPublic(t *testing.T) {
	uploader := &stubUploader{}
	router := newUploadRouter(uploader)

	w := multipartUpload(t, router, "/upload?type=receipt")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody[map[string]string](t, w)
	assert.Contains(t, body["key"], "receipts/")
}

func TestUploadImage_MissingFile(t *testing.T) {
	router := newUploadRouter(&stubUploader{})

	token, err := utils.SignAdminToken("admin@burki.pk", testJWTSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/upload?type=product", nil)
	req.AddCookie(&http.Cookie{Name: utils.AdminCookieName, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
