package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eatupnow/eatupnow-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doUpload posts a multipart image to the upload endpoint.
func (a *testApp) doUpload(t *testing.T, path, token, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestUploadImageRoundTrip(t *testing.T) {
	app := newTestApp(t)
	admin := app.createUser(t, "admin@example.com", "password1", models.RoleAdmin)
	token := app.userToken(t, admin)

	w := app.doUpload(t, "/api/admin/upload/image?type=menu", token, "dish.jpg", []byte("image-bytes"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	filename := body["filename"].(string)
	assert.True(t, strings.HasSuffix(filename, ".jpg"))
	assert.Equal(t, "/uploads/menu/"+filename, body["url"])

	// Delete what was just stored.
	w = app.do(t, http.MethodDelete, "/api/admin/upload/image/menu/"+filename, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// A second delete finds nothing.
	w = app.do(t, http.MethodDelete, "/api/admin/upload/image/menu/"+filename, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadImageDefaultsToRestaurants(t *testing.T) {
	app := newTestApp(t)
	admin := app.createUser(t, "admin@example.com", "password1", models.RoleAdmin)
	token := app.userToken(t, admin)

	w := app.doUpload(t, "/api/admin/upload/image", token, "front.png", []byte("x"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	assert.True(t, strings.HasPrefix(body["url"].(string), "/uploads/restaurants/"))
}

func TestUploadImageRejectsBadInput(t *testing.T) {
	app := newTestApp(t)
	admin := app.createUser(t, "admin@example.com", "password1", models.RoleAdmin)
	token := app.userToken(t, admin)

	// Folder outside the whitelist.
	w := app.doUpload(t, "/api/admin/upload/image?type=invoices", token, "scan.jpg", []byte("x"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Disallowed extension.
	w = app.doUpload(t, "/api/admin/upload/image?type=menu", token, "script.sh", []byte("x"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No file part at all.
	w2 := app.do(t, http.MethodPost, "/api/admin/upload/image?type=menu", token, nil)
	assert.Equal(t, http.StatusBadRequest, w2.Code)
}

func TestUploadRequiresAdmin(t *testing.T) {
	app := newTestApp(t)
	u := app.createUser(t, "customer@example.com", "password1", models.RoleCustomer)

	w := app.doUpload(t, "/api/admin/upload/image", app.userToken(t, u), "dish.jpg", []byte("x"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteImageRejectsUnknownType(t *testing.T) {
	app := newTestApp(t)
	admin := app.createUser(t, "admin@example.com", "password1", models.RoleAdmin)

	w := app.do(t, http.MethodDelete, "/api/admin/upload/image/invoices/x.jpg", app.userToken(t, admin), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
