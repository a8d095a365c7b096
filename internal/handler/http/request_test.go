package http

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-places/internal/service"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringsReader(s string) io.Reader {
	if s == "" {
		return nil
	}
	return strings.NewReader(s)
}

func pngBytes() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)
}

func jpegBytes() []byte {
	return append([]byte("\xff\xd8\xff\xe0"), bytes.Repeat([]byte{0}, 32)...)
}

// multipartBody encodes fields and an optional image file as
// multipart/form-data and returns the body with its content type.
func multipartBody(t *testing.T, fields map[string]string, fileName string, file []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile(imageFormField, fileName)
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

type placeForm struct {
	Title string `json:"title"`
	Note  string `json:"note"`
}

func TestReadForm_JSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Tower","note":"tall"}`))
	req.Header.Set("Content-Type", "application/json")

	var dst placeForm
	image, cleanup, err := h.readForm(httptest.NewRecorder(), req, &dst, map[string]*string{"title": &dst.Title})
	defer cleanup()

	require.NoError(t, err)
	assert.Nil(t, image)
	assert.Equal(t, placeForm{Title: "Tower", Note: "tall"}, dst)
}

func TestReadForm_MalformedJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	for _, body := range []string{"", "{", `{"title":1}`} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

		var dst placeForm
		_, cleanup, err := h.readForm(httptest.NewRecorder(), req, &dst, nil)
		cleanup()

		assert.ErrorIs(t, err, ErrMalformedBody, "body %q", body)
	}
}

func TestReadForm_MultipartWithImage(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		content  []byte
		wantExt  string
	}{
		{"png", "tower.png", pngBytes(), "png"},
		{"jpg", "tower.jpg", jpegBytes(), "jpg"},
		{"jpeg name keeps extension", "tower.JPEG", jpegBytes(), "jpeg"},
		{"misnamed png sniffed", "tower.jpg", pngBytes(), "png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{})
			body, contentType := multipartBody(t, map[string]string{"title": "Tower", "ignored": "x"}, tt.fileName, tt.content)
			req := httptest.NewRequest(http.MethodPost, "/", body)
			req.Header.Set("Content-Type", contentType)

			var dst placeForm
			image, cleanup, err := h.readForm(httptest.NewRecorder(), req, &dst, map[string]*string{
				"title": &dst.Title,
				"note":  &dst.Note,
			})
			defer cleanup()

			require.NoError(t, err)
			assert.Equal(t, placeForm{Title: "Tower"}, dst)
			require.NotNil(t, image)
			assert.Equal(t, tt.wantExt, image.Ext)
			assert.Equal(t, int64(len(tt.content)), image.Size)

			got, err := io.ReadAll(image.Content)
			require.NoError(t, err)
			assert.Equal(t, tt.content, got)
		})
	}
}

func TestReadForm_MultipartWithoutImage(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	body, contentType := multipartBody(t, map[string]string{"title": "Tower"}, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)

	var dst placeForm
	image, cleanup, err := h.readForm(httptest.NewRecorder(), req, &dst, map[string]*string{"title": &dst.Title})
	defer cleanup()

	require.NoError(t, err)
	assert.Nil(t, image)
	assert.Equal(t, "Tower", dst.Title)
}

func TestReadForm_UnsupportedImage(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	body, contentType := multipartBody(t, nil, "notes.png", []byte("just some text"))
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)

	var dst placeForm
	image, cleanup, err := h.readForm(httptest.NewRecorder(), req, &dst, nil)
	cleanup()

	assert.ErrorIs(t, err, ErrUnsupportedImageType)
	assert.Nil(t, image)
}

func TestReadForm_BodyTooLarge(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	huge := append(pngBytes(), bytes.Repeat([]byte{1}, int(h.maxBodySize()))...)
	body, contentType := multipartBody(t, nil, "huge.png", huge)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)

	var dst placeForm
	_, cleanup, err := h.readForm(httptest.NewRecorder(), req, &dst, nil)
	cleanup()

	assert.ErrorIs(t, err, store.ErrImageTooLarge)
}

func TestIsMultipart(t *testing.T) {
	tests := map[string]bool{
		"multipart/form-data; boundary=abc": true,
		"MULTIPART/FORM-DATA; boundary=abc": true,
		"application/json":                  false,
		"":                                  false,
		"multipart/mixed; boundary=abc":     false,
	}

	for contentType, want := range tests {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Content-Type", contentType)
		assert.Equal(t, want, isMultipart(req), contentType)
	}
}

func TestReadJSON_LoginRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@x.com","password":"secret1"}`))

	var dst models.LoginRequest
	require.NoError(t, readJSON(httptest.NewRecorder(), req, &dst))
	assert.Equal(t, models.LoginRequest{Email: "a@x.com", Password: "secret1"}, dst)

	err := readJSON(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("nope")), &dst)
	assert.ErrorIs(t, err, ErrMalformedBody)
}

func TestReadJSON_BodyTooLarge(t *testing.T) {
	password := strings.Repeat("p", maxJSONBodySize)
	body := `{"email":"a@x.com","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(body))

	var dst models.LoginRequest
	err := readJSON(httptest.NewRecorder(), req, &dst)

	require.ErrorIs(t, err, ErrMalformedBody)
	assert.NotErrorIs(t, err, store.ErrImageTooLarge)
	assert.Empty(t, dst.Password)
}

func TestReadForm_MultipartIgnoresQueryString(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	body, contentType := multipartBody(t, map[string]string{"title": "Tower"}, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/places?title=Injected&note=from-query", body)
	req.Header.Set("Content-Type", contentType)

	var dst placeForm
	_, cleanup, err := h.readForm(httptest.NewRecorder(), req, &dst, map[string]*string{
		"title": &dst.Title,
		"note":  &dst.Note,
	})
	defer cleanup()

	require.NoError(t, err)
	assert.Equal(t, "Tower", dst.Title)
	assert.Empty(t, dst.Note)
}
