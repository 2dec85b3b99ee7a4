package handlers

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func postImage(t *testing.T, r http.Handler, path, kind string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("kind", kind))
	part, err := writer.CreateFormFile("file", "evidence.png")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAttachItemImagePhoto(t *testing.T) {
	store := storage.NewStore()
	r := newTestRouter(store, stubGenerator(draftFixture(), nil))
	project := createTestProject(t, r)
	section := project.Sections[0]
	path := "/api/item_image/" + project.ID + "/" + section.ID + "/" + section.Items[0].ID

	w := postImage(t, r, path, "photo", pngBytes(t))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got, _ := store.Project(project.ID)
	item := got.Sections[0].Items[0]
	assert.True(t, strings.HasPrefix(item.Photo, "data:image/png;base64,"), "photo %q", item.Photo[:min(40, len(item.Photo))])
	// the two image slots are independent
	assert.Empty(t, item.ReferenceImage)
}

func TestAttachItemImageReference(t *testing.T) {
	store := storage.NewStore()
	r := newTestRouter(store, stubGenerator(draftFixture(), nil))
	project := createTestProject(t, r)
	section := project.Sections[0]
	path := "/api/item_image/" + project.ID + "/" + section.ID + "/" + section.Items[0].ID

	w := postImage(t, r, path, "reference", pngBytes(t))
	require.Equal(t, http.StatusOK, w.Code)

	got, _ := store.Project(project.ID)
	item := got.Sections[0].Items[0]
	assert.True(t, strings.HasPrefix(item.ReferenceImage, "data:image/png;base64,"))
	assert.Empty(t, item.Photo)
}

func TestAttachItemImageRejectsNonImage(t *testing.T) {
	store := storage.NewStore()
	r := newTestRouter(store, stubGenerator(draftFixture(), nil))
	project := createTestProject(t, r)
	section := project.Sections[0]
	path := "/api/item_image/" + project.ID + "/" + section.ID + "/" + section.Items[0].ID

	w := postImage(t, r, path, "photo", []byte("definitely not an image"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// decode failed, so the item was never touched
	got, _ := store.Project(project.ID)
	assert.Empty(t, got.Sections[0].Items[0].Photo)
}

func TestAttachItemImageRejectsUnknownKind(t *testing.T) {
	store := storage.NewStore()
	r := newTestRouter(store, stubGenerator(draftFixture(), nil))
	project := createTestProject(t, r)
	section := project.Sections[0]
	path := "/api/item_image/" + project.ID + "/" + section.ID + "/" + section.Items[0].ID

	w := postImage(t, r, path, "thumbnail", pngBytes(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEncodeImageDataURI(t *testing.T) {
	uri, err := encodeImageDataURI(pngBytes(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	_, err = encodeImageDataURI([]byte("garbage"))
	assert.Error(t, err)
}
