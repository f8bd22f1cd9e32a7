package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"aeon/internal/domain/entity"
	domainerrors "aeon/internal/domain/errors"
	mockUC "aeon/internal/mocks/usecase"
	"aeon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogTestServer(t *testing.T) (*echo.Echo, *mockUC.MockCatalogUsecase) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/api/brands", h.CreateBrand)
	e.PUT("/api/categories/:id", h.UpdateCategory)
	e.DELETE("/api/brands/:id", h.DeleteBrand)

	return e, catalogUC
}

// newMultipartRequest builds a form with the given fields and, when content is non-nil, an img file.
func newMultipartRequest(t *testing.T, method, target string, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if content != nil {
		part, err := w.CreateFormFile("img", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func TestCatalogHandler_CreateBrand_Multipart(t *testing.T) {
	e, catalogUC := newCatalogTestServer(t)

	var uploaded []byte
	catalogUC.EXPECT().
		CreateBrand(mock.Anything, mock.MatchedBy(func(in usecase.BrandInput) bool {
			return in.Name == "Acme" && in.Upload != nil && in.Upload.Filename == "acme.png"
		})).
		RunAndReturn(func(_ context.Context, in usecase.BrandInput) (*entity.Brand, error) {
			var err error
			uploaded, err = io.ReadAll(in.Upload.Content)

			return &entity.Brand{ID: 1, Name: in.Name, Img: "./img/brand/1-acme.png"}, err
		})

	req := newMultipartRequest(t, http.MethodPost, "/api/brands", map[string]string{"name": "Acme"}, "acme.png", []byte("png-bytes"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	requireStatus(t, http.StatusOK, rec)
	assert.Equal(t, "png-bytes", string(uploaded))
	assert.JSONEq(t, `{"id":1,"name":"Acme","img":"./img/brand/1-acme.png"}`, rec.Body.String())
}

func TestCatalogHandler_CreateBrand_JSONWithPath(t *testing.T) {
	e, catalogUC := newCatalogTestServer(t)

	catalogUC.EXPECT().
		CreateBrand(mock.Anything, usecase.BrandInput{Name: "Acme", Img: "./img/brand/old.png"}).
		Return(&entity.Brand{ID: 2, Name: "Acme", Img: "./img/brand/old.png"}, nil)

	rec := serveJSON(e, http.MethodPost, "/api/brands", `{"name":"Acme","img":"./img/brand/old.png"}`)

	requireStatus(t, http.StatusOK, rec)
}

func TestCatalogHandler_CreateBrand_MissingName(t *testing.T) {
	e, catalogUC := newCatalogTestServer(t)

	catalogUC.EXPECT().CreateBrand(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrMissingFields)

	req := newMultipartRequest(t, http.MethodPost, "/api/brands", map[string]string{}, "", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	requireStatus(t, http.StatusBadRequest, rec)
	assert.Equal(t, "Missing required fields", decodeError(t, rec).Error)
}

func TestCatalogHandler_UpdateCategory_NotFound(t *testing.T) {
	e, catalogUC := newCatalogTestServer(t)

	catalogUC.EXPECT().UpdateCategory(mock.Anything, uint(8), mock.Anything).Return(nil, domainerrors.ErrCategoryNotFound)

	rec := serveJSON(e, http.MethodPut, "/api/categories/8", `{"name":"Shoes"}`)

	requireStatus(t, http.StatusNotFound, rec)
	assert.Equal(t, "Category not found", decodeError(t, rec).Error)
}

func TestCatalogHandler_DeleteBrand_StoreError(t *testing.T) {
	e, catalogUC := newCatalogTestServer(t)

	storeErr := domainerrors.NewDatabaseExecuteError(
		assert.AnError,
		"failed to delete brand",
	)
	catalogUC.EXPECT().DeleteBrand(mock.Anything, uint(3)).Return(storeErr)

	rec := serveJSON(e, http.MethodDelete, "/api/brands/3", "")

	requireStatus(t, http.StatusInternalServerError, rec)
	body := decodeError(t, rec)
	assert.Equal(t, assert.AnError.Error(), body.Error)
	assert.Equal(t, domainerrors.CodeDatabaseExecute, body.Code)
}
