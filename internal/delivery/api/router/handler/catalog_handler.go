package handler

import (
	"log/slog"

	"aeon/internal/delivery/api/response"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves brands and categories.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// namedImageRequest is the body shared by brands and categories.
type namedImageRequest struct {
	Name string `json:"name" form:"name"`
	Img  string `json:"img" form:"img"`
}

// bindNamedImage reads name/img from JSON or a multipart form, plus the optional upload.
func bindNamedImage(c echo.Context) (usecase.BrandInput, func(), error) {
	var req namedImageRequest
	if isMultipart(c) {
		req.Name = c.FormValue("name")
		req.Img = c.FormValue(imageField)
	} else if err := c.Bind(&req); err != nil {
		return usecase.BrandInput{}, func() {}, domainerrors.ErrMissingFields
	}

	upload, closeUpload, err := openUpload(c)
	if err != nil {
		return usecase.BrandInput{}, closeUpload, err
	}

	return usecase.BrandInput{Name: req.Name, Img: req.Img, Upload: upload}, closeUpload, nil
}

// ListBrands handles GET /brands
func (h *CatalogHandler) ListBrands(c echo.Context) error {
	brands, err := h.catalogUC.ListBrands(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, brands)
}

// CreateBrand handles POST /brands
func (h *CatalogHandler) CreateBrand(c echo.Context) error {
	input, closeUpload, err := bindNamedImage(c)
	defer closeUpload()
	if err != nil {
		return err
	}

	brand, err := h.catalogUC.CreateBrand(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.OK(c, brand)
}

// UpdateBrand handles PUT /brands/:id
func (h *CatalogHandler) UpdateBrand(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	input, closeUpload, err := bindNamedImage(c)
	defer closeUpload()
	if err != nil {
		return err
	}

	brand, err := h.catalogUC.UpdateBrand(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return response.OK(c, brand)
}

// DeleteBrand handles DELETE /brands/:id
func (h *CatalogHandler) DeleteBrand(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteBrand(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Deleted(c)
}

// ListCategories handles GET /categories
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, categories)
}

// CreateCategory handles POST /categories
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	input, closeUpload, err := bindNamedImage(c)
	defer closeUpload()
	if err != nil {
		return err
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.OK(c, category)
}

// UpdateCategory handles PUT /categories/:id
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	input, closeUpload, err := bindNamedImage(c)
	defer closeUpload()
	if err != nil {
		return err
	}

	category, err := h.catalogUC.UpdateCategory(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return response.OK(c, category)
}

// DeleteCategory handles DELETE /categories/:id
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Deleted(c)
}
