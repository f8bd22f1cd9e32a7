package handler

import (
	"log/slog"

	"aeon/internal/delivery/api/response"
	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves products and their details.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

type productRequest struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	CategoryID uint            `json:"category_id"`
	BrandID    uint            `json:"brand_id"`
	Img        string          `json:"img"`
}

type productDetailRequest struct {
	DetailName  string `json:"detail_name"`
	DetailValue string `json:"detail_value"`
}

// bindProduct reads the product fields from JSON or a multipart form, plus the optional upload.
func bindProduct(c echo.Context) (usecase.ProductInput, func(), error) {
	noop := func() {}

	var req productRequest
	if isMultipart(c) {
		var err error
		req.Name = c.FormValue("name")
		req.Img = c.FormValue(imageField)
		if req.Price, err = formDecimal(c, "price"); err != nil {
			return usecase.ProductInput{}, noop, domainerrors.ErrMissingFields
		}
		if req.CategoryID, err = formUint(c, "category_id"); err != nil {
			return usecase.ProductInput{}, noop, domainerrors.ErrMissingFields
		}
		if req.BrandID, err = formUint(c, "brand_id"); err != nil {
			return usecase.ProductInput{}, noop, domainerrors.ErrMissingFields
		}
	} else if err := c.Bind(&req); err != nil {
		return usecase.ProductInput{}, noop, domainerrors.ErrMissingFields
	}

	upload, closeUpload, err := openUpload(c)
	if err != nil {
		return usecase.ProductInput{}, closeUpload, err
	}

	input := usecase.ProductInput{
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
		Img:        req.Img,
		Upload:     upload,
	}
	if req.BrandID != 0 {
		input.BrandID = &req.BrandID
	}

	return input, closeUpload, nil
}

// ListProducts handles GET /product
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, products)
}

// SearchProducts handles GET /product/search?q=
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	products, err := h.productUC.SearchProducts(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}

	return response.OK(c, products)
}

// GetProduct handles GET /product/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, product)
}

// CreateProduct handles POST /product
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	input, closeUpload, err := bindProduct(c)
	defer closeUpload()
	if err != nil {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.OK(c, product)
}

// UpdateProduct handles PUT /product/:id
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	input, closeUpload, err := bindProduct(c)
	defer closeUpload()
	if err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return response.OK(c, product)
}

// DeleteProduct handles DELETE /product/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Deleted(c)
}

// ListDetails handles GET /product/:id/details
func (h *ProductHandler) ListDetails(c echo.Context) error {
	productID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	details, err := h.productUC.ListProductDetails(c.Request().Context(), productID)
	if err != nil {
		return err
	}

	return response.OK(c, details)
}

// CreateDetail handles POST /product/:id/details
func (h *ProductHandler) CreateDetail(c echo.Context) error {
	productID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req productDetailRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrDetailNameRequired
	}

	detail, err := h.productUC.CreateProductDetail(c.Request().Context(), productID, usecase.ProductDetailInput{
		DetailName:  req.DetailName,
		DetailValue: req.DetailValue,
	})
	if err != nil {
		return err
	}

	return response.OK(c, detail)
}

// UpdateDetail handles PUT /product-details/:id
func (h *ProductHandler) UpdateDetail(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req productDetailRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidBody
	}

	detail, err := h.productUC.UpdateProductDetail(c.Request().Context(), id, usecase.ProductDetailInput{
		DetailName:  req.DetailName,
		DetailValue: req.DetailValue,
	})
	if err != nil {
		return err
	}

	return response.OK(c, detail)
}

// DeleteDetail handles DELETE /product-details/:id
func (h *ProductHandler) DeleteDetail(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProductDetail(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Deleted(c)
}
