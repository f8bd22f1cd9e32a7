// Package handler contains the HTTP handlers of the admin API.
package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	domainerrors "aeon/internal/domain/errors"
	"aeon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const imageField = "img"

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrInvalidID
	}

	return uint(id), nil
}

// bindJSON binds the body into req and runs the struct validator. Any failure
// is reported as invalid, the operation's own validation error.
func bindJSON(c echo.Context, req any, invalid error) error {
	if err := c.Bind(req); err != nil {
		return invalid
	}
	if err := c.Validate(req); err != nil {
		return invalid
	}

	return nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// openUpload opens the uploaded img file. It returns a nil upload when the
// request carries none. The returned close func is never nil.
func openUpload(c echo.Context) (*usecase.ImageUpload, func(), error) {
	noop := func() {}
	if !isMultipart(c) {
		return nil, noop, nil
	}

	header, err := c.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, errors.Wrap(err, "failed to read uploaded image")
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, errors.Wrap(err, "failed to open uploaded image")
	}

	return &usecase.ImageUpload{Filename: header.Filename, Content: file}, closeFile(file), nil
}

func closeFile(f multipart.File) func() {
	return func() { _ = f.Close() }
}

// formUint parses an optional numeric form field; an empty value is zero.
func formUint(c echo.Context, name string) (uint, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", name)
	}

	return uint(v), nil
}

// formDecimal parses an optional decimal form field; an empty value is zero.
func formDecimal(c echo.Context, name string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return decimal.Zero, nil
	}

	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid %s", name)
	}

	return v, nil
}
