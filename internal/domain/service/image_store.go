package service

import (
	"context"
	"io"
)

// ImageKind is the folder an uploaded image belongs to.
type ImageKind string

const (
	ImageKindBrand    ImageKind = "brand"
	ImageKindCategory ImageKind = "category"
	ImageKindProduct  ImageKind = "product"
)

// ImageStore persists uploaded images and returns the public path stored in the img column.
type ImageStore interface {
	Save(ctx context.Context, kind ImageKind, filename string, content io.Reader) (string, error)
}
