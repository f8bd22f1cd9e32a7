package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"aeon/config"
	"aeon/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestObjectKey(t *testing.T) {
	at := time.UnixMilli(1714550400123)

	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"plain", "shoe.png", "product/1714550400123-shoe.png"},
		{"strips directories", "../../etc/shoe.png", "product/1714550400123-shoe.png"},
		{"windows path", `C:\Users\me\shoe.png`, "product/1714550400123-shoe.png"},
		{"empty", "", "product/1714550400123-upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, objectKey(service.ImageKindProduct, tt.filename, at))
		})
	}
}

func TestImageStore_Save(t *testing.T) {
	dir := t.TempDir()
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(dir)}
	lc := fxtest.NewLifecycle(t)

	store, err := NewImageStore(ImageStoreParams{
		Lc:  lc,
		Ctx: context.Background(),
		Config: &config.Config{Upload: &config.UploadConfig{
			BucketURL:    u.String(),
			PublicPrefix: "./img/",
		}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	lc.RequireStart()
	defer lc.RequireStop()

	impl := store.(*imageStore)
	impl.now = func() time.Time { return time.UnixMilli(1714550400000) }

	path, err := store.Save(context.Background(), service.ImageKindBrand, "acme.png", strings.NewReader("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "./img/brand/1714550400000-acme.png", path)

	data, err := impl.bucket.ReadAll(context.Background(), "brand/1714550400000-acme.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestResolveBucketURL(t *testing.T) {
	got, err := resolveBucketURL("mem://")
	require.NoError(t, err)
	assert.Equal(t, "mem://", got)

	got, err = resolveBucketURL("")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "file://"), got)
	assert.True(t, strings.HasSuffix(got, "public/img?create_dir=true"), got)
}
