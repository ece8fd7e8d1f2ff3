package service

import (
	"context"
	"testing"

	"docshare/internal/config"
	"docshare/internal/model"
	"docshare/internal/storage"
	storeMocks "docshare/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("inline blob without download returns reference unchanged", func(t *testing.T) {
		// The presigner must never be touched for this tag.
		mPresign := new(storeMocks.MockPresigner)
		r := NewResolver(mPresign, config.ResolverConfig{Transport: "s3"})

		url, err := r.Resolve(ctx, model.StorageTypeInlineBlob, "https://cdn/x.pdf", false)

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn/x.pdf", url)
		mPresign.AssertNotCalled(t, "SignedURL", mock.Anything, mock.Anything)
	})

	t.Run("inline blob with download gets download disposition", func(t *testing.T) {
		mPresign := new(storeMocks.MockPresigner)
		r := NewResolver(mPresign, config.ResolverConfig{Transport: "s3"})

		url, err := r.Resolve(ctx, model.StorageTypeInlineBlob, "https://cdn/x.pdf", true)

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn/x.pdf?download=1", url)
		mPresign.AssertNotCalled(t, "SignedURL", mock.Anything, mock.Anything)
	})

	t.Run("object key issues exactly one presign exchange", func(t *testing.T) {
		mPresign := new(storeMocks.MockPresigner)
		mPresign.On("SignedURL", ctx, "team1/123-abc.pdf").
			Return("https://signed/team1/123-abc.pdf?X-Amz-Signature=s", nil).Once()
		r := NewResolver(mPresign, config.ResolverConfig{Transport: "s3"})

		url, err := r.Resolve(ctx, model.StorageTypeObjectKey, "team1/123-abc.pdf", true)

		assert.NoError(t, err)
		assert.Equal(t, "https://signed/team1/123-abc.pdf?X-Amz-Signature=s", url)
		assert.NotEqual(t, "team1/123-abc.pdf", url)
		mPresign.AssertExpectations(t)
	})

	t.Run("public transport override bypasses presign for object keys", func(t *testing.T) {
		mPresign := new(storeMocks.MockPresigner)
		r := NewResolver(mPresign, config.ResolverConfig{
			Transport:     "public",
			PublicBaseURL: "https://cdn.example.com/documents",
		})

		url, err := r.Resolve(ctx, model.StorageTypeObjectKey, "team1/123-abc.pdf", false)

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/documents/team1/123-abc.pdf", url)
		mPresign.AssertNotCalled(t, "SignedURL", mock.Anything, mock.Anything)
	})

	t.Run("public transport override does not apply to inline blobs", func(t *testing.T) {
		mPresign := new(storeMocks.MockPresigner)
		r := NewResolver(mPresign, config.ResolverConfig{
			Transport:     "public",
			PublicBaseURL: "https://cdn.example.com/documents",
		})

		url, err := r.Resolve(ctx, model.StorageTypeInlineBlob, "https://cdn/x.pdf", false)

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn/x.pdf", url)
	})

	t.Run("unknown storage tag is fatal", func(t *testing.T) {
		mPresign := new(storeMocks.MockPresigner)
		r := NewResolver(mPresign, config.ResolverConfig{Transport: "s3"})

		_, err := r.Resolve(ctx, model.StorageType("floppy-disk"), "ref", false)

		assert.ErrorIs(t, err, storage.ErrUnknownStorageType)
	})
}
