package pending

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gvr-gl/internal/glctx"
	"gvr-gl/internal/glctx/mocks"
	"gvr-gl/internal/texture"
)

func TestTrashDeletesOnRenderThread(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := mocks.NewMockContext(ctrl)

	var trash Trash
	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(id uint32) {
			defer wg.Done()
			trash.Discard(id)
		}(uint32(i))
	}
	wg.Wait()
	trash.Discard(0)
	require.Equal(t, 8, trash.Len())

	ctx.EXPECT().DeleteTexture(gomock.Any()).Times(8)
	require.Equal(t, 8, trash.Empty(ctx))
	require.Equal(t, 0, trash.Empty(ctx))
}

func TestTextureReleaseToTrash(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := mocks.NewMockContext(ctrl)

	var trash Trash
	tex := texture.Adopt(texture.Target(glctx.Texture2D), 12)
	tex.ReleaseTo(&trash)
	tex.ReleaseTo(&trash)
	tex.Release(ctx)

	ctx.EXPECT().DeleteTexture(uint32(12)).Times(1)
	require.Equal(t, 1, trash.Empty(ctx))
}
