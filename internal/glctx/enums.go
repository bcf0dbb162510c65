package glctx

// Texture targets
const (
	Texture2D          uint32 = 0x0DE1
	Texture3D          uint32 = 0x806F
	TextureCubeMap     uint32 = 0x8513
	Texture2DArray     uint32 = 0x8C1A
	TextureExternalOES uint32 = 0x8D65
)

// Sampler parameter names
const (
	TextureMagFilter     uint32 = 0x2800
	TextureMinFilter     uint32 = 0x2801
	TextureWrapS         uint32 = 0x2802
	TextureWrapT         uint32 = 0x2803
	TextureWrapR         uint32 = 0x8072
	TextureMaxAnisotropy uint32 = 0x84FE // GL_EXT_texture_filter_anisotropic
)

// Filter and wrap values
const (
	Nearest              int32 = 0x2600
	Linear               int32 = 0x2601
	NearestMipmapNearest int32 = 0x2700
	LinearMipmapNearest  int32 = 0x2701
	NearestMipmapLinear  int32 = 0x2702
	LinearMipmapLinear   int32 = 0x2703
	Repeat               int32 = 0x2901
	ClampToEdge          int32 = 0x812F
	MirroredRepeat       int32 = 0x8370
)

// Pixel formats and types
const (
	DepthComponent   int32 = 0x1902
	RGB              int32 = 0x1907
	RGBA             int32 = 0x1908
	RGB8             int32 = 0x8051
	RGBA8            int32 = 0x8058
	DepthComponent24 int32 = 0x81A6
	UnsignedByte     int32 = 0x1401
	UnsignedShort    int32 = 0x1403
	UnsignedInt      int32 = 0x1405
	Float            int32 = 0x1406
)

// TargetName returns the GL enum name of a texture target, for logs.
func TargetName(target uint32) string {
	switch target {
	case Texture2D:
		return "GL_TEXTURE_2D"
	case Texture3D:
		return "GL_TEXTURE_3D"
	case TextureCubeMap:
		return "GL_TEXTURE_CUBE_MAP"
	case Texture2DArray:
		return "GL_TEXTURE_2D_ARRAY"
	case TextureExternalOES:
		return "GL_TEXTURE_EXTERNAL_OES"
	}
	return "GL_TEXTURE_UNKNOWN"
}
