package internal

import (
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 5

// CachedTexture is a texture with its natural size.
type CachedTexture struct {
	Texture *sdl.Texture
	W, H    int32
}

// TextureCache keeps the most recently used image textures so revisiting an
// attraction does not decode its image again.
type TextureCache struct {
	textures map[string]CachedTexture
	order    []string // tracks insertion order for LRU eviction
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]CachedTexture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *TextureCache) Get(key string) (CachedTexture, bool) {
	if texture, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return texture, true
	}
	return CachedTexture{}, false
}

func (c *TextureCache) Set(key string, texture CachedTexture) {
	if old, exists := c.textures[key]; exists {
		if old.Texture != texture.Texture {
			old.Texture.Destroy()
		}
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// LoadImage returns the texture for the image file at path, decoding it on
// first use.
func (c *TextureCache) LoadImage(renderer *sdl.Renderer, path string) (CachedTexture, error) {
	if cached, ok := c.Get(path); ok {
		return cached, nil
	}

	surface, err := img.Load(path)
	if err != nil {
		return CachedTexture{}, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return CachedTexture{}, err
	}

	cached := CachedTexture{Texture: texture, W: surface.W, H: surface.H}
	c.Set(path, cached)
	return cached, nil
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		if texture.Texture != nil {
			texture.Texture.Destroy()
		}
		delete(c.textures, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		if texture.Texture != nil {
			texture.Texture.Destroy()
		}
	}
	c.textures = make(map[string]CachedTexture)
	c.order = c.order[:0]
}
