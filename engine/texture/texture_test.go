package texture

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDecoder returns a canned image (or error) per path.
type fakeDecoder struct {
	images map[string]Image
	err    error
}

func (f fakeDecoder) Decode(path string, _ bool) (Image, error) {
	if f.err != nil {
		return Image{}, f.err
	}
	img, ok := f.images[path]
	if !ok {
		return Image{}, fmt.Errorf("texture: open %s: no such file", path)
	}
	return img, nil
}

// fakeBackend counts live handles so tests can assert leak-freedom.
type fakeBackend struct {
	next    Handle
	live    map[Handle]bool
	deleted []Handle
	bound   map[int]Handle
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{next: 1, live: make(map[Handle]bool), bound: make(map[int]Handle)}
}

func (b *fakeBackend) Upload(img Image) (Handle, error) {
	switch img.Channels {
	case 1, 3, 4:
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedChannels, img.Channels)
	}
	h := b.next
	b.next++
	b.live[h] = true
	return h, nil
}

func (b *fakeBackend) BindUnit(unit int, handle Handle) {
	b.bound[unit] = handle
}

func (b *fakeBackend) Delete(handle Handle) {
	if handle == 0 {
		return
	}
	delete(b.live, handle)
	b.deleted = append(b.deleted, handle)
}

func rgb(w, h int) Image {
	return Image{Pixels: make([]byte, w*h*3), Width: w, Height: h, Channels: 3}
}

func TestLoadInstallsHandle(t *testing.T) {
	backend := newFakeBackend()
	reg := NewRegistry(
		WithDecoder(fakeDecoder{images: map[string]Image{"wood.jpg": rgb(4, 4)}}),
		WithBackend(backend),
	)

	require.NoError(t, reg.Load("wood", "wood.jpg", true))
	h, ok := reg.Find("wood")
	assert.True(t, ok)
	assert.NotEqual(t, Handle(0), h)
	assert.Equal(t, 0, reg.Slot("wood"))
	assert.Equal(t, 1, reg.Count())
}

func TestReloadSameTagFreesOldHandle(t *testing.T) {
	backend := newFakeBackend()
	reg := NewRegistry(
		WithDecoder(fakeDecoder{images: map[string]Image{
			"a.jpg": rgb(4, 4),
			"b.jpg": rgb(8, 8),
		}}),
		WithBackend(backend),
	)

	require.NoError(t, reg.Load("wood", "a.jpg", false))
	first, _ := reg.Find("wood")
	require.NoError(t, reg.Load("wood", "b.jpg", false))
	second, _ := reg.Find("wood")

	assert.NotEqual(t, first, second)
	assert.Equal(t, []Handle{first}, backend.deleted, "old handle must be freed on replace")
	assert.Len(t, backend.live, 1, "exactly one live handle after reload")
	assert.Equal(t, 1, reg.Count())
	assert.Equal(t, 0, reg.Slot("wood"), "slot is stable across reload")
}

func TestUnsupportedChannelCountIsError(t *testing.T) {
	backend := newFakeBackend()
	twoChannel := Image{Pixels: make([]byte, 4*4*2), Width: 4, Height: 4, Channels: 2}
	reg := NewRegistry(
		WithDecoder(fakeDecoder{images: map[string]Image{"ga.png": twoChannel}}),
		WithBackend(backend),
	)

	err := reg.Load("grey_alpha", "ga.png", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedChannels))
	assert.False(t, reg.Exists("grey_alpha"), "failed load must leave the tag absent")
	assert.Empty(t, backend.live)
}

func TestDecodeFailureLeavesPriorMapping(t *testing.T) {
	backend := newFakeBackend()
	reg := NewRegistry(
		WithDecoder(fakeDecoder{images: map[string]Image{"a.jpg": rgb(2, 2)}}),
		WithBackend(backend),
	)

	require.NoError(t, reg.Load("wood", "a.jpg", false))
	before, _ := reg.Find("wood")

	require.Error(t, reg.Load("wood", "missing.jpg", false))
	after, ok := reg.Find("wood")
	assert.True(t, ok)
	assert.Equal(t, before, after)
}

func TestFindAndBindMiss(t *testing.T) {
	reg := NewRegistry(
		WithDecoder(fakeDecoder{}),
		WithBackend(newFakeBackend()),
	)

	h, ok := reg.Find("nope")
	assert.False(t, ok)
	assert.Equal(t, Handle(0), h)
	assert.Equal(t, -1, reg.Slot("nope"))
	assert.False(t, reg.Bind("nope"))
}

func TestBindToExplicitUnit(t *testing.T) {
	backend := newFakeBackend()
	reg := NewRegistry(
		WithDecoder(fakeDecoder{images: map[string]Image{"a.jpg": rgb(2, 2)}}),
		WithBackend(backend),
	)
	require.NoError(t, reg.Load("wood", "a.jpg", false))

	assert.True(t, reg.BindTo("wood", 7))
	h, _ := reg.Find("wood")
	assert.Equal(t, h, backend.bound[7])
	assert.False(t, reg.BindTo("nope", 3))
}

func TestBindAllUsesLoadOrderSlots(t *testing.T) {
	backend := newFakeBackend()
	reg := NewRegistry(
		WithDecoder(fakeDecoder{images: map[string]Image{
			"a.jpg": rgb(2, 2),
			"b.jpg": rgb(2, 2),
		}}),
		WithBackend(backend),
	)
	require.NoError(t, reg.Load("first", "a.jpg", false))
	require.NoError(t, reg.Load("second", "b.jpg", false))

	reg.BindAll()
	a, _ := reg.Find("first")
	b, _ := reg.Find("second")
	assert.Equal(t, a, backend.bound[0])
	assert.Equal(t, b, backend.bound[1])
}

func TestReleaseAllFreesEverythingOnce(t *testing.T) {
	backend := newFakeBackend()
	reg := NewRegistry(
		WithDecoder(fakeDecoder{images: map[string]Image{
			"a.jpg": rgb(2, 2),
			"b.jpg": rgb(2, 2),
		}}),
		WithBackend(backend),
	)
	require.NoError(t, reg.Load("first", "a.jpg", false))
	require.NoError(t, reg.Load("second", "b.jpg", false))

	reg.ReleaseAll()
	assert.Empty(t, backend.live)
	assert.Equal(t, 0, reg.Count())

	// Second release and post-release use are guarded no-ops.
	reg.ReleaseAll()
	assert.Len(t, backend.deleted, 2)
	assert.False(t, reg.Bind("first"))
	reg.BindAll()
}
