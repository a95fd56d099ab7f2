package display

import (
	"bytes"
	"encoding/binary"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kovidgoyal/gammas/icc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func test_profile(desc string) []byte {
	return icc.EncodeProfile(map[icc.Signature][]byte{
		icc.DescSignature:              icc.EncodeTextDescription(desc),
		icc.VideoCardGammaTagSignature: []byte("vcgt\x00\x00\x00\x00\x00\x00\x00\x01"),
	})
}

// tiff_with builds a minimal big endian TIFF whose only directory entry is
// an embedded ICC profile.
func tiff_with(profile []byte) []byte {
	b := &bytes.Buffer{}
	b.WriteString("MM\x00\x2a")
	_ = binary.Write(b, binary.BigEndian, uint32(8))
	_ = binary.Write(b, binary.BigEndian, uint16(1))
	_ = binary.Write(b, binary.BigEndian, []uint16{tiffICCProfileTag, 7})
	_ = binary.Write(b, binary.BigEndian, []uint32{uint32(len(profile)), 8 + 2 + 12 + 4, 0})
	b.Write(profile)
	return b.Bytes()
}

func TestRamp(t *testing.T) {
	r := LinearRamp()
	r[2][10] = 0xabcd
	blob := EncodeRamp(r)
	require.Len(t, blob, RampBlobSize)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 3, 1, 0, 0, 2}, blob[:10])
	assert.Equal(t, []byte{0x01, 0x01}, blob[10+2:10+4])
	assert.Equal(t, []byte{0xab, 0xcd}, blob[10+2*(2*256+10):][:2])

	raw := blob[10:]
	decoded, err := DecodeRamp(raw)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(r, decoded))

	_, err = DecodeRamp(raw[:100])
	assert.Error(t, err)
	_, err = DecodeRamp(append(raw, 0, 0))
	assert.ErrorContains(t, err, "2 trailing bytes")
}

func TestTIFFProfile(t *testing.T) {
	profile := test_profile("Embedded")
	data, err := ExtractTIFFProfile(bytes.NewReader(tiff_with(profile)))
	require.NoError(t, err)
	assert.Equal(t, profile, data)

	dir := t.TempDir()
	path := filepath.Join(dir, "screen.TIFF")
	require.NoError(t, os.WriteFile(path, tiff_with(profile), 0o644))
	p, err := LoadProfileFile(path)
	require.NoError(t, err)
	desc, err := p.Description()
	require.NoError(t, err)
	assert.Equal(t, "Embedded", desc)

	_, err = ExtractTIFFProfile(bytes.NewReader([]byte("not a tiff at all")))
	assert.Error(t, err)
}

func TestStatic(t *testing.T) {
	p, err := icc.DecodeProfile(test_profile("Static"))
	require.NoError(t, err)
	s := NewStatic(
		Source{Display: Display{ID: 4, Name: "A"}, DriverTable: BytesValue([]byte{1, 2, 3})},
		Source{Display: Display{ID: 9, Name: "B"}, Profile: ProfileValue(p)},
	)
	displays, err := s.Displays()
	require.NoError(t, err)
	assert.Equal(t, []Display{{ID: 4, Name: "A"}, {ID: 9, Name: "B"}}, displays)

	n, err := s.DriverTableSize(4)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	buf := make([]byte, 2)
	n, err = s.ReadDriverTable(4, buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{1, 2}, buf)

	h, err := s.OpenProfile(9)
	require.NoError(t, err)
	defer h.Close()
	desc, err := h.Description()
	require.NoError(t, err)
	assert.Equal(t, "Static", desc)
	n, err = h.TagSize(icc.VideoCardGammaTagSignature)
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	_, err = h.TagSize(icc.NativeDisplayInfoSignature)
	assert.ErrorIs(t, err, ErrNotAvailable)
	assert.ErrorIs(t, err, icc.ErrNoSuchTag)
	_, err = h.ReadTag(icc.NativeDisplayInfoSignature, buf)
	assert.ErrorIs(t, err, ErrNotAvailable)

	_, err = s.DriverTableSize(9)
	assert.ErrorIs(t, err, ErrNotAvailable)
	_, err = s.OpenProfile(4)
	assert.ErrorIs(t, err, ErrNotAvailable)
	_, err = s.OpenProfile(5)
	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.icc"), test_profile("Main"), 0o644))
	ramp := LinearRamp()
	ramp[0][255] = 0x1234
	require.NoError(t, os.WriteFile(filepath.Join(dir, "side.ramp"), EncodeRamp(ramp)[10:], 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.lut"), []byte{0, 0, 0, 1}, 0o644))
	cfg := `
displays:
  - id: 1
    name: Main
    bounds: [0, 0, 2560, 1440]
    profile: main.icc
    driver_table: main.lut
  - id: 2
    name: Side
    ramp: side.ramp
`
	path := filepath.Join(dir, "displays.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, c.Displays, 2)
	assert.Equal(t, filepath.Join(dir, "main.icc"), c.Displays[0].Profile)
	assert.Equal(t, Display{ID: 1, Name: "Main", Bounds: image.Rect(0, 0, 2560, 1440)}, c.Displays[0].Display())

	t.Run("round trip", func(t *testing.T) {
		data, err := c.Marshal()
		require.NoError(t, err)
		again, err := ParseConfig(data, "/elsewhere")
		require.NoError(t, err)
		if d := cmp.Diff(c, again); d != "" {
			t.Fatalf("configuration changed by a round trip:\n%s", d)
		}
	})

	t.Run("provider", func(t *testing.T) {
		s := FromConfig(c)
		h, err := s.OpenProfile(1)
		require.NoError(t, err)
		desc, err := h.Description()
		require.NoError(t, err)
		assert.Equal(t, "Main", desc)
		require.NoError(t, h.Close())

		n, err := s.DriverTableSize(1)
		require.NoError(t, err)
		assert.Equal(t, 4, n)

		n, err = s.DriverTableSize(2)
		require.NoError(t, err)
		require.Equal(t, RampBlobSize, n)
		buf := make([]byte, n)
		_, err = s.ReadDriverTable(2, buf)
		require.NoError(t, err)
		assert.Equal(t, EncodeRamp(ramp), buf)

		_, err = s.OpenProfile(2)
		assert.ErrorIs(t, err, ErrNotAvailable)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, bad := range []string{
			"displays:\n  - id: 1\n  - id: 1\n",
			"displays:\n  - id: 1\n    bounds: [1, 2]\n",
			"displays:\n  - id: 1\n    ramp: a\n    driver_table: b\n",
			"displays: {",
		} {
			_, err := ParseConfig([]byte(bad), dir)
			assert.Error(t, err, bad)
		}
	})
}

func TestSystem(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("depends on the attached hardware")
	}
	s := NewSystem()
	_, err := s.Displays()
	assert.ErrorIs(t, err, ErrNotAvailable)
	_, err = s.DriverTableSize(1)
	assert.ErrorIs(t, err, ErrNotAvailable)
	_, err = s.OpenProfile(1)
	assert.ErrorIs(t, err, ErrNotAvailable)
}
