package prayer

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"latina/ave_maria":            {Data: []byte("Ave Maria, gratia plena\n")},
		"latina/pater_noster":         {Data: []byte("Pater noster")},
		"latina/mysteria/gaudiosa_I":  {Data: []byte("Quem, Virgo, de Spiritu Sancto concepisti.")},
		"anglia/ave_maria":            {Data: []byte("Hail Mary, full of grace")},
		"germana/only_german":         {Data: []byte("Nur deutsch")},
		"slavonica/only_slavonic":     {Data: []byte("Bogorodice Djevo")},
		"latina/cantus/ave_maria.wav": {Data: []byte("RIFF")},
		"titles.toml": {Data: []byte(`
[ave_maria]
latina = "Ave Maria"
anglia = "Hail Mary"

[pater_noster]
latina = "Pater Noster"
`)},
	}
}

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver(testFS())
	require.NoError(t, err)
	return r
}

func TestResolver_Text(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name     string
		key      string
		lang     Language
		wantText string
		wantLang Language
	}{
		{"preferred language", "ave_maria", Anglia, "Hail Mary, full of grace", Anglia},
		{"trailing newline trimmed", "ave_maria", Latina, "Ave Maria, gratia plena", Latina},
		{"falls back to latina first", "pater_noster", Germana, "Pater noster", Latina},
		{"falls back in list order", "only_slavonic", Anglia, "Bogorodice Djevo", Slavonica},
		{"nested key", "mysteria/gaudiosa_I", Latina, "Quem, Virgo, de Spiritu Sancto concepisti.", Latina},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, used, err := r.Text(tt.key, tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantLang, used)
		})
	}
}

func TestResolver_TextMiss(t *testing.T) {
	r := newTestResolver(t)

	_, _, err := r.Text("no_such_prayer", Latina)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLookupMiss)
}

func TestResolver_Title(t *testing.T) {
	r := newTestResolver(t)

	assert.Equal(t, "Hail Mary", r.Title("ave_maria", Anglia))
	assert.Equal(t, "Ave Maria", r.Title("ave_maria", Latina))
	// No English title: first translation in fallback order.
	assert.Equal(t, "Pater Noster", r.Title("pater_noster", Anglia))
	// No translation at all: derived from the key.
	assert.Equal(t, "Salve Regina", r.Title("salve_regina", Anglia))
	assert.Equal(t, "Gaudiosa III", r.Title("mysteria/gaudiosa_III", Latina))
}

func TestTitleFromKey(t *testing.T) {
	tests := map[string]string{
		"ave_maria":                 "Ave Maria",
		"oratio_ad_finem_rosarii":   "Oratio Ad Finem Rosarii",
		"mysteria/luminosa_IV":      "Luminosa IV",
		"dominica_in_palmis":        "Dominica In Palmis",
		"festum_nativitatis_domini": "Festum Nativitatis Domini",
	}
	for key, want := range tests {
		assert.Equal(t, want, TitleFromKey(key), key)
	}
}

func TestResolver_AudioNeedsDirectory(t *testing.T) {
	r := newTestResolver(t)

	_, _, err := r.Audio("ave_maria", Latina)
	assert.ErrorIs(t, err, ErrLookupMiss)
}

func TestDirResolver_Audio(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "latina", "ave_maria"), "Ave Maria")
	writeFile(t, filepath.Join(root, "latina", "cantus", "ave_maria.wav"), "RIFF")
	writeFile(t, filepath.Join(root, "anglia", "ave_maria"), "Hail Mary")

	r, err := NewDirResolver(root)
	require.NoError(t, err)

	path, used, err := r.Audio("ave_maria", Anglia)
	require.NoError(t, err)
	assert.Equal(t, Latina, used)
	assert.Equal(t, filepath.Join(root, "latina", "cantus", "ave_maria.wav"), path)

	entry, err := r.Lookup("ave_maria", Anglia)
	require.NoError(t, err)
	assert.Equal(t, "Hail Mary", entry.Text)
	assert.Equal(t, Anglia, entry.Language)
	// Recording found through fallback even though the text was English.
	assert.Equal(t, path, entry.Audio)
}

func TestDirResolver_MissingDirectoryUsesBuiltin(t *testing.T) {
	r, err := NewDirResolver(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)

	text, used, err := r.Text("pater_noster", Latina)
	require.NoError(t, err)
	assert.Equal(t, Latina, used)
	assert.Contains(t, text, "Pater noster")
}

func TestResolver_AvailableLanguages(t *testing.T) {
	r := newTestResolver(t)

	assert.Equal(t, []Language{Latina, Anglia}, r.AvailableLanguages("ave_maria"))
	assert.Empty(t, r.AvailableLanguages("no_such_prayer"))
}

func TestResolver_Lookup(t *testing.T) {
	r := newTestResolver(t)

	entry, err := r.Lookup("pater_noster", Anglia)
	require.NoError(t, err)
	assert.Equal(t, "Pater noster", entry.Text)
	assert.Equal(t, Latina, entry.Language)
	assert.Equal(t, "Pater Noster", entry.Title)
	assert.Empty(t, entry.Audio)

	entry, err = r.Lookup("unknown_prayer", Latina)
	assert.ErrorIs(t, err, ErrLookupMiss)
	assert.Equal(t, "Unknown Prayer", entry.Title)

	_, err = r.Lookup("", Latina)
	assert.ErrorIs(t, err, ErrLookupMiss)
}

func TestResolver_CacheAndRefresh(t *testing.T) {
	fsys := testFS()
	r, err := NewResolver(fsys, WithCacheSize(4))
	require.NoError(t, err)

	text, _, err := r.Text("pater_noster", Latina)
	require.NoError(t, err)
	assert.Equal(t, "Pater noster", text)

	fsys["latina/pater_noster"] = &fstest.MapFile{Data: []byte("Pater noster, qui es in caelis")}
	text, _, _ = r.Text("pater_noster", Latina)
	assert.Equal(t, "Pater noster", text, "cached text should be served")

	require.NoError(t, r.Refresh())
	text, _, _ = r.Text("pater_noster", Latina)
	assert.Equal(t, "Pater noster, qui es in caelis", text)
}

func TestNewResolver_BadTitles(t *testing.T) {
	fsys := fstest.MapFS{"titles.toml": {Data: []byte("[ave_maria\nlatina = ")}}
	_, err := NewResolver(fsys)
	assert.Error(t, err)
}

func TestDefaultFS_HasEveryLatinRosaryText(t *testing.T) {
	fsys, err := DefaultFS()
	require.NoError(t, err)

	keys := []string{
		"signum_crucis", "symbolum_apostolorum", "pater_noster", "ave_maria",
		"gloria_patri", "oratio_fatimae", "salve_regina", "oratio_ad_sanctum_ioseph",
		"oratio_ad_sanctum_michaelem", "oratio_ad_finem_rosarii", "laudetur_iesus_christus",
	}
	for _, set := range []string{"gaudiosa", "dolorosa", "gloriosa", "luminosa"} {
		for _, n := range []string{"I", "II", "III", "IV", "V"} {
			keys = append(keys, "mysteria/"+set+"_"+n)
		}
	}
	for _, key := range keys {
		_, err := fs.Stat(fsys, "latina/"+key)
		assert.NoError(t, err, key)
	}

	_, err = fs.Stat(fsys, ".config.yaml")
	assert.NoError(t, err)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
