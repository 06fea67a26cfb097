// Package prayer resolves language-independent prayer keys to texts, titles
// and audio files stored per language under a prayer directory:
//
//	<root>/<language>/<key>               prayer text
//	<root>/<language>/cantus/<key>.wav    recorded prayer
//	<root>/titles.toml                    title translations
package prayer

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrLookupMiss is returned when a resource exists in none of the languages.
var ErrLookupMiss = errors.New("prayer resource not found in any language")

const (
	titlesFile   = "titles.toml"
	audioDir     = "cantus"
	audioExt     = ".wav"
	cacheTTL     = 10 * time.Minute
	defaultCache = 128
)

// Entry is everything known about one prayer in one language.
type Entry struct {
	Key      string
	Title    string
	Text     string
	Language Language
	// Audio is a filesystem path, empty when no recording exists.
	Audio string
}

// Resolver looks up prayer resources with language fallback. It is safe for
// concurrent use.
type Resolver struct {
	fsys fs.FS
	root string

	mu     sync.RWMutex
	titles map[string]map[Language]string

	cache  *expirable.LRU[string, string]
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCacheSize sets the number of texts kept in memory.
func WithCacheSize(size int) Option {
	return func(r *Resolver) {
		if size > 0 {
			r.cache = expirable.NewLRU[string, string](size, nil, cacheTTL)
		}
	}
}

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver returns a resolver reading from fsys. Audio lookups only
// succeed for resolvers created with NewDirResolver, since the player needs
// a real file.
func NewResolver(fsys fs.FS, opts ...Option) (*Resolver, error) {
	r := &Resolver{
		fsys:   fsys,
		cache:  expirable.NewLRU[string, string](defaultCache, nil, cacheTTL),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	titles, err := loadTitles(fsys)
	if err != nil {
		return nil, err
	}
	r.titles = titles
	return r, nil
}

// NewDirResolver returns a resolver over the directory root. If root does not
// exist the built-in texts are used instead.
func NewDirResolver(root string, opts ...Option) (*Resolver, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		fsys, err := DefaultFS()
		if err != nil {
			return nil, err
		}
		r, err := NewResolver(fsys, opts...)
		if err != nil {
			return nil, err
		}
		r.logger.Info("prayer directory not found, using built-in texts", "dir", root)
		return r, nil
	}

	r, err := NewResolver(os.DirFS(root), opts...)
	if err != nil {
		return nil, err
	}
	r.root = root
	return r, nil
}

// FS returns the filesystem the resolver reads from.
func (r *Resolver) FS() fs.FS {
	return r.fsys
}

func loadTitles(fsys fs.FS) (map[string]map[Language]string, error) {
	titles := make(map[string]map[Language]string)

	data, err := fs.ReadFile(fsys, titlesFile)
	if errors.Is(err, fs.ErrNotExist) {
		return titles, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", titlesFile, err)
	}

	var raw map[string]map[string]string
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", titlesFile, err)
	}
	for key, byLang := range raw {
		titles[key] = make(map[Language]string, len(byLang))
		for lang, title := range byLang {
			titles[key][Language(lang)] = title
		}
	}
	return titles, nil
}

// Text returns the text of key in lang, or in the first fallback language
// that has it. The language actually used is returned alongside.
func (r *Resolver) Text(key string, lang Language) (string, Language, error) {
	for _, l := range fallbackOrder(lang) {
		text, ok := r.readText(key, l)
		if ok {
			if l != lang {
				r.logger.Debug("prayer text fallback", "key", key, "wanted", lang, "used", l)
			}
			return text, l, nil
		}
	}
	return "", lang, fmt.Errorf("text %q: %w", key, ErrLookupMiss)
}

func (r *Resolver) readText(key string, lang Language) (string, bool) {
	cacheKey := string(lang) + "/" + key
	if text, ok := r.cache.Get(cacheKey); ok {
		return text, true
	}

	data, err := fs.ReadFile(r.fsys, path.Join(string(lang), key))
	if err != nil {
		return "", false
	}
	text := strings.TrimRight(string(data), "\n")
	r.cache.Add(cacheKey, text)
	return text, true
}

// Title returns the translated title of key. Without a translation in any
// language the key itself is turned into a title ("ave_maria" becomes
// "Ave Maria").
func (r *Resolver) Title(key string, lang Language) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if byLang, ok := r.titles[key]; ok {
		for _, l := range fallbackOrder(lang) {
			if title, ok := byLang[l]; ok {
				return title
			}
		}
	}
	return TitleFromKey(key)
}

// TitleFromKey derives a display title from a resource key.
func TitleFromKey(key string) string {
	name := path.Base(key)
	name = strings.ReplaceAll(name, "_", " ")
	words := strings.Fields(name)
	for i, w := range words {
		if isRomanNumeral(w) {
			continue
		}
		words[i] = cases.Title(language.Und).String(w)
	}
	return strings.Join(words, " ")
}

func isRomanNumeral(w string) bool {
	return w != "" && strings.Trim(w, "IVX") == ""
}

// Audio returns the path of the recording of key, preferring lang.
func (r *Resolver) Audio(key string, lang Language) (string, Language, error) {
	if r.root == "" {
		return "", lang, fmt.Errorf("audio %q: %w", key, ErrLookupMiss)
	}
	for _, l := range fallbackOrder(lang) {
		rel := path.Join(string(l), audioDir, key+audioExt)
		if _, err := fs.Stat(r.fsys, rel); err == nil {
			return filepath.Join(r.root, filepath.FromSlash(rel)), l, nil
		}
	}
	return "", lang, fmt.Errorf("audio %q: %w", key, ErrLookupMiss)
}

// AvailableLanguages lists the languages that have a text for key.
func (r *Resolver) AvailableLanguages(key string) []Language {
	var out []Language
	for _, l := range languages {
		if _, ok := r.readText(key, l); ok {
			out = append(out, l)
		}
	}
	return out
}

// Lookup resolves title, text and audio of key in one call. A missing
// recording is not an error; a missing text is.
func (r *Resolver) Lookup(key string, lang Language) (Entry, error) {
	entry := Entry{Key: key, Language: lang}
	if key == "" {
		return entry, fmt.Errorf("empty key: %w", ErrLookupMiss)
	}

	text, used, err := r.Text(key, lang)
	if err != nil {
		entry.Title = r.Title(key, lang)
		return entry, err
	}
	entry.Text = text
	entry.Language = used
	entry.Title = r.Title(key, used)

	if audio, _, err := r.Audio(key, used); err == nil {
		entry.Audio = audio
	}
	return entry, nil
}

// Refresh drops all cached texts and reloads the title translations so
// that edits on disk become visible.
func (r *Resolver) Refresh() error {
	r.cache.Purge()
	titles, err := loadTitles(r.fsys)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.titles = titles
	r.mu.Unlock()
	return nil
}
