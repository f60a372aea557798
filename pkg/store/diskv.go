package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"tableflip.dev/timetable/pkg/lecture"
)

// Option configures a disk store.
type Option func(*persistence)

// WithLogger routes store diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(p *persistence) {
		p.log = l
	}
}

// Load creates a Store backed by diskv using the provided config.
func Load(cfg Config, opts ...Option) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			// Other processes write pages too, so reads always hit the disk.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      *zap.Logger
}

func (p *persistence) Load(key string) (*lecture.State, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}
	sk := StorageKey(key)
	if !p.d.Has(sk) {
		return nil, false, nil
	}
	val, err := p.d.Read(sk)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("store: read %q: %w", key, err)
	}
	s := &lecture.State{}
	if err := json.Unmarshal(val, s); err != nil {
		return nil, false, fmt.Errorf("store: decode %q: %w", key, err)
	}
	return normalize(s), true, nil
}

func (p *persistence) Save(key string, s *lecture.State) error {
	if key == "" {
		return ErrEmptyKey
	}
	if s == nil {
		return fmt.Errorf("store: save %q: nil state", key)
	}
	data, err := encode(s)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", key, err)
	}
	if err := p.d.Write(StorageKey(key), data); err != nil {
		return fmt.Errorf("store: write %q: %w", key, err)
	}
	p.log.Debug("saved page", zap.String("key", key), zap.Int("lectures", len(s.Lectures)))
	return nil
}

func (p *persistence) Remove(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := p.d.Erase(StorageKey(key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("store: erase %q: %w", key, err)
	}
	p.log.Debug("removed page", zap.String("key", key))
	return nil
}

func (p *persistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.KeysPrefix(Prefix, ctx.Done()) {
		if page, ok := PageKey(key); ok && page != "" {
			keys = append(keys, page)
		}
	}
	sort.Strings(keys)
	return keys
}

// keyToPathTransform maps "state/<page>" to the file state/<base64url(page)>
// so any page title is a safe file name.
func keyToPathTransform(s string) *diskv.PathKey {
	i := strings.Index(s, "/")
	if i < 0 {
		return &diskv.PathKey{FileName: encodeName(s)}
	}
	return &diskv.PathKey{
		Path:     []string{s[:i]},
		FileName: encodeName(s[i+1:]),
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	name, ok := decodeName(pathKey.FileName)
	if !ok {
		name = pathKey.FileName
	}
	if len(pathKey.Path) == 0 {
		return name
	}
	return fmt.Sprintf("%s/%s", strings.Join(pathKey.Path, "/"), name)
}

func encodeName(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func decodeName(s string) (string, bool) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return "", false
	}
	return string(b), true
}
