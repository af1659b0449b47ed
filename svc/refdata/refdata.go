package refdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/atnchile/portal/pkg/cache"
	"github.com/atnchile/portal/pkg/logger"
)

const (
	countriesFile = "paises.json"
	regionsFile   = "regionesycomunas.json"
	societiesFile = "sociedades.json"

	// OtherSociety is appended to every society list so authors can name one
	// that is not on file.
	OtherSociety = "Otra"

	ScopeAudiovisual = "Audiovisual"
	ScopeDramatic    = "Dramático"
)

var classes = map[string][]string{
	ScopeAudiovisual: {"Director", "Guionista"},
	ScopeDramatic:    {"Dramaturgo", "Coreógrafo", "Compositor", "Traductor"},
}

var scopes = []string{ScopeAudiovisual, ScopeDramatic}

type countryRecord struct {
	Name string `json:"Nombre del país"`
}

type communeRecord struct {
	Region  string `json:"Región"`
	Commune string `json:"Comuna"`
}

type societyRecord struct {
	Country string `json:"País"`
	Society string `json:"Sociedad"`
}

type dataset struct {
	countries []countryRecord
	communes  []communeRecord
	societies []societyRecord
}

// Store serves the reference lists behind the wizard's select inputs.
// Files are read on first use; derived lists are memoized.
type Store struct {
	fsys   fs.FS
	dir    string
	logger *slog.Logger
	lists  *cache.LRU[string, []string]
	load   func() (*dataset, error)
}

// Option configures a Store.
type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCacheSize bounds the number of memoized lists. Every region's commune
// list counts as one entry.
func WithCacheSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.lists = cache.NewLRU[string, []string](n)
		}
	}
}

// NewStore reads the JSON files in dir of fsys.
func NewStore(fsys fs.FS, dir string, opts ...Option) *Store {
	s := &Store{
		fsys:   fsys,
		dir:    dir,
		logger: logger.Discard(),
		lists:  cache.NewLRU[string, []string](64),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("refdata"))
	s.load = sync.OnceValues(s.read)
	return s
}

// Ready loads the files if needed and reports any load error.
func (s *Store) Ready() error {
	_, err := s.load()
	return err
}

// Countries returns every country in file order.
func (s *Store) Countries() ([]string, error) {
	return s.list("countries", func(d *dataset) []string {
		out := make([]string, 0, len(d.countries))
		for _, c := range d.countries {
			out = append(out, c.Name)
		}
		return unique(out)
	})
}

// Regions returns the Chilean regions in file order.
func (s *Store) Regions() ([]string, error) {
	return s.list("regions", func(d *dataset) []string {
		out := make([]string, 0, len(d.communes))
		for _, c := range d.communes {
			out = append(out, c.Region)
		}
		return unique(out)
	})
}

// Communes returns the communes of region in file order.
func (s *Store) Communes(region string) ([]string, error) {
	list, err := s.list("communes:"+region, func(d *dataset) []string {
		var out []string
		for _, c := range d.communes {
			if c.Region == region {
				out = append(out, c.Commune)
			}
		}
		return out
	})
	if err == nil && len(list) == 0 {
		return nil, fmt.Errorf("%w: region %q", ErrNotFound, region)
	}
	return list, err
}

// HasCommune reports whether commune belongs to region.
func (s *Store) HasCommune(region, commune string) bool {
	list, err := s.Communes(region)
	return err == nil && slices.Contains(list, commune)
}

// HasCountry reports whether country is on the country list.
func (s *Store) HasCountry(country string) bool {
	list, err := s.Countries()
	return err == nil && slices.Contains(list, country)
}

// SocietyCountries returns the countries with at least one society on file,
// sorted with Spanish collation.
func (s *Store) SocietyCountries() ([]string, error) {
	return s.list("society-countries", func(d *dataset) []string {
		out := make([]string, 0, len(d.societies))
		for _, soc := range d.societies {
			out = append(out, soc.Country)
		}
		out = unique(out)
		collate.New(language.Spanish).SortStrings(out)
		return out
	})
}

// Societies returns the societies of country in file order followed by OtherSociety.
func (s *Store) Societies(country string) ([]string, error) {
	return s.list("societies:"+country, func(d *dataset) []string {
		var out []string
		for _, soc := range d.societies {
			if soc.Country == country {
				out = append(out, soc.Society)
			}
		}
		return append(unique(out), OtherSociety)
	})
}

// Scopes returns the author scopes.
func Scopes() []string {
	return slices.Clone(scopes)
}

// Classes returns the author classes of scope.
func Classes(scope string) ([]string, error) {
	list, ok := classes[scope]
	if !ok {
		return nil, fmt.Errorf("%w: scope %q", ErrNotFound, scope)
	}
	return slices.Clone(list), nil
}

func (s *Store) list(key string, build func(*dataset) []string) ([]string, error) {
	if cached, ok := s.lists.Get(key); ok {
		return slices.Clone(cached), nil
	}
	d, err := s.load()
	if err != nil {
		return nil, err
	}
	list := build(d)
	s.lists.Put(key, list)
	return slices.Clone(list), nil
}

func (s *Store) read() (*dataset, error) {
	var d dataset
	err := errors.Join(
		s.decode(countriesFile, &d.countries),
		s.decode(regionsFile, &d.communes),
		s.decode(societiesFile, &d.societies),
	)
	if err != nil {
		s.logger.Error("failed to load reference data", logger.Error(err))
		return nil, err
	}
	s.logger.Debug("reference data loaded",
		slog.Int("countries", len(d.countries)),
		slog.Int("communes", len(d.communes)),
		slog.Int("societies", len(d.societies)),
	)
	return &d, nil
}

func (s *Store) decode(name string, dst any) error {
	content, err := fs.ReadFile(s.fsys, path.Join(s.dir, name))
	if err != nil {
		return errors.Join(ErrLoadFailed, err)
	}
	if err := json.Unmarshal(content, dst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLoadFailed, name, err)
	}
	return nil
}

func unique(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, v := range in {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
