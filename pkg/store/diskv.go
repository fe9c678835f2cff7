package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/allergy/pkg/appointment"
	"tableflip.dev/allergy/pkg/record"
)

// Well known keys. They match the names the data has always been stored under.
const (
	KeyDayRecords   = "allergyTrackerData"
	KeyAppointments = "pendingAppointments"
	KeyTheme        = "theme"
)

// ErrCorrupt is wrapped by load errors caused by unreadable stored data.
var ErrCorrupt = errors.New("store: corrupt data")

// Persistence defines the persistence contract for the tracked collections.
type Persistence interface {
	LoadRecords() ([]record.DayRecord, error)
	SaveRecords(records []record.DayRecord) error
	LoadAppointments() ([]appointment.Appointment, error)
	SaveAppointments(items []appointment.Appointment) error
	Get(key string) (string, bool)
	Set(key, value string) error
	Keys() []string
	BasePath() string
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
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
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, ".tmp"),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) BasePath() string {
	return p.basePath
}

// readList decodes the JSON array stored under key into out. A missing key
// leaves out untouched.
func (p *persistence) readList(key string, out interface{}) error {
	if !p.d.Has(key) {
		return nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		return fmt.Errorf("store: read %s: %w", key, err)
	}
	if len(val) == 0 {
		return nil
	}
	if err := json.Unmarshal(val, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return nil
}

func (p *persistence) writeList(key string, in interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) LoadRecords() ([]record.DayRecord, error) {
	var list []record.DayRecord
	if err := p.readList(KeyDayRecords, &list); err != nil {
		return []record.DayRecord{}, err
	}
	if list == nil {
		list = []record.DayRecord{}
	}
	return list, nil
}

func (p *persistence) SaveRecords(records []record.DayRecord) error {
	if records == nil {
		records = []record.DayRecord{}
	}
	return p.writeList(KeyDayRecords, records)
}

func (p *persistence) LoadAppointments() ([]appointment.Appointment, error) {
	var list []appointment.Appointment
	if err := p.readList(KeyAppointments, &list); err != nil {
		return []appointment.Appointment{}, err
	}
	if list == nil {
		list = []appointment.Appointment{}
	}
	return list, nil
}

func (p *persistence) SaveAppointments(items []appointment.Appointment) error {
	if items == nil {
		items = []appointment.Appointment{}
	}
	return p.writeList(KeyAppointments, items)
}

// Get returns the raw string stored under key.
func (p *persistence) Get(key string) (string, bool) {
	if !p.d.Has(key) {
		return "", false
	}
	val, err := p.d.Read(key)
	if err != nil {
		return "", false
	}
	return string(val), true
}

// Set stores a raw string under key.
func (p *persistence) Set(key, value string) error {
	if err := p.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// Keys lists the well known keys currently present.
func (p *persistence) Keys() []string {
	var out []string
	for _, k := range []string{KeyDayRecords, KeyAppointments, KeyTheme} {
		if p.d.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// Keys are flat: every value is a file directly under the base path.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
