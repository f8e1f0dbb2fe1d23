package predql

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/zoobzio/predql/internal/render"
	"github.com/zoobzio/predql/internal/types"
)

// Registry holds the entity mappings used to compile predicates.
// It is safe for concurrent use.
type Registry struct {
	logger  logrus.FieldLogger
	maps    map[string]*ClassMap
	mu      sync.RWMutex
	autoMap bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithAutoMap enables or disables lazy auto-mapping of unregistered Go types.
// It is enabled by default.
func WithAutoMap(enabled bool) Option {
	return func(r *Registry) {
		r.autoMap = enabled
	}
}

// WithLogger sets the logger used by the registry and its auto-mapper.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		maps:    make(map[string]*ClassMap),
		autoMap: true,
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the package-level registry used by Compile.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register builds and stores the given mappers. Registering an entity name
// twice fails with ErrAlreadyRegistered. Nothing is stored if any mapper fails.
func (r *Registry) Register(mappers ...*ClassMapper) error {
	built := make([]*ClassMap, 0, len(mappers))
	seen := make(map[string]bool, len(mappers))
	for _, m := range mappers {
		if m == nil {
			return fmt.Errorf("class mapper cannot be nil")
		}
		logger := m.logger
		if logger == logrus.FieldLogger(logrus.StandardLogger()) {
			logger = r.logger
		}
		cm, err := m.build(logger)
		if err != nil {
			return fmt.Errorf("register %s: %w", m.entity, err)
		}
		name := cm.Entity().Name
		if seen[name] {
			return fmt.Errorf("register %s: %w", name, render.ErrAlreadyRegistered)
		}
		seen[name] = true
		built = append(built, cm)
	}
	return r.store(built...)
}

func (r *Registry) store(maps ...*ClassMap) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cm := range maps {
		if _, ok := r.maps[cm.Entity().Name]; ok {
			return fmt.Errorf("register %s: %w", cm.Entity(), render.ErrAlreadyRegistered)
		}
	}
	for _, cm := range maps {
		r.maps[cm.Entity().Name] = cm
		r.logger.WithFields(logrus.Fields{
			"entity": cm.Entity().Name,
			"table":  cm.TableName(),
		}).Debug("registered mapping")
	}
	return nil
}

// Resolve returns the mapping for entity. An unregistered Go type is
// auto-mapped on first use when auto-mapping is enabled; otherwise the
// lookup fails with MappingNotFoundError.
func (r *Registry) Resolve(entity Entity) (*ClassMap, error) {
	r.mu.RLock()
	cm, ok := r.maps[entity.Name]
	r.mu.RUnlock()
	if ok {
		return cm, nil
	}

	if !r.autoMap || entity.Type == nil {
		return nil, render.MappingNotFoundError{Entity: entity.Name}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cm, ok := r.maps[entity.Name]; ok {
		return cm, nil
	}
	cm, err := newClassMapper(entity).Logger(r.logger).AutoMap().Build()
	if err != nil {
		return nil, fmt.Errorf("auto-map %s: %w", entity, err)
	}
	r.maps[entity.Name] = cm
	return cm, nil
}

// ColumnName returns the column a property of entity is stored in.
func (r *Registry) ColumnName(entity Entity, property string) (string, error) {
	cm, err := r.Resolve(entity)
	if err != nil {
		return "", err
	}
	p, ok := cm.Property(property)
	if !ok {
		return "", render.UnknownPropertyError{Entity: entity.Name, Property: property}
	}
	return p.ColumnName, nil
}

// Entities returns the names of all resolved entities, sorted.
func (r *Registry) Entities() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.maps))
	for name := range r.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks every stored mapping and reports all problems at once.
func (r *Registry) Validate() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.maps))
	for name := range r.maps {
		names = append(names, name)
	}
	sort.Strings(names)

	var result *multierror.Error
	for _, name := range names {
		result = multierror.Append(result, validateClassMap(r.maps[name])...)
	}
	return result.ErrorOrNil()
}

func validateClassMap(cm *ClassMap) []error {
	var errs []error
	name := cm.Entity().Name
	if cm.TableName() == "" {
		errs = append(errs, fmt.Errorf("%s: no table name", name))
	}

	columns := make(map[string]string)
	identities := 0
	for _, p := range cm.Properties() {
		key := strings.ToLower(p.ColumnName)
		if prev, ok := columns[key]; ok {
			errs = append(errs, fmt.Errorf("%s: properties %s and %s share column %s", name, prev, p.Name, p.ColumnName))
		} else {
			columns[key] = p.Name
		}
		if p.KeyType == types.Identity {
			identities++
		}
	}
	if identities > 1 {
		errs = append(errs, fmt.Errorf("%s: %d identity keys, at most one is allowed", name, identities))
	}
	return errs
}
