// Package catalog lists the typed accessor names that may follow `env.` in a
// settings file, e.g. `env.bool(...)` or `env.db_url(...)`.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// MemberKind tells whether a reference member is callable on an instance or
// only at the type level.
type MemberKind string

const (
	KindInstance MemberKind = "instance"
	KindStatic   MemberKind = "static"
	KindClass    MemberKind = "class"
)

// Member is one entry of a reference accessor definition.
type Member struct {
	Name string     `toml:"name"`
	Kind MemberKind `toml:"kind"`
}

// EnvReference describes the members of django-environ's Env class.
var EnvReference = []Member{
	{Name: "__class__", Kind: KindInstance},
	{Name: "__doc__", Kind: KindInstance},
	{Name: "__module__", Kind: KindInstance},
	{Name: "__init__", Kind: KindInstance},
	{Name: "__call__", Kind: KindInstance},
	{Name: "__contains__", Kind: KindInstance},
	{Name: "_cast", Kind: KindInstance},
	{Name: "bool", Kind: KindInstance},
	{Name: "bytes", Kind: KindInstance},
	{Name: "cache", Kind: KindInstance},
	{Name: "cache_url", Kind: KindInstance},
	{Name: "cache_url_config", Kind: KindClass},
	{Name: "channels", Kind: KindInstance},
	{Name: "channels_url", Kind: KindInstance},
	{Name: "channels_url_config", Kind: KindClass},
	{Name: "db", Kind: KindInstance},
	{Name: "db_url", Kind: KindInstance},
	{Name: "db_url_config", Kind: KindClass},
	{Name: "dict", Kind: KindInstance},
	{Name: "email", Kind: KindInstance},
	{Name: "email_url", Kind: KindInstance},
	{Name: "email_url_config", Kind: KindClass},
	{Name: "float", Kind: KindInstance},
	{Name: "get_value", Kind: KindInstance},
	{Name: "int", Kind: KindInstance},
	{Name: "json", Kind: KindInstance},
	{Name: "list", Kind: KindInstance},
	{Name: "parse_value", Kind: KindClass},
	{Name: "path", Kind: KindInstance},
	{Name: "read_env", Kind: KindClass},
	{Name: "search_url", Kind: KindInstance},
	{Name: "search_url_config", Kind: KindClass},
	{Name: "str", Kind: KindInstance},
	{Name: "tuple", Kind: KindInstance},
	{Name: "url", Kind: KindInstance},
}

var objectMachinery = map[string]bool{
	"__class__":  true,
	"__doc__":    true,
	"__module__": true,
	"__init__":   true,
}

// Catalog is a read-only set of accessor names.
type Catalog struct {
	names map[string]struct{}
}

// ListAccessorNames keeps the instance-level, public members of reference.
func ListAccessorNames(reference []Member) *Catalog {
	c := &Catalog{names: make(map[string]struct{})}
	for _, member := range reference {
		if strings.HasPrefix(member.Name, "_") || objectMachinery[member.Name] {
			continue
		}
		if member.Kind == KindStatic || member.Kind == KindClass {
			continue
		}
		c.names[member.Name] = struct{}{}
	}
	return c
}

// Default returns the catalog derived from EnvReference.
func Default() *Catalog {
	return ListAccessorNames(EnvReference)
}

// New builds a catalog from plain instance accessor names.
func New(names ...string) *Catalog {
	members := make([]Member, 0, len(names))
	for _, name := range names {
		members = append(members, Member{Name: name, Kind: KindInstance})
	}
	return ListAccessorNames(members)
}

// With returns a copy of c extended with extra names. Names are filtered by
// the same rules as ListAccessorNames.
func (c *Catalog) With(extra ...string) *Catalog {
	merged := New(extra...)
	for name := range c.names {
		merged.names[name] = struct{}{}
	}
	return merged
}

func (c *Catalog) Contains(name string) bool {
	_, ok := c.names[name]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.names)
}

// Names returns the accessor names sorted alphabetically.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.names))
	for name := range c.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type catalogFile struct {
	Accessor []Member `toml:"accessor"`
}

// Decode reads a TOML reference definition:
//
//	[[accessor]]
//	name = "str"
//	kind = "instance"
//
// A missing kind means "instance".
func Decode(data string) (*Catalog, error) {
	var file catalogFile
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode accessor catalog: %w", err)
	}

	for i, member := range file.Accessor {
		switch member.Kind {
		case "":
			file.Accessor[i].Kind = KindInstance
		case KindInstance, KindStatic, KindClass:
		default:
			return nil, fmt.Errorf("accessor %q has unknown kind %q", member.Name, member.Kind)
		}
	}

	return ListAccessorNames(file.Accessor), nil
}
