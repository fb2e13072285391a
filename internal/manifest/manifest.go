package manifest

import (
	"fmt"
	"os"

	"github.com/Quincunx271/meta-dds/internal/deps"
	"github.com/Quincunx271/meta-dds/internal/json5"
	"github.com/Quincunx271/meta-dds/internal/version"
	"github.com/Quincunx271/meta-dds/internal/walk"
)

// FileName is the manifest file name at a project root.
const FileName = "meta_package.json5"

const missingMetaDDSMessage = "Do you really need meta-dds? Consider using dds proper. " +
	"If you need the build script, add an empty meta_dds: {} object in your meta_package.json5"

// Load validates an already-parsed document and returns the manifest. name
// identifies the source in error messages; pass "" for in-memory data.
func Load(n json5.Node, name string) (*Manifest, error) {
	var m Manifest
	if err := walk.Walk(n, m.schema()...); err != nil {
		return nil, wrapError(err, name)
	}
	return &m, nil
}

// LoadString parses relaxed JSON5 text and validates it.
func LoadString(text, name string) (*Manifest, error) {
	n, err := json5.Parse([]byte(text))
	if err != nil {
		return nil, wrapError(fmt.Errorf("invalid package manifest JSON5 document: %w", err), name)
	}
	return Load(n, name)
}

// LoadFile reads and validates a manifest file.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return LoadString(string(data), path)
}

// schema declares the manifest shape as walk operations. The destination
// fields are threaded in through sinks, so the schema reads top to bottom
// like the document it validates.
func (m *Manifest) schema() []walk.Op {
	return []walk.Op{
		walk.RequireType(json5.Object, "Root of package manifest should be a JSON object"),
		walk.OptionalKey("depends",
			walk.RequireType(json5.Array, "`depends' should be an array of dependencies"),
			walk.ForEach(dependencySink(&m.Depends, "depends")),
		),
		walk.OptionalKey("test_depends",
			walk.RequireType(json5.Array, "`test_depends' should be an array of dependencies"),
			walk.ForEach(dependencySink(&m.TestDepends, "test_depends")),
		),
		walk.RequiredKey("meta_dds", missingMetaDDSMessage,
			walk.RequireType(json5.Object, "`meta_dds' should be an object"),
			walk.OptionalKey("depends",
				walk.RequireType(json5.Array, "`meta_dds.depends' should be an array of dependencies"),
				walk.ForEach(metaDependencySink(&m.MetaDepends, "meta_dds.depends")),
			),
			walk.OptionalKey("test_depends",
				walk.RequireType(json5.Array, "`meta_dds.test_depends' should be an array of dependencies"),
				walk.ForEach(metaDependencySink(&m.MetaTestDepends, "meta_dds.test_depends")),
			),
		),
	}
}

// dependencySink accepts either spelling of a dependency element: a combined
// specifier string, or a single-entry object mapping the name to a range
// expression. Both produce the same Dependency, so downstream code never
// sees which one was written.
func dependencySink(dst *[]deps.Dependency, keyName string) walk.Sink {
	return func(n json5.Node) error {
		switch {
		case n.IsString():
			d, err := deps.Parse(n.AsString())
			if err != nil {
				return err
			}
			*dst = append(*dst, d)
			return nil
		case n.IsObject():
			members := n.Members()
			if len(members) != 1 {
				return walk.Reject("Dependency objects should have a single `name: version-range' entry")
			}
			d, err := entryDependency(members[0])
			if err != nil {
				return err
			}
			*dst = append(*dst, d)
			return nil
		default:
			return walk.Rejectf("`%s' should be an array of strings or objects", keyName)
		}
	}
}

// metaDependencySink is dependencySink for meta_dds lists. Object elements
// may carry extra entries past the first: those become passthrough
// configuration pairs, kept in document order.
func metaDependencySink(dst *[]MetaDependency, keyName string) walk.Sink {
	return func(n json5.Node) error {
		switch {
		case n.IsString():
			d, err := deps.Parse(n.AsString())
			if err != nil {
				return err
			}
			*dst = append(*dst, MetaDependency{Dependency: d})
			return nil
		case n.IsObject():
			members := n.Members()
			if len(members) == 0 {
				return walk.Reject("Dependency objects should have a `name: version-range' entry")
			}
			d, err := entryDependency(members[0])
			if err != nil {
				return err
			}
			md := MetaDependency{Dependency: d}
			for _, cm := range members[1:] {
				if !cm.Value.IsString() {
					return walk.Reject("Dependency object values should be strings")
				}
				md.Configuration = append(md.Configuration, ConfigPair{Key: cm.Key, Value: cm.Value.AsString()})
			}
			*dst = append(*dst, md)
			return nil
		default:
			return walk.Rejectf("`%s' should be an array of strings or objects", keyName)
		}
	}
}

// entryDependency converts one `name: range` object entry into a Dependency.
func entryDependency(m json5.Member) (deps.Dependency, error) {
	if !m.Value.IsString() {
		return deps.Dependency{}, walk.Reject("Dependency object values should be strings")
	}
	if err := deps.CheckName(m.Key); err != nil {
		return deps.Dependency{}, &deps.InvalidSpecifierError{Input: m.Key, Reason: err.Error()}
	}
	r, err := version.ParseRestricted(m.Value.AsString())
	if err != nil {
		return deps.Dependency{}, fmt.Errorf("%w in dependency declaration for %q", err, m.Key)
	}
	return deps.Dependency{Name: m.Key, Range: r}, nil
}
