package bindfile

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/symtab-dev/symtab/pkg/symtab"
	"github.com/symtab-dev/symtab/pkg/vals"
)

// Export converts the bindings of v, including those of nested namespaces,
// to plain Go values in the shape accepted by Load: scalars as their content,
// sequences as slices, maps as maps, callables as their names and nested
// namespaces as nested maps.
func Export(v *symtab.View) (map[string]any, error) {
	keys, err := symtab.Collect(v.Keys)
	if err != nil {
		return nil, err
	}
	m := make(map[string]any, len(keys))
	for _, key := range keys {
		value, ok := v.Fetch(key)
		if !ok {
			continue
		}
		exported, err := exportValue(value)
		if err != nil {
			return nil, err
		}
		m[key] = exported
	}
	return m, nil
}

func exportValue(value any) (any, error) {
	switch value := value.(type) {
	case *symtab.View:
		return Export(value)
	case *vals.Cell:
		return value.Get(), nil
	case *vals.Array:
		return value.Elems(), nil
	case *vals.Hash:
		m := make(map[string]any, value.Len())
		for _, k := range value.Keys() {
			m[k], _ = value.Index(k)
		}
		return m, nil
	case *vals.Fn:
		return value.Name(), nil
	}
	return nil, fmt.Errorf("cannot export %s", vals.KindName(value))
}

// ExportTree converts the Tree of v to nested maps.
func ExportTree(v *symtab.View) (map[string]any, error) {
	tree, err := v.Tree()
	if err != nil {
		return nil, err
	}
	return exportTree(tree), nil
}

func exportTree(t symtab.Tree) map[string]any {
	m := make(map[string]any, len(t))
	for name, sub := range t {
		m[name] = exportTree(sub)
	}
	return m
}

// Write writes data as a YAML document to w.
func Write(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}
