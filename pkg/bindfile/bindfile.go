// Package bindfile reads and writes binding files, YAML documents that
// describe the bindings of a namespace tree.
//
// The top-level mapping of a binding file uses the same keys as a View:
//
//	$count: 3
//	"@list": [a, b, c]
//	"%env": {HOME: /root}
//	"&greet": greet
//	Sub:
//	  $x: hello
//
// Scalars may hold any YAML scalar, sequences and maps hold decoded YAML
// values, callables name a function from a table supplied by the caller, and
// bare keys introduce nested namespaces.
package bindfile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/symtab-dev/symtab/pkg/errutil"
	"github.com/symtab-dev/symtab/pkg/logutil"
	"github.com/symtab-dev/symtab/pkg/symtab"
	"github.com/symtab-dev/symtab/pkg/vals"
)

var logger = logutil.GetLogger("[bindfile] ")

// EntryError is returned for an entry of a binding file that cannot be bound.
type EntryError struct {
	Line, Column int
	Key          string
	Msg          string
}

func (e EntryError) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Column, e.Key, e.Msg)
}

// Load reads a binding file from r and binds its entries in v. Callables are
// looked up in fns by name.
//
// A syntactically invalid document is rejected as a whole. Otherwise, every
// valid entry is bound, and errors for the invalid ones are combined with
// errutil.Multi.
func Load(r io.Reader, v *symtab.View, fns map[string]*vals.Fn) error {
	var doc yaml.Node
	err := yaml.NewDecoder(r).Decode(&doc)
	if errors.Is(err, io.EOF) {
		return nil
	} else if err != nil {
		return fmt.Errorf("parse binding file: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil
		}
		root = root.Content[0]
	}
	if isNull(root) {
		return nil
	}
	if root.Kind != yaml.MappingNode {
		return EntryError{root.Line, root.Column, v.Name(), "binding file must be a mapping"}
	}
	l := loader{fns}
	return l.loadMapping(root, v)
}

type loader struct {
	fns map[string]*vals.Fn
}

func (l loader) loadMapping(node *yaml.Node, v *symtab.View) error {
	var errs []error
	for i := 0; i+1 < len(node.Content); i += 2 {
		errs = append(errs, l.loadEntry(node.Content[i], node.Content[i+1], v))
	}
	return errutil.Multi(errs...)
}

func (l loader) loadEntry(keyNode, valueNode *yaml.Node, v *symtab.View) error {
	key := keyNode.Value
	entryErr := func(format string, args ...any) error {
		return EntryError{keyNode.Line, keyNode.Column, key, fmt.Sprintf(format, args...)}
	}
	k, ok := symtab.ParseKey(key)
	if !ok || keyNode.Kind != yaml.ScalarNode {
		return entryErr("invalid key")
	}
	if valueNode.Kind == yaml.AliasNode {
		valueNode = valueNode.Alias
	}

	if k.IsNs {
		if isNull(valueNode) {
			return nil
		}
		if valueNode.Kind != yaml.MappingNode {
			return entryErr("namespace must be a mapping")
		}
		sub, ok := v.Fetch(key)
		if !ok {
			return entryErr("namespace not addressable")
		}
		return l.loadMapping(valueNode, sub.(*symtab.View))
	}

	value, err := l.decode(k.Kind, valueNode)
	if err != nil {
		return entryErr("%v", err)
	}
	if err := v.Store(key, value); err != nil {
		return entryErr("%v", err)
	}
	logger.Printf("bound %s in %s", key, v.Name())
	return nil
}

func (l loader) decode(k vals.Kind, node *yaml.Node) (any, error) {
	switch k {
	case vals.Scalar:
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("scalar must be a YAML scalar")
		}
		var x any
		if err := node.Decode(&x); err != nil {
			return nil, err
		}
		return vals.NewCell(x), nil
	case vals.Sequence:
		if isNull(node) {
			return vals.NewArray(), nil
		}
		var elems []any
		if err := node.Decode(&elems); err != nil {
			return nil, err
		}
		return vals.NewArray(elems...), nil
	case vals.Map:
		h := vals.NewHash()
		if isNull(node) {
			return h, nil
		}
		var m map[string]any
		if err := node.Decode(&m); err != nil {
			return nil, err
		}
		for key, value := range m {
			h.Assoc(key, value)
		}
		return h, nil
	case vals.Callable:
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("callable must be the name of a function")
		}
		fn, ok := l.fns[node.Value]
		if !ok {
			return nil, fmt.Errorf("unknown callable %q", node.Value)
		}
		return fn, nil
	}
	return nil, fmt.Errorf("bad kind %v", k)
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
