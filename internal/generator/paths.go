package generator

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// PathTable maps a normalized path to its operations by method. Paths and
// the methods under each path keep first-insertion order; replacing an
// operation does not move it. The zero value is an empty table.
type PathTable struct {
	keys  []string
	items map[string]*PathItem
}

type PathItem struct {
	methods []string
	ops     map[string]*Operation
}

// Set stores op at [path][method] and returns the operation it replaced, if any.
func (t *PathTable) Set(path, method string, op *Operation) *Operation {
	if t.items == nil {
		t.items = make(map[string]*PathItem)
	}
	item, ok := t.items[path]
	if !ok {
		item = &PathItem{ops: make(map[string]*Operation)}
		t.items[path] = item
		t.keys = append(t.keys, path)
	}

	prev, exists := item.ops[method]
	if !exists {
		item.methods = append(item.methods, method)
	}
	item.ops[method] = op
	return prev
}

func (t *PathTable) Get(path, method string) (*Operation, bool) {
	item, ok := t.items[path]
	if !ok {
		return nil, false
	}
	op, ok := item.ops[method]
	return op, ok
}

func (t *PathTable) Item(path string) (*PathItem, bool) {
	item, ok := t.items[path]
	return item, ok
}

// Paths returns the paths in insertion order.
func (t *PathTable) Paths() []string {
	return append([]string(nil), t.keys...)
}

func (t *PathTable) Len() int {
	return len(t.keys)
}

// Methods returns the methods in insertion order.
func (p *PathItem) Methods() []string {
	return append([]string(nil), p.methods...)
}

func (p *PathItem) Operation(method string) *Operation {
	return p.ops[method]
}

func (t PathTable) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, path := range t.keys {
		value, err := t.items[path].yamlNode()
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, stringNode(path), value)
	}
	return node, nil
}

func (p *PathItem) yamlNode() (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, method := range p.methods {
		value := &yaml.Node{}
		if err := value.Encode(p.ops[method]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, stringNode(method), value)
	}
	return node, nil
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func (t PathTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, path := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONKey(&buf, path); err != nil {
			return nil, err
		}
		item := t.items[path]
		buf.WriteByte('{')
		for j, method := range item.methods {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONKey(&buf, method); err != nil {
				return nil, err
			}
			op, err := json.Marshal(item.ops[method])
			if err != nil {
				return nil, err
			}
			buf.Write(op)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONKey(buf *bytes.Buffer, key string) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	return nil
}
