package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formcheck"
)

var ErrInvalidInputFile = errors.New("invalid input document")

func loadInput(path string, stdin io.Reader) (formcheck.RawInput, error) {
	r, err := openInput(path, stdin)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return readInput(r)
}

// openInput returns stdin for "-" and the named file otherwise.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

// readInput decodes a JSON or YAML mapping of field names to a scalar or a
// list of scalars. Scalars keep their source text, so 007 stays "007".
// A null value marks the field as present but empty.
func readInput(r io.Reader) (formcheck.RawInput, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return formcheck.RawInput{}, nil
		}
		return nil, errors.Join(ErrInvalidInputFile, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must map field names to values", ErrInvalidInputFile)
	}

	input := make(formcheck.RawInput, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]

		switch v.Kind {
		case yaml.ScalarNode:
			if isNull(v) {
				input[k.Value] = nil
				continue
			}
			input[k.Value] = []string{v.Value}
		case yaml.SequenceNode:
			vals := make([]string, 0, len(v.Content))
			for _, item := range v.Content {
				if item.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("%w: field %q at line %d: lists may only hold scalars", ErrInvalidInputFile, k.Value, item.Line)
				}
				if isNull(item) {
					vals = append(vals, "")
					continue
				}
				vals = append(vals, item.Value)
			}
			input[k.Value] = vals
		default:
			return nil, fmt.Errorf("%w: field %q at line %d must be a scalar or a list", ErrInvalidInputFile, k.Value, v.Line)
		}
	}
	return input, nil
}

func isNull(n *yaml.Node) bool {
	return n.Tag == "!!null"
}
