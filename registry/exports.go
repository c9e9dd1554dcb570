package registry

import (
	"context"
	"fmt"
	"path"
	"slices"

	"github.com/piperubio/registry/model"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
)

// HasScriptSource reports whether a registry file is TypeScript that Exports can read.
func HasScriptSource(filePath string) bool {
	switch path.Ext(filePath) {
	case ".ts", ".tsx":
		return true
	default:
		return false
	}
}

// Exports lists the names a TypeScript/TSX module exports at top level, in
// source order. A default export without a name is reported as "default".
func Exports(ctx context.Context, source []byte) ([]string, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(tsx.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("could not parse source: %w", err)
	}

	root := tree.RootNode()
	names := make([]string, 0)

	for i := range int(root.NamedChildCount()) {
		node := root.NamedChild(i)
		if node.Type() != "export_statement" {
			continue
		}

		names = append(names, exportedNames(node, source)...)
	}

	return names, nil
}

func exportedNames(export *sitter.Node, source []byte) []string {
	if decl := export.ChildByFieldName("declaration"); decl != nil {
		if decl.Type() == "lexical_declaration" {
			var names []string

			for i := range int(decl.NamedChildCount()) {
				declarator := decl.NamedChild(i)
				if declarator.Type() != "variable_declarator" {
					continue
				}

				if name := declarator.ChildByFieldName("name"); name != nil {
					names = append(names, name.Content(source))
				}
			}

			return names
		}

		if name := decl.ChildByFieldName("name"); name != nil {
			return []string{name.Content(source)}
		}
	}

	var names []string

	for i := range int(export.NamedChildCount()) {
		child := export.NamedChild(i)
		if child.Type() != "export_clause" {
			continue
		}

		for j := range int(child.NamedChildCount()) {
			spec := child.NamedChild(j)
			if spec.Type() != "export_specifier" {
				continue
			}

			name := spec.ChildByFieldName("alias")
			if name == nil {
				name = spec.ChildByFieldName("name")
			}

			if name != nil {
				names = append(names, name.Content(source))
			}
		}
	}

	if len(names) == 0 && isDefaultExport(export) {
		if value := export.ChildByFieldName("value"); value != nil {
			if name := value.ChildByFieldName("name"); name != nil {
				return []string{name.Content(source)}
			}
		}

		return []string{"default"}
	}

	return names
}

func isDefaultExport(export *sitter.Node) bool {
	for i := range int(export.ChildCount()) {
		if export.Child(i).Type() == "default" {
			return true
		}
	}

	return false
}

// CodeExports collects the exports of every script file of a component,
// without duplicates.
func CodeExports(ctx context.Context, code *model.ComponentCode) ([]string, error) {
	var all []string

	for _, f := range code.Files {
		if !HasScriptSource(f.Path) {
			continue
		}

		names, err := Exports(ctx, []byte(f.Content))
		if err != nil {
			return nil, fmt.Errorf("could not read exports of %s: %w", f.Path, err)
		}

		for _, n := range names {
			if !slices.Contains(all, n) {
				all = append(all, n)
			}
		}
	}

	return all, nil
}
