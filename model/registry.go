package model

import "encoding/json"

type RegistryFileRef struct {
	Name   string `json:"name,omitempty"`
	Path   string `json:"path"`
	Type   string `json:"type,omitempty"`
	Target string `json:"target,omitempty"`
}

type RegistryItem struct {
	Name                 string                     `json:"name"`
	Title                string                     `json:"title,omitempty"`
	Description          string                     `json:"description,omitempty"`
	Type                 string                     `json:"type,omitempty"`
	Meta                 map[string]json.RawMessage `json:"meta,omitempty"`
	Dependencies         []string                   `json:"dependencies,omitempty"`
	RegistryDependencies []string                   `json:"registryDependencies,omitempty"`
	Files                []RegistryFileRef          `json:"files,omitempty"`
}

type Registry struct {
	Schema   string         `json:"$schema,omitempty"`
	Name     string         `json:"name,omitempty"`
	Homepage string         `json:"homepage,omitempty"`
	Items    []RegistryItem `json:"items,omitempty"`
}

// ComponentFile is a registry file with its source inlined.
type ComponentFile struct {
	Name    string `json:"name,omitempty"`
	Path    string `json:"path"`
	Type    string `json:"type,omitempty"`
	Target  string `json:"target,omitempty"`
	Content string `json:"content"`
}

// ComponentCode is the payload of the code endpoint.
type ComponentCode struct {
	Name                 string          `json:"name"`
	Files                []ComponentFile `json:"files"`
	Dependencies         []string        `json:"dependencies,omitempty"`
	RegistryDependencies []string        `json:"registryDependencies"`
}
