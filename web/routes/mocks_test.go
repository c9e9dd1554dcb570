package routes_test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/piperubio/registry/model"
	"github.com/piperubio/registry/registry"
	"github.com/piperubio/registry/web/routes"
)

// SourceMock is a simple manual mock implementation of registry.Source.
type SourceMock struct {
	IndexDoc   []byte
	Components map[string][]byte
	Codes      map[string]*model.ComponentCode
	IndexError error
	CallCount  int
	LastName   string
}

func (m *SourceMock) Index(_ context.Context) ([]byte, error) {
	m.CallCount++

	return m.IndexDoc, m.IndexError
}

func (m *SourceMock) Component(_ context.Context, name string) ([]byte, error) {
	m.CallCount++
	m.LastName = name

	doc, ok := m.Components[name]
	if !ok {
		return nil, fmt.Errorf("component %s: %w", name, registry.ErrNotFound)
	}

	return doc, nil
}

func (m *SourceMock) Code(_ context.Context, name string) (*model.ComponentCode, error) {
	m.CallCount++
	m.LastName = name

	code, ok := m.Codes[name]
	if !ok {
		return nil, fmt.Errorf("component %s: %w", name, registry.ErrNotFound)
	}

	return code, nil
}

// CatalogMock serves a fixed item list.
type CatalogMock struct {
	ReturnItems []model.RegistryItem
	ReturnError error
}

func (m *CatalogMock) Items() ([]model.RegistryItem, error) {
	return m.ReturnItems, m.ReturnError
}

func (m *CatalogMock) Item(name string) (*model.RegistryItem, error) {
	if m.ReturnError != nil {
		return nil, m.ReturnError
	}

	for i := range m.ReturnItems {
		if m.ReturnItems[i].Name == name {
			return &m.ReturnItems[i], nil
		}
	}

	return nil, fmt.Errorf("item %s: %w", name, registry.ErrNotFound)
}

const descriptionSource = "export function Description() {}\nexport const DescriptionItem = () => null\n"

const descriptionDoc = `{"name":"description","type":"registry:ui","files":[{"path":"registry/ui/description.tsx"}]}`

// MockServerHandler helper struct for testing
type MockServerHandler struct {
	*routes.ServerHandler
	MockSource  *SourceMock
	MockCatalog *CatalogMock
}

func setupMockServerHandler() MockServerHandler {
	source := &SourceMock{
		IndexDoc:   []byte(`{"name":"piperubio","items":[{"name":"description"}]}`),
		Components: map[string][]byte{"description": []byte(descriptionDoc)},
		Codes: map[string]*model.ComponentCode{
			"description": registry.NewComponentCode(
				model.RegistryItem{Name: "description"},
				[]model.ComponentFile{{Path: "registry/ui/description.tsx", Content: descriptionSource}}),
		},
	}

	catalog := &CatalogMock{
		ReturnItems: []model.RegistryItem{{
			Name:        "description",
			Title:       "Description",
			Description: "A **responsive** key/value grid.",
			Type:        "registry:ui",
		}},
	}

	return MockServerHandler{
		ServerHandler: routes.NewServerHandler(source, catalog, "https://registry.example.com"),
		MockSource:    source,
		MockCatalog:   catalog,
	}
}

// withName attaches the {name} route parameter the router would have set.
func withName(r *http.Request, name string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("name", name)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
