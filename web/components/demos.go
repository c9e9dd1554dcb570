package components

import (
	"github.com/piperubio/registry/model"
)

// Demo is one example block on the home page.
type Demo struct {
	Title   string
	Summary string
	Props   Props
	Code    string
}

var threeColumns = model.ColumnConfig{model.Base: 1, model.MD: 2, model.LG: 3}

func filled() *model.SpanSpec {
	return model.UniformSpan(model.Filled())
}

// HomeDemos lists the layout examples shown on the home page.
func HomeDemos() []Demo {
	return []Demo{
		{
			Title:   "Horizontal Layout (Default)",
			Summary: "Items arranged in a responsive grid, for traditional key-value displays.",
			Props: Props{
				Columns:   threeColumns,
				Direction: model.Horizontal,
				Entries: []Entry{
					Item{Label: "Name", Content: Text("Juan Pérez")},
					Item{Label: "Email", Content: Text("juan@ejemplo.com")},
					Item{Label: "Phone", Content: Text("+1 234 567 8900")},
					Item{Label: "Address", Span: filled(), Content: Styled("bg-blue-50 px-2 py-1 rounded", "123 Calle Principal, Ciudad, País (spans the row)")},
					Item{Label: "Department", Content: Text("Engineering")},
					Item{Label: "Role", Span: model.UniformSpan(model.Cols(2)), Content: Text("Senior Developer")},
				},
			},
			Code: `columns={{ base: 1, md: 2, lg: 3 }}
<DescriptionItem label="Address" span="filled">...</DescriptionItem>
<DescriptionItem label="Role" span={2}>...</DescriptionItem>`,
		},
		{
			Title:   "Vertical Layout",
			Summary: "Labels stacked above values, for detailed information and narrow screens.",
			Props: Props{
				Columns:   threeColumns,
				Direction: model.Vertical,
				Entries: []Entry{
					Item{Label: "Name", Content: Text("Juan Pérez")},
					Item{Label: "Email", Content: Text("juan@ejemplo.com")},
					Item{Label: "Phone", Content: Text("+1 234 567 8900")},
					Item{Label: "Bio", Span: filled(), Content: Styled("bg-green-50 px-2 py-1 rounded", "Full-stack developer working with React, Node.js and databases.")},
				},
			},
			Code: `layout="vertical" columns={{ base: 1, md: 2, lg: 3 }}`,
		},
		{
			Title:   "Horizontal Layout - Bordered",
			Summary: "Grid layout with borders, for structured data.",
			Props: Props{
				Columns: threeColumns,
				Variant: model.VariantBordered,
				Entries: []Entry{
					Item{Label: "Server", Content: Text("Production Web Server")},
					Item{Label: "Environment", Content: Styled("rounded border px-2 text-xs", "Production")},
					Item{Label: "Status", Content: Styled("text-green-600", "Healthy")},
					Item{Label: "CPU Usage", Content: Text("65%")},
					Item{Label: "Memory", Content: Text("8.2 GB / 16 GB")},
					Item{Label: "Uptime", Content: Text("45 days")},
					Item{Label: "Configuration", Span: filled(), Content: Text("nginx 1.24, Node.js 20.x, PM2 cluster mode")},
				},
			},
			Code: `variant="bordered" columns={{ base: 1, md: 2, lg: 3 }}`,
		},
		{
			Title:   "Responsive Spans",
			Summary: "Span declared per breakpoint: full row on phones, two columns at md, three at lg.",
			Props: Props{
				Columns: model.ColumnConfig{model.Base: 1, model.MD: 3, model.LG: 5},
				Entries: []Entry{
					Item{Label: "Summary", Span: model.ParseSpanSpec("base:filled,md:2,lg:3"), Content: Text("Quarterly report")},
					Item{Label: "Owner", Content: Text("Finance")},
					Item{Label: "Due", Content: Text("Friday")},
				},
			},
			Code: `span={{ base: "filled", md: 2, lg: 3 }} columns={{ base: 1, md: 3, lg: 5 }}`,
		},
		{
			Title:   "Sections",
			Summary: "Sections always span the full row and group related items.",
			Props: Props{
				Columns: model.ColumnConfig{model.Base: 1, model.LG: 2},
				Variant: model.VariantBordered,
				Entries: []Entry{
					Section{
						Label: "Personal Information",
						Children: []Entry{
							Item{Label: "Name", Content: Text("John Doe")},
							Item{Label: "Email", Content: Text("john@example.com")},
						},
					},
					Item{Label: "Department", Content: Text("Engineering")},
					Item{Label: "Location", Content: Text("San Francisco, CA")},
				},
			},
			Code: `<DescriptionSection label="Personal Information">...</DescriptionSection>`,
		},
	}
}
