package docs

import (
	"reflect"
	"strings"

	"litten/types"

	"github.com/getkin/kin-openapi/openapi3gen"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var api = Openapi{
	OpenAPI: "3.0.3",
	Info: Info{
		Title: "Litten API",
		Description: `
Welcome to the Litten API documentation!

This API powers the bot directory: browsing and searching listings, voting
and vote eligibility, listing management and partner management.
`,
		TermsOfService: "https://litten.site/terms",
		Version:        "1.0",
		Contact: Contact{
			Name:  "Litten",
			URL:   "https://litten.site",
			Email: "support@litten.site",
		},
		License: License{
			Name: "MIT",
			URL:  "https://opensource.org/licenses/MIT",
		},
	},
	Servers: []Server{
		{
			URL:         "https://api.litten.site",
			Description: "Litten API",
			Variables:   map[string]any{},
		},
	},
	Components: Component{
		Schemas:       make(map[string]any),
		Security:      make(map[string]Security),
		RequestBodies: make(map[string]ReqBody),
	},
	Paths: orderedmap.New[string, Path](),
}

var IdSchema any
var BoolSchema any

func init() {
	var err error

	badRequestSchema, err := openapi3gen.NewSchemaRefForValue(types.ApiError{}, nil)

	if err != nil {
		panic(err)
	}

	IdSchema, err = openapi3gen.NewSchemaRefForValue("1234567890", nil)

	if err != nil {
		panic(err)
	}

	BoolSchema, err = openapi3gen.NewSchemaRefForValue(true, nil)

	if err != nil {
		panic(err)
	}

	api.Components.Schemas["ApiError"] = badRequestSchema
}

func AddTag(name, description string) {
	api.Tags = append(api.Tags, Tag{
		Name:        name,
		Description: description,
	})
}

func AddSecuritySchema(id, header, description string) {
	api.Components.Security[id] = Security{
		Type:        "apiKey",
		Name:        header,
		In:          "header",
		Description: description,
	}
}

func schemaName(v any) string {
	name := reflect.TypeOf(v).String()

	for _, c := range []string{"[", "]", "{", "}", " "} {
		name = strings.ReplaceAll(name, c, "-")
	}

	name = strings.TrimSuffix(name, "-")

	return strings.ReplaceAll(name, "docs.", "")
}

// Route adds a route to the openapi document. Returning the doc allows the
// route framework to verify it against the declared api.Route.
func Route(doc *Doc) *Doc {
	if doc.Resp == nil {
		panic("docs: no response type set for " + doc.OpId)
	}

	respName := schemaName(doc.Resp)

	if _, ok := api.Components.Schemas[respName]; !ok {
		schemaRef, err := openapi3gen.NewSchemaRefForValue(doc.Resp, nil)

		if err != nil {
			panic(err)
		}

		api.Components.Schemas[respName] = schemaRef
	}

	var reqBody *Ref

	if doc.Req != nil {
		schemaRef, err := openapi3gen.NewSchemaRefForValue(doc.Req, nil)

		if err != nil {
			panic(err)
		}

		reqName := "req-" + schemaName(doc.Req)

		api.Components.RequestBodies[reqName] = ReqBody{
			Description: "Request body",
			Required:    true,
			Content: map[string]Content{
				"application/json": {
					Schema: schemaRef,
				},
			},
		}

		reqBody = &Ref{Ref: "#/components/requestBodies/" + reqName}
	}

	operation := &Operation{
		Tags:        doc.Tags,
		Summary:     doc.Summary,
		Description: doc.Description,
		ID:          doc.OpId,
		Parameters:  doc.Params,
		RequestBody: reqBody,
		Responses: map[string]Response{
			"200": {
				Description: "Success",
				Content: map[string]SchemaResp{
					"application/json": {
						Schema: Ref{Ref: "#/components/schemas/" + respName},
					},
				},
			},
			"400": {
				Description: "Bad Request",
				Content: map[string]SchemaResp{
					"application/json": {
						Schema: Ref{Ref: "#/components/schemas/ApiError"},
					},
				},
			},
		},
	}

	authType := doc.AuthType

	if len(authType) == 0 {
		operation.Security = []map[string][]string{}
	}

	for _, auth := range authType {
		operation.Security = append(operation.Security, map[string][]string{
			string(auth): {},
		})
	}

	if doc.Params == nil {
		operation.Parameters = []Parameter{}
	}

	path, _ := api.Paths.Get(doc.Path)

	switch strings.ToLower(doc.Method) {
	case "get":
		path.Get = operation
	case "post":
		path.Post = operation
	case "put":
		path.Put = operation
	case "patch":
		path.Patch = operation
	case "delete":
		path.Delete = operation
	default:
		panic("docs: unknown method " + doc.Method + " for " + doc.OpId)
	}

	api.Paths.Set(doc.Path, path)

	doc.added = true

	return doc
}

func GetSchema() any {
	return api
}
