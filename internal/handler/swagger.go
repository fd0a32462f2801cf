package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/docs"
	"github.com/swaggo/swag"
)

// OpenAPI3Spec represents an OpenAPI 3.0 spec structure
type OpenAPI3Spec struct {
	OpenAPI    string                 `json:"openapi"`
	Info       map[string]interface{} `json:"info"`
	Servers    []Server               `json:"servers"`
	Paths      map[string]interface{} `json:"paths"`
	Components map[string]interface{} `json:"components,omitempty"`
}

// Server represents an OpenAPI 3.0 server
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// DocsHandler serves the registered Swagger 2.0 document as OpenAPI 3.0
type DocsHandler struct {
	servers []Server
}

// NewDocsHandler creates a DocsHandler advertising the given API base URLs
func NewDocsHandler(serverURLs []string) *DocsHandler {
	servers := make([]Server, 0, len(serverURLs))
	for _, u := range serverURLs {
		if u = strings.TrimSpace(u); u != "" {
			servers = append(servers, Server{URL: u})
		}
	}
	return &DocsHandler{servers: servers}
}

// ServeOpenAPI3Spec handles GET /api/v1/openapi.json
func (h *DocsHandler) ServeOpenAPI3Spec(c echo.Context) error {
	spec, err := h.build()
	if err != nil {
		return NewInternalError(c, "Failed to read API description")
	}
	return c.JSON(http.StatusOK, spec)
}

func (h *DocsHandler) build() (*OpenAPI3Spec, error) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return nil, err
	}

	var swagger2 map[string]interface{}
	if err := json.Unmarshal([]byte(doc), &swagger2); err != nil {
		return nil, err
	}

	info, _ := swagger2["info"].(map[string]interface{})

	paths := make(map[string]interface{})
	if rawPaths, ok := swagger2["paths"].(map[string]interface{}); ok {
		for path, item := range rawPaths {
			methods, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			converted := make(map[string]interface{}, len(methods))
			for method, operation := range methods {
				if o, ok := operation.(map[string]interface{}); ok {
					converted[method] = transformOperation(o)
				}
			}
			paths[path] = converted
		}
	}

	components := make(map[string]interface{})
	if secDefs, ok := swagger2["securityDefinitions"].(map[string]interface{}); ok {
		components["securitySchemes"] = transformSecuritySchemes(secDefs)
	}
	if definitions, ok := swagger2["definitions"].(map[string]interface{}); ok {
		components["schemas"] = transformRefs(definitions)
	}

	servers := h.servers
	if len(servers) == 0 {
		base, _ := swagger2["basePath"].(string)
		servers = []Server{{URL: base}}
	}

	return &OpenAPI3Spec{
		OpenAPI:    "3.0.3",
		Info:       info,
		Servers:    servers,
		Paths:      paths,
		Components: components,
	}, nil
}

// transformOperation moves body parameters into requestBody and wraps response
// schemas in content keyed by the operation's media types.
func transformOperation(op map[string]interface{}) map[string]interface{} {
	consumes := mediaTypes(op["consumes"])
	produces := mediaTypes(op["produces"])

	result := make(map[string]interface{})
	for key, value := range op {
		switch key {
		case "consumes", "produces", "parameters", "responses":
		default:
			result[key] = transformRefs(value)
		}
	}

	if params, ok := op["parameters"].([]interface{}); ok {
		converted := make([]interface{}, 0, len(params))
		for _, p := range params {
			param, ok := p.(map[string]interface{})
			if !ok {
				continue
			}
			if param["in"] == "body" {
				result["requestBody"] = map[string]interface{}{
					"description": param["description"],
					"required":    param["required"],
					"content":     contentFor(consumes, transformRefs(param["schema"])),
				}
				continue
			}
			converted = append(converted, transformParameter(param))
		}
		if len(converted) > 0 {
			result["parameters"] = converted
		}
	}

	if responses, ok := op["responses"].(map[string]interface{}); ok {
		converted := make(map[string]interface{}, len(responses))
		for code, r := range responses {
			resp, ok := r.(map[string]interface{})
			if !ok {
				continue
			}
			out := map[string]interface{}{"description": resp["description"]}
			if schema, ok := resp["schema"].(map[string]interface{}); ok {
				if schema["type"] == "file" {
					schema = map[string]interface{}{"type": "string", "format": "binary"}
				}
				out["content"] = contentFor(produces, transformRefs(schema))
			}
			converted[code] = out
		}
		result["responses"] = converted
	}

	return result
}

func mediaTypes(v interface{}) []string {
	list, _ := v.([]interface{})
	types := make([]string, 0, len(list))
	for _, t := range list {
		if s, ok := t.(string); ok {
			types = append(types, s)
		}
	}
	if len(types) == 0 {
		types = append(types, echo.MIMEApplicationJSON)
	}
	return types
}

func contentFor(types []string, schema interface{}) map[string]interface{} {
	content := make(map[string]interface{}, len(types))
	for _, t := range types {
		content[t] = map[string]interface{}{"schema": schema}
	}
	return content
}

// transformSecuritySchemes maps the header API key onto an http bearer scheme
func transformSecuritySchemes(defs map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(defs))
	for name, d := range defs {
		def, ok := d.(map[string]interface{})
		if ok && def["type"] == "apiKey" && def["name"] == echo.HeaderAuthorization {
			result[name] = map[string]interface{}{
				"type":         "http",
				"scheme":       "bearer",
				"bearerFormat": "JWT",
				"description":  def["description"],
			}
			continue
		}
		result[name] = d
	}
	return result
}

// transformRefs rewrites $ref from #/definitions/ to #/components/schemas/
func transformRefs(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			if ref, ok := value.(string); ok && key == "$ref" {
				result[key] = strings.Replace(ref, "#/definitions/", "#/components/schemas/", 1)
				continue
			}
			result[key] = transformRefs(value)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = transformRefs(item)
		}
		return result
	default:
		return data
	}
}

// transformParameter converts a Swagger 2.0 path or query parameter to OpenAPI 3.0
func transformParameter(param map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{})
	for _, field := range []string{"name", "in", "description", "required"} {
		if val, ok := param[field]; ok {
			result[field] = val
		}
	}

	schema := make(map[string]interface{})
	for _, field := range []string{"type", "format", "enum", "default", "minimum", "maximum", "items"} {
		if val, ok := param[field]; ok {
			schema[field] = transformRefs(val)
		}
	}
	if len(schema) > 0 {
		result["schema"] = schema
	}
	return result
}
