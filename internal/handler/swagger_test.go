package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeOpenAPI3Spec(t *testing.T) {
	h := NewDocsHandler([]string{"https://api.ledgerly.app/api/v1", " "})
	c, rec := newRequestContext(echo.New(), http.MethodGet, "/api/v1/openapi.json", "", uuid.Nil)

	require.NoError(t, h.ServeOpenAPI3Spec(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var spec map[string]interface{}
	decodeJSON(t, rec, &spec)

	assert.Equal(t, "3.0.3", spec["openapi"])
	servers := spec["servers"].([]interface{})
	require.Len(t, servers, 1)
	assert.Equal(t, "https://api.ledgerly.app/api/v1", servers[0].(map[string]interface{})["url"])

	create := spec["paths"].(map[string]interface{})["/transactions"].(map[string]interface{})["post"].(map[string]interface{})
	body := create["requestBody"].(map[string]interface{})
	schema := body["content"].(map[string]interface{})["application/json"].(map[string]interface{})["schema"].(map[string]interface{})
	assert.Equal(t, "#/components/schemas/domain.TransactionInput", schema["$ref"])
	assert.NotContains(t, create, "parameters", "body parameters move to requestBody")

	created := create["responses"].(map[string]interface{})["201"].(map[string]interface{})
	assert.Contains(t, created["content"], "application/json")

	schemes := spec["components"].(map[string]interface{})["securitySchemes"].(map[string]interface{})
	bearer := schemes["BearerAuth"].(map[string]interface{})
	assert.Equal(t, "http", bearer["type"])
	assert.Equal(t, "bearer", bearer["scheme"])
}

func TestServeOpenAPI3Spec_ExportIsBinary(t *testing.T) {
	spec, err := NewDocsHandler(nil).build()
	require.NoError(t, err)

	require.Len(t, spec.Servers, 1)
	assert.Equal(t, "/api/v1", spec.Servers[0].URL)

	export := spec.Paths["/transactions/export"].(map[string]interface{})["get"].(map[string]interface{})
	ok := export["responses"].(map[string]interface{})["200"].(map[string]interface{})
	content := ok["content"].(map[string]interface{})
	schema := content[xlsxContentType].(map[string]interface{})["schema"].(map[string]interface{})
	assert.Equal(t, "binary", schema["format"])

	params := export["parameters"].([]interface{})
	first := params[0].(map[string]interface{})
	assert.Equal(t, "query", first["in"])
	assert.Contains(t, first, "schema")
}
