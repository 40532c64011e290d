package apidoc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   string `json:"id" description:"Widget id"`
	Name string `json:"name" required:"true"`
}

type widgetIDParam struct {
	ID string `path:"id"`
}

type apiError struct {
	Message string `json:"message"`
}

func decode(t *testing.T, d *Document) map[string]any {
	t.Helper()
	b, err := d.MarshalJSON()
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func TestDocument_Add(t *testing.T) {
	d := New("Widget API", "1.0.0", "widgets", "Apidoc")

	require.NoError(t, d.Add(Operation{
		Method:      http.MethodGet,
		Path:        "/widgets/{id}",
		ID:          "getWidget",
		Summary:     "Get a widget",
		Description: "Fetch one widget.",
		Tags:        []string{"widgets"},
		Request:     new(widgetIDParam),
		Responses: []Response{
			{Status: http.StatusOK, Description: "The widget", Body: new(widget)},
			{Status: http.StatusNotFound, Description: "No such widget", Body: new(apiError)},
		},
	}))
	require.NoError(t, d.Add(Operation{
		Method:    http.MethodPost,
		Path:      "/widgets",
		Summary:   "Add a widget",
		Request:   new(widget),
		Responses: []Response{{Status: http.StatusCreated, Body: new(widget)}},
	}))

	doc := decode(t, d)
	assert.Equal(t, "3.0.3", doc["openapi"])

	info := doc["info"].(map[string]any)
	assert.Equal(t, "Widget API", info["title"])
	assert.Equal(t, "1.0.0", info["version"])

	paths := doc["paths"].(map[string]any)
	require.Contains(t, paths, "/widgets/{id}")
	require.Contains(t, paths, "/widgets")

	get := paths["/widgets/{id}"].(map[string]any)["get"].(map[string]any)
	assert.Equal(t, "Get a widget", get["summary"])
	assert.Equal(t, "getWidget", get["operationId"])

	responses := get["responses"].(map[string]any)
	assert.Contains(t, responses, "200")
	assert.Contains(t, responses, "404")
	assert.Equal(t, "No such widget", responses["404"].(map[string]any)["description"])

	params := get["parameters"].([]any)
	require.Len(t, params, 1)
	assert.Equal(t, "id", params[0].(map[string]any)["name"])
	assert.Equal(t, "path", params[0].(map[string]any)["in"])

	post := paths["/widgets"].(map[string]any)["post"].(map[string]any)
	assert.Contains(t, post, "requestBody")

	schemas := doc["components"].(map[string]any)["schemas"].(map[string]any)
	assert.Contains(t, schemas, "Widget")
}

func TestDocument_Add_MissingPathParam(t *testing.T) {
	d := New("Widget API", "1.0.0", "")

	err := d.Add(Operation{
		Method:    http.MethodGet,
		Path:      "/widgets/{id}",
		Responses: []Response{{Status: http.StatusOK, Body: new(widget)}},
	})
	assert.Error(t, err)
}

func TestDocument_ServeHTTP(t *testing.T) {
	d := New("Widget API", "1.0.0", "")
	require.NoError(t, d.Add(Operation{
		Method:    http.MethodGet,
		Path:      "/widgets",
		Responses: []Response{{Status: http.StatusOK, Body: new([]widget)}},
	}))

	w := httptest.NewRecorder()
	d.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"/widgets"`)
}
