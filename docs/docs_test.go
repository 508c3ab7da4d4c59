package docs

import (
	"encoding/json"
	"testing"
)

func TestSwaggerDocListsRoutes(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]struct {
			Summary string `json:"summary"`
		} `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("rendered doc is not valid JSON: %v", err)
	}
	if len(doc.Paths) == 0 {
		t.Fatal("rendered doc has no paths")
	}
	for _, route := range []string{
		"/api/v1/auth/login",
		"/api/v1/jobs",
		"/api/v1/applications/{id}/status",
		"/api/v1/dashboard/admin",
	} {
		if _, ok := doc.Paths[route]; !ok {
			t.Errorf("doc is missing route %s", route)
		}
	}
	for _, def := range []string{"domain.Job", "handler.tokenResponse"} {
		if _, ok := doc.Definitions[def]; !ok {
			t.Errorf("doc is missing definition %s", def)
		}
	}
}
