package docs_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"pitch/config"
	"pitch/infras/jwt"
	"pitch/infras/otel/mocks"
	"pitch/internal/handlers/auth"
	"pitch/transport/http/middleware"
	"pitch/transport/http/router"
	"regexp"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	_ "pitch/docs"
)

type operation struct {
	Summary string `json:"summary"`
}

type document struct {
	Paths map[string]map[string]operation `json:"paths"`
}

var annotationPattern = regexp.MustCompile(`// @(Summary|Router) (.+)`)

func readDocument(t *testing.T) document {
	t.Helper()

	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	doc := document{}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	return doc
}

func TestDocs_CoverEveryRoute(t *testing.T) {
	doc := readDocument(t)

	ot := mocks.NewOtel()
	domainHandlers := router.DomainHandlers{
		Auth: auth.New(nil, ot, middleware.NewAuthMiddleware(jwt.New(&config.Config{}), ot)),
	}
	r := router.New(domainHandlers)

	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	walk := func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if len(route) > 1 {
			route = strings.TrimSuffix(route, "/")
		}

		_, ok := doc.Paths[route][strings.ToLower(method)]
		assert.True(t, ok, "%s %s is not documented", method, route)

		return nil
	}

	require.NoError(t, chi.Walk(mux, walk))
}

func TestDocs_MatchHandlerAnnotations(t *testing.T) {
	doc := readDocument(t)

	files, err := filepath.Glob("../internal/handlers/*/handler.go")
	require.NoError(t, err)
	files = append(files, "../transport/http/http.go")

	checked := 0

	for _, file := range files {
		source, err := os.ReadFile(file)
		require.NoError(t, err)

		summary := ""

		for _, match := range annotationPattern.FindAllStringSubmatch(string(source), -1) {
			if match[1] == "Summary" {
				summary = match[2]

				continue
			}

			path, method, ok := strings.Cut(match[2], " ")
			require.True(t, ok, match[2])

			method = strings.ToLower(strings.Trim(method, "[]"))

			op, ok := doc.Paths[path][method]
			if assert.True(t, ok, "%s %s missing from docs", method, path) {
				assert.Equal(t, summary, op.Summary, "%s %s", method, path)
			}

			checked++
		}
	}

	assert.Equal(t, 13, checked)
}
