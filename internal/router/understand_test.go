package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/juris-bench/internal/apperr"
	"github.com/DjordjeVuckovic/juris-bench/internal/dictionary"
	"github.com/DjordjeVuckovic/juris-bench/internal/understanding"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDictionary = `
rupture_sans_preavis:
  intentions_utilisateur: ["rompu sans préavis"]
  concepts_juridiques_centrals: ["faute grave"]
  termes_juridiques_textes: ["préavis"]
  codes_cibles: ["Code du travail"]
  articles_cibles: ["L1234-1"]
incomplet:
  intentions_utilisateur: ["cassé"]
`

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	d, err := dictionary.Parse([]byte(testDictionary))
	require.NoError(t, err)

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewUnderstandRouter(e, understanding.NewPipeline(d)).Bind()
	return e
}

func post(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/understand", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestUnderstandHandler(t *testing.T) {
	e := newTestEcho(t)

	t.Run("intent detected", func(t *testing.T) {
		rec := post(e, `{"query":"Dans quels cas un CDI peut-il être rompu sans préavis ?"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "rupture_sans_preavis", body["intent_detected"])
		assert.Equal(t, "Dans quels cas un CDI peut-il être rompu sans préavis ? faute grave préavis", body["enriched_query"])
		assert.Equal(t, "dans quels cas un cdi peut il être rompu sans préavis", body["normalized_query"])
		assert.NotEmpty(t, body["dictionary_version"])
	})

	t.Run("no intent", func(t *testing.T) {
		rec := post(e, `{"query":"Quel temps fera-t-il ?"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Nil(t, body["intent_detected"])
		assert.Equal(t, "Quel temps fera-t-il ?", body["enriched_query"])
		assert.Equal(t, understanding.NoIntentNote, body["notes"])
	})

	t.Run("empty query", func(t *testing.T) {
		rec := post(e, `{"query":"   "}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := post(e, `{"query":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("incomplete entry is a server error", func(t *testing.T) {
		rec := post(e, `{"query":"cassé"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "schema error")
	})
}

func TestIntentsHandler(t *testing.T) {
	e := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/intents", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body IntentsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Intents, 2)
	assert.Equal(t, "rupture_sans_preavis", body.Intents[0].Key)
	assert.Equal(t, "incomplet", body.Intents[1].Key)
	assert.NotEmpty(t, body.DictionaryVersion)
}
