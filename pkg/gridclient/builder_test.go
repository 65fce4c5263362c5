package gridclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/gridiron-io/gridapi-client/pkg/gridapi"
	"github.com/gridiron-io/gridapi-client/pkg/gridclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBuilder(serverURL string) *gridclient.RequestBuilder {
	return gridclient.New(&gridapi.Config{
		Endpoint: serverURL,
		Service:  "Hardware_Server",
		Function: "getObject",
		Username: "user",
		Password: "key",
	})
}

func TestRequestBuilder_URL(t *testing.T) {
	t.Parallel()

	t.Run("endpoint service function", func(t *testing.T) {
		t.Parallel()

		builder := gridclient.New(&gridapi.Config{
			Endpoint: "https://api.example.test/rest/v3/",
			Service:  "Account",
			Function: "getHardware",
		})

		rawURL, err := builder.URL()
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.test/rest/v3/Account/getHardware", rawURL)
	})

	t.Run("missing service", func(t *testing.T) {
		t.Parallel()

		builder := gridclient.New(nil).Service("")

		_, err := builder.URL()
		require.Error(t, err)
		assert.True(t, errors.Is(err, gridapi.ErrMissingConfiguration))
	})

	t.Run("missing function", func(t *testing.T) {
		t.Parallel()

		builder := gridclient.New(nil).Function("")

		_, err := builder.URL()
		require.Error(t, err)
		assert.True(t, errors.Is(err, gridapi.ErrMissingConfiguration))
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestRequestBuilder_URLQuery(t *testing.T) {
	t.Parallel()

	t.Run("empty mask and filter omitted", func(t *testing.T) {
		t.Parallel()

		builder := gridclient.New(&gridapi.Config{
			Endpoint: "https://api.example.test/rest/v3/",
			Service:  "S",
			Function: "F",
			Limit:    25,
		})

		rawURL, err := builder.URLQuery()
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.test/rest/v3/S/F?resultLimit=0%2C25", rawURL)
	})

	t.Run("mask and filter present", func(t *testing.T) {
		t.Parallel()

		mask := gridapi.NewObjectMask()
		require.NoError(t, mask.Push("", "id", "hostname"))

		builder := gridclient.New(&gridapi.Config{
			Endpoint: "https://api.example.test/rest/v3/",
			Service:  "Account",
			Function: "getHardware",
			Mask:     mask,
			Filter:   map[string]any{"hostname": map[string]any{"operation": "db01"}},
			Limit:    10,
			Offset:   20,
		})

		rawURL, err := builder.URLQuery()
		require.NoError(t, err)

		parsed, err := url.Parse(rawURL)
		require.NoError(t, err)

		query := parsed.Query()
		assert.Equal(t, "mask[hostname,id]", query.Get("objectMask"))
		assert.JSONEq(t, `{"hostname":{"operation":"db01"}}`, query.Get("objectFilter"))
		assert.Equal(t, "20,10", query.Get("resultLimit"))
	})

	t.Run("empty filter object omitted", func(t *testing.T) {
		t.Parallel()

		builder := gridclient.New(&gridapi.Config{
			Endpoint: "https://api.example.test/rest/v3/",
			Service:  "S",
			Function: "F",
			Filter:   map[string]any{},
		})

		rawURL, err := builder.URLQuery()
		require.NoError(t, err)
		assert.NotContains(t, rawURL, "objectFilter")
	})

	t.Run("page derives offset", func(t *testing.T) {
		t.Parallel()

		builder := gridclient.New(&gridapi.Config{
			Endpoint: "https://api.example.test/rest/v3/",
			Service:  "S",
			Function: "F",
		}).Limit(10).Page(3)

		rawURL, err := builder.URLQuery()
		require.NoError(t, err)

		parsed, err := url.Parse(rawURL)
		require.NoError(t, err)
		assert.Equal(t, "20,10", parsed.Query().Get("resultLimit"))
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestRequestBuilder_Exec(t *testing.T) {
	t.Parallel()

	t.Run("get with query", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/Hardware_Server/getObject", request.URL.Path)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "0,25", request.URL.Query().Get("resultLimit"))
			assert.Equal(t, "mask[id]", request.URL.Query().Get("objectMask"))

			username, password, ok := request.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "user", username)
			assert.Equal(t, "key", password)

			writer.Header().Set("Gridiron-Total-Items", "1")
			_ = json.NewEncoder(writer).Encode(map[string]any{"id": 1403})
		}))
		defer server.Close()

		builder := testBuilder(server.URL)
		require.NoError(t, builder.ObjectMask().Push("", "id"))

		result, err := builder.Exec(context.Background())
		require.NoError(t, err)

		rec, ok := gridapi.AsRecord(result)
		require.True(t, ok)
		assert.Equal(t, 1403, rec.Int("id"))

		total, ok := builder.TotalItems()
		assert.True(t, ok)
		assert.Equal(t, 1, total)
		assert.Positive(t, builder.Duration())
	})

	t.Run("post uses bare url and body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Empty(t, request.URL.RawQuery)

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "db01", body["hostname"])

			_ = json.NewEncoder(writer).Encode(true)
		}))
		defer server.Close()

		builder := testBuilder(server.URL).
			Function("editObject").
			Method("post").
			Body(map[string]string{"hostname": "db01"})

		result, err := builder.Exec(context.Background())
		require.NoError(t, err)
		assert.Equal(t, true, result)
	})

	t.Run("without credentials no call is made", func(t *testing.T) {
		t.Parallel()

		calls := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls++

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		builder := gridclient.New(&gridapi.Config{Endpoint: server.URL})

		_, err := builder.Exec(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, gridapi.ErrAuthenticationUnavailable))
		assert.Equal(t, 0, calls)
		assert.Nil(t, builder.LastResponse())
	})

	t.Run("remote error propagates", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(writer).Encode(map[string]string{
				"error": "Object does not exist",
				"code":  "GridIron_Exception_ObjectNotFound",
			})
		}))
		defer server.Close()

		builder := testBuilder(server.URL)

		_, err := builder.Exec(context.Background())
		require.Error(t, err)
		assert.True(t, gridapi.IsRemoteError(err))
	})

	t.Run("result state overwritten per call", func(t *testing.T) {
		t.Parallel()

		total := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			total += 10
			writer.Header().Set("Gridiron-Total-Items", strconv.Itoa(total))
			_ = json.NewEncoder(writer).Encode([]any{})
		}))
		defer server.Close()

		builder := testBuilder(server.URL)

		_, err := builder.Exec(context.Background())
		require.NoError(t, err)

		first, ok := builder.TotalItems()
		require.True(t, ok)
		assert.Equal(t, 10, first)

		_, err = builder.Exec(context.Background())
		require.NoError(t, err)

		second, ok := builder.TotalItems()
		require.True(t, ok)
		assert.Equal(t, 20, second)
	})

	t.Run("total items before any call", func(t *testing.T) {
		t.Parallel()

		builder := gridclient.New(nil)

		_, ok := builder.TotalItems()
		assert.False(t, ok)
		assert.Zero(t, builder.Duration())
	})

	t.Run("total items header absent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]any{})
		}))
		defer server.Close()

		builder := testBuilder(server.URL)

		_, err := builder.Exec(context.Background())
		require.NoError(t, err)

		total, ok := builder.TotalItems()
		assert.True(t, ok)
		assert.Equal(t, 0, total)
	})
}

func TestRequestBuilder_ExecInto(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_ = json.NewEncoder(writer).Encode(map[string]any{"id": 1403, "hostname": "db01"})
	}))
	defer server.Close()

	builder := testBuilder(server.URL)

	var out struct {
		ID       int    `json:"id"`
		Hostname string `json:"hostname"`
	}

	require.NoError(t, builder.ExecInto(context.Background(), &out))
	assert.Equal(t, 1403, out.ID)
	assert.Equal(t, "db01", out.Hostname)
}

func TestRequestBuilder_Chaining(t *testing.T) {
	t.Parallel()

	builder := gridclient.New(nil)

	// Every setter returns the same builder.
	same := builder.
		Endpoint("api.example.test").
		Service("Account").
		Function("getHardware").
		Search(map[string]any{"hostname": "db01"}).
		Limit(10).
		Offset(5).
		Method("GET").
		Username("user").
		Password("key").
		PageDelay(0)

	assert.Same(t, builder, same)

	rawURL, err := builder.URL()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.test/Account/getHardware", rawURL)
}
