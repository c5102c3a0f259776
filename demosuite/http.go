package demosuite

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"

	"github.com/launchdarkly/go-test-reporter/framework"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func HTTPSuite() *framework.Suite {
	return framework.NewSuite("HTTP",
		framework.NewCase("testStatusCode", func(t *framework.T) {
			server := startServer(t, httphelpers.HandlerWithStatus(204))
			resp, err := http.Get(server.URL)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, 204, resp.StatusCode)
		}),
		framework.NewCase("testResponseBody", func(t *framework.T) {
			headers := make(http.Header)
			headers.Set("Content-Type", "text/plain")
			server := startServer(t, httphelpers.HandlerWithResponse(200, headers, []byte("hello")))
			resp, err := http.Get(server.URL)
			require.NoError(t, err)
			defer resp.Body.Close()
			body, err := ioutil.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
			assert.Equal(t, "hello", string(body))
		}),
		framework.NewCase("testRequestIsRecorded", func(t *framework.T) {
			handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
			server := startServer(t, handler)
			req, err := http.NewRequest("REPORT", server.URL+"/path", nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			resp.Body.Close()

			require.Len(t, requestsCh, 1)
			info := <-requestsCh
			assert.Equal(t, "REPORT", info.Request.Method)
			assert.Equal(t, "/path", info.Request.URL.Path)
		}),
	)
}

func startServer(t *framework.T, handler http.Handler) *httptest.Server {
	server := httptest.NewServer(handler)
	t.Debug("started test server at %s", server.URL)
	t.Defer(server.Close)
	return server
}
