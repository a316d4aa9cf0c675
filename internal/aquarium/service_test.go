package aquarium

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"aquarium/internal/config"
	"aquarium/internal/domain"
)

const threeWeeks = `[
	{"week":"1700438400","statuses":"50000","logins":"10000","registrations":"7500"},
	{"week":"1699833600","statuses":"0","logins":"0","registrations":"0"},
	{"week":"1699228800","statuses":"100000","logins":"20000","registrations":"15000"}
]`

func stubInstance(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/instance/activity" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func envLoader(env map[string]string) func() (config.Activity, error) {
	return func() (config.Activity, error) {
		return config.LoadFrom(func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		})
	}
}

func baseEnv(apiURL string) map[string]string {
	return map[string]string{
		config.EnvUserAgent: "aquarium-test",
		config.EnvAPIURL:    apiURL,
	}
}

func TestInvokeEndToEndWithAmbassador(t *testing.T) {
	srv := stubInstance(t, http.StatusOK, threeWeeks)
	svc := NewService(Options{LoadConfig: envLoader(baseEnv(srv.URL))})

	resp := svc.Invoke(context.Background(), "en")
	require.Equal(t, http.StatusOK, resp.Status)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.Equal(t, "max-age=60, public", resp.Header.Get("Cache-Control"))

	host := mustHost(t, srv.URL)
	want := fmt.Sprintf(`{
		"legend": {
			"description": "Weekly activity on %s\nSize shows the number of registrations.\nSpeed shows the number of statuses.\nBubbles show the number of logins.",
			"fish_legends": [
				{"fish": "clownfish", "description": "One week of activity"},
				{"fish": "ferris", "description": "Ferris helps to monitor the aquarium"}
			]
		},
		"school": [
			{"fish": "clownfish", "size": 0.6, "speed": 0.6, "bubbles": 0.6},
			{"fish": "clownfish", "size": 0.2, "speed": 0.2, "bubbles": 0.2},
			{"fish": "clownfish", "size": 1, "speed": 1, "bubbles": 1},
			{"fish": "ferris", "size": 1, "speed": 1, "bubbles": 0}
		]
	}`, host)
	require.JSONEq(t, want, string(resp.Body))
}

func TestInvokeWithoutAmbassador(t *testing.T) {
	srv := stubInstance(t, http.StatusOK, threeWeeks)
	env := baseEnv(srv.URL)
	env[config.EnvAmbassador] = "false"
	env[config.EnvCacheMaxAge] = "120"
	svc := NewService(Options{LoadConfig: envLoader(env)})

	payload, cacheSeconds, err := svc.Render(context.Background(), "id")
	require.NoError(t, err)
	require.Equal(t, 120, cacheSeconds)
	require.Len(t, payload.School, 3)
	require.Len(t, payload.Legend.FishLegends, 1)
	require.Contains(t, payload.Legend.Description, "Aktivitas mingguan")
}

func TestInvokeErrorKinds(t *testing.T) {
	malformed := stubInstance(t, http.StatusOK, `[{"week":`)
	unreachable := httptest.NewServer(http.NotFoundHandler())
	unreachableURL := unreachable.URL
	unreachable.Close()

	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "missing api url",
			env:  map[string]string{config.EnvUserAgent: "aquarium-test"},
			want: `{"message":"Configuration error"}`,
		},
		{
			name: "unreachable host",
			env:  baseEnv(unreachableURL),
			want: `{"message":"Failed reading data from external source"}`,
		},
		{
			name: "malformed body",
			env:  baseEnv(malformed.URL),
			want: `{"message":"Failed parsing data from external source"}`,
		},
		{
			name: "invalid user agent",
			env:  map[string]string{config.EnvUserAgent: "bad\nagent", config.EnvAPIURL: malformed.URL},
			want: `{"message":"Configuration error"}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(Options{LoadConfig: envLoader(tc.env)})
			resp := svc.Invoke(context.Background(), "en")
			require.Equal(t, http.StatusInternalServerError, resp.Status)
			require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			require.Empty(t, resp.Header.Get("Cache-Control"))
			require.Equal(t, tc.want, string(resp.Body))
		})
	}
}

type fetcherFunc func(ctx context.Context) (domain.ActivityHistory, error)

func (f fetcherFunc) FetchActivity(ctx context.Context) (domain.ActivityHistory, error) {
	return f(ctx)
}

func TestInvokeKeepsKindFromCustomFetcher(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "bare parsing", err: domain.ErrParsing, want: `{"message":"Failed parsing data from external source"}`},
		{name: "wrapped configuration", err: fmt.Errorf("token: %w", domain.ErrConfiguration), want: `{"message":"Configuration error"}`},
		{name: "untagged", err: io.ErrClosedPipe, want: `{"message":"Failed reading data from external source"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(Options{
				LoadConfig: envLoader(baseEnv("https://hachyderm.io")),
				NewFetcher: func(config.Activity) (Fetcher, error) {
					return fetcherFunc(func(context.Context) (domain.ActivityHistory, error) {
						return nil, tc.err
					}), nil
				},
			})
			resp := svc.Invoke(context.Background(), "en")
			require.Equal(t, http.StatusInternalServerError, resp.Status)
			require.Equal(t, tc.want, string(resp.Body))
		})
	}
}

func TestInvokeLegendOverride(t *testing.T) {
	srv := stubInstance(t, http.StatusOK, threeWeeks)
	path := filepath.Join(t.TempDir(), "legend.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"locales":{"en":{"description":"Custom tank","fish":[{"fish":"clownfish","description":"A week"}]}}}`), 0o600))

	env := baseEnv(srv.URL)
	env[config.EnvLegendPath] = path
	svc := NewService(Options{LoadConfig: envLoader(env)})

	payload, _, err := svc.Render(context.Background(), "en")
	require.NoError(t, err)
	require.Equal(t, "Custom tank", payload.Legend.Description)
	require.Len(t, payload.School, 4)
}

func TestInvokeMissingLegendFileIsConfiguration(t *testing.T) {
	srv := stubInstance(t, http.StatusOK, threeWeeks)
	env := baseEnv(srv.URL)
	env[config.EnvLegendPath] = filepath.Join(t.TempDir(), "missing.json")
	svc := NewService(Options{LoadConfig: envLoader(env)})

	resp := svc.Invoke(context.Background(), "en")
	require.Equal(t, http.StatusInternalServerError, resp.Status)
	require.Equal(t, `{"message":"Configuration error"}`, string(resp.Body))
}

func mustHost(t *testing.T, raw string) string {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u.Host
}
