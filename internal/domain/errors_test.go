package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindMessages(t *testing.T) {
	require.Equal(t, "Failed reading data from external source", KindExternalRequest.Error())
	require.Equal(t, "Failed parsing data from external source", KindParsing.Error())
	require.Equal(t, "Configuration error", KindConfiguration.Error())
}

func TestErrorHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:443: connect: connection refused")
	err := Wrap(KindExternalRequest, "fetch activity", cause)

	require.Equal(t, "Failed reading data from external source", err.Error())
	require.ErrorIs(t, err, ErrExternalRequest)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, ErrParsing)
	require.Contains(t, err.Cause(), "connection refused")
}

func TestKindOfThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", Wrap(KindParsing, "decode", nil))
	require.Equal(t, KindParsing, KindOf(err))
	require.Equal(t, Kind(0), KindOf(errors.New("plain")))
}

func TestClassify(t *testing.T) {
	var syntaxErr error = json.Unmarshal([]byte("{"), &struct{}{})
	var typeErr error = json.Unmarshal([]byte(`{"a":[1]}`), &struct{ A string }{})

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "tagged passes through", err: Wrap(KindConfiguration, "env", nil), want: KindConfiguration},
		{name: "bare kind", err: ErrParsing, want: KindParsing},
		{name: "wrapped kind", err: fmt.Errorf("decode: %w", ErrConfiguration), want: KindConfiguration},
		{name: "url error", err: &url.Error{Op: "Get", URL: "http://x", Err: errors.New("refused")}, want: KindExternalRequest},
		{name: "json syntax", err: syntaxErr, want: KindParsing},
		{name: "json type", err: typeErr, want: KindParsing},
		{name: "unknown", err: errors.New("boom"), want: KindExternalRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify("op", tc.err).Kind)
		})
	}
	require.Nil(t, Classify("op", nil))
}

func TestClassifyAgreesWithKindOf(t *testing.T) {
	for _, err := range []error{ErrExternalRequest, ErrParsing, ErrConfiguration, fmt.Errorf("x: %w", ErrParsing)} {
		require.Equal(t, KindOf(err), Classify("fetch", err).Kind, err.Error())
	}
	tagged := Classify("fetch", ErrParsing)
	require.Equal(t, "Failed parsing data from external source", tagged.Error())
	require.ErrorIs(t, tagged, ErrParsing)
}
