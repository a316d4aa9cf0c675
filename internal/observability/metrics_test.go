package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"aquarium/internal/domain"
)

func TestOutcomeLabels(t *testing.T) {
	require.Equal(t, "ok", Outcome(nil))
	require.Equal(t, "parsing", Outcome(domain.Wrap(domain.KindParsing, "decode", nil)))
	require.Equal(t, "configuration", Outcome(domain.Wrap(domain.KindConfiguration, "env", nil)))
	require.Equal(t, "external_request", Outcome(errors.New("connection reset")))
	require.Equal(t, "parsing", Outcome(domain.ErrParsing))
}

func TestRecordFetchIncrementsOutcome(t *testing.T) {
	before := testutil.ToFloat64(fetchCounter.WithLabelValues("parsing"))
	RecordFetch(time.Now(), domain.Wrap(domain.KindParsing, "decode", nil))
	require.Equal(t, before+1, testutil.ToFloat64(fetchCounter.WithLabelValues("parsing")))

	RecordSchool(7)
	require.Equal(t, 7.0, testutil.ToFloat64(schoolSizeGauge))
}
