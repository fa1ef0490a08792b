package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemp := errors.New("temporary")
	errFatal := errors.New("fatal")

	testCases := []struct {
		name      string
		failures  int
		failWith  error
		stopOn    []error
		wantErr   error
		wantCalls int
	}{
		{name: "first attempt succeeds", failures: 0, wantCalls: 1},
		{name: "succeeds after failures", failures: 2, failWith: errTemp, wantCalls: 3},
		{name: "gives up after max attempts", failures: 10, failWith: errTemp, wantErr: errTemp, wantCalls: 3},
		{name: "stops on listed error", failures: 10, failWith: errFatal, stopOn: []error{errFatal}, wantErr: errFatal, wantCalls: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			fn := func() error {
				calls++
				if calls <= tc.failures {
					return tc.failWith
				}
				return nil
			}

			cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}
			err := Retry(cfg, fn, tc.stopOn...)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantCalls, calls)
		})
	}
}
