package gemini

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slidegenie/slidegenie-api/internal/generation"
)

func TestClassifyAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "quota exhausted",
			err:  errors.New("googleapi: Error 429: Quota exceeded for quota metric"),
			want: generation.ErrQuotaExhausted,
		},
		{
			name: "resource exhausted",
			err:  errors.New("rpc error: code = RESOURCE_EXHAUSTED desc = resource_exhausted"),
			want: generation.ErrQuotaExhausted,
		},
		{
			name: "rate limited",
			err:  errors.New("too many requests, please retry later"),
			want: generation.ErrRateLimited,
		},
		{
			name: "bad credentials",
			err:  errors.New("API key not valid. Please pass a valid API key."),
			want: generation.ErrInvalidCredentials,
		},
		{
			name: "permission denied",
			err:  errors.New("rpc error: code = PERMISSION_DENIED"),
			want: generation.ErrInvalidCredentials,
		},
		{
			name: "unknown error",
			err:  errors.New("connection reset by peer"),
			want: generation.ErrGenerationFailed,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := classifyAPIError(tc.err)
			assert.ErrorIs(t, got, tc.want)
		})
	}
}
