package svcerr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, Unknown},
		{"relationship message", errors.New("rpc error: No RELATIONSHIP found for asset type"), RelationshipsUnsupported},
		{"forbidden", &googleapi.Error{Code: 403, Message: "forbidden"}, NotProvisioned},
		{"not found", &googleapi.Error{Code: 404, Message: "not found"}, NotProvisioned},
		{"rate limited", &googleapi.Error{Code: 429, Message: "quota"}, Transient},
		{"server error", &googleapi.Error{Code: 503, Message: "backend"}, Transient},
		{"bad relationship request", &googleapi.Error{Code: 400, Message: "RELATIONSHIP content not supported"}, RelationshipsUnsupported},
		{"other bad request", &googleapi.Error{Code: 400, Message: "invalid filter"}, Unknown},
		{"wrapped api error", fmt.Errorf("failed to list assets: %w", &googleapi.Error{Code: 403}), NotProvisioned},
		{"deadline", context.DeadlineExceeded, Unavailable},
		{"permission denied text", errors.New("rpc error: PERMISSION_DENIED"), NotProvisioned},
		{"not found text", errors.New("NOT_FOUND: recommender unavailable"), NotProvisioned},
		{"connection refused", errors.New("dial tcp 10.0.0.1:443: connection refused"), Unavailable},
		{"unclassified", errors.New("something else"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestRecoverable(t *testing.T) {
	assert.True(t, Recoverable(NotProvisioned))
	assert.True(t, Recoverable(RelationshipsUnsupported))
	assert.False(t, Recoverable(Transient))
	assert.False(t, Recoverable(Unavailable))
	assert.False(t, Recoverable(Unknown))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "not_provisioned", NotProvisioned.String())
	assert.Equal(t, "unknown", Unknown.String())
}
