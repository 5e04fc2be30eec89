package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycleStatusClassification(t *testing.T) {
	tests := []struct {
		raw           string
		wantSuccess   bool
		wantPending   bool
		wantCancelled bool
	}{
		{raw: "AUTHORISED", wantSuccess: true},
		{raw: "CAPTURED", wantSuccess: true},
		{raw: "SETTLED_BY_MERCHANT", wantSuccess: true},
		{raw: "authorised", wantSuccess: true},
		{raw: "  Captured  ", wantSuccess: true},
		{raw: "SENT_FOR_AUTHORISATION", wantPending: true},
		{raw: "CANCELLED", wantCancelled: true},
		{raw: "REFUSED"},
		{raw: "SENT_FOR_REFUND"},
		{raw: "CHARGED_BACK"},
		{raw: "EXPIRED"},
		{raw: ""},
		{raw: "SOMETHING_NEW"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			s := ParseLifecycleStatus(tt.raw)

			assert.Equal(t, tt.wantSuccess, s.IsSuccess())
			assert.Equal(t, tt.wantPending, s.IsPending())
			assert.Equal(t, tt.wantCancelled, s.IsCancelled())
		})
	}
}
