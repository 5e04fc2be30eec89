package worldpay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const redirectReplyXML = `<?xml version="1.0" encoding="UTF-8"?>
<paymentService version="1.4" merchantCode="MYMERCHANT">
  <reply>
    <orderStatus orderCode="T123">
      <reference id="3414207156">https://payments-test.worldpay.com/app/hpp/integration/wpg/corporate?OrderKey=MYMERCHANT%5ET123&amp;Ticket=00146321909989277</reference>
    </orderStatus>
  </reply>
</paymentService>`

const refusedReplyXML = `<paymentService version="1.4" merchantCode="MYMERCHANT">
  <reply>
    <orderStatus orderCode="T123">
      <payment>
        <paymentMethod>ECMC-SSL</paymentMethod>
        <ISO8583ReturnCode code="5" description="REFUSED"/>
        <lastEvent>REFUSED</lastEvent>
      </payment>
    </orderStatus>
  </reply>
</paymentService>`

const errorReplyXML = `<paymentService version="1.4" merchantCode="MYMERCHANT">
  <reply>
    <error code="5"><![CDATA[Duplicate Order]]></error>
  </reply>
</paymentService>`

const notifyAuthorisedXML = `<paymentService version="1.4" merchantCode="MYMERCHANT">
  <notify>
    <orderStatusEvent orderCode="ExampleOrder1">
      <payment>
        <paymentMethod>VISA-SSL</paymentMethod>
        <lastEvent>AUTHORISED</lastEvent>
      </payment>
    </orderStatusEvent>
  </notify>
</paymentService>`

func TestParseRedirectReply(t *testing.T) {
	resp, err := ParseResponse([]byte(redirectReplyXML))
	require.NoError(t, err)

	assert.Equal(t, KindRedirectReference, resp.Kind())
	assert.True(t, resp.IsRedirect())
	assert.Equal(t, "T123", resp.TransactionID())
	assert.Equal(t, "3414207156", resp.TransactionReference())
	assert.Contains(t, resp.RedirectReference(), "OrderKey=MYMERCHANT%5ET123")
	assert.False(t, resp.IsSuccessful())
	assert.False(t, resp.HasStatus())
	assert.Equal(t, "", resp.ErrorCode())
}

func TestParseOrderStatusReply(t *testing.T) {
	tests := []struct {
		name           string
		lastEvent      string
		wantSuccessful bool
		wantPending    bool
		wantCancelled  bool
	}{
		{name: "authorised", lastEvent: "AUTHORISED", wantSuccessful: true},
		{name: "captured", lastEvent: "CAPTURED", wantSuccessful: true},
		{name: "settled", lastEvent: "SETTLED_BY_MERCHANT", wantSuccessful: true},
		{name: "lower case authorised", lastEvent: "authorised", wantSuccessful: true},
		{name: "sent for authorisation", lastEvent: "SENT_FOR_AUTHORISATION", wantPending: true},
		{name: "cancelled", lastEvent: "CANCELLED", wantCancelled: true},
		{name: "refused is neither", lastEvent: "REFUSED"},
		{name: "sent for refund is neither", lastEvent: "SENT_FOR_REFUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `<paymentService><reply><orderStatus orderCode="T1"><payment><lastEvent>` +
				tt.lastEvent + `</lastEvent></payment></orderStatus></reply></paymentService>`

			resp, err := ParseResponse([]byte(body))
			require.NoError(t, err)

			assert.Equal(t, KindOrderStatus, resp.Kind())
			assert.Equal(t, tt.wantSuccessful, resp.IsSuccessful())
			assert.Equal(t, tt.wantPending, resp.IsPending())
			assert.Equal(t, tt.wantCancelled, resp.IsCancelled())
		})
	}
}

func TestMessageResolution(t *testing.T) {
	t.Run("refused with ISO8583 code", func(t *testing.T) {
		resp, err := ParseResponse([]byte(refusedReplyXML))
		require.NoError(t, err)

		assert.Equal(t, "REFUSED", resp.Message())
		assert.Equal(t, "ECMC-SSL", resp.CardType())
		assert.False(t, resp.IsSuccessful())
	})

	t.Run("top-level error wins", func(t *testing.T) {
		resp, err := ParseResponse([]byte(errorReplyXML))
		require.NoError(t, err)

		assert.Equal(t, KindTopLevelError, resp.Kind())
		assert.Equal(t, "ERROR: Duplicate Order", resp.Message())
		assert.Equal(t, "5", resp.ErrorCode())
		assert.False(t, resp.IsSuccessful())
	})

	t.Run("successful without return code", func(t *testing.T) {
		body := `<paymentService><reply><orderStatus orderCode="T1"><payment><lastEvent>AUTHORISED</lastEvent></payment></orderStatus></reply></paymentService>`
		resp, err := ParseResponse([]byte(body))
		require.NoError(t, err)

		assert.Equal(t, "AUTHORISED", resp.Message())
	})

	t.Run("no status and no code is pending", func(t *testing.T) {
		body := `<paymentService><reply><orderStatus orderCode="T1"/></reply></paymentService>`
		resp, err := ParseResponse([]byte(body))
		require.NoError(t, err)

		assert.Equal(t, "PENDING", resp.Message())
	})

	t.Run("unknown return code falls back to status", func(t *testing.T) {
		body := `<paymentService><reply><orderStatus orderCode="T1"><payment><ISO8583ReturnCode code="998"/><lastEvent>AUTHORISED</lastEvent></payment></orderStatus></reply></paymentService>`
		resp, err := ParseResponse([]byte(body))
		require.NoError(t, err)

		assert.Equal(t, "AUTHORISED", resp.Message())
	})
}

func TestISO8583MessageTable(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{code: 0, want: "AUTHORISED"},
		{code: 5, want: "REFUSED"},
		{code: 33, want: "CARD EXPIRED"},
		{code: 41, want: "LOST CARD"},
		{code: 76, want: "CARD BLOCKED"},
		{code: 97, want: "SECURITY BREACH"},
	}

	for _, tt := range tests {
		msg, ok := ISO8583Message(tt.code)
		assert.True(t, ok)
		assert.Equal(t, tt.want, msg)
	}

	_, ok := ISO8583Message(999)
	assert.False(t, ok)
}

func TestParseNotificationEvent(t *testing.T) {
	resp, err := ParseResponse([]byte(notifyAuthorisedXML))
	require.NoError(t, err)

	assert.Equal(t, KindNotificationEvent, resp.Kind())
	assert.Equal(t, "ExampleOrder1", resp.TransactionID())
	assert.Equal(t, "AUTHORISED", resp.Status())
	assert.Equal(t, "VISA-SSL", resp.CardType())
	assert.True(t, resp.IsSuccessful())
	assert.False(t, resp.IsRedirect())
}

func TestParseIsIdempotent(t *testing.T) {
	first, err := ParseResponse([]byte(refusedReplyXML))
	require.NoError(t, err)
	second, err := ParseResponse([]byte(refusedReplyXML))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		assert.Equal(t, first.Message(), second.Message())
		assert.Equal(t, first.TransactionID(), second.TransactionID())
		assert.Equal(t, first.IsSuccessful(), second.IsSuccessful())
		assert.Equal(t, first.IsPending(), second.IsPending())
		assert.Equal(t, first.IsCancelled(), second.IsCancelled())
		assert.Equal(t, first.CardType(), second.CardType())
	}
}
