package twilio

import (
	"context"
	"errors"
	"time"

	"speakeasy/internal/observability"

	twilioSDK "github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrMissingCallSID = errors.New("twilio returned a call without a sid")

// callService is the subset of the Twilio v2010 API used to place calls.
type callService interface {
	CreateCall(params *twilioApi.CreateCallParams) (*twilioApi.ApiV2010Call, error)
}

// Client places outbound voice calls from a fixed origin number.
type Client struct {
	calls  callService
	from   string
	logger *observability.Logger
}

// NewClient builds a REST client. Credentials are not checked here; Twilio
// rejects bad ones on the first call.
func NewClient(accountSID, authToken, from string, timeout time.Duration, logger *observability.Logger) *Client {
	rest := twilioSDK.NewRestClientWithParams(twilioSDK.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	if timeout > 0 {
		rest.SetTimeout(timeout)
	}

	return &Client{
		calls:  rest.Api,
		from:   from,
		logger: logger,
	}
}

// PlaceCall dials to and runs the given TwiML document as the call script.
// It returns the provider-assigned call SID.
func (c *Client) PlaceCall(ctx context.Context, to string, twiml string) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "call_to", Value: to})

	params := &twilioApi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetTwiml(twiml)

	call, err := c.calls.CreateCall(params)
	if err != nil {
		// Returned unwrapped so the caller sees Twilio's own message.
		c.logger.Error(ctx, "failed to create twilio call", err)
		return "", err
	}
	if call == nil || call.Sid == nil || *call.Sid == "" {
		c.logger.Error(ctx, "twilio call has no sid", ErrMissingCallSID)
		return "", ErrMissingCallSID
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: *call.Sid})
	c.logger.Info(ctx, "twilio call created")
	return *call.Sid, nil
}
