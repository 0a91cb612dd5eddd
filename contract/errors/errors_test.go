package errors_test

import (
	"errors"
	"testing"

	berr "github.com/next-trace/scg-conference-bus/contract/errors"
)

func TestCodeAndVars(t *testing.T) {
	e := berr.Code(berr.ErrCodePublishFailed)
	if e.Error() != berr.ErrCodePublishFailed {
		t.Fatalf("unexpected error string: %s", e.Error())
	}

	// exported variables must carry their codes
	tests := []struct {
		err  error
		code string
	}{
		{berr.ErrNotConnected, berr.ErrCodeNotConnected},
		{berr.ErrPublishFailed, berr.ErrCodePublishFailed},
		{berr.ErrSerializationFailed, berr.ErrCodeSerializationFailed},
		{berr.ErrDecodeFailed, berr.ErrCodeDecodeFailed},
		{berr.ErrUnknownRoutingKey, berr.ErrCodeUnknownRoutingKey},
		{berr.ErrSubscribeFailed, berr.ErrCodeSubscribeFailed},
		{berr.ErrHandlerFailed, berr.ErrCodeHandlerFailed},
		{berr.ErrValidationFailed, berr.ErrCodeValidationFailed},
		{berr.ErrStoreFailed, berr.ErrCodeStoreFailed},
	}

	for _, tc := range tests {
		if !errors.Is(tc.err, berr.Code(tc.code)) {
			t.Fatalf("expected %s to be %s", tc.err, tc.code)
		}
	}
}
