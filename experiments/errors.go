package experiments

import (
	"errors"

	smtypes "github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
	"github.com/aws/smithy-go"
)

// Remote API errors are propagated to callers unmodified apart from %w
// wrapping, so the helpers below work on any error returned by this package.

// IsNotFound reports whether err indicates the requested record does not
// exist.
func IsNotFound(err error) bool {
	var rnf *smtypes.ResourceNotFound
	return errors.As(err, &rnf)
}

// IsConflict reports whether err indicates a record with the same name
// already exists.
func IsConflict(err error) bool {
	var riu *smtypes.ResourceInUse
	return errors.As(err, &riu)
}

// IsLimitExceeded reports whether err indicates an account resource limit
// was hit.
func IsLimitExceeded(err error) bool {
	var rle *smtypes.ResourceLimitExceeded
	return errors.As(err, &rle)
}

// IsThrottling reports whether err indicates the service throttled the call.
func IsThrottling(err error) bool {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return ae.ErrorCode() == "ThrottlingException"
	}

	return false
}
