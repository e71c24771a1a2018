package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/doccms/core/storage"
)

var (
	ErrInvalidConfig = errors.New("s3: bucket and region are required")
	ErrLoadConfig    = errors.New("s3: failed to load AWS config")
)

// classifyError maps S3 errors onto storage error kinds.
// Context errors pass through so callers can tell cancellation from failure.
func classifyError(err error, op, name string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	if isNotFound(err) {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, name)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "PreconditionFailed", "ConditionalRequestConflict":
			return fmt.Errorf("%w: %s", storage.ErrAlreadyExists, name)
		}
	}

	return storage.Fail(op, name, err)
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
