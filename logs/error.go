package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the context's span id into err so the failing run can
// be found in the logs.
func WrapSpan(ctx context.Context, err error) error {
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
}
