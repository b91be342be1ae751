//nolint:ireturn
package httpclient

import (
	"context"
)

func GetJSON[T any](ctx context.Context, c *Client, path string, params Params) (T, error) {
	var result T
	err := c.Get(ctx, path, params, &result)

	return result, err
}
