package main

import (
	"context"

	"victoriaos-connector/internal/model"
	"victoriaos-connector/internal/operation"
	"victoriaos-connector/pkg/victoriaos"
)

// currentUser fetches the account the API key belongs to.
func currentUser(ctx context.Context, client *victoriaos.Client) (model.User, error) {
	req, err := operation.Build(operation.ResourceUser, operation.OpGetInfo, operation.MapParams{})
	if err != nil {
		return model.User{}, err
	}
	resp, err := client.Do(ctx, req.APIRequest())
	if err != nil {
		return model.User{}, victoriaos.Normalize(err)
	}
	return model.Unwrap[model.User](resp.Data)
}
