package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Send(ctx context.Context, input SendInput) (SendOutput, error)
	GrantLocation(ctx context.Context, input GrantLocationInput) (LocationOutput, error)
	RevokeLocation(ctx context.Context, sessionID string) (LocationOutput, error)
	History(ctx context.Context, sessionID string) (HistoryOutput, error)
	Reset(ctx context.Context, sessionID string) error
}
