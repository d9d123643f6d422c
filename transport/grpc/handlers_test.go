package grpc

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"os"
	"testing"

	"github.com/rocketscienceinc/connectfour-backend/api"
	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// stubGameUseCase answers with canned values so handler mapping can be
// tested without storage.
type stubGameUseCase struct {
	createID  string
	createErr error

	joinPlayer entity.Player
	joinToken  string
	joinErr    error

	makeMove func(identityToken string, x int) (*usecase.MoveResult, error)
}

func (that *stubGameUseCase) CreateGame(_ context.Context, _ entity.GameSettings) (string, error) {
	return that.createID, that.createErr
}

func (that *stubGameUseCase) JoinGame(_ context.Context, _ string) (entity.Player, string, error) {
	return that.joinPlayer, that.joinToken, that.joinErr
}

func (that *stubGameUseCase) MakeMove(_ context.Context, identityToken string, x int) (*usecase.MoveResult, error) {
	return that.makeMove(identityToken, x)
}

// newTestClient serves the handler over an in-memory connection and returns a
// client bound to it.
func newTestClient(t *testing.T, game usecase.GameUseCase) api.GameClient {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	listener := bufconn.Listen(1024 * 1024)

	srv := gogrpc.NewServer()
	api.RegisterGameServer(srv, New(logger, game))

	go func() {
		if err := srv.Serve(listener); err != nil {
			t.Logf("serve: %v", err)
		}
	}()
	t.Cleanup(srv.Stop)

	conn, err := gogrpc.NewClient("passthrough:///bufnet",
		gogrpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return api.NewGameClient(conn)
}

func TestServer_Create(t *testing.T) {
	t.Run("Returns the new game id", func(t *testing.T) {
		// Given: a use case that mints a known id
		client := newTestClient(t, &stubGameUseCase{createID: "65b2f0a1c3d4e5f60718293a"})

		// When: creating a game
		resp, err := client.Create(context.Background(), &api.GameSettings{
			HorizontalSize:     7,
			VerticalSize:       6,
			IsHorizontalCyclic: true,
		})

		// Then: the id is handed back
		require.NoError(t, err)
		assert.Equal(t, "65b2f0a1c3d4e5f60718293a", resp.GetId())
	})

	t.Run("Rejects zero dimensions", func(t *testing.T) {
		// Given: any use case
		client := newTestClient(t, &stubGameUseCase{})

		// When: creating a game with a zero width
		_, err := client.Create(context.Background(), &api.GameSettings{
			HorizontalSize: 0,
			VerticalSize:   6,
		})

		// Then: the request is rejected before reaching the use case
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.InvalidArgument, st.Code())
	})

	t.Run("Hides internal failures behind a generic message", func(t *testing.T) {
		// Given: a use case that fails
		client := newTestClient(t, &stubGameUseCase{createErr: errors.New("connection reset")})

		// When: creating a game
		_, err := client.Create(context.Background(), &api.GameSettings{HorizontalSize: 7, VerticalSize: 6})

		// Then: the cause is not leaked
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.Internal, st.Code())
		assert.Equal(t, internalErrorMessage, st.Message())
	})
}

func TestServer_Join(t *testing.T) {
	t.Run("Returns the assignment and identity token", func(t *testing.T) {
		// Given: a use case that seats the caller as P2
		client := newTestClient(t, &stubGameUseCase{
			joinPlayer: entity.PlayerTwo,
			joinToken:  "65b2f0a1c3d4e5f60718293b",
		})

		// When: joining
		resp, err := client.Join(context.Background(), &api.GameId{Id: "65b2f0a1c3d4e5f60718293a"})

		// Then: the assignment comes back
		require.NoError(t, err)
		assert.Equal(t, api.Player_P2, resp.GetPlayer())
		assert.Equal(t, "65b2f0a1c3d4e5f60718293b", resp.GetIdentityToken())
	})

	t.Run("Maps a full game onto invalid argument with its stable message", func(t *testing.T) {
		// Given: a full game
		client := newTestClient(t, &stubGameUseCase{joinErr: apperror.ErrGameFull})

		// When: joining
		_, err := client.Join(context.Background(), &api.GameId{Id: "65b2f0a1c3d4e5f60718293a"})

		// Then: the rejection carries the stable message
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.InvalidArgument, st.Code())
		assert.Equal(t, apperror.ErrGameFull.Error(), st.Message())
	})

	t.Run("Maps a missing game onto not found", func(t *testing.T) {
		// Given: no game behind the id
		client := newTestClient(t, &stubGameUseCase{joinErr: repository.ErrGameNotFound})

		// When: joining
		_, err := client.Join(context.Background(), &api.GameId{Id: "65b2f0a1c3d4e5f60718293a"})

		// Then: the game is not found
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.NotFound, st.Code())
	})
}

func TestServer_Move(t *testing.T) {
	t.Run("Streams results back in submission order", func(t *testing.T) {
		// Given: a use case that accepts every move as P1
		client := newTestClient(t, &stubGameUseCase{
			makeMove: func(_ string, x int) (*usecase.MoveResult, error) {
				return &usecase.MoveResult{Player: entity.PlayerOne, IsLastMove: x == 2}, nil
			},
		})

		stream, err := client.Move(context.Background())
		require.NoError(t, err)

		// When: three moves go in
		for _, x := range []uint32{0, 1, 2} {
			require.NoError(t, stream.Send(&api.UserMove{X: x, IdentityToken: "65b2f0a1c3d4e5f60718293b"}))
		}
		require.NoError(t, stream.CloseSend())

		// Then: three results come back in order and the last one is final
		var got []*api.MoveInfo
		for {
			info, recvErr := stream.Recv()
			if errors.Is(recvErr, io.EOF) {
				break
			}
			require.NoError(t, recvErr)
			got = append(got, info)
		}

		require.Len(t, got, 3)
		for i, info := range got {
			assert.Equal(t, uint32(i), info.GetX())
			assert.Equal(t, api.Player_P1, info.GetPlayer())
			assert.Empty(t, info.GetError())
		}
		assert.False(t, got[0].GetIsLastMove())
		assert.True(t, got[2].GetIsLastMove())
	})

	t.Run("A rejected move does not end the stream", func(t *testing.T) {
		// Given: a use case that rejects column 9 and accepts the rest
		client := newTestClient(t, &stubGameUseCase{
			makeMove: func(_ string, x int) (*usecase.MoveResult, error) {
				if x == 9 {
					return nil, apperror.ErrNoSuchColumn
				}
				return &usecase.MoveResult{Player: entity.PlayerOne}, nil
			},
		})

		stream, err := client.Move(context.Background())
		require.NoError(t, err)

		// When: a bad move is followed by a good one
		require.NoError(t, stream.Send(&api.UserMove{X: 9, IdentityToken: "65b2f0a1c3d4e5f60718293b"}))
		require.NoError(t, stream.Send(&api.UserMove{X: 1, IdentityToken: "65b2f0a1c3d4e5f60718293b"}))
		require.NoError(t, stream.CloseSend())

		// Then: the rejection is reported in-band and the next move still lands
		first, err := stream.Recv()
		require.NoError(t, err)
		assert.Equal(t, apperror.ErrNoSuchColumn.Error(), first.GetError())

		second, err := stream.Recv()
		require.NoError(t, err)
		assert.Empty(t, second.GetError())
		assert.Equal(t, uint32(1), second.GetX())

		_, err = stream.Recv()
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Hides internal failures behind a generic in-band message", func(t *testing.T) {
		// Given: a use case that fails with a storage error
		client := newTestClient(t, &stubGameUseCase{
			makeMove: func(_ string, _ int) (*usecase.MoveResult, error) {
				return nil, errors.New("socket closed")
			},
		})

		stream, err := client.Move(context.Background())
		require.NoError(t, err)

		// When: a move goes in
		require.NoError(t, stream.Send(&api.UserMove{X: 0, IdentityToken: "65b2f0a1c3d4e5f60718293b"}))
		require.NoError(t, stream.CloseSend())

		// Then: the cause is not leaked
		info, err := stream.Recv()
		require.NoError(t, err)
		assert.Equal(t, internalErrorMessage, info.GetError())
	})

	t.Run("Closing the stream ends the call cleanly", func(t *testing.T) {
		// Given: an open move stream
		client := newTestClient(t, &stubGameUseCase{
			makeMove: func(_ string, _ int) (*usecase.MoveResult, error) {
				return &usecase.MoveResult{Player: entity.PlayerOne}, nil
			},
		})

		stream, err := client.Move(context.Background())
		require.NoError(t, err)

		// When: the client closes without sending anything
		require.NoError(t, stream.CloseSend())

		// Then: the server completes the call without an error
		_, err = stream.Recv()
		assert.ErrorIs(t, err, io.EOF)
	})
}
