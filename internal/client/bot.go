package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"bombman/internal/record"
	"bombman/pkg/ai"
	"bombman/pkg/core"
	"bombman/pkg/protocol"
)

// Policy 每回合做出决策的 AI
type Policy interface {
	NewMemory(start *core.GameStart) ai.Memory
	DecideWithDetail(mem ai.Memory, game *core.Game) (ai.Memory, core.Action, ai.Decision, error)
}

// TurnRecorder 记录每回合的决策，nil 表示不记录
type TurnRecorder interface {
	Begin(gameID string)
	Record(row record.TurnRow)
	Flush() (string, error)
}

// Bot 驱动一局或多局游戏的请求/响应循环。连接只由 Run 所在的 goroutine 使用。
type Bot struct {
	name     string
	ch       *Channel
	policy   Policy
	base     log.Logger
	logger   log.Logger // base plus the current game id
	recorder TurnRecorder

	gameID string
	mem    ai.Memory
	turns  int
}

// BotOption 可选配置
type BotOption func(*Bot)

func WithRecorder(r TurnRecorder) BotOption {
	return func(b *Bot) { b.recorder = r }
}

func NewBot(name string, ch *Channel, policy Policy, logger log.Logger, opts ...BotOption) *Bot {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	b := &Bot{
		name:   name,
		ch:     ch,
		policy: policy,
		base:   logger,
		logger: logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.mem = policy.NewMemory(nil)
	return b
}

// Turns 已回复的 MOVE_REQUEST 数量
func (b *Bot) Turns() int {
	return b.turns
}

// Run 发送名字后处理服务器消息，直到 END_GAME、连接中断或 ctx 取消。
// END_GAME 返回 nil；传输与协议错误会结束会话并返回。
func (b *Bot) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() { _ = b.ch.Close() })
	defer stop()
	defer b.ch.Close()

	if err := b.send(protocol.NewNameResponse(b.name)); err != nil {
		return fmt.Errorf("send name: %w", err)
	}
	_ = level.Info(b.logger).Log("msg", "joined", "name", b.name)

	for {
		data, err := b.ch.Read()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("transport: %w", err)
		}
		msg, err := protocol.UnmarshalMessage(data)
		if err != nil {
			_ = level.Error(b.logger).Log("msg", "bad server message", "err", err)
			return fmt.Errorf("protocol: %w", err)
		}

		switch msg.Type {
		case protocol.MessageTypeStartGame:
			b.startGame(msg)
		case protocol.MessageTypeMoveRequest:
			if err := b.move(msg); err != nil {
				return err
			}
		case protocol.MessageTypeEndGame:
			b.endGame()
			return nil
		default:
			_ = level.Warn(b.logger).Log("msg", "ignoring message", "type", msg.Type)
		}
	}
}

func (b *Bot) startGame(msg *protocol.Message) {
	b.gameID = uuid.NewString()
	b.logger = log.With(b.base, "game", b.gameID)
	if b.recorder != nil {
		b.recorder.Begin(b.gameID)
	}

	start, err := protocol.ToGameStart(msg)
	if err != nil {
		_ = level.Error(b.logger).Log("msg", "bad start message, continuing with empty memory", "err", err)
		b.mem = b.policy.NewMemory(nil)
		return
	}
	b.mem = b.policy.NewMemory(start)
	_ = level.Info(b.logger).Log(
		"msg", "game started",
		"index", start.PlayerIndex,
		"width", start.Map.Width,
		"height", start.Map.Height,
		"blocks", b.mem.BlockCount(),
	)
}

func (b *Bot) move(msg *protocol.Message) error {
	started := time.Now()

	var (
		action   = core.ActionStay
		decision ai.Decision
		fault    error
		self     core.Player
	)
	game, err := protocol.ToGame(msg)
	if err != nil {
		fault = err
		_ = level.Error(b.logger).Log("msg", "bad move request", "turn", msg.ResponseID, "err", err)
	} else {
		b.mem, action, decision, fault = b.policy.DecideWithDetail(b.mem, game)
		self, _ = game.Self()
	}

	if err := b.send(protocol.NewMoveResponse(msg, action)); err != nil {
		return fmt.Errorf("send move %d: %w", msg.ResponseID, err)
	}
	b.turns++
	took := time.Since(started)
	_ = level.Info(b.logger).Log(
		"msg", "move sent",
		"turn", msg.ResponseID,
		"action", action,
		"took_ms", took.Milliseconds(),
	)

	if b.recorder != nil {
		row := record.TurnRow{
			GameID:    b.gameID,
			Player:    b.name,
			Turn:      msg.ResponseID,
			PosX:      int32(self.Pos.GridX),
			PosY:      int32(self.Pos.GridY),
			Action:    action.String(),
			Strategy:  decision.Strategy,
			PlaceBomb: decision.PlaceBomb,
			Blocks:    int32(b.mem.BlockCount()),
			Bombs:     int32(len(msg.Bombs)),
			TookMs:    took.Milliseconds(),
		}
		for _, d := range decision.Choices() {
			row.Choices = append(row.Choices, d.String())
		}
		if fault != nil {
			row.Fault = fault.Error()
		}
		b.recorder.Record(row)
	}
	return nil
}

func (b *Bot) endGame() {
	_ = level.Info(b.logger).Log("msg", "game over", "turns", b.turns)
	if b.recorder == nil {
		return
	}
	path, err := b.recorder.Flush()
	switch {
	case err != nil:
		_ = level.Error(b.logger).Log("msg", "write turn archive", "err", err)
	case path != "":
		_ = level.Info(b.logger).Log("msg", "turn archive written", "path", path)
	}
}

func (b *Bot) send(m *protocol.ClientMessage) error {
	data, err := protocol.MarshalClientMessage(m)
	if err != nil {
		return err
	}
	return b.ch.Write(data)
}
